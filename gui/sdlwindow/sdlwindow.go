// This file is part of Hasselemu.
//
// Hasselemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hasselemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hasselemu.  If not, see <https://www.gnu.org/licenses/>.

package sdlwindow

import (
	"encoding/binary"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/limiter"
	"github.com/hasseldorf/hasselemu/logger"
)

// SurfaceError is returned when the window can not be created or when a
// frame can not be presented.
const SurfaceError = "sdlwindow: %v"

// Title of the window.
const Title = "Hasseldorf Emulator"

// PollInterval is the minimum time between two samples of the keyboard state.
const PollInterval = time.Millisecond

const pixelDepth = 4

// Window is an SDL window that implements the emulation.Surface interface.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// set to false when the window has been closed
	open bool

	// keyboard sampling
	clk      limiter.Clock
	lastPoll time.Time
	keys     []hassel.Key
}

// NewWindow is the preferred method of initialisation for the Window type.
// The size of the window is the size of the screen multiplied by scale.
func NewWindow(scale float32) (*Window, error) {
	if scale <= 0 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SurfaceError, err)
	}

	wnd := &Window{
		open: true,
		clk:  limiter.Monotonic,
		keys: make([]hassel.Key, 0, 16),
	}

	w := int32(float32(hassel.ScreenWidth) * scale)
	h := int32(float32(hassel.ScreenHeight) * scale)

	wnd.window, err = sdl.CreateWindow(Title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(SurfaceError, err)
	}

	wnd.renderer, err = sdl.CreateRenderer(wnd.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(SurfaceError, err)
	}

	// nearest pixel sampling when the texture is scaled to the window
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	wnd.texture, err = wnd.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		hassel.ScreenWidth, hassel.ScreenHeight)
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(SurfaceError, err)
	}

	logger.Logf(logger.Allow, "sdlwindow", "window opened (%dx%d)", w, h)

	return wnd, nil
}

// Destroy releases all SDL resources. The window is closed, if it is not
// already.
func (wnd *Window) Destroy() {
	wnd.open = false
	if wnd.texture != nil {
		wnd.texture.Destroy()
		wnd.texture = nil
	}
	if wnd.renderer != nil {
		wnd.renderer.Destroy()
		wnd.renderer = nil
	}
	if wnd.window != nil {
		wnd.window.Destroy()
		wnd.window = nil
	}
	sdl.Quit()
}

// IsOpen implements the emulation.Surface interface. Pending window events
// are handled first, so a quit request or a closed window is noticed the next
// time the function is called.
func (wnd *Window) IsOpen() bool {
	if !wnd.open {
		return false
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			wnd.open = false
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				wnd.open = false
			}
		}
	}

	if !wnd.open {
		logger.Log(logger.Allow, "sdlwindow", "window closed")
	}

	return wnd.open
}

// Present implements the emulation.Surface interface.
func (wnd *Window) Present(fb emulation.FrameBuffer) error {
	if !wnd.open || wnd.texture == nil {
		return curated.Errorf(SurfaceError, "window has been closed")
	}

	pixels, pitch, err := wnd.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(SurfaceError, err)
	}
	copyFrame(pixels, pitch, fb)
	wnd.texture.Unlock()

	err = wnd.renderer.Clear()
	if err != nil {
		return curated.Errorf(SurfaceError, err)
	}
	err = wnd.renderer.Copy(wnd.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SurfaceError, err)
	}
	wnd.renderer.Present()

	return nil
}

// copyFrame converts 0x00RRGGBB pixels to the byte order of the ARGB8888
// texture format. rows of the texture may be longer than the width of the
// screen
func copyFrame(pixels []byte, pitch int, fb emulation.FrameBuffer) {
	for y := 0; y < hassel.ScreenHeight; y++ {
		row := pixels[y*pitch:]
		line := fb[y*hassel.ScreenWidth : (y+1)*hassel.ScreenWidth]
		for x, rgb := range line {
			binary.LittleEndian.PutUint32(row[x*pixelDepth:], 0xff000000|rgb)
		}
	}
}

// PollHeldKeys implements the emulation.Surface interface. No poll is
// available if the keyboard was sampled less than PollInterval ago or if the
// window does not have keyboard focus.
//
// The returned slice is reused by the next call to PollHeldKeys().
func (wnd *Window) PollHeldKeys() ([]hassel.Key, bool) {
	now := wnd.clk.Now()
	if now.Sub(wnd.lastPoll) < PollInterval {
		return nil, false
	}
	wnd.lastPoll = now

	if wnd.window == nil || wnd.window.GetFlags()&sdl.WINDOW_INPUT_FOCUS != sdl.WINDOW_INPUT_FOCUS {
		return nil, false
	}

	sdl.PumpEvents()
	wnd.keys = heldKeys(wnd.keys[:0], sdl.GetKeyboardState())

	return wnd.keys, true
}
