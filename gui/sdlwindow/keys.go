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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hasseldorf/hasselemu/hassel"
)

// scancodes maps SDL scancodes to emulated keys. scancodes are used rather
// than keycodes so that the physical layout of the host keyboard is what
// matters
var scancodes = map[int]hassel.Key{
	sdl.SCANCODE_0: hassel.Key0,
	sdl.SCANCODE_1: hassel.Key1,
	sdl.SCANCODE_2: hassel.Key2,
	sdl.SCANCODE_3: hassel.Key3,
	sdl.SCANCODE_4: hassel.Key4,
	sdl.SCANCODE_5: hassel.Key5,
	sdl.SCANCODE_6: hassel.Key6,
	sdl.SCANCODE_7: hassel.Key7,
	sdl.SCANCODE_8: hassel.Key8,
	sdl.SCANCODE_9: hassel.Key9,

	sdl.SCANCODE_A: hassel.KeyA,
	sdl.SCANCODE_B: hassel.KeyB,
	sdl.SCANCODE_C: hassel.KeyC,
	sdl.SCANCODE_D: hassel.KeyD,
	sdl.SCANCODE_E: hassel.KeyE,
	sdl.SCANCODE_F: hassel.KeyF,
	sdl.SCANCODE_G: hassel.KeyG,
	sdl.SCANCODE_H: hassel.KeyH,
	sdl.SCANCODE_I: hassel.KeyI,
	sdl.SCANCODE_J: hassel.KeyJ,
	sdl.SCANCODE_K: hassel.KeyK,
	sdl.SCANCODE_L: hassel.KeyL,
	sdl.SCANCODE_M: hassel.KeyM,
	sdl.SCANCODE_N: hassel.KeyN,
	sdl.SCANCODE_O: hassel.KeyO,
	sdl.SCANCODE_P: hassel.KeyP,
	sdl.SCANCODE_Q: hassel.KeyQ,
	sdl.SCANCODE_R: hassel.KeyR,
	sdl.SCANCODE_S: hassel.KeyS,
	sdl.SCANCODE_T: hassel.KeyT,
	sdl.SCANCODE_U: hassel.KeyU,
	sdl.SCANCODE_V: hassel.KeyV,
	sdl.SCANCODE_W: hassel.KeyW,
	sdl.SCANCODE_X: hassel.KeyX,
	sdl.SCANCODE_Y: hassel.KeyY,
	sdl.SCANCODE_Z: hassel.KeyZ,

	sdl.SCANCODE_SPACE:        hassel.KeySpace,
	sdl.SCANCODE_TAB:          hassel.KeyTab,
	sdl.SCANCODE_BACKSLASH:    hassel.KeyBackslash,
	sdl.SCANCODE_COMMA:        hassel.KeyComma,
	sdl.SCANCODE_EQUALS:       hassel.KeyEqual,
	sdl.SCANCODE_LEFTBRACKET:  hassel.KeyLeftBracket,
	sdl.SCANCODE_MINUS:        hassel.KeyMinus,
	sdl.SCANCODE_PERIOD:       hassel.KeyPeriod,
	sdl.SCANCODE_RIGHTBRACKET: hassel.KeyRightBracket,
	sdl.SCANCODE_SEMICOLON:    hassel.KeySemicolon,
	sdl.SCANCODE_SLASH:        hassel.KeySlash,
	sdl.SCANCODE_RETURN:       hassel.KeyEnter,
	sdl.SCANCODE_BACKSPACE:    hassel.KeyBackspace,
	sdl.SCANCODE_DELETE:       hassel.KeyDelete,
	sdl.SCANCODE_END:          hassel.KeyEnd,

	sdl.SCANCODE_F1:  hassel.KeyF1,
	sdl.SCANCODE_F2:  hassel.KeyF2,
	sdl.SCANCODE_F3:  hassel.KeyF3,
	sdl.SCANCODE_F4:  hassel.KeyF4,
	sdl.SCANCODE_F5:  hassel.KeyF5,
	sdl.SCANCODE_F6:  hassel.KeyF6,
	sdl.SCANCODE_F7:  hassel.KeyF7,
	sdl.SCANCODE_F8:  hassel.KeyF8,
	sdl.SCANCODE_F9:  hassel.KeyF9,
	sdl.SCANCODE_F10: hassel.KeyF10,
	sdl.SCANCODE_F11: hassel.KeyF11,
	sdl.SCANCODE_F12: hassel.KeyF12,
	sdl.SCANCODE_F13: hassel.KeyF13,
	sdl.SCANCODE_F14: hassel.KeyF14,
	sdl.SCANCODE_F15: hassel.KeyF15,

	sdl.SCANCODE_DOWN:  hassel.KeyDown,
	sdl.SCANCODE_LEFT:  hassel.KeyLeft,
	sdl.SCANCODE_RIGHT: hassel.KeyRight,
	sdl.SCANCODE_UP:    hassel.KeyUp,

	sdl.SCANCODE_APOSTROPHE:   hassel.KeyApostrophe,
	sdl.SCANCODE_GRAVE:        hassel.KeyBackquote,
	sdl.SCANCODE_ESCAPE:       hassel.KeyEscape,
	sdl.SCANCODE_HOME:         hassel.KeyHome,
	sdl.SCANCODE_INSERT:       hassel.KeyInsert,
	sdl.SCANCODE_APPLICATION:  hassel.KeyMenu,
	sdl.SCANCODE_PAGEDOWN:     hassel.KeyPageDown,
	sdl.SCANCODE_PAGEUP:       hassel.KeyPageUp,
	sdl.SCANCODE_PAUSE:        hassel.KeyPause,
	sdl.SCANCODE_NUMLOCKCLEAR: hassel.KeyNumLock,
	sdl.SCANCODE_CAPSLOCK:     hassel.KeyCapsLock,
	sdl.SCANCODE_SCROLLLOCK:   hassel.KeyScrollLock,
	sdl.SCANCODE_LSHIFT:       hassel.KeyLeftShift,
	sdl.SCANCODE_RSHIFT:       hassel.KeyRightShift,
	sdl.SCANCODE_LCTRL:        hassel.KeyLeftCtrl,
	sdl.SCANCODE_RCTRL:        hassel.KeyRightCtrl,
	sdl.SCANCODE_LALT:         hassel.KeyLeftAlt,
	sdl.SCANCODE_RALT:         hassel.KeyRightAlt,
	sdl.SCANCODE_LGUI:         hassel.KeyLeftSuper,
	sdl.SCANCODE_RGUI:         hassel.KeyRightSuper,

	sdl.SCANCODE_KP_0:        hassel.KeyNumPad0,
	sdl.SCANCODE_KP_1:        hassel.KeyNumPad1,
	sdl.SCANCODE_KP_2:        hassel.KeyNumPad2,
	sdl.SCANCODE_KP_3:        hassel.KeyNumPad3,
	sdl.SCANCODE_KP_4:        hassel.KeyNumPad4,
	sdl.SCANCODE_KP_5:        hassel.KeyNumPad5,
	sdl.SCANCODE_KP_6:        hassel.KeyNumPad6,
	sdl.SCANCODE_KP_7:        hassel.KeyNumPad7,
	sdl.SCANCODE_KP_8:        hassel.KeyNumPad8,
	sdl.SCANCODE_KP_9:        hassel.KeyNumPad9,
	sdl.SCANCODE_KP_PERIOD:   hassel.KeyNumPadDot,
	sdl.SCANCODE_KP_DIVIDE:   hassel.KeyNumPadSlash,
	sdl.SCANCODE_KP_MULTIPLY: hassel.KeyNumPadAsterisk,
	sdl.SCANCODE_KP_MINUS:    hassel.KeyNumPadMinus,
	sdl.SCANCODE_KP_PLUS:     hassel.KeyNumPadPlus,
	sdl.SCANCODE_KP_ENTER:    hassel.KeyNumPadEnter,
}

// heldKeys appends the emulated keys that are held down in the SDL keyboard
// state to keys. host keys with no emulated equivalent are ignored
func heldKeys(keys []hassel.Key, state []uint8) []hassel.Key {
	for sc, v := range state {
		if v == 0 {
			continue
		}
		if k, ok := scancodes[sc]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
