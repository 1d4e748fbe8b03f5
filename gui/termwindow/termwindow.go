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

//go:build linux || darwin || freebsd || netbsd || openbsd

package termwindow

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/limiter"
	"github.com/hasseldorf/hasselemu/logger"
)

// SurfaceError is returned when the terminal can not be prepared or when a
// frame can not be presented.
const SurfaceError = "termwindow: %v"

// PollInterval is the minimum time between two reads of the terminal. A key
// read from the terminal is held for this long.
const PollInterval = 10 * time.Millisecond

// the largest frame drawn, in characters
const (
	maxCols = hassel.ScreenWidth / 2
	maxRows = hassel.ScreenHeight / 4
)

// Terminal is a text terminal that implements the emulation.Surface
// interface.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	open bool

	clk      limiter.Clock
	lastPoll time.Time
	readBuf  []byte
	keys     []hassel.Key

	frame bytes.Buffer
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The input file is put into raw mode until Destroy() is called.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	term := &Terminal{
		input:   input,
		output:  output,
		open:    true,
		clk:     limiter.Monotonic,
		readBuf: make([]byte, 256),
		keys:    make([]hassel.Key, 0, 16),
	}

	err := termios.Tcgetattr(term.input.Fd(), &term.canAttr)
	if err != nil {
		return nil, curated.Errorf(SurfaceError, err)
	}

	term.rawAttr = term.canAttr
	termios.Cfmakeraw(&term.rawAttr)

	// reads return immediately, whether there is input or not
	term.rawAttr.Cc[unix.VMIN] = 0
	term.rawAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(term.input.Fd(), termios.TCSANOW, &term.rawAttr)
	if err != nil {
		return nil, curated.Errorf(SurfaceError, err)
	}

	// clear screen and hide cursor
	term.output.WriteString("\x1b[2J\x1b[?25l")

	logger.Log(logger.Allow, "termwindow", "terminal in raw mode")

	return term, nil
}

// Destroy returns the terminal to the mode it was in before NewTerminal()
// was called.
func (term *Terminal) Destroy() {
	term.open = false
	term.output.WriteString("\x1b[0m\x1b[?25h\r\n")
	_ = termios.Tcflush(term.input.Fd(), termios.TCIFLUSH)
	_ = termios.Tcsetattr(term.input.Fd(), termios.TCSANOW, &term.canAttr)
}

// IsOpen implements the emulation.Surface interface.
func (term *Terminal) IsOpen() bool {
	return term.open
}

// Present implements the emulation.Surface interface.
func (term *Terminal) Present(fb emulation.FrameBuffer) error {
	if !term.open {
		return curated.Errorf(SurfaceError, "terminal has been closed")
	}

	ws, err := unix.IoctlGetWinsize(int(term.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf(SurfaceError, err)
	}

	cols := min(int(ws.Col), maxCols)
	rows := min(int(ws.Row)-1, maxRows)

	render(&term.frame, fb, cols, rows)

	_, err = term.output.Write(term.frame.Bytes())
	if err != nil {
		return curated.Errorf(SurfaceError, err)
	}

	return nil
}

// PollHeldKeys implements the emulation.Surface interface. The keys are
// those read from the terminal since the previous poll.
//
// The returned slice is reused by the next call to PollHeldKeys().
func (term *Terminal) PollHeldKeys() ([]hassel.Key, bool) {
	now := term.clk.Now()
	if now.Sub(term.lastPoll) < PollInterval {
		return nil, false
	}
	term.lastPoll = now

	term.keys = term.keys[:0]

	for {
		n, err := unix.Read(int(term.input.Fd()), term.readBuf)
		if n <= 0 || err != nil {
			break
		}

		var quit bool
		term.keys, quit = parseInput(term.keys, term.readBuf[:n])
		if quit {
			logger.Log(logger.Allow, "termwindow", "quit requested")
			term.open = false
		}
	}

	return term.keys, true
}
