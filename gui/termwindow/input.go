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

package termwindow

import (
	"github.com/hasseldorf/hasselemu/hassel"
)

const (
	ctrlC = 0x03
	ctrlQ = 0x11
	esc   = 0x1b
)

// keys for printable characters that are produced without a modifier
var plain = map[byte]hassel.Key{
	' ':  hassel.KeySpace,
	'\t': hassel.KeyTab,
	'\\': hassel.KeyBackslash,
	',':  hassel.KeyComma,
	'=':  hassel.KeyEqual,
	'[':  hassel.KeyLeftBracket,
	'-':  hassel.KeyMinus,
	'.':  hassel.KeyPeriod,
	']':  hassel.KeyRightBracket,
	';':  hassel.KeySemicolon,
	'/':  hassel.KeySlash,
	'\'': hassel.KeyApostrophe,
	'`':  hassel.KeyBackquote,
	'\r': hassel.KeyEnter,
	'\n': hassel.KeyEnter,
	0x7f: hassel.KeyBackspace,
	0x08: hassel.KeyBackspace,
}

// keys for printable characters that need the shift key. the layout is that
// of a US keyboard
var shifted = map[byte]hassel.Key{
	'!': hassel.Key1,
	'@': hassel.Key2,
	'#': hassel.Key3,
	'$': hassel.Key4,
	'%': hassel.Key5,
	'^': hassel.Key6,
	'&': hassel.Key7,
	'*': hassel.Key8,
	'(': hassel.Key9,
	')': hassel.Key0,
	'|': hassel.KeyBackslash,
	'<': hassel.KeyComma,
	'+': hassel.KeyEqual,
	'{': hassel.KeyLeftBracket,
	'_': hassel.KeyMinus,
	'>': hassel.KeyPeriod,
	'}': hassel.KeyRightBracket,
	':': hassel.KeySemicolon,
	'?': hassel.KeySlash,
	'"': hassel.KeyApostrophe,
	'~': hassel.KeyBackquote,
}

// escape sequences that begin with ESC [
var csiFinal = map[byte]hassel.Key{
	'A': hassel.KeyUp,
	'B': hassel.KeyDown,
	'C': hassel.KeyRight,
	'D': hassel.KeyLeft,
	'H': hassel.KeyHome,
	'F': hassel.KeyEnd,
}

// escape sequences of the form ESC [ n ~
var csiTilde = map[int]hassel.Key{
	1:  hassel.KeyHome,
	2:  hassel.KeyInsert,
	3:  hassel.KeyDelete,
	4:  hassel.KeyEnd,
	5:  hassel.KeyPageUp,
	6:  hassel.KeyPageDown,
	15: hassel.KeyF5,
	17: hassel.KeyF6,
	18: hassel.KeyF7,
	19: hassel.KeyF8,
	20: hassel.KeyF9,
	21: hassel.KeyF10,
	23: hassel.KeyF11,
	24: hassel.KeyF12,
	25: hassel.KeyF13,
	26: hassel.KeyF14,
	28: hassel.KeyF15,
}

// escape sequences that begin with ESC O
var ss3Final = map[byte]hassel.Key{
	'P': hassel.KeyF1,
	'Q': hassel.KeyF2,
	'R': hassel.KeyF3,
	'S': hassel.KeyF4,
	'A': hassel.KeyUp,
	'B': hassel.KeyDown,
	'C': hassel.KeyRight,
	'D': hassel.KeyLeft,
	'H': hassel.KeyHome,
	'F': hassel.KeyEnd,
}

// parseInput appends the keys represented by the bytes read from the terminal
// to keys. The quit result is true if the input contains Ctrl-C or Ctrl-Q.
// Bytes that can not be translated are ignored.
func parseInput(keys []hassel.Key, input []byte) ([]hassel.Key, bool) {
	var quit bool

	for i := 0; i < len(input); i++ {
		b := input[i]

		switch {
		case b == ctrlC || b == ctrlQ:
			quit = true

		case b == esc:
			var n int
			keys, n = parseEscape(keys, input[i+1:])
			i += n

		case b >= '0' && b <= '9':
			keys = append(keys, hassel.Key0+hassel.Key(b-'0'))

		case b >= 'a' && b <= 'z':
			keys = append(keys, hassel.KeyA+hassel.Key(b-'a'))

		case b >= 'A' && b <= 'Z':
			keys = append(keys, hassel.KeyLeftShift, hassel.KeyA+hassel.Key(b-'A'))

		default:
			if k, ok := plain[b]; ok {
				keys = append(keys, k)
			} else if k, ok := shifted[b]; ok {
				keys = append(keys, hassel.KeyLeftShift, k)
			} else if b >= 0x01 && b <= 0x1a {
				// remaining control characters are Ctrl plus a letter
				keys = append(keys, hassel.KeyLeftCtrl, hassel.KeyA+hassel.Key(b-0x01))
			}
		}
	}

	return keys, quit
}

// parseEscape translates the bytes following an ESC character. It returns the
// number of bytes consumed. An ESC that does not begin a recognised sequence
// is the escape key.
func parseEscape(keys []hassel.Key, seq []byte) ([]hassel.Key, int) {
	if len(seq) < 2 {
		return append(keys, hassel.KeyEscape), 0
	}

	switch seq[0] {
	case '[':
		if k, ok := csiFinal[seq[1]]; ok {
			return append(keys, k), 2
		}

		// numeric parameter followed by a tilde
		n := 0
		for i := 1; i < len(seq); i++ {
			c := seq[i]
			switch {
			case c >= '0' && c <= '9':
				n = n*10 + int(c-'0')
			case c == '~':
				if k, ok := csiTilde[n]; ok {
					return append(keys, k), i + 1
				}
				return keys, i + 1
			default:
				// unrecognised sequence. discard it
				return keys, i + 1
			}
		}
		return keys, len(seq)

	case 'O':
		if k, ok := ss3Final[seq[1]]; ok {
			return append(keys, k), 2
		}
		return keys, 2
	}

	return append(keys, hassel.KeyEscape), 0
}
