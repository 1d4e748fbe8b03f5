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

package hassel

import "fmt"

// Key is a logical key of the Hasseldorf keyboard. The display surfaces
// translate their own key codes into Key values.
type Key int

// List of valid Key values. KeyUnknown is used for host keys that have no
// equivalent on the emulated keyboard.
const (
	KeyUnknown Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyTab
	KeyBackslash
	KeyComma
	KeyEqual
	KeyLeftBracket
	KeyMinus
	KeyPeriod
	KeyRightBracket
	KeySemicolon
	KeySlash
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyDown
	KeyLeft
	KeyRight
	KeyUp
	KeyApostrophe
	KeyBackquote
	KeyEscape
	KeyHome
	KeyInsert
	KeyMenu
	KeyPageDown
	KeyPageUp
	KeyPause
	KeyNumLock
	KeyCapsLock
	KeyScrollLock
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyNumPadDot
	KeyNumPadSlash
	KeyNumPadAsterisk
	KeyNumPadMinus
	KeyNumPadPlus
	KeyNumPadEnter
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	// the number of keys. not a valid key
	numKeys
)

var keyNames = [numKeys]string{
	KeyUnknown: "Unknown",
	Key0: "0",
	Key1: "1",
	Key2: "2",
	Key3: "3",
	Key4: "4",
	Key5: "5",
	Key6: "6",
	Key7: "7",
	Key8: "8",
	Key9: "9",
	KeyA: "A",
	KeyB: "B",
	KeyC: "C",
	KeyD: "D",
	KeyE: "E",
	KeyF: "F",
	KeyG: "G",
	KeyH: "H",
	KeyI: "I",
	KeyJ: "J",
	KeyK: "K",
	KeyL: "L",
	KeyM: "M",
	KeyN: "N",
	KeyO: "O",
	KeyP: "P",
	KeyQ: "Q",
	KeyR: "R",
	KeyS: "S",
	KeyT: "T",
	KeyU: "U",
	KeyV: "V",
	KeyW: "W",
	KeyX: "X",
	KeyY: "Y",
	KeyZ: "Z",
	KeySpace: "Space",
	KeyTab: "Tab",
	KeyBackslash: "Backslash",
	KeyComma: "Comma",
	KeyEqual: "Equal",
	KeyLeftBracket: "LeftBracket",
	KeyMinus: "Minus",
	KeyPeriod: "Period",
	KeyRightBracket: "RightBracket",
	KeySemicolon: "Semicolon",
	KeySlash: "Slash",
	KeyEnter: "Enter",
	KeyBackspace: "Backspace",
	KeyDelete: "Delete",
	KeyEnd: "End",
	KeyF1: "F1",
	KeyF2: "F2",
	KeyF3: "F3",
	KeyF4: "F4",
	KeyF5: "F5",
	KeyF6: "F6",
	KeyF7: "F7",
	KeyF8: "F8",
	KeyF9: "F9",
	KeyF10: "F10",
	KeyF11: "F11",
	KeyF12: "F12",
	KeyF13: "F13",
	KeyF14: "F14",
	KeyF15: "F15",
	KeyDown: "Down",
	KeyLeft: "Left",
	KeyRight: "Right",
	KeyUp: "Up",
	KeyApostrophe: "Apostrophe",
	KeyBackquote: "Backquote",
	KeyEscape: "Escape",
	KeyHome: "Home",
	KeyInsert: "Insert",
	KeyMenu: "Menu",
	KeyPageDown: "PageDown",
	KeyPageUp: "PageUp",
	KeyPause: "Pause",
	KeyNumLock: "NumLock",
	KeyCapsLock: "CapsLock",
	KeyScrollLock: "ScrollLock",
	KeyLeftShift: "LeftShift",
	KeyRightShift: "RightShift",
	KeyLeftCtrl: "LeftCtrl",
	KeyRightCtrl: "RightCtrl",
	KeyNumPad0: "NumPad0",
	KeyNumPad1: "NumPad1",
	KeyNumPad2: "NumPad2",
	KeyNumPad3: "NumPad3",
	KeyNumPad4: "NumPad4",
	KeyNumPad5: "NumPad5",
	KeyNumPad6: "NumPad6",
	KeyNumPad7: "NumPad7",
	KeyNumPad8: "NumPad8",
	KeyNumPad9: "NumPad9",
	KeyNumPadDot: "NumPadDot",
	KeyNumPadSlash: "NumPadSlash",
	KeyNumPadAsterisk: "NumPadAsterisk",
	KeyNumPadMinus: "NumPadMinus",
	KeyNumPadPlus: "NumPadPlus",
	KeyNumPadEnter: "NumPadEnter",
	KeyLeftAlt: "LeftAlt",
	KeyRightAlt: "RightAlt",
	KeyLeftSuper: "LeftSuper",
	KeyRightSuper: "RightSuper",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Valid returns true if the Key is one of the listed values, other than
// KeyUnknown.
func (k Key) Valid() bool {
	return k > KeyUnknown && k < numKeys
}

// KeyByName returns the Key with the name returned by the String() function.
// Returns KeyUnknown if there is no such key.
func KeyByName(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return Key(k)
		}
	}
	return KeyUnknown
}
