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

package emulation

import (
	"fmt"
	"strings"

	"github.com/hasseldorf/hasselemu/curated"
)

// UnknownMode is returned by ParseMode() for unrecognised strings.
const UnknownMode = "emulation: unrecognised mode (%s)"

// Mode is the run loop selected at startup.
type Mode int

// List of valid Mode values.
const (
	ModeInteractive Mode = iota
	ModeBenchmark
)

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "RUN"
	case ModeBenchmark:
		return "BENCH"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// ParseMode converts the string (case insensitive) into a Mode value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RUN", "PLAY", "":
		return ModeInteractive, nil
	case "BENCH", "BENCHMARK", "PERFORMANCE":
		return ModeBenchmark, nil
	}
	return ModeInteractive, curated.Errorf(UnknownMode, s)
}
