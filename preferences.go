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

package main

import (
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/limiter"
	"github.com/hasseldorf/hasselemu/prefs"
)

// name of the preferences file in the resource directory
const prefsFile = "preferences.yaml"

// default window scaling
const defaultScale = 2.0

// preferences that survive between runs of the program
type preferences struct {
	dsk *prefs.Disk

	clockHz       prefs.Int
	frameInterval prefs.Duration
	pacing        prefs.String
	scale         prefs.Float
	benchDuration prefs.Duration
}

// newPreferences sets the default values, registers them with a prefs.Disk
// using the named file and loads any values that have been saved.
func newPreferences(path string) (*preferences, error) {
	p := &preferences{}

	if err := p.setDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("driver.clockhz", &p.clockHz); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("throttle.interval", &p.frameInterval); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("pacer.strategy", &p.pacing); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdl.scale", &p.scale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("bench.duration", &p.benchDuration); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() error {
	if err := p.clockHz.Set(hassel.ClockHz); err != nil {
		return err
	}
	if err := p.frameInterval.Set(hassel.FrameInterval); err != nil {
		return err
	}
	if err := p.pacing.Set(limiter.Spin.String()); err != nil {
		return err
	}
	if err := p.scale.Set(defaultScale); err != nil {
		return err
	}
	return p.benchDuration.Set(hassel.BenchDuration)
}

// save the preferences to disk.
func (p *preferences) save() error {
	return p.dsk.Save()
}
