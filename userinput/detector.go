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

package userinput

import (
	"github.com/hasseldorf/hasselemu/emulation"
	"github.com/hasseldorf/hasselemu/hassel"
)

// Edges is the result of comparing two key snapshots. The two lists are
// always disjoint and no key appears twice in either list.
type Edges struct {
	Down []hassel.Key
	Up   []hassel.Key
}

// Empty returns true if there are no edges.
func (e Edges) Empty() bool {
	return len(e.Down) == 0 && len(e.Up) == 0
}

// Detector finds the key edges between successive snapshots of held keys.
type Detector struct {
	// the previous snapshot, without duplicates. order is the order of the
	// poll that produced it
	previous    []hassel.Key
	previousSet map[hassel.Key]bool

	// scratch space reused by every call to Diff()
	currentSet map[hassel.Key]bool
	edges      Edges
}

// NewDetector is the preferred method of initialisation for the Detector
// type.
func NewDetector() *Detector {
	return &Detector{
		previousSet: make(map[hassel.Key]bool),
		currentSet:  make(map[hassel.Key]bool),
	}
}

// Reset forgets the previous snapshot. The next update will report every held
// key as being newly down.
func (d *Detector) Reset() {
	d.previous = d.previous[:0]
	clear(d.previousSet)
}

// Held returns a copy of the most recent snapshot.
func (d *Detector) Held() []hassel.Key {
	return append([]hassel.Key(nil), d.previous...)
}

// Diff compares the current snapshot with the previous snapshot. Keys in
// current but not in previous are newly down. Keys in previous but not in
// current are newly up. The Detector is not changed.
//
// The returned Edges are only valid until the next call to Diff() or
// Update().
func (d *Detector) Diff(current []hassel.Key) Edges {
	d.edges.Down = d.edges.Down[:0]
	d.edges.Up = d.edges.Up[:0]

	clear(d.currentSet)
	for _, k := range current {
		if d.currentSet[k] {
			continue
		}
		d.currentSet[k] = true
		if !d.previousSet[k] {
			d.edges.Down = append(d.edges.Down, k)
		}
	}

	for _, k := range d.previous {
		if !d.currentSet[k] {
			d.edges.Up = append(d.edges.Up, k)
		}
	}

	return d.edges
}

// Update compares the current snapshot with the previous snapshot and sends
// the differences to the sink. Down events are sent before up events. Once
// the events have been sent the current snapshot becomes the previous
// snapshot.
//
// A nil sink is allowed, in which case the edges are found and the snapshot
// is replaced but no events are sent.
func (d *Detector) Update(current []hassel.Key, sink emulation.InputSink) Edges {
	edges := d.Diff(current)

	if sink != nil {
		for _, k := range edges.Down {
			sink.KeyDown(k)
		}
		for _, k := range edges.Up {
			sink.KeyUp(k)
		}
	}

	// currentSet has been filled by Diff(). swap it with previousSet rather
	// than copying
	d.previousSet, d.currentSet = d.currentSet, d.previousSet
	d.previous = d.previous[:0]
	for _, k := range current {
		if d.previousSet[k] && !contains(d.previous, k) {
			d.previous = append(d.previous, k)
		}
	}

	return edges
}

func contains(keys []hassel.Key, k hassel.Key) bool {
	for _, j := range keys {
		if j == k {
			return true
		}
	}
	return false
}
