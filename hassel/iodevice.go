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

// Event is a single key transition.
type Event struct {
	Key  Key
	Down bool
}

// QueueLength is the maximum number of events held by the IODevice. Once
// full, the oldest events are discarded.
const QueueLength = 64

// IODevice is the keyboard input device of the Hasseldorf computer. It
// records which keys are held and queues each transition for the engine to
// consume. It implements the emulation.InputSink interface.
type IODevice struct {
	held  [numKeys]bool
	queue []Event
}

// NewIODevice is the preferred method of initialisation for the IODevice
// type.
func NewIODevice() *IODevice {
	return &IODevice{
		queue: make([]Event, 0, QueueLength),
	}
}

func (dev *IODevice) push(ev Event) {
	if len(dev.queue) >= QueueLength {
		copy(dev.queue, dev.queue[1:])
		dev.queue = dev.queue[:len(dev.queue)-1]
	}
	dev.queue = append(dev.queue, ev)
}

// KeyDown implements the emulation.InputSink interface.
func (dev *IODevice) KeyDown(key Key) {
	if key < 0 || key >= numKeys {
		return
	}
	dev.held[key] = true
	dev.push(Event{Key: key, Down: true})
}

// KeyUp implements the emulation.InputSink interface.
func (dev *IODevice) KeyUp(key Key) {
	if key < 0 || key >= numKeys {
		return
	}
	dev.held[key] = false
	dev.push(Event{Key: key, Down: false})
}

// Held returns true if the key is currently held down.
func (dev *IODevice) Held(key Key) bool {
	if key < 0 || key >= numKeys {
		return false
	}
	return dev.held[key]
}

// Next removes and returns the oldest event in the queue. The boolean is false
// if the queue is empty.
func (dev *IODevice) Next() (Event, bool) {
	if len(dev.queue) == 0 {
		return Event{}, false
	}
	ev := dev.queue[0]
	copy(dev.queue, dev.queue[1:])
	dev.queue = dev.queue[:len(dev.queue)-1]
	return ev, true
}

// Pending returns the number of events in the queue.
func (dev *IODevice) Pending() int {
	return len(dev.queue)
}

// Reset releases all keys and empties the queue.
func (dev *IODevice) Reset() {
	dev.held = [numKeys]bool{}
	dev.queue = dev.queue[:0]
}
