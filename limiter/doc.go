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

// Package limiter keeps the emulation loop in step with wall-clock time.
//
// There are two independent limiters. The Throttle decides whether enough
// time has passed since the last presented frame for another frame to be
// presented. It places an upper bound on the presentation rate but no lower
// bound. Frames are never queued.
//
// The Pacer blocks after every engine step until the wall-clock time for the
// number of cycles executed has elapsed, at a fixed emulated clock rate. The
// default strategy is a tight poll of the clock because the per-cycle budget
// (about 167ns at 6MHz) is much finer than the resolution of a sleep-timer.
// The Hybrid strategy sleeps while plenty of budget remains and spins for the
// remainder.
//
// Both types take a Clock so that they can be tested without waiting on real
// time. The Monotonic clock should be used in all other cases.
package limiter
