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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hasseldorf/hasselemu/curated"
)

// Value represents the actual Go preference value.
type Value any

// ConversionError is returned by the Set() function of every preference type
// if the value can not be converted.
const ConversionError = "prefs: cannot convert %v to %s"

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hook is the callback run after a preference has been set.
type hook func(value Value) error

func runHook(h hook, v Value) error {
	if h == nil {
		return nil
	}
	return h(v)
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Value // bool
	post  hook
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return curated.Errorf(ConversionError, fmt.Sprintf("%T", v), "prefs.Bool")
	}
	p.value.Store(nv)
	return runHook(p.post, nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(bool)
	}
	return false
}

// Value returns the preference as a bool.
func (p *Bool) Value() bool {
	return p.Get().(bool)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback runs even if the value has not changed.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.post = f
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.Value // string
	post  hook
}

func (p *String) String() string {
	if ov := p.value.Load(); ov != nil {
		return ov.(string)
	}
	return ""
}

// Set new value to String type. Values of other types are converted with the
// %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	p.value.Store(nv)
	return runHook(p.post, nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *String) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value atomic.Value // int
	post  hook
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case uint64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(ConversionError, v, "prefs.Int")
		}
	default:
		return curated.Errorf(ConversionError, fmt.Sprintf("%T", v), "prefs.Int")
	}
	p.value.Store(nv)
	return runHook(p.post, nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(int)
	}
	return 0
}

// Value returns the preference as an int.
func (p *Int) Value() int {
	return p.Get().(int)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Float implements a floating-point type in the prefs system.
type Float struct {
	value atomic.Value // float64
	post  hook
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get())
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(ConversionError, v, "prefs.Float")
		}
	default:
		return curated.Errorf(ConversionError, fmt.Sprintf("%T", v), "prefs.Float")
	}
	p.value.Store(nv)
	return runHook(p.post, nv)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(float64)
	}
	return float64(0.0)
}

// Value returns the preference as a float64.
func (p *Float) Value() float64 {
	return p.Get().(float64)
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Float) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Duration implements a time.Duration type in the prefs system.
type Duration struct {
	value atomic.Value // time.Duration
	post  hook
}

func (p *Duration) String() string {
	return p.Get().(time.Duration).String()
}

// Set new value to Duration type. New value can be a time.Duration, a string
// that can be parsed by time.ParseDuration(), or an int which is taken to be a
// number of nanoseconds.
func (p *Duration) Set(v Value) error {
	var nv time.Duration
	switch v := v.(type) {
	case time.Duration:
		nv = v
	case int:
		nv = time.Duration(v)
	case int64:
		nv = time.Duration(v)
	case string:
		var err error
		nv, err = time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(ConversionError, v, "prefs.Duration")
		}
	default:
		return curated.Errorf(ConversionError, fmt.Sprintf("%T", v), "prefs.Duration")
	}
	p.value.Store(nv)
	return runHook(p.post, nv)
}

// Get returns the raw pref value.
func (p *Duration) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(time.Duration)
	}
	return time.Duration(0)
}

// Value returns the preference as a time.Duration.
func (p *Duration) Value() time.Duration {
	return p.Get().(time.Duration)
}

// Reset sets the duration to zero.
func (p *Duration) Reset() error {
	return p.Set(time.Duration(0))
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Duration) SetHookPost(f func(value Value) error) {
	p.post = f
}
