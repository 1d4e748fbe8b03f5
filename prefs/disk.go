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
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/logger"
)

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "# *** do not edit this file by hand while the emulator is running ***"

// Sentinal error patterns returned by the Disk type.
const (
	DuplicateKey = "prefs: key already registered (%s)"
	LoadError    = "prefs: load: %v"
	SaveError    = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit sync.Mutex

	path    string
	entries map[string]pref

	// values read from the file for keys that have not been registered with
	// Add(). they are written back by Save()
	unknown map[string]any
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]any),
	}, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store on disk.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	return nil
}

// Reset all registered preferences to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}

	return nil
}

// read the prefs file. a missing file is returned as an empty mapping
func (dsk *Disk) read() (map[string]any, error) {
	values := make(map[string]any)

	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, err
	}

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, err
	}

	// an empty file unmarshals to a nil map
	if values == nil {
		values = make(map[string]any)
	}

	return values, nil
}

// Load preference values from disk. Values on the command line stack are
// applied after the values in the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	clear(dsk.unknown)
	for k, v := range values {
		p, ok := dsk.entries[k]
		if !ok {
			dsk.unknown[k] = v
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(LoadError, err)
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set from command line", k)
		}
	}

	return nil
}

// Save current preference values to disk. Entries in the file that have not
// been registered with this Disk are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	// the file may have changed since Load() was called so it is read again
	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	for k, v := range dsk.unknown {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}

	for k, p := range dsk.entries {
		values[k] = diskValue(p)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// the mapping is built as a node so that the key order is the same on
	// every save
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		var v yaml.Node
		if err := v.Encode(values[k]); err != nil {
			return curated.Errorf(SaveError, err)
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, &v)
	}

	var buf bytes.Buffer
	buf.WriteString(WarningBoilerPlate)
	buf.WriteString("\n")

	if len(doc.Content) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return curated.Errorf(SaveError, err)
		}
		if err := enc.Close(); err != nil {
			return curated.Errorf(SaveError, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(SaveError, err)
	}
	if err := os.WriteFile(dsk.path, buf.Bytes(), 0o600); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}

// the value as it should be written to the file. durations are written in
// their string form so that they remain readable
func diskValue(p pref) any {
	switch v := p.Get().(type) {
	case time.Duration:
		return v.String()
	default:
		return v
	}
}
