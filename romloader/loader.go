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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hasseldorf/hasselemu/curated"
	"github.com/hasseldorf/hasselemu/hassel"
	"github.com/hasseldorf/hasselemu/logger"
)

// Sentinal error patterns returned by Load().
const (
	CannotLoad   = "romloader: %v"
	WrongSize    = "romloader: ROM has unexpected size (%d); should be %d bytes"
	HashMismatch = "romloader: unexpected hash value (%s)"
)

// the most data that will be read from a remote ROM. anything more than a
// byte over the required size is going to fail the size check anyway
const maxRemoteSize = hassel.RequiredROMSize + 1

// Loader specifies the ROM to load.
type Loader struct {
	// filename or URL of the ROM
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return this
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the filename of the ROM without any path or extension.
func (rl Loader) ShortName() string {
	name := rl.Filename
	if u, err := url.Parse(name); err == nil && isRemote(u) {
		name = u.Path
	}
	name = filepath.Base(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

func isRemote(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}

// Load the ROM data. Filenames that are http or https URLs are fetched over
// the network. Everything else is treated as a local file.
func (rl *Loader) Load() ([]byte, error) {
	if rl.HasLoaded() {
		return rl.Data, nil
	}

	logger.Logf(logger.Allow, "romloader", "Loading rom named \"%s\"", rl.Filename)

	var data []byte
	var err error

	// a windows path with a drive letter parses as a URL with a single
	// letter scheme so only the http schemes are taken to be remote
	if u, perr := url.Parse(rl.Filename); perr == nil && isRemote(u) {
		data, err = fetch(rl.Filename)
	} else {
		data, err = os.ReadFile(rl.Filename)
	}
	if err != nil {
		return nil, curated.Errorf(CannotLoad, err)
	}

	if len(data) != hassel.RequiredROMSize {
		return nil, curated.Errorf(WrongSize, len(data), hassel.RequiredROMSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if rl.Hash != "" && rl.Hash != hash {
		return nil, curated.Errorf(HashMismatch, hash)
	}

	rl.Hash = hash
	rl.Data = data

	logger.Logf(logger.Allow, "romloader", "sha1 %s", rl.Hash)

	return rl.Data, nil
}

func fetch(address string) ([]byte, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
}
