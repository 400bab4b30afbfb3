// Package lockfile reads the YAML lock file the promoter CLI uses to learn
// which version each package is pinned to.
//
//	packages:
//	  rack:
//	    version: 2.3.1
//	    unlock: false
//	    prerelease: false
//	level: minor
//	strict: true
package lockfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/promoter"
)

// ErrBadVersion is returned when a locked version cannot be parsed.
var ErrBadVersion = errors.New("bad locked version")

// Entry is one locked package.
type Entry struct {
	Version    string `yaml:"version"`
	Unlock     bool   `yaml:"unlock,omitempty"`
	Prerelease bool   `yaml:"prerelease,omitempty"`
}

// File is a parsed lock file. Level and Strict are optional policy defaults.
type File struct {
	Level    *promoter.Level  `yaml:"level,omitempty"`
	Strict   *bool            `yaml:"strict,omitempty"`
	Packages map[string]Entry `yaml:"packages"`
}

// ParseFunc turns a version string into a promoter.Version.
type ParseFunc func(string) (promoter.Version, bool)

// Load reads and parses the lock file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lock file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes lock file contents.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lock file: %w", err)
	}

	if f.Packages == nil {
		f.Packages = map[string]Entry{}
	}

	return &f, nil
}

// Dependency builds the promoter view of name. A package missing from the
// file, or listed without a version, has no lock.
func (f *File) Dependency(name string, parse ParseFunc) (promoter.Dependency, error) {
	dep := promoter.Dependency{Name: name}

	e, ok := f.Packages[name]
	if !ok {
		return dep, nil
	}

	dep.Unlocked = e.Unlock
	dep.Prerelease = e.Prerelease
	if e.Version == "" {
		return dep, nil
	}

	v, ok := parse(e.Version)
	if !ok {
		return promoter.Dependency{}, fmt.Errorf("%w: package %q version %q", ErrBadVersion, name, e.Version)
	}
	dep.Locked = v

	return dep, nil
}

// Apply overlays the file's policy defaults onto p.
func (f *File) Apply(p *promoter.Policy) error {
	if f.Level != nil {
		if err := p.SetLevelValue(*f.Level); err != nil {
			return err
		}
	}

	if f.Strict != nil {
		p.SetStrict(*f.Strict)
	}

	return nil
}
