// Package section defines the four navigable sections of the site.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// Section is the active navigation target.
type Section int

// The zero value is Intro.
const (
	Intro Section = iota
	About
	Projects
	Contact

	// Count is the number of sections. Tables indexed by Section are
	// declared as [Count]T so adding a section breaks the build until every
	// table is filled in.
	Count
)

// ErrUnknown is returned by Parse for names that are not sections.
var ErrUnknown = errors.New("unknown section")

var names = [Count]string{
	Intro:    "intro",
	About:    "about",
	Projects: "projects",
	Contact:  "contact",
}

// All returns the sections in navigation order.
func All() []Section {
	return []Section{Intro, About, Projects, Contact}
}

// Valid reports whether s is one of the four sections.
func (s Section) Valid() bool {
	return s >= Intro && s < Count
}

// String returns the lowercase section name used in the nav bar and config.
func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return names[s]
}

// Next returns the following section, wrapping around.
func (s Section) Next() Section {
	return (s + 1) % Count
}

// Prev returns the preceding section, wrapping around.
func (s Section) Prev() Section {
	return (s + Count - 1) % Count
}

// Parse converts a name (case-insensitive) to a Section.
func Parse(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Section(i), nil
		}
	}
	return Intro, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// MarshalText implements encoding.TextMarshaler so sections round-trip
// through YAML config by name.
func (s Section) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Section) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
