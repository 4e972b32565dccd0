package pcd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/macropower/pcdgen/pkg/pcderrors"
)

// RootKey is the top-level key of a constants database document.
const RootKey = "physical_constants_dictionary"

// Entry is a single named constant.
type Entry struct {
	// Name is the identifier the constant is declared as.
	Name string
	// Value is the numeric literal exactly as written in the database.
	Value string
}

// Group is a named, ordered collection of constants.
type Group struct {
	Name    string
	Entries []Entry
}

// Database is an ordered collection of uniquely named groups.
type Database struct {
	Groups []Group
}

// GroupNames returns the names of all groups in database order.
func (d *Database) GroupNames() []string {
	names := make([]string, 0, len(d.Groups))
	for _, g := range d.Groups {
		names = append(names, g.Name)
	}

	return names
}

// Group returns the group with the given name.
func (d *Database) Group(name string) (*Group, bool) {
	for i := range d.Groups {
		if d.Groups[i].Name == name {
			return &d.Groups[i], true
		}
	}

	return nil, false
}

// Select returns the groups named in names, in database order. A nil or empty
// names selects every group. If any name is not a group in the database, an
// error wrapping [pcderrors.ErrUnknownGroup] naming all of them is returned.
func (d *Database) Select(names []string) ([]Group, error) {
	if len(names) == 0 {
		return d.Groups, nil
	}

	valid := d.GroupNames()

	var unknown []string
	for _, name := range names {
		if !slices.Contains(valid, name) && !slices.Contains(unknown, name) {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s (valid groups: %s)",
			pcderrors.ErrUnknownGroup, strings.Join(unknown, ", "), strings.Join(valid, ", "))
	}

	selected := make([]Group, 0, len(names))
	for _, g := range d.Groups {
		if slices.Contains(names, g.Name) {
			selected = append(selected, g)
		}
	}

	return selected, nil
}
