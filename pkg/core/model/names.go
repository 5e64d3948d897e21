package model

import (
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// NameIndex is a bijective mapping between names and zero-based indices
type NameIndex struct {
	names []string
	index map[string]int
}

// IndexNames builds the name → index direction for a list of names.
// Duplicate names keep their last index, which NewNameIndex then rejects.
func IndexNames(names []string) map[string]int {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return index
}

// NewNameIndex checks that names and index describe the same bijection.
// kind names the catalogue in error messages (e.g. "skill", "shift").
func NewNameIndex(kind string, names []string, index map[string]int) (NameIndex, error) {
	if len(names) != len(index) {
		return NameIndex{}, errs.InvalidConfiguration(kind, "%d names but %d index entries", len(names), len(index))
	}

	for i, name := range names {
		if name == "" {
			return NameIndex{}, errs.InvalidConfiguration(kind, "empty name at index %d", i)
		}
		got, ok := index[name]
		if !ok {
			return NameIndex{}, errs.InvalidConfiguration(kind, "name %q at index %d missing from index map", name, i)
		}
		if got != i {
			return NameIndex{}, errs.InvalidConfiguration(kind, "name %q maps to %d but is stored at %d", name, got, i)
		}
	}

	namesCopy := make([]string, len(names))
	copy(namesCopy, names)
	indexCopy := make(map[string]int, len(index))
	for name, i := range index {
		indexCopy[name] = i
	}

	return NameIndex{names: namesCopy, index: indexCopy}, nil
}

func (n NameIndex) Len() int {
	return len(n.names)
}

// Name returns the name at index i
func (n NameIndex) Name(i int) string {
	return n.names[i]
}

// Index returns the index of name and whether it exists
func (n NameIndex) Index(name string) (int, bool) {
	i, ok := n.index[name]
	return i, ok
}

// Names returns a copy of the names in index order
func (n NameIndex) Names() []string {
	names := make([]string, len(n.names))
	copy(names, n.names)
	return names
}

func (n NameIndex) contains(i int) bool {
	return i >= 0 && i < len(n.names)
}
