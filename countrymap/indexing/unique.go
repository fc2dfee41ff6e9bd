package indexing

import (
	"fmt"

	"github.com/armon/go-radix"
)

// UniqueIndex maps each unique-key field to a radix tree of value -> RecordID.
// Inserting an existing key overwrites it; the caller decides what that means.
type UniqueIndex struct {
	trees map[Field]*radix.Tree
}

// NewUniqueIndex creates an empty tree for every field.
func NewUniqueIndex() *UniqueIndex {
	trees := make(map[Field]*radix.Tree, len(Fields))
	for _, f := range Fields {
		trees[f] = radix.New()
	}
	return &UniqueIndex{trees: trees}
}

// Insert stores id under value and returns the id it replaced, if any.
func (u *UniqueIndex) Insert(field Field, value string, id RecordID) (RecordID, bool, error) {
	tree, ok := u.trees[field]
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidQueryKey, field)
	}
	old, updated := tree.Insert(value, id)
	if !updated {
		return 0, false, nil
	}
	return old.(RecordID), true, nil
}

// Get returns the RecordID stored under value for the given field.
func (u *UniqueIndex) Get(field Field, value string) (RecordID, bool, error) {
	tree, ok := u.trees[field]
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidQueryKey, field)
	}
	v, found := tree.Get(value)
	if !found {
		return 0, false, nil
	}
	return v.(RecordID), true, nil
}

// Len returns the number of distinct keys stored for field.
func (u *UniqueIndex) Len(field Field) int {
	tree, ok := u.trees[field]
	if !ok {
		return 0
	}
	return tree.Len()
}
