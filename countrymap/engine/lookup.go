package engine

import (
	"fmt"

	"github.com/ZanzyTHEbar/countrymap/countrymap/indexing"
	"github.com/ZanzyTHEbar/countrymap/countrymap/records"

	roaring "github.com/RoaringBitmap/roaring"
)

// Filter constrains one dimension to any of Values.
type Filter struct {
	Dimension Dimension
	Values    []string
}

// Lookup returns the records matching every filter, where a record matches a
// filter if it has at least one of the filter's values.
//
// Results follow the order in which records are first met while walking the
// first filter's values and their buckets; later filters only remove records.
// No filters means no constraint was intersected, and the result is empty.
func (e *Engine) Lookup(filters ...Filter) ([]*records.Country, error) {
	var (
		acc   *roaring.Bitmap
		order []indexing.RecordID
	)

	for _, f := range filters {
		if !f.Dimension.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQueryKey, f.Dimension)
		}

		matched := e.index.Categories.Union(f.Dimension, f.Values...)
		if acc == nil {
			acc = matched
			order = e.firstSeen(f)
			continue
		}
		acc.And(matched)
	}

	result := make([]*records.Country, 0)
	if acc == nil || acc.IsEmpty() {
		return result, nil
	}
	for _, id := range order {
		if acc.Contains(id) {
			result = append(result, e.all[id])
		}
	}
	return result, nil
}

// LookupJSON decodes filters from a JSON object and runs Lookup.
func (e *Engine) LookupJSON(data []byte) ([]*records.Country, error) {
	filters, err := DecodeFilters(data)
	if err != nil {
		return nil, err
	}
	return e.Lookup(filters...)
}

// firstSeen lists the distinct ids of f's buckets in traversal order.
func (e *Engine) firstSeen(f Filter) []indexing.RecordID {
	seen := roaring.New()
	var order []indexing.RecordID
	for _, v := range f.Values {
		b := e.index.Categories.Bucket(f.Dimension, v)
		if b == nil {
			continue
		}
		for _, id := range b.IDs {
			if seen.CheckedAdd(id) {
				order = append(order, id)
			}
		}
	}
	return order
}
