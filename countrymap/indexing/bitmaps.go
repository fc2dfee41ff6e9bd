package indexing

import (
	roaring "github.com/RoaringBitmap/roaring"
)

// Bucket holds the records sharing one categorical value.
// IDs keeps append order and may repeat an id if a record carries the same
// value twice; Set is the deduplicated view used for set algebra.
type Bucket struct {
	IDs []RecordID
	Set *roaring.Bitmap
}

func (b *Bucket) add(id RecordID) {
	b.IDs = append(b.IDs, id)
	b.Set.Add(id)
}

// CategoryIndex holds one bucket map per dimension.
type CategoryIndex struct {
	buckets map[Dimension]map[string]*Bucket
}

func NewCategoryIndex() *CategoryIndex {
	buckets := make(map[Dimension]map[string]*Bucket, len(Dimensions))
	for _, d := range Dimensions {
		buckets[d] = make(map[string]*Bucket)
	}
	return &CategoryIndex{buckets: buckets}
}

// Add appends id to the bucket for (dim, value), creating it on first use.
func (ci *CategoryIndex) Add(dim Dimension, value string, id RecordID) {
	byValue, ok := ci.buckets[dim]
	if !ok {
		return
	}
	b, ok := byValue[value]
	if !ok {
		b = &Bucket{Set: roaring.New()}
		byValue[value] = b
	}
	b.add(id)
}

// Bucket returns the bucket for (dim, value), or nil for unknown values.
func (ci *CategoryIndex) Bucket(dim Dimension, value string) *Bucket {
	return ci.buckets[dim][value]
}

// Union returns the ids present in any of the buckets for values.
// The result is a fresh bitmap and may be modified by the caller.
func (ci *CategoryIndex) Union(dim Dimension, values ...string) *roaring.Bitmap {
	sets := make([]*roaring.Bitmap, 0, len(values))
	for _, v := range values {
		if b := ci.Bucket(dim, v); b != nil {
			sets = append(sets, b.Set)
		}
	}
	switch len(sets) {
	case 0:
		return roaring.New()
	case 1:
		return sets[0].Clone()
	}
	return roaring.FastOr(sets...)
}

// Len returns the number of distinct values indexed for dim.
func (ci *CategoryIndex) Len(dim Dimension) int {
	return len(ci.buckets[dim])
}
