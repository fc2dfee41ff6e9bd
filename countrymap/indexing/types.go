package indexing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQueryKey is returned for a field or dimension name outside
	// the recognised set.
	ErrInvalidQueryKey = errors.New("invalid query: expected a valid query key")

	// ErrDuplicateKey is returned by Build in strict mode when two records
	// share a unique key.
	ErrDuplicateKey = errors.New("duplicate unique key")
)

// RecordID is the position of a record in the record set. It is dense and
// small so it can be stored in roaring bitmaps.
type RecordID = uint32

// Field selects one of the unique-key indexes.
type Field string

const (
	FieldName    Field = "name"
	FieldAlpha2  Field = "alpha2"
	FieldAlpha3  Field = "alpha3"
	FieldNumeric Field = "numeric"
)

// Fields lists every unique-key field in index order.
var Fields = []Field{FieldName, FieldAlpha2, FieldAlpha3, FieldNumeric}

func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldAlpha2, FieldAlpha3, FieldNumeric:
		return true
	}
	return false
}

// ParseField converts a selector string into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidQueryKey, s)
	}
	return f, nil
}

// Dimension selects one of the categorical indexes.
type Dimension string

const (
	DimensionContinents Dimension = "continents"
	DimensionRegions    Dimension = "regions"
	DimensionLanguages  Dimension = "languages"
	DimensionLocales    Dimension = "locales"
	DimensionCurrencies Dimension = "currencies"
)

// Dimensions lists every categorical dimension.
var Dimensions = []Dimension{
	DimensionContinents,
	DimensionRegions,
	DimensionLanguages,
	DimensionLocales,
	DimensionCurrencies,
}

func (d Dimension) Valid() bool {
	switch d {
	case DimensionContinents, DimensionRegions, DimensionLanguages, DimensionLocales, DimensionCurrencies:
		return true
	}
	return false
}

// ParseDimension converts a dimension name into a Dimension.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidQueryKey, s)
	}
	return d, nil
}
