// Package engine answers exact-key and multi-criteria queries over a static
// set of country records.
//
// An Engine is built once from a record set and is read-only afterwards, so
// it can be shared between goroutines without locking.
package engine

import (
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/countrymap/countrymap/indexing"
	"github.com/ZanzyTHEbar/countrymap/countrymap/records"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidQueryKey is returned when a field or dimension is not one of
	// the recognised selectors.
	ErrInvalidQueryKey = indexing.ErrInvalidQueryKey

	// ErrInvalidQueryValueType is returned when a filter value is not a list
	// of strings.
	ErrInvalidQueryValueType = errors.New("invalid query: expected an array of values")

	// ErrMalformedFilters is returned when encoded filters are not a JSON object.
	ErrMalformedFilters = errors.New("invalid query: expected an object of filters")

	// ErrDuplicateKey is returned by New in strict mode.
	ErrDuplicateKey = indexing.ErrDuplicateKey
)

// Re-exported selectors so callers only need this package.
type (
	Field     = indexing.Field
	Dimension = indexing.Dimension
)

const (
	FieldName    = indexing.FieldName
	FieldAlpha2  = indexing.FieldAlpha2
	FieldAlpha3  = indexing.FieldAlpha3
	FieldNumeric = indexing.FieldNumeric

	Continents = indexing.DimensionContinents
	Regions    = indexing.DimensionRegions
	Languages  = indexing.DimensionLanguages
	Locales    = indexing.DimensionLocales
	Currencies = indexing.DimensionCurrencies
)

// Stats summarises the indexes of an Engine.
type Stats struct {
	Records    int
	UniqueKeys map[Field]int
	Buckets    map[Dimension]int
}

type options struct {
	logger     zerolog.Logger
	strictKeys bool
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used during construction.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStrictUniqueKeys makes New fail when two records share a unique key.
func WithStrictUniqueKeys(strict bool) Option {
	return func(o *options) { o.strictKeys = strict }
}

// Engine holds the record set and the indexes built over it.
type Engine struct {
	countries []records.Country
	all       []*records.Country
	index     *indexing.Index
	stats     Stats
}

// New indexes countries and returns a ready Engine. The slice is retained,
// not copied, and must not be modified afterwards.
func New(countries []records.Country, opts ...Option) (*Engine, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	idx, err := indexing.Build(countries, indexing.BuildOptions{
		StrictUniqueKeys: o.strictKeys,
		Logger:           o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build indexes: %w", err)
	}

	all := make([]*records.Country, len(countries))
	for i := range countries {
		all[i] = &countries[i]
	}

	e := &Engine{
		countries: countries,
		all:       all,
		index:     idx,
	}
	e.stats = e.computeStats()
	return e, nil
}

// FindBy returns the record whose field equals value. A missing record is
// reported through the bool; only an unknown field is an error.
func (e *Engine) FindBy(field Field, value string) (*records.Country, bool, error) {
	if !field.Valid() {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidQueryKey, field)
	}
	id, found, err := e.index.Unique.Get(field, value)
	if err != nil || !found {
		return nil, false, err
	}
	return e.all[id], true, nil
}

// All returns every record in input order. The slice is shared.
func (e *Engine) All() []*records.Country {
	return e.all
}

// Stats returns a summary of the indexes.
func (e *Engine) Stats() Stats {
	s := Stats{
		Records:    e.stats.Records,
		UniqueKeys: make(map[Field]int, len(e.stats.UniqueKeys)),
		Buckets:    make(map[Dimension]int, len(e.stats.Buckets)),
	}
	for k, v := range e.stats.UniqueKeys {
		s.UniqueKeys[k] = v
	}
	for k, v := range e.stats.Buckets {
		s.Buckets[k] = v
	}
	return s
}

func (e *Engine) computeStats() Stats {
	s := Stats{
		Records:    len(e.countries),
		UniqueKeys: make(map[Field]int, len(indexing.Fields)),
		Buckets:    make(map[Dimension]int, len(indexing.Dimensions)),
	}
	for _, f := range indexing.Fields {
		s.UniqueKeys[f] = e.index.Unique.Len(f)
	}
	for _, d := range indexing.Dimensions {
		s.Buckets[d] = e.index.Categories.Len(d)
	}
	return s
}
