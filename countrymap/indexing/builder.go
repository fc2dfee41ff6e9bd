package indexing

import (
	"fmt"

	"github.com/ZanzyTHEbar/countrymap/countrymap/records"

	"github.com/rs/zerolog"
)

// Index is the pair of indexes built over one record set.
type Index struct {
	Unique     *UniqueIndex
	Categories *CategoryIndex
}

// BuildOptions tunes Build.
type BuildOptions struct {
	// StrictUniqueKeys turns a unique-key collision into ErrDuplicateKey
	// instead of a logged overwrite.
	StrictUniqueKeys bool
	Logger           zerolog.Logger
}

// Build indexes countries in a single pass. Record i is stored as RecordID i.
func Build(countries []records.Country, opts BuildOptions) (*Index, error) {
	idx := &Index{
		Unique:     NewUniqueIndex(),
		Categories: NewCategoryIndex(),
	}
	log := opts.Logger
	duplicates := 0

	for i := range countries {
		c := &countries[i]
		id := RecordID(i)

		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		keys := [...]struct {
			field Field
			value string
		}{
			{FieldName, c.Name.Common},
			{FieldAlpha2, c.Alpha2},
			{FieldAlpha3, c.Alpha3},
			{FieldNumeric, c.Numeric},
		}
		for _, k := range keys {
			prev, replaced, err := idx.Unique.Insert(k.field, k.value, id)
			if err != nil {
				return nil, err
			}
			if !replaced {
				continue
			}
			if opts.StrictUniqueKeys {
				return nil, fmt.Errorf("%w: %s %q shared by records %d and %d", ErrDuplicateKey, k.field, k.value, prev, id)
			}
			duplicates++
			log.Warn().
				Str("field", string(k.field)).
				Str("value", k.value).
				Uint32("replaced", prev).
				Uint32("by", id).
				Msg("Duplicate unique key, keeping the later record")
		}

		idx.Categories.Add(DimensionContinents, c.Continent, id)
		idx.Categories.Add(DimensionRegions, c.Region, id)
		for _, code := range c.CurrencyCodes() {
			idx.Categories.Add(DimensionCurrencies, code, id)
		}
		for _, loc := range c.Locale.Locales {
			idx.Categories.Add(DimensionLocales, loc, id)
		}
		for _, name := range c.SpokenLanguageNames() {
			idx.Categories.Add(DimensionLanguages, name, id)
		}
	}

	log.Debug().
		Int("records", len(countries)).
		Int("duplicates", duplicates).
		Int("continents", idx.Categories.Len(DimensionContinents)).
		Int("regions", idx.Categories.Len(DimensionRegions)).
		Int("languages", idx.Categories.Len(DimensionLanguages)).
		Int("locales", idx.Categories.Len(DimensionLocales)).
		Int("currencies", idx.Categories.Len(DimensionCurrencies)).
		Msg("Indexes built")

	return idx, nil
}
