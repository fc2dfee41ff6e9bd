package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/countrymap/countrymap/indexing"

	json "github.com/goccy/go-json"
)

// DecodeFilters parses a JSON object such as
//
//	{"continents": ["Africa", "Asia"], "languages": ["Arabic"]}
//
// into filters, keeping the key order of the document. Each key is checked
// before its value: unknown keys fail with ErrInvalidQueryKey, values that
// are not arrays of strings fail with ErrInvalidQueryValueType. A repeated
// key keeps its first position and takes the last value, as an object would.
func DecodeFilters(data []byte) ([]Filter, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilters, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrMalformedFilters
	}

	filters := make([]Filter, 0)
	seen := make(map[Dimension]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFilters, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, ErrMalformedFilters
		}

		dim, err := indexing.ParseDimension(key)
		if err != nil {
			return nil, err
		}

		values, err := decodeValues(dec, key)
		if err != nil {
			return nil, err
		}
		if pos, ok := seen[dim]; ok {
			filters[pos].Values = values
			continue
		}
		seen[dim] = len(filters)
		filters = append(filters, Filter{Dimension: dim, Values: values})
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilters, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformedFilters)
	}
	if tok, err := dec.Token(); (err == nil && tok != nil) || (err != nil && !errors.Is(err, io.EOF)) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformedFilters)
	}
	return filters, nil
}

func decodeValues(dec *json.Decoder, key string) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilters, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQueryValueType, key)
	}

	values := make([]string, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFilters, err)
		}
		s, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQueryValueType, key)
		}
		values = append(values, s)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilters, err)
	}
	return values, nil
}
