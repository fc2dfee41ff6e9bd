// Package records defines the country record consumed by the index engine
// and decodes the reference dataset.
package records

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrMissingField is returned when a record lacks a field the indexes need.
var ErrMissingField = errors.New("record is missing a required field")

// Country is a single entry of the reference dataset. Only the identifier and
// categorical fields are read by the indexes; everything else is carried
// through untouched. A decoded Country keeps its source object and marshals
// back to it, so keys this struct does not model survive a round trip.
type Country struct {
	Name       Name       `json:"name"`
	Alpha2     string     `json:"alpha2"`
	Alpha3     string     `json:"alpha3"`
	Numeric    string     `json:"numeric"`
	Continent  string     `json:"continent"`
	Region     string     `json:"region"`
	Currencies []Currency `json:"currencies"`
	Languages  Languages  `json:"languages"`
	Locale     Locale     `json:"locale"`

	Capital      json.RawMessage `json:"capital,omitempty"`
	DialingCodes json.RawMessage `json:"dialingCodes,omitempty"`
	Emoji        json.RawMessage `json:"emoji,omitempty"`
	Flag         json.RawMessage `json:"flag,omitempty"`
	TLD          json.RawMessage `json:"tld,omitempty"`

	raw json.RawMessage
}

// country has Country's fields without its JSON methods.
type country Country

func (c *Country) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v country
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Country(v)
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the source object of a decoded record, or the modelled
// fields for one built in code.
func (c Country) MarshalJSON() ([]byte, error) {
	if c.raw != nil {
		return c.raw, nil
	}
	return json.Marshal(country(c))
}

// Raw returns the source object the record was decoded from, or nil.
func (c *Country) Raw() json.RawMessage {
	return c.raw
}

type Name struct {
	Common   string          `json:"common"`
	Official string          `json:"official,omitempty"`
	Native   json.RawMessage `json:"native,omitempty"`
}

// Currency entries without a code are skipped by the currency index.
type Currency struct {
	Code   string `json:"code,omitempty"`
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

type Languages struct {
	Official        json.RawMessage `json:"official,omitempty"`
	SpokenLanguages []Language      `json:"spokenLanguages"`
}

// Language entries without a name are skipped by the language index.
type Language struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

type Locale struct {
	Locales []string `json:"locales"`
}

// Validate reports the first required field that is empty.
func (c *Country) Validate() error {
	switch {
	case c.Name.Common == "":
		return fmt.Errorf("%w: name.common", ErrMissingField)
	case c.Alpha2 == "":
		return fmt.Errorf("%w: alpha2", ErrMissingField)
	case c.Alpha3 == "":
		return fmt.Errorf("%w: alpha3", ErrMissingField)
	case c.Numeric == "":
		return fmt.Errorf("%w: numeric", ErrMissingField)
	case c.Continent == "":
		return fmt.Errorf("%w: continent", ErrMissingField)
	case c.Region == "":
		return fmt.Errorf("%w: region", ErrMissingField)
	}
	return nil
}

// SpokenLanguageNames returns the non-empty spoken language names in order.
func (c *Country) SpokenLanguageNames() []string {
	names := make([]string, 0, len(c.Languages.SpokenLanguages))
	for _, l := range c.Languages.SpokenLanguages {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	return names
}

// CurrencyCodes returns the non-empty currency codes in order.
func (c *Country) CurrencyCodes() []string {
	codes := make([]string, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		if cur.Code != "" {
			codes = append(codes, cur.Code)
		}
	}
	return codes
}
