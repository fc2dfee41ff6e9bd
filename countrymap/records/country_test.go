package records

import (
	"bytes"
	"os"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	countries, err := LoadFile("testdata/countries.json")
	require.NoError(t, err)
	require.Len(t, countries, 2)

	estonia := countries[0]
	assert.Equal(t, "Estonia", estonia.Name.Common)
	assert.Equal(t, "Republic of Estonia", estonia.Name.Official)
	assert.Equal(t, "EE", estonia.Alpha2)
	assert.Equal(t, "EST", estonia.Alpha3)
	assert.Equal(t, "233", estonia.Numeric)
	assert.Equal(t, []string{"EUR"}, estonia.CurrencyCodes())
	assert.Equal(t, []string{"Estonian", "Russian"}, estonia.SpokenLanguageNames())
	assert.Equal(t, []string{"et-EE"}, estonia.Locale.Locales)
	assert.JSONEq(t, `"Tallinn"`, string(estonia.Capital))
	assert.JSONEq(t, `[".ee"]`, string(estonia.TLD))

	antarctica := countries[1]
	assert.Empty(t, antarctica.CurrencyCodes(), "null currency code should be skipped")
	assert.Empty(t, antarctica.SpokenLanguageNames())
	assert.Empty(t, antarctica.Locale.Locales)
	assert.Nil(t, antarctica.Capital)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestDecodeRejectsNonArray(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"name": {"common": "Nowhere"}}`))
	assert.Error(t, err)
}

func TestOpaqueFieldsRoundTrip(t *testing.T) {
	raw, err := os.ReadFile("testdata/countries.json")
	require.NoError(t, err)

	countries, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	out, err := json.Marshal(countries[0])
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	assert.Equal(t, "Tallinn", generic["capital"])
	assert.Equal(t, []any{"+372"}, generic["dialingCodes"])
	assert.Equal(t, "https://flagcdn.com/ee.svg", generic["flag"])
}

func TestUnknownKeysRoundTrip(t *testing.T) {
	src := `[{
		"name": {"common": "Malta"},
		"alpha2": "MT", "alpha3": "MLT", "numeric": "470",
		"continent": "Europe", "region": "Southern Europe",
		"population": 42,
		"currencies": [{"code": "EUR", "iso": "978"}],
		"languages": {"spokenLanguages": [{"name": "Maltese"}]},
		"locale": {"locales": ["mt-MT"], "default": "mt-MT"}
	}]`

	countries, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, []string{"EUR"}, countries[0].CurrencyCodes())
	assert.NotNil(t, countries[0].Raw())

	out, err := json.Marshal(countries)
	require.NoError(t, err)

	var generic []map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	require.Len(t, generic, 1)
	got := generic[0]
	assert.EqualValues(t, 42, got["population"])
	assert.Equal(t, "mt-MT", got["locale"].(map[string]any)["default"])
	currency := got["currencies"].([]any)[0].(map[string]any)
	assert.Equal(t, "978", currency["iso"])
	assert.Equal(t, "EUR", currency["code"])
}

func TestMarshalBuiltRecord(t *testing.T) {
	c := Country{
		Name:      Name{Common: "Chile"},
		Alpha2:    "CL",
		Alpha3:    "CHL",
		Numeric:   "152",
		Continent: "South America",
		Region:    "South America",
	}
	assert.Nil(t, c.Raw())

	out, err := json.Marshal(c)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	assert.Equal(t, "CL", generic["alpha2"])
	assert.Equal(t, "Chile", generic["name"].(map[string]any)["common"])
	assert.NotContains(t, generic, "raw")
}

func TestValidate(t *testing.T) {
	valid := func() Country {
		return Country{
			Name:      Name{Common: "Chile"},
			Alpha2:    "CL",
			Alpha3:    "CHL",
			Numeric:   "152",
			Continent: "South America",
			Region:    "South America",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Country)
		missing string
	}{
		{"Complete", func(c *Country) {}, ""},
		{"NoName", func(c *Country) { c.Name.Common = "" }, "name.common"},
		{"NoAlpha2", func(c *Country) { c.Alpha2 = "" }, "alpha2"},
		{"NoAlpha3", func(c *Country) { c.Alpha3 = "" }, "alpha3"},
		{"NoNumeric", func(c *Country) { c.Numeric = "" }, "numeric"},
		{"NoContinent", func(c *Country) { c.Continent = "" }, "continent"},
		{"NoRegion", func(c *Country) { c.Region = "" }, "region"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}
