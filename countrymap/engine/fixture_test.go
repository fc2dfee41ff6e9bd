package engine

import (
	"github.com/ZanzyTHEbar/countrymap/countrymap/records"
)

type fixture struct {
	name, a2, a3, num  string
	continent, region  string
	currencies         []string
	locales, languages []string
}

// Continents are interleaved on purpose so lookup ordering is observable.
var fixtures = []fixture{
	{"Canada", "CA", "CAN", "124", "North America", "Northern America", []string{"CAD"}, []string{"en-CA", "fr-CA"}, []string{"English", "French"}},
	{"Egypt", "EG", "EGY", "818", "Africa", "Northern Africa", []string{"EGP"}, []string{"ar-EG"}, []string{"Arabic"}},
	{"Saudi Arabia", "SA", "SAU", "682", "Asia", "Western Asia", []string{"SAR"}, []string{"ar-SA"}, []string{"Arabic"}},
	{"Estonia", "EE", "EST", "233", "Europe", "Northern Europe", []string{"EUR"}, []string{"et-EE"}, []string{"Estonian", "Russian"}},
	{"Morocco", "MA", "MAR", "504", "Africa", "Northern Africa", []string{"MAD"}, []string{"ar-MA", "fr-MA"}, []string{"Arabic", "Berber", "French"}},
	{"Spain", "ES", "ESP", "724", "Europe", "Southern Europe", []string{"EUR"}, []string{"es-ES", "ca-ES"}, []string{"Spanish", "Catalan"}},
	{"Japan", "JP", "JPN", "392", "Asia", "Eastern Asia", []string{"JPY"}, []string{"ja-JP"}, []string{"Japanese"}},
	{"Chile", "CL", "CHL", "152", "South America", "South America", []string{"CLP"}, []string{"es-CL"}, []string{"Spanish"}},
	{"Italy", "IT", "ITA", "380", "Europe", "Southern Europe", []string{"EUR"}, []string{"it-IT"}, []string{"Italian"}},
	{"Nigeria", "NG", "NGA", "566", "Africa", "Western Africa", []string{"NGN"}, []string{"en-NG"}, []string{"English"}},
	{"Iraq", "IQ", "IRQ", "368", "Asia", "Western Asia", []string{"IQD"}, []string{"ar-IQ"}, []string{"Arabic", "Kurdish"}},
	{"Malta", "MT", "MLT", "470", "Europe", "Southern Europe", []string{"EUR"}, []string{"mt-MT", "en-MT"}, []string{"Maltese", "English"}},
	{"Tunisia", "TN", "TUN", "788", "Africa", "Northern Africa", []string{"TND"}, []string{"ar-TN"}, []string{"Arabic"}},
	{"Antarctica", "AQ", "ATA", "010", "Antarctica", "Antarctica", nil, nil, nil},
}

func testCountries() []records.Country {
	out := make([]records.Country, 0, len(fixtures))
	for _, f := range fixtures {
		c := records.Country{
			Name:      records.Name{Common: f.name, Official: "Official " + f.name},
			Alpha2:    f.a2,
			Alpha3:    f.a3,
			Numeric:   f.num,
			Continent: f.continent,
			Region:    f.region,
			Capital:   []byte(`"capital of ` + f.name + `"`),
			Emoji:     []byte(`"flag-` + f.a2 + `"`),
		}
		for _, code := range f.currencies {
			c.Currencies = append(c.Currencies, records.Currency{Code: code})
		}
		c.Locale.Locales = f.locales
		for _, name := range f.languages {
			c.Languages.SpokenLanguages = append(c.Languages.SpokenLanguages, records.Language{Name: name})
		}
		out = append(out, c)
	}
	return out
}

func where(all []*records.Country, pred func(c *records.Country) bool) []*records.Country {
	out := make([]*records.Country, 0)
	for _, c := range all {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func speaks(c *records.Country, language string) bool {
	for _, name := range c.SpokenLanguageNames() {
		if name == language {
			return true
		}
	}
	return false
}

func names(cs []*records.Country) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name.Common)
	}
	return out
}
