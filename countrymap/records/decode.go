package records

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// Decode reads a JSON array of countries, keeping the input order.
func Decode(r io.Reader) ([]Country, error) {
	var countries []Country
	if err := json.NewDecoder(r).Decode(&countries); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	return countries, nil
}

// LoadFile decodes the dataset stored at path.
func LoadFile(path string) ([]Country, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
