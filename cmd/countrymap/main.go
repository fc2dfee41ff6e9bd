// Command countrymap loads a country dataset and answers a single query.
//
//	countrymap [-config file] [-dataset file] all
//	countrymap [-config file] [-dataset file] find <name|alpha2|alpha3|numeric> <value>
//	countrymap [-config file] [-dataset file] lookup '{"continents":["Europe"]}'
//	countrymap [-config file] [-dataset file] stats
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	internal "github.com/ZanzyTHEbar/countrymap/countrymap"
	"github.com/ZanzyTHEbar/countrymap/countrymap/config"
	"github.com/ZanzyTHEbar/countrymap/countrymap/engine"
	"github.com/ZanzyTHEbar/countrymap/countrymap/indexing"
	"github.com/ZanzyTHEbar/countrymap/countrymap/records"

	json "github.com/goccy/go-json"
)

var errUsage = errors.New("usage: countrymap [-config file] [-dataset file] all | find <field> <value> | lookup <json> | stats")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet(internal.DefaultAppName, flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	datasetPath := fs.String("dataset", "", "path to the dataset JSON (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *datasetPath != "" {
		cfg.Dataset.Path = *datasetPath
	}

	logger := internal.GetLogger(cfg.Log.Level)

	countries, err := records.LoadFile(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	e, err := engine.New(countries,
		engine.WithLogger(logger),
		engine.WithStrictUniqueKeys(cfg.Index.StrictUniqueKeys),
	)
	if err != nil {
		return err
	}
	logger.Debug().Str("dataset", cfg.Dataset.Path).Int("records", len(countries)).Msg("Engine ready")

	var result any
	switch cmd, rest := fs.Arg(0), fs.Args()[1:]; cmd {
	case "all":
		result = e.All()
	case "stats":
		result = e.Stats()
	case "find":
		if len(rest) != 2 {
			return errUsage
		}
		field, err := indexing.ParseField(rest[0])
		if err != nil {
			return err
		}
		c, found, err := e.FindBy(field, rest[1])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no country with %s %q", field, rest[1])
		}
		result = c
	case "lookup":
		if len(rest) != 1 {
			return errUsage
		}
		result, err = e.LookupJSON([]byte(rest[0]))
		if err != nil {
			return err
		}
	default:
		return errUsage
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
