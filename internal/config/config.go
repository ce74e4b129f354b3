// Package config reads and writes the projection config file: a TOML file
// whose [Values] table holds the raw projection parameters.
package config

import (
	"fmt"
	"os"
	"strconv"

	"pensionproj/internal/projection"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "projection.toml"

// NotFoundError reports a missing config file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file %s is missing", e.Path)
}

type fileLayout struct {
	Values map[string]any `toml:"Values"`
}

// Load reads the config file and returns the raw Values mapping with every
// value normalized to a string. Numeric TOML literals are accepted alongside
// quoted strings, so `age = 55` and `age = "55"` read the same.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var raw fileLayout
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if raw.Values == nil {
		return nil, &projection.ValidationError{Field: "Values", Reason: "section missing"}
	}

	values := make(map[string]string, len(raw.Values))
	for key, v := range raw.Values {
		switch t := v.(type) {
		case string:
			values[key] = t
		case int64:
			values[key] = strconv.FormatInt(t, 10)
		case float64:
			values[key] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			return nil, &projection.ValidationError{
				Field:  key,
				Reason: fmt.Sprintf("unsupported value type %T", v),
			}
		}
	}

	return values, nil
}

// Save writes the Values mapping to path, overwriting any existing file.
func Save(path string, values map[string]string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	vals := make(map[string]any, len(values))
	for k, v := range values {
		vals[k] = v
	}

	enc := toml.NewEncoder(f)
	if err := enc.Encode(fileLayout{Values: vals}); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
