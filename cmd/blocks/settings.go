package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Settings holds the runtime configuration of the CLI.
type Settings struct {
	// Format is the output format of merge and get: "json" or "yaml".
	Format string `koanf:"format"`

	// Indent is the number of spaces used to indent output. Zero produces
	// compact JSON.
	Indent int `koanf:"indent"`

	// NullAsUndefined decodes null document values as undefined (a missing
	// value) instead of null.
	NullAsUndefined bool `koanf:"null_as_undefined"`
}

// DefaultSettings returns the settings used when no file overrides them.
func DefaultSettings() Settings {
	return Settings{
		Format: FormatJSON,
		Indent: 2,
	}
}

// LoadSettings reads settings from a YAML or JSON file over the defaults.
// An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	parser, err := parserFor(path)
	if err != nil {
		return s, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return s, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	if err := k.Unmarshal("", &s); err != nil {
		return s, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return s, nil
}

// Validate checks that s holds a known format and a sane indent.
func (s Settings) Validate() error {
	switch s.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, s.Format)
	}
	if s.Indent < 0 || s.Indent > 8 {
		return fmt.Errorf("%w, got %d", ErrInvalidIndent, s.Indent)
	}
	return nil
}

// parserFor picks the koanf parser matching the extension of path.
func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}
