package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

const (
	formatYAML = "yaml"
	formatTOML = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path, layered over Default. An empty path
// or a missing file yields the defaults. The format is chosen by extension:
// .toml is TOML, anything else is YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, showcaseerrors.NewParseError(path, "", 0, err)
	}

	if err := Decode(data, formatFor(path), &cfg); err != nil {
		var parseErr *showcaseerrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return Config{}, err
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data in the given format into cfg. Keys absent from data
// keep their current values; unknown keys are rejected. A slides list in data
// replaces the current one instead of extending it.
func Decode(data []byte, format string, cfg *Config) error {
	current := cfg.Slides
	cfg.Slides = nil
	defer func() {
		if cfg.Slides == nil {
			cfg.Slides = current
		}
	}()

	switch format {
	case formatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return showcaseerrors.NewParseError("", formatTOML, tomlLine(err), err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return showcaseerrors.NewParseError("", formatYAML, yamlLine(err), err)
		}
	}
	return nil
}

func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return formatTOML
	}
	return formatYAML
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		row, _ := strictErr.Errors[0].Position()
		return row
	}
	return 0
}
