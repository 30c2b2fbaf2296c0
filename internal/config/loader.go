package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "TEXTSUBJECT_"

// envMapping maps environment variables to the setting they override.
var envMapping = map[string]func(*Config, string){
	EnvPrefix + "LOG_LEVEL": func(c *Config, v string) { c.Logging.Level = v },
	EnvPrefix + "SUBJECT":   func(c *Config, v string) { c.Subjects.Default = v },
}

// Load reads the configuration at path on top of Default, applies the
// environment and validates the result. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		data = nil
	}
	return load(path, data, os.LookupEnv)
}

// LoadFromReader is Load for an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return load("<reader>", data, os.LookupEnv)
}

func load(source string, data []byte, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if err := parse(source, data, cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg, lookup)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// parse decodes TOML data over cfg. Unknown keys are rejected.
func parse(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		pe.Message = "unknown keys: " + strictErr.String()
	}
	return pe
}

// applyEnv overrides settings from the environment. Empty values are
// ignored.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	for env, set := range envMapping {
		if v, ok := lookup(env); ok && v != "" {
			set(cfg, v)
		}
	}
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
