package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML game config from path. Keys missing from the file keep their
// default values, except safe_code which is derived from error_sequence when omitted.
func Load(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("read game config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML game config. See Load.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	cfg.SafeCode = ""

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return GameConfig{}, fmt.Errorf("decode game config: %w", err)
	}

	if cfg.SafeCode == "" {
		cfg.SafeCode = DeriveSafeCode(cfg.ErrorSequence)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}
