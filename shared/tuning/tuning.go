// Package tuning reads sprint tuning overrides from YAML and watches the file
// for edits.
package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/solar-sprint/shared/sim"
	"gopkg.in/yaml.v3"
)

// Load reads path and applies it over base. Fields missing from the file
// keep their base values; unknown fields are an error.
func Load(path string, base sim.Tuning) (sim.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Parse(data, base)
	if err != nil {
		return base, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML over base and validates the result. Durations are
// written as Go duration strings such as "110ms".
func Parse(data []byte, base sim.Tuning) (sim.Tuning, error) {
	t := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}
