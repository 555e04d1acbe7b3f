// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-form-runner/models"
)

// LoadSeedFile reads the YAML form seed at path. Unknown keys are rejected
// so that typos in hand-written seeds surface at startup.
func LoadSeedFile(path string) (models.SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.SeedFile{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return DecodeSeed(f)
}

// DecodeSeed decodes a YAML form seed from r. An empty document yields an
// empty seed.
func DecodeSeed(r io.Reader) (models.SeedFile, error) {
	var seed models.SeedFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return models.SeedFile{}, fmt.Errorf("decode seed file: %w", err)
	}

	return seed, nil
}
