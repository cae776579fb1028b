package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the optional per-directory configuration file, looked up
// in the scanned root only.
const ManifestName = "fixtures.yaml"

// Normalization modes for the "normalize" manifest key.
const (
	NormalizeExact = "exact"
	NormalizeTrim  = "trim"
)

// Unicode modes for the "unicode" manifest key.
const (
	UnicodeNone = "none"
	UnicodeNFC  = "nfc"
)

// Manifest configures how a fixture directory is compared.
//
// All fields are optional; the zero value means exact comparison, no
// Unicode normalization, and pending-golden generation enabled.
type Manifest struct {
	// Normalize selects the comparison mode: "exact" (default) compares
	// parsed lines verbatim; "trim" removes trailing whitespace per line
	// and blank edge lines before comparing.
	Normalize string `yaml:"normalize,omitempty"`

	// Unicode selects Unicode handling: "none" (default) or "nfc".
	Unicode string `yaml:"unicode,omitempty"`

	// Update controls whether a missing golden produces a ".valid.new"
	// file with the actual output. Defaults to true.
	Update *bool `yaml:"update,omitempty"`
}

// TrimEnabled reports whether the trim normalization mode is selected.
func (m Manifest) TrimEnabled() bool {
	return m.Normalize == NormalizeTrim
}

// NFCEnabled reports whether NFC normalization is selected.
func (m Manifest) NFCEnabled() bool {
	return m.Unicode == UnicodeNFC
}

// UpdateEnabled reports whether missing goldens produce pending files.
func (m Manifest) UpdateEnabled() bool {
	return m.Update == nil || *m.Update
}

// loadManifest reads fixtures.yaml from dir if present. Unknown fields are
// rejected so that a typo'd key fails loudly instead of silently selecting
// a default.
func loadManifest(dir string) (Manifest, error) {
	var m Manifest

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("reading %s: %w", ManifestName, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty manifest selects all defaults.
			return Manifest{}, nil
		}
		return m, fmt.Errorf("parsing %s: %w", ManifestName, err)
	}

	if err := m.validate(); err != nil {
		return m, fmt.Errorf("invalid %s: %w", ManifestName, err)
	}
	return m, nil
}

func (m Manifest) validate() error {
	switch m.Normalize {
	case "", NormalizeExact, NormalizeTrim:
	default:
		return fmt.Errorf("normalize must be %q or %q, got %q", NormalizeExact, NormalizeTrim, m.Normalize)
	}
	switch m.Unicode {
	case "", UnicodeNone, UnicodeNFC:
	default:
		return fmt.Errorf("unicode must be %q or %q, got %q", UnicodeNone, UnicodeNFC, m.Unicode)
	}
	return nil
}
