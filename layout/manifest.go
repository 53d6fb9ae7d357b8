package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dlpno/config"
	"github.com/katalvlaran/dlpno/energy"
)

// ErrBadRunKey is returned when a manifest run key lacks the run_ prefix
// or carries nothing after it.
var ErrBadRunKey = errors.New("layout: malformed run key")

// Manifest records the reproducibility metadata of one artifact tree:
// which run produced it, at which pipeline stage, for which system, and
// under which numerical contract.
type Manifest struct {
	RunKey     string            `yaml:"run_key"`
	Stage      string            `yaml:"stage"`
	StartedAt  time.Time         `yaml:"timestamp_start"`
	Molecule   string            `yaml:"molecule"`
	Basis      string            `yaml:"basis"`
	Version    string            `yaml:"version"`
	Thresholds config.Thresholds `yaml:"thresholds"`
}

// NewManifest seeds a manifest with a fresh run key, the current UTC
// time, and the library version.
func NewManifest(stage energy.Stage, molecule, basis string, t config.Thresholds) Manifest {
	return Manifest{
		RunKey:     NewRunKey(),
		Stage:      stage.String(),
		StartedAt:  time.Now().UTC(),
		Molecule:   molecule,
		Basis:      basis,
		Version:    config.Version,
		Thresholds: t,
	}
}

// Validate checks the run key shape, the stage name, and the embedded
// thresholds contract.
func (m Manifest) Validate() error {
	if !strings.HasPrefix(m.RunKey, "run_") || len(m.RunKey) == len("run_") {
		return fmt.Errorf("run key %q: %w", m.RunKey, ErrBadRunKey)
	}
	if _, err := energy.ParseStage(m.Stage); err != nil {
		return fmt.Errorf("manifest stage: %w", err)
	}

	return m.Thresholds.Validate()
}

// WriteManifest validates m and writes it as a YAML document.
func WriteManifest(path string, m Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads and validates a manifest document.
func ReadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}

	return m, nil
}
