package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Runtime configuration keys. Environment overrides use the DLPNO_ prefix
// with dots replaced by underscores, e.g. DLPNO_SCREENING_THRESHOLD.
const (
	keyScreeningThreshold = "screening.threshold"
	keyScreeningWorkers   = "screening.workers"
	keyPNOCut             = "pno.cut"
	keyPNODomainCut       = "pno.domain_cut"
	keyPNOTauSequence     = "pno.tau_sequence"
	keyPairTauSequence    = "pairs.tau_sequence"
	keySolverResidualCut  = "solver.residual_cut"
	keySolverMaxIter      = "solver.max_iter_ccsd"
	keySolverDIISStart    = "solver.diis_start"
	keySolverDIISKeep     = "solver.diis_keep"
	keyEnergyAbsTol       = "convergence.energy_abs_tol"
	keyEnergyRelTol       = "convergence.energy_rel_tol"
	keyRandomSeed         = "run.random_seed"
	keyLogLevel           = "log.level"
	keyLogJSON            = "log.json"
)

// Config is the runtime view of one process: baked-in defaults, an
// optional config file, and environment overrides, in ascending
// precedence.
type Config struct {
	v *viper.Viper
}

// New returns a Config seeded with the production defaults.
func New() *Config {
	v := viper.New()
	v.SetEnvPrefix("DLPNO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyScreeningThreshold, DefaultCutPairs)
	v.SetDefault(keyScreeningWorkers, 1)
	v.SetDefault(keyPNOCut, DefaultCutPNO)
	v.SetDefault(keyPNODomainCut, DefaultCutDO)
	v.SetDefault(keyPNOTauSequence, DefaultPNOTauSequence())
	v.SetDefault(keyPairTauSequence, DefaultPairTauSequence())
	v.SetDefault(keySolverResidualCut, DefaultCutResid)
	v.SetDefault(keySolverMaxIter, DefaultMaxIterCCSD)
	v.SetDefault(keySolverDIISStart, DefaultDIISStart)
	v.SetDefault(keySolverDIISKeep, DefaultDIISKeep)
	v.SetDefault(keyEnergyAbsTol, DefaultEnergyAbsTol)
	v.SetDefault(keyEnergyRelTol, DefaultEnergyRelTol)
	v.SetDefault(keyRandomSeed, DefaultRandomSeed)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogJSON, false)

	return &Config{v: v}
}

// FromFile layers one YAML, TOML, or JSON file over the defaults.
func (c *Config) FromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// ScreeningThreshold returns the pair retention cutoff.
func (c *Config) ScreeningThreshold() float64 { return c.v.GetFloat64(keyScreeningThreshold) }

// Workers returns the screening concurrency bound.
func (c *Config) Workers() int { return c.v.GetInt(keyScreeningWorkers) }

// PNOCut returns the pair natural orbital occupation cutoff.
func (c *Config) PNOCut() float64 { return c.v.GetFloat64(keyPNOCut) }

// PNODomainCut returns the domain overlap cutoff.
func (c *Config) PNODomainCut() float64 { return c.v.GetFloat64(keyPNODomainCut) }

// ResidualCut returns the amplitude residual cutoff.
func (c *Config) ResidualCut() float64 { return c.v.GetFloat64(keySolverResidualCut) }

// MaxIterCCSD returns the amplitude solver iteration cap.
func (c *Config) MaxIterCCSD() int { return c.v.GetInt(keySolverMaxIter) }

// DIISStart returns the first DIIS-eligible iteration.
func (c *Config) DIISStart() int { return c.v.GetInt(keySolverDIISStart) }

// DIISKeep returns the DIIS history depth.
func (c *Config) DIISKeep() int { return c.v.GetInt(keySolverDIISKeep) }

// EnergyAbsTol returns the absolute convergence tolerance.
func (c *Config) EnergyAbsTol() float64 { return c.v.GetFloat64(keyEnergyAbsTol) }

// EnergyRelTol returns the relative convergence tolerance.
func (c *Config) EnergyRelTol() float64 { return c.v.GetFloat64(keyEnergyRelTol) }

// RandomSeed returns the seed for reproducible pseudo-random choices.
func (c *Config) RandomSeed() int64 { return c.v.GetInt64(keyRandomSeed) }

// LogLevel returns the zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString(keyLogLevel) }

// LogJSON reports whether logs use the native JSON stream.
func (c *Config) LogJSON() bool { return c.v.GetBool(keyLogJSON) }

// PNOTauSequence returns the configured PNO truncation ladder.
func (c *Config) PNOTauSequence() ([]float64, error) {
	var seq []float64
	if err := c.v.UnmarshalKey(keyPNOTauSequence, &seq); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyPNOTauSequence, err)
	}

	return seq, nil
}

// PairTauSequence returns the configured pair truncation ladder.
func (c *Config) PairTauSequence() ([]float64, error) {
	var seq []float64
	if err := c.v.UnmarshalKey(keyPairTauSequence, &seq); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyPairTauSequence, err)
	}

	return seq, nil
}

// Thresholds assembles and validates the numerical contract from the
// runtime configuration.
func (c *Config) Thresholds() (Thresholds, error) {
	pno, err := c.PNOTauSequence()
	if err != nil {
		return Thresholds{}, err
	}
	pair, err := c.PairTauSequence()
	if err != nil {
		return Thresholds{}, err
	}

	t := Thresholds{
		CutPairs:        c.ScreeningThreshold(),
		CutPNO:          c.PNOCut(),
		CutDO:           c.PNODomainCut(),
		CutResid:        c.ResidualCut(),
		MaxIterCCSD:     c.MaxIterCCSD(),
		DIISStart:       c.DIISStart(),
		DIISKeep:        c.DIISKeep(),
		PNOTauSequence:  pno,
		PairTauSequence: pair,
		EnergyAbsTol:    c.EnergyAbsTol(),
		EnergyRelTol:    c.EnergyRelTol(),
		RandomSeed:      c.RandomSeed(),
	}
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}

	return t, nil
}

// Validate checks the full runtime configuration, including the assembled
// thresholds contract.
func (c *Config) Validate() error {
	if w := c.Workers(); w < 0 {
		return fmt.Errorf("%s = %d: %w", keyScreeningWorkers, w, ErrNegative)
	}
	_, err := c.Thresholds()

	return err
}
