// Package config carries the numerical contract of the screening pipeline:
// default thresholds and truncation sequences, the thresholds.yaml document
// format, runtime configuration backed by viper, and logger construction.
//
// Two layers coexist on purpose. Thresholds is the versioned scientific
// contract (exact key names, nested value/description documents, strict
// validation); Config is the operational layer for one process run (file
// plus environment overrides with typed getters). Config.Thresholds()
// bridges the two.
package config
