// Package config handles YAML configuration loading with environment variable
// substitution and TSVIZ_* environment overrides.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. Every field has a sensible default, so running without a
// config file is fully supported.
package config
