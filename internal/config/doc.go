// Package config loads, normalizes, and validates akordish configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// AKORDISH_DATA_DIR and AKORDISH_LOG_LEVEL. The Config type centralizes the
// transpose, classifier, catalog and logging knobs the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical spelling modes, and clear validation errors.
package config
