package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranspose(); err != nil {
		return err
	}
	if err := c.validateClassifier(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranspose() error {
	switch c.Transpose.Spelling {
	case SpellingAuto, SpellingSharp, SpellingFlat:
	default:
		return fmt.Errorf("transpose.spelling: unsupported value %q (want auto, sharp, or flat)", c.Transpose.Spelling)
	}
	if c.Transpose.MinShift < -11 || c.Transpose.MinShift > 0 {
		return errors.New("transpose.min_shift must be between -11 and 0")
	}
	if c.Transpose.MaxShift < 0 || c.Transpose.MaxShift > 11 {
		return errors.New("transpose.max_shift must be between 0 and 11")
	}
	if c.Transpose.Clamp && c.Transpose.MaxShift-c.Transpose.MinShift < 11 {
		return errors.New("transpose.max_shift - transpose.min_shift must span at least 11 semitones when transpose.clamp is true")
	}
	return nil
}

func (c *Config) validateClassifier() error {
	if c.Classifier.ChordLineThreshold <= 0 || c.Classifier.ChordLineThreshold > 1 {
		return errors.New("classifier.chord_line_threshold must be greater than 0 and at most 1")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Enabled && c.Catalog.Path == "" {
		return errors.New("catalog.path must be set when catalog.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
