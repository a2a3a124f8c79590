package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	levels  = []string{"debug", "info", "warn", "error"}
	formats = []string{"text", "json", "logfmt"}
	colors  = []string{"auto", "always", "never"}
)

// ValidationError lists every invalid field found by Validate.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Errors, "; ")
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	var errs []string
	check := func(key, val string, allowed []string) {
		if !slices.Contains(allowed, val) {
			errs = append(errs, fmt.Sprintf("%s: %q is not one of %s", key, val, strings.Join(allowed, "|")))
		}
	}
	check("log.level", c.Log.Level, levels)
	check("log.format", c.Log.Format, formats)
	check("output.color", c.Output.Color, colors)
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
