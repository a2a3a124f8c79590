// Package logging builds the loxc logger from configuration.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/desilang/lox/compiler/internal/config"
)

// New returns a logger writing to w at cfg.Level in cfg.Format. Empty
// fields fall back to warn and text.
func New(w io.Writer, cfg config.Log) (*log.Logger, error) {
	level := log.WarnLevel
	if cfg.Level != "" {
		l, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = l
	}
	formatter, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:     level,
		Formatter: formatter,
		Prefix:    "loxc",
	}), nil
}

func parseFormat(s string) (log.Formatter, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("log format %q: want text, json or logfmt", s)
}
