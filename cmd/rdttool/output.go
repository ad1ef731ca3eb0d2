package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/rdtkit/internal/config"
)

// emit writes v as YAML when configured, otherwise calls text.
func (a *app) emit(v any, text func()) error {
	if a.cfg.Output.Format != config.FormatYAML {
		text()
		return nil
	}

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return enc.Close()
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
