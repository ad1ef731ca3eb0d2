package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/rdtkit/internal/config"
	"github.com/Faultbox/rdtkit/internal/logger"
)

// cmdConfig prints the effective configuration and optionally writes it out.
func cmdConfig(a *app, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	save := fs.Bool("save", false, "Write the effective config to the user config dir")
	output := fs.String("o", "", "Write the effective config to this file instead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments", errUsage)
	}

	data, err := yaml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	a.printf("%s", data)

	switch {
	case *output != "":
		if err := a.cfg.SaveTo(*output); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", *output))
	case *save:
		if err := a.cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", filepath.Join(config.ConfigDir(), "config.yaml")))
	}
	return nil
}
