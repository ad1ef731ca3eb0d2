// rdttool is a CLI utility for inspecting and editing room (RDT) files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/rdtkit/internal/config"
	"github.com/Faultbox/rdtkit/internal/logger"
)

// errUsage is returned by commands that were given the wrong arguments.
var errUsage = errors.New("invalid arguments")

type command struct {
	name    string
	aliases []string
	usage   string
	run     func(a *app, args []string) error
}

var commands = []command{
	{"info", nil, "info <room>                              Show header and section layout", cmdInfo},
	{"list", []string{"ls"}, "list [-stage n] [pattern]                List rooms in the configured directories", cmdList},
	{"extract", []string{"x"}, "extract [-all] <room> <section> [output]  Write a section's bytes to a file", cmdExtract},
	{"replace", nil, "replace [-o out] [-remove] <room> <section> [file]  Replace, insert or remove a section", cmdReplace},
	{"scripts", nil, "scripts [-init] [-f n] <room>            Disassemble script functions", cmdScripts},
	{"collision", nil, "collision <room>                         Show colliders", cmdCollision},
	{"floors", nil, "floors <room>                            Show floor regions", cmdFloors},
	{"animations", []string{"anim"}, "animations [-plw] <room|file.plw>        Show animation sets", cmdAnimations},
	{"dump", nil, "dump <room>                              Decode the whole room", cmdDump},
	{"verify", nil, "verify [room...]                         Check that rooms parse and re-serialize unchanged", cmdVerify},
	{"config", nil, "config [-save] [-o file]                 Show the effective config, optionally saving it", cmdConfig},
}

// app carries the loaded configuration and output stream through commands.
type app struct {
	cfg *config.Config
	out io.Writer
}

func main() {
	config.ParseFlags()
	args := config.Args()

	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
		fileCfg.MaxBackups = cfg.Logging.MaxBackups
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := &app{cfg: cfg, out: os.Stdout}
	if err := a.run(args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		logger.Fatal("command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func (a *app) run(name string, args []string) error {
	switch name {
	case "help", "-h", "--help":
		printUsage(a.out)
		return nil
	}

	for _, c := range commands {
		if c.name == name || slices.Contains(c.aliases, name) {
			logger.Debug("running command", zap.String("command", c.name), zap.Strings("args", args))
			return c.run(a, args)
		}
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `rdttool - room file utility

Usage:
  rdttool [global options] <command> [options]

Global options:
  -config <file>   Config file (default ./rdttool.yaml or the user config dir)
  -data <dir>      Room directory
  -player <n>      Player for short room IDs (0 Leon, 1 Claire)
  -format <fmt>    Output format: text or yaml
  -debug           Enable debug logging
  -log-file <file> Also log to a rotating file
  -no-backup       Don't keep a .bak copy when rewriting files

Commands:`)
	for _, c := range commands {
		fmt.Fprintf(w, "  %s\n", c.usage)
	}
	fmt.Fprintln(w, `
A room is a file path, a file name like ROOM10C0.RDT, or an ID like 10C0 or 10C.

Examples:
  rdttool -data pl0/Rdt info 1000
  rdttool extract ROOM10C0.RDT Collision col.bin
  rdttool replace ROOM10C0.RDT Collision col.bin
  rdttool -format yaml scripts 10C0`)
}
