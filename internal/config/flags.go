package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagData    = flag.String("data", "", "Room directory (overrides data.room_dirs)")
	flagPlayer  = flag.Int("player", -1, "Default player for room lookups (0 Leon, 1 Claire)")
	flagFormat  = flag.String("format", "", "Output format: yaml or text")
	flagLogFile = flag.String("log-file", "", "Write logs to this file")
	flagNoBak   = flag.Bool("no-backup", false, "Don't keep a .bak copy when rewriting files")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagData != "" {
		cfg.Data.RoomDirs = []string{*flagData}
	}
	if *flagPlayer >= 0 {
		cfg.Data.Player = uint8(*flagPlayer)
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagNoBak {
		cfg.Output.Backup = false
	}
}
