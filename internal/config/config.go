// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds game data locations.
type DataConfig struct {
	RoomDirs []string `yaml:"room_dirs"` // Directories searched for ROOMsrrp.RDT files
	Player   uint8    `yaml:"player"`    // Default player for room lookups
}

// OutputConfig holds command output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "yaml" or "text"
	Backup bool   `yaml:"backup"` // Keep a .bak copy when rewriting a room file
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Output formats.
const (
	FormatYAML = "yaml"
	FormatText = "text"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			RoomDirs: []string{"pl0/Rdt", "pl1/Rdt"},
			Player:   0,
		},
		Output: OutputConfig{
			Format: FormatText,
			Backup: true,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
