package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"pl0/Rdt", "pl1/Rdt"}, cfg.Data.RoomDirs)
	assert.Equal(t, uint8(0), cfg.Data.Player)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.True(t, cfg.Output.Backup, "backup enabled by default")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
data:
  room_dirs:
    - /games/re2/pl1/Rdt
  player: 1

output:
  format: yaml
  backup: false

logging:
  level: "debug"
  log_file: "rdttool.log"
  max_size_mb: 5
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, configPath))

	assert.Equal(t, []string{"/games/re2/pl1/Rdt"}, cfg.Data.RoomDirs)
	assert.Equal(t, uint8(1), cfg.Data.Player)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.False(t, cfg.Output.Backup)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "rdttool.log", cfg.Logging.LogFile)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)
	// Not present in file, keeps default
	assert.Equal(t, 3, cfg.Logging.MaxBackups)
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
data:
  player: not a number
  invalid syntax here
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	assert.Error(t, loadFromFile(Default(), configPath))
}

func TestLoadFromFileMissing(t *testing.T) {
	assert.Error(t, loadFromFile(Default(), "/nonexistent/path/config.yaml"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"yaml output", func(c *Config) { c.Output.Format = FormatYAML }, true},
		{"unknown format", func(c *Config) { c.Output.Format = "json" }, false},
		{"claire", func(c *Config) { c.Data.Player = 1 }, true},
		{"bad player", func(c *Config) { c.Data.Player = 2 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Data.RoomDirs = []string{"/data/Rdt"}
	cfg.Output.Format = FormatYAML
	require.NoError(t, cfg.SaveTo(path))

	loaded := &Config{}
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, []string{"/data/Rdt"}, loaded.Data.RoomDirs)
	assert.Equal(t, FormatYAML, loaded.Output.Format)
}

func TestSave(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir ignores XDG_CONFIG_HOME on " + runtime.GOOS)
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Data.Player = 1
	require.NoError(t, cfg.Save())

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, filepath.Join(ConfigDir(), "config.yaml")))
	assert.Equal(t, uint8(1), loaded.Data.Player)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir), "ConfigDir should be absolute, got %s", dir)
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	assert.Empty(t, findConfigFile(), "no config exists yet")

	require.NoError(t, os.WriteFile("rdttool.yaml", []byte("output:\n  format: yaml\n"), 0644))
	assert.NotEmpty(t, findConfigFile(), "rdttool.yaml in the current directory")
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "data flag",
			setup: func() { *flagData = "/mnt/re2/pl0/Rdt" },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"/mnt/re2/pl0/Rdt"}, cfg.Data.RoomDirs)
			},
			teardown: func() { *flagData = "" },
		},
		{
			name:  "player flag",
			setup: func() { *flagPlayer = 1 },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, uint8(1), cfg.Data.Player)
			},
			teardown: func() { *flagPlayer = -1 },
		},
		{
			name:  "format flag",
			setup: func() { *flagFormat = FormatYAML },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, FormatYAML, cfg.Output.Format)
			},
			teardown: func() { *flagFormat = "" },
		},
		{
			name: "log file and no-backup flags",
			setup: func() {
				*flagLogFile = "debug.log"
				*flagNoBak = true
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug.log", cfg.Logging.LogFile)
				assert.False(t, cfg.Output.Backup)
			},
			teardown: func() {
				*flagLogFile = ""
				*flagNoBak = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
output:
  format: yaml
logging:
  level: error
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	*flagConfig = configPath
	*flagFormat = FormatText
	defer func() {
		*flagConfig = ""
		*flagFormat = ""
	}()

	cfg, err := Load()
	require.NoError(t, err)

	// Format from flag, not file
	assert.Equal(t, FormatText, cfg.Output.Format)
	// Level from file since no flag override
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	*flagFormat = "xml"
	*flagConfig = filepath.Join(t.TempDir(), "none.yaml")
	defer func() {
		*flagFormat = ""
		*flagConfig = ""
	}()

	// Missing explicit config file is an error
	_, err := Load()
	assert.Error(t, err)

	*flagConfig = ""
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
