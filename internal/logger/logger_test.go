package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "rdttool.log")

	// 1MB is the smallest size lumberjack allows
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}

	require.NoError(t, InitWithFileConfig("debug", cfg, false))
	defer Sync()

	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("section %d: %s", i, longMessage)
	}
	Sync()

	assert.FileExists(t, logFile)

	files, err := os.ReadDir(tempDir)
	require.NoError(t, err)

	var rotated []string
	for _, f := range files {
		if f.Name() != "rdttool.log" && strings.HasPrefix(f.Name(), "rdttool") {
			rotated = append(rotated, f.Name())
		}
	}

	require.NotEmpty(t, rotated, "no rotated files found")
	for _, name := range rotated {
		// rdttool-YYYY-MM-DDTHH-MM-SS.SSS.log
		assert.Contains(t, name, "-20", "rotated file timestamp")
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			require.NoError(t, InitWithFileConfig(tt.level, DefaultFileConfig(logFile), false))

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)

			for _, exp := range tt.expected {
				assert.Contains(t, string(content), exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, string(content), exc)
			}
		})
	}
}

func TestInvalidLevel(t *testing.T) {
	assert.Error(t, InitWithFileConfig("verbose", FileConfig{}, false))
	assert.NoError(t, InitWithFileConfig("", FileConfig{}, false), "empty level means info")
}

func TestRoomLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "room.log")
	require.NoError(t, InitWithFileConfig("info", DefaultFileConfig(logFile), false))

	Room("ROOM10C0.RDT").Warn("truncated function", zap.Int("function", 3))
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	for _, want := range []string{"ROOM10C0.RDT", "truncated function", `"function": 3`, "logger_test.go"} {
		assert.Contains(t, string(content), want)
	}
}

func TestLoggingBeforeInit(t *testing.T) {
	Log = zap.NewNop()
	Sugar = Log.Sugar()

	assert.NotPanics(t, func() {
		Info("ignored")
		Sugar.Debugf("ignored %d", 1)
		Sync()
	})
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/rdttool.log")

	assert.Equal(t, FileConfig{
		Path:       "/tmp/rdttool.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 30,
		Compress:   false,
	}, cfg)
}
