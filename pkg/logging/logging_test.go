package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("INVTWEAKS_STATE_DIR", "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "invtweaks", "invtweaks.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestApplyLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	defer baseLevel.Store(baseLevel.Load())

	baseLevel.Store(int32(zerolog.WarnLevel))
	ApplyLevel(zerolog.InfoLevel)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	// a quieter level returns to the command line level
	ApplyLevel(zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// never quieter than the command line asked for
	baseLevel.Store(int32(zerolog.DebugLevel))
	ApplyLevel(zerolog.WarnLevel)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	ApplyLevel(zerolog.InfoLevel)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	defer func() { log.Logger = previous }()
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("config.loader")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"config.loader"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(zerolog.New(&buf), "load")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "duration")
}
