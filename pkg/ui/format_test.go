package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{name: "auto format", format: ui.FormatAuto, expected: "auto"},
		{name: "terminal format", format: ui.FormatTerminal, expected: "term"},
		{name: "text format", format: ui.FormatText, expected: "text"},
		{name: "unknown format", format: ui.Format(999), expected: "unknown"},
		{name: "negative format", format: ui.Format(-1), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{name: "parse auto", input: "auto", expected: ui.FormatAuto},
		{name: "empty is auto", input: "", expected: ui.FormatAuto},
		{name: "parse term", input: "term", expected: ui.FormatTerminal},
		{name: "parse terminal", input: "Terminal", expected: ui.FormatTerminal},
		{name: "parse text", input: "text", expected: ui.FormatText},
		{name: "parse plain", input: "plain", expected: ui.FormatText},
		{name: "invalid format", input: "html", expected: ui.FormatAuto, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestDetectFormat_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, &buf))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, &buf))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatText, &buf))
}
