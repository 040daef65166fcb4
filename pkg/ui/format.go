// Package ui renders configuration reports for the terminal.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how reports are drawn
type Format int

// Report formats. FormatAuto is settled by Resolve before rendering.
const (
	FormatAuto Format = iota
	FormatTerminal
	FormatText
)

var formatNames = [...]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
}

// formatAliases maps every accepted spelling of output.format
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat reads an output.format setting, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown report format: %s", s)
}

// DetectFormat picks styled output only for a colour-capable terminal that
// NO_COLOR does not opt out of.
func DetectFormat(output *os.File) Format {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return FormatText
	case !isTerminal(output):
		return FormatText
	case termenv.ColorProfile() == termenv.Ascii:
		return FormatText
	}
	return FormatTerminal
}

// Resolve settles FormatAuto for w. Anything but a file gets plain text.
func Resolve(format Format, w io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	return DetectFormat(file)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
