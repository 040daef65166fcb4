package rules

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/inventory"
)

const (
	reverseFlag  = 'r'
	verticalFlag = 'v'
)

// Grammar of placement tokens, unanchored so that line classifiers can
// embed them
const (
	CellGrammar  = `([a-d]|[1-9]|[r]){1,2}`
	RangeGrammar = `[a-d][1-9]-[a-d][1-9]v?`
)

var (
	cellPattern  = regexp.MustCompile(`^` + CellGrammar + `$`)
	rangePattern = regexp.MustCompile(`^` + RangeGrammar + `$`)
)

// IsPattern reports whether token is written in the placement grammar
func IsPattern(token string) bool {
	return cellPattern.MatchString(token) || rangePattern.MatchString(token)
}

// Placement is a resolved pattern: its type and the slots it covers in fill
// order
type Placement struct {
	Type      Type
	Positions []int
}

// ParsePattern resolves a placement pattern to the slots it covers
func ParsePattern(pattern string) (Placement, error) {
	pattern = strings.ToLower(pattern)
	if !IsPattern(pattern) {
		return Placement{}, errors.Newf(errors.ErrInvalidPattern, "invalid placement pattern %q", pattern).
			WithDetail("pattern", pattern)
	}

	if strings.Contains(pattern, "-") {
		return parseRange(pattern), nil
	}
	return parseCells(pattern), nil
}

// parseRange resolves "a1-c3" and "a1-c3v". The walk starts at the first
// cell and heads towards the second one on both axes.
func parseRange(pattern string) Placement {
	vertical := pattern[len(pattern)-1] == verticalFlag
	pattern = strings.TrimSuffix(pattern, string(verticalFlag))
	cells := strings.Split(pattern, "-")

	row1, col1 := int(cells[0][0]-'a'), int(cells[0][1]-'1')
	row2, col2 := int(cells[1][0]-'a'), int(cells[1][1]-'1')
	rows := walk(row1, row2)
	cols := walk(col1, col2)

	positions := make([]int, 0, len(rows)*len(cols))
	if vertical {
		for _, c := range cols {
			for _, r := range rows {
				positions = append(positions, inventory.Index(r, c))
			}
		}
	} else {
		for _, r := range rows {
			for _, c := range cols {
				positions = append(positions, inventory.Index(r, c))
			}
		}
	}

	return Placement{Type: Rectangle, Positions: positions}
}

// parseCells resolves tiles, rows, columns and the wildcard. When a pattern
// names two rows or two columns the last one wins.
func parseCells(pattern string) Placement {
	row, column := -1, -1
	reverse := false
	for _, c := range pattern {
		switch {
		case c >= '1' && c <= '9':
			column = int(c - '1')
		case c >= 'a' && c <= 'd':
			row = int(c - 'a')
		case c == reverseFlag:
			reverse = true
		}
	}

	switch {
	case row != -1 && column != -1:
		return Placement{Type: Tile, Positions: []int{inventory.Index(row, column)}}

	case row != -1:
		positions := make([]int, inventory.Columns)
		for i := range positions {
			c := i
			if reverse {
				c = inventory.Columns - 1 - i
			}
			positions[i] = inventory.Index(row, c)
		}
		return Placement{Type: Row, Positions: positions}

	case column != -1:
		// Columns fill from the bottom row up unless reversed
		positions := make([]int, inventory.Rows)
		for i := range positions {
			r := inventory.Rows - 1 - i
			if reverse {
				r = i
			}
			positions[i] = inventory.Index(r, column)
		}
		return Placement{Type: Column, Positions: positions}

	default:
		positions := make([]int, inventory.Size)
		for i := range positions {
			positions[i] = i
		}
		return Placement{Type: Rectangle, Positions: positions}
	}
}

func walk(from, to int) []int {
	step := 1
	if from > to {
		step = -1
	}
	var out []int
	for i := from; ; i += step {
		out = append(out, i)
		if i == to {
			return out
		}
	}
}
