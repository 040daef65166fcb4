package rules

// Type classifies a pattern by how specific it is
type Type int

// Pattern types, least specific first
const (
	Rectangle Type = iota
	Row
	Column
	Tile
)

// TierSize is the width of the priority band of each tier
const TierSize = 1000000

// String returns the lower-case name of the type
func (t Type) String() string {
	switch t {
	case Rectangle:
		return "rectangle"
	case Row:
		return "row"
	case Column:
		return "column"
	case Tile:
		return "tile"
	default:
		return "unknown"
	}
}

// Tier returns the specificity tier of the type. Rows and columns share a
// tier.
func (t Type) Tier() int {
	switch t {
	case Tile:
		return 3
	case Row, Column:
		return 2
	default:
		return 1
	}
}

// LowestPriority is the priority given to sorting rules of this type
func (t Type) LowestPriority() int {
	return t.Tier() * TierSize
}

// HighestPriority is the priority given to locks of this type
func (t Type) HighestPriority() int {
	return (t.Tier()+1)*TierSize - 1
}
