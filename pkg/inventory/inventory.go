// Package inventory describes the slot grid that rules are written against.
//
// The grid has four rows (a to d, top to bottom) of nine columns (1 to 9).
// Slot indices are row-major: a1 is 0, a9 is 8, d9 is 35.
package inventory

import "fmt"

const (
	// Rows is the number of rows in the grid (a-d)
	Rows = 4

	// Columns is the number of slots per row (1-9)
	Columns = 9

	// Size is the number of slots addressable by a rule
	Size = Rows * Columns
)

// Inventory is the collaborator that sizes the locked-slot table
type Inventory interface {
	Capacity() int
}

// Fixed is an inventory of a constant capacity
type Fixed int

// Capacity returns the slot count
func (f Fixed) Capacity() int { return int(f) }

// Default is the standard 36-slot inventory
var Default Inventory = Fixed(Size)

// Index returns the slot index of the given zero-based row and column
func Index(row, column int) int {
	return row*Columns + column
}

// SlotName returns the cell name of a slot index ("a1", "d9")
func SlotName(index int) string {
	if index < 0 || index >= Size {
		return fmt.Sprintf("#%d", index)
	}
	return fmt.Sprintf("%c%d", 'a'+index/Columns, index%Columns+1)
}
