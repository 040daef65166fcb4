// Package rules models the placement rules of an inventory sorting
// configuration.
//
// A rule binds a placement pattern to a category keyword. Patterns address
// the 4x9 slot grid described in package inventory:
//
//   - `a1` - a single tile
//   - `b` - a whole row, left to right
//   - `3` - a whole column, bottom to top
//   - `br`, `3r` - the same row or column in reverse order
//   - `a1-c3` - a rectangle, filled row by row
//   - `a1-c3v` - the same rectangle, filled column by column
//   - `r` - every slot
//
// # Rule Priority
//
// Each pattern has a type, and each type a priority tier. Tiles outrank rows
// and columns, which outrank rectangles and the wildcard. A sorting rule
// takes the lowest priority of its tier; a lock takes the highest one.
// Rules of equal priority keep their declaration order (see SortByPriority).
package rules
