// Package gridgraph defines the immutable description of a walled valley:
// dimensions, wall ring, entry and exit openings, and hazard placements.
package gridgraph

import "fmt"

// Position addresses a cell in full-grid coordinates.
// Column 0, column Width+1, row 0 and row Height+1 form the wall ring;
// the entry sits in row 0 and the exit in row Height+1.
type Position struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Direction is the fixed heading of a hazard.
type Direction int

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Right moves towards column Width+1.
	Right
	// Down moves towards row Height+1.
	Down
	// Left moves towards column 0.
	Left
)

// Delta returns the unit offset of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Glyph returns the character used for d in the text format.
func (d Direction) Glyph() rune {
	switch d {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	}
	return '?'
}

func (d Direction) String() string {
	return string(d.Glyph())
}

// ParseDirection maps one of "^>v<" to a Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// Hazard is a blocker with a cell and a constant heading.
// In a Grid, Pos is the cell occupied at time 0.
type Hazard struct {
	Pos Position
	Dir Direction
}

// Grid describes a valley. It is immutable once built.
// Width and Height are the interior dimensions, excluding the wall ring.
// walls is a row-major bitmap over the full (Width+2)×(Height+2) rectangle.
type Grid struct {
	Width, Height int
	Entry, Exit   Position

	hazards         []Hazard
	walls           []bool
	neighborOffsets [][2]int
}
