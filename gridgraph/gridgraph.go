// Package gridgraph treats a walled valley as a grid graph. It supports:
//
//   - Construction from dimensions, openings and hazards (NewGrid)
//   - Parsing of the "#.^>v<" text format (Parse, ParseString)
//   - Cell classification (wall, interior, opening)
//   - Hazard-free connectivity between walkable cells
//
// The wall ring surrounds the interior; exactly one gap in the top row is the
// entry and one gap in the bottom row is the exit.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid with a closed wall ring broken only at entry and exit.
// It copies hazards to ensure immutability.
// Returns ErrEmptyGrid if width or height is not positive,
// ErrBadOpening if entry is not an interior column of row 0 or exit is not one of row height+1,
// ErrBadHazard if any hazard starts outside the interior.
// Complexity: O((W+2)×(H+2) + len(hazards)).
func NewGrid(width, height int, entry, exit Position, hazards []Hazard) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if entry.Y != 0 || entry.X < 1 || entry.X > width {
		return nil, fmt.Errorf("%w: entry %v", ErrBadOpening, entry)
	}
	if exit.Y != height+1 || exit.X < 1 || exit.X > width {
		return nil, fmt.Errorf("%w: exit %v", ErrBadOpening, exit)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Entry:  entry,
		Exit:   exit,
		// stay first, then N, E, S, W
		neighborOffsets: [][2]int{{0, 0}, {0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}
	for _, h := range hazards {
		if !g.IsInterior(h.Pos) {
			return nil, fmt.Errorf("%w: %v at %v", ErrBadHazard, h.Dir, h.Pos)
		}
	}
	g.hazards = make([]Hazard, len(hazards))
	copy(g.hazards, hazards)

	cols, rows := g.Cols(), g.Rows()
	g.walls = make([]bool, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x == 0 || y == 0 || x == cols-1 || y == rows-1 {
				g.walls[g.index(x, y)] = true
			}
		}
	}
	g.walls[g.index(entry.X, entry.Y)] = false
	g.walls[g.index(exit.X, exit.Y)] = false

	return g, nil
}

// Cols returns the full width including both side walls.
func (g *Grid) Cols() int { return g.Width + 2 }

// Rows returns the full height including the top and bottom walls.
func (g *Grid) Rows() int { return g.Height + 2 }

// Hazards returns a copy of the hazard placements at time 0, in input order.
func (g *Grid) Hazards() []Hazard {
	out := make([]Hazard, len(g.hazards))
	copy(out, g.hazards)
	return out
}

// HazardCount returns the number of hazards without copying them.
func (g *Grid) HazardCount() int { return len(g.hazards) }

// InBounds reports whether p lies within the full rectangle, walls included.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Cols() && p.Y >= 0 && p.Y < g.Rows()
}

// IsWall reports whether p is a wall cell. Out-of-bounds positions count as walls.
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.walls[g.index(p.X, p.Y)]
}

// IsInterior reports whether p lies strictly inside the wall ring.
func (g *Grid) IsInterior(p Position) bool {
	return p.X >= 1 && p.X <= g.Width && p.Y >= 1 && p.Y <= g.Height
}

// IsOpening reports whether p is the entry or the exit.
func (g *Grid) IsOpening(p Position) bool {
	return p == g.Entry || p == g.Exit
}

// Walkable reports whether p can ever be stood on, ignoring hazards.
func (g *Grid) Walkable(p Position) bool {
	return g.InBounds(p) && !g.IsWall(p)
}

// NeighborOffsets returns the move offsets: stay, up, right, down, left.
// Callers must not modify the returned slice.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// index maps (x,y) to a row-major index over the full rectangle: y*Cols + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Cols() + x
}

// Index returns the row-major index of p over the full rectangle.
func (g *Grid) Index(p Position) int {
	return g.index(p.X, p.Y)
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.Cols(), Y: idx / g.Cols()}
}

// String renders g in the text format with hazards at their starting cells.
// Cells shared by several hazards are rendered as their count.
func (g *Grid) String() string {
	return g.Render(g.hazards)
}

// Render draws g with the given hazard placements instead of the starting ones.
func (g *Grid) Render(hazards []Hazard) string {
	counts := make(map[Position]int, len(hazards))
	glyphs := make(map[Position]rune, len(hazards))
	for _, h := range hazards {
		counts[h.Pos]++
		glyphs[h.Pos] = h.Dir.Glyph()
	}

	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p := Position{X: x, Y: y}
			switch n := counts[p]; {
			case g.IsWall(p):
				sb.WriteByte('#')
			case n == 1:
				sb.WriteRune(glyphs[p])
			case n > 9:
				sb.WriteByte('*')
			case n > 1:
				sb.WriteByte(byte('0' + n))
			default:
				sb.WriteByte('.')
			}
		}
		if y < g.Rows()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
