package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a valley in the text format: '#' wall, '.' open cell,
// '^', '>', 'v', '<' an open cell holding one hazard moving up, right, down or left.
// The single gap in the top row is the entry, the single gap in the bottom row the exit.
// Trailing blank lines are ignored; a trailing '\r' on each line is stripped.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, ErrNoEntry, ErrNoExit
// or ErrMalformedWall (wrapped with the offending row and column) on invalid input.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return FromLines(lines)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// FromLines builds a Grid from already split rows.
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	for y, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), cols)
		}
	}
	if rows < 3 || cols < 3 {
		return nil, ErrEmptyGrid
	}

	var (
		entry, exit    Position
		entries, exits int
		hazards        []Hazard
	)
	for y, line := range lines {
		for x, c := range line {
			p := Position{X: x, Y: y}
			border := x == 0 || y == 0 || x == cols-1 || y == rows-1
			switch c {
			case '#':
				if !border {
					return nil, fmt.Errorf("%w: wall inside at %v", ErrMalformedWall, p)
				}
			case '.':
				if !border {
					continue
				}
				switch {
				case x == 0 || x == cols-1:
					return nil, fmt.Errorf("%w: side gap at %v", ErrMalformedWall, p)
				case y == 0:
					entry, entries = p, entries+1
				default:
					exit, exits = p, exits+1
				}
			default:
				d, ok := ParseDirection(c)
				if !ok {
					return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, c, p)
				}
				if border {
					return nil, fmt.Errorf("%w: hazard on border at %v", ErrMalformedWall, p)
				}
				hazards = append(hazards, Hazard{Pos: p, Dir: d})
			}
		}
	}
	if entries != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoEntry, entries)
	}
	if exits != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoExit, exits)
	}

	return NewGrid(cols-2, rows-2, entry, exit, hazards)
}
