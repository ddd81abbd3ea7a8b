package hazard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/blizzard/gridgraph"
)

var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("hazard: grid is nil")

	// ErrNegativeTime is returned by checked queries for t < 0.
	ErrNegativeTime = errors.New("hazard: time must be non-negative")
)

// Set is a collection of occupied interior cells.
type Set map[gridgraph.Position]struct{}

// Has reports whether p is in the set.
func (s Set) Has(p gridgraph.Position) bool {
	_, ok := s[p]
	return ok
}

// Field maps a minute to the cells blocked by hazards at that minute.
// It is read-only after New apart from its internal phase cache.
type Field struct {
	grid   *gridgraph.Grid
	period int

	mu     sync.RWMutex
	phases [][]bool // phase -> interior bitmap, nil until first use
}

// New derives the hazard field of g.
// Complexity: O(1); phase bitmaps are computed on demand.
func New(g *gridgraph.Grid) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Field{
		grid:   g,
		period: lcm(g.Width, g.Height),
		phases: make([][]bool, lcm(g.Width, g.Height)),
	}, nil
}

// Grid returns the grid the field was derived from.
func (f *Field) Grid() *gridgraph.Grid { return f.grid }

// Period returns lcm(Width, Height), the length of the occupancy cycle.
func (f *Field) Period() int { return f.period }

// Phase reduces t to its position within the cycle.
func (f *Field) Phase(t int) int { return t % f.period }

// PositionAt returns where h is after t minutes.
// Each coordinate wraps independently within the interior; walls are excluded
// from the modulus domain. t is reduced per axis first so large times never overflow.
// Panics if t < 0.
func (f *Field) PositionAt(h gridgraph.Hazard, t int) gridgraph.Position {
	if t < 0 {
		panic(fmt.Sprintf("hazard: PositionAt(%d): negative time", t))
	}
	w, hh := f.grid.Width, f.grid.Height
	dx, dy := h.Dir.Delta()
	return gridgraph.Position{
		X: 1 + mod(h.Pos.X-1+dx*(t%w), w),
		Y: 1 + mod(h.Pos.Y-1+dy*(t%hh), hh),
	}
}

// At returns every hazard moved to its cell at minute t, in grid order.
func (f *Field) At(t int) []gridgraph.Hazard {
	hz := f.grid.Hazards()
	for i := range hz {
		hz[i].Pos = f.PositionAt(hz[i], t)
	}
	return hz
}

// OccupiedAt returns the interior cells holding at least one hazard at minute t.
// Several hazards on one cell collapse to a single entry.
// Panics if t < 0; see OccupiedAtChecked.
func (f *Field) OccupiedAt(t int) Set {
	hz := f.grid.Hazards()
	out := make(Set, len(hz))
	for _, h := range hz {
		out[f.PositionAt(h, t)] = struct{}{}
	}
	return out
}

// OccupiedAtChecked is OccupiedAt returning ErrNegativeTime instead of panicking.
func (f *Field) OccupiedAtChecked(t int) (Set, error) {
	if t < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTime, t)
	}
	return f.OccupiedAt(t), nil
}

// Occupied reports whether interior cell p holds a hazard at minute t.
// Cells outside the interior, the entry and exit included, are never occupied.
// Panics if t < 0.
func (f *Field) Occupied(p gridgraph.Position, t int) bool {
	if !f.grid.IsInterior(p) {
		return false
	}
	if t < 0 {
		panic(fmt.Sprintf("hazard: Occupied(%v, %d): negative time", p, t))
	}
	bitmap := f.phase(f.Phase(t))
	return bitmap[(p.Y-1)*f.grid.Width+(p.X-1)]
}

// phase returns the cached bitmap for phase ph, building it on first use.
// Built bitmaps are never replaced, so readers only share the read lock.
func (f *Field) phase(ph int) []bool {
	f.mu.RLock()
	b := f.phases[ph]
	f.mu.RUnlock()
	if b != nil {
		return b
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if b = f.phases[ph]; b != nil {
		return b
	}
	w := f.grid.Width
	b = make([]bool, w*f.grid.Height)
	for p := range f.OccupiedAt(ph) {
		b[(p.Y-1)*w+(p.X-1)] = true
	}
	f.phases[ph] = b
	return b
}

// Cached returns how many phases have been materialised so far.
func (f *Field) Cached() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, b := range f.phases {
		if b != nil {
			n++
		}
	}
	return n
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
