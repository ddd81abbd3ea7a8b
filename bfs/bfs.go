// Package bfs provides breadth-first search through time: the nodes are
// (cell, minute) pairs, every edge costs one minute, and cells are blocked
// whenever a hazard occupies them.
//
// Because hazards repeat every Period minutes, two visits to the same cell at
// the same phase (minute mod Period) have identical futures, so each
// (cell, phase) state is expanded at most once.
package bfs

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/blizzard/gridgraph"
	"github.com/katalvlaran/blizzard/hazard"
)

// queueItem pairs a state index with the absolute minute it was reached.
type queueItem struct {
	idx  int
	time int
}

// walker encapsulates mutable search state.
type walker struct {
	grid    *gridgraph.Grid
	field   *hazard.Field
	opts    Options
	ctx     context.Context
	period  int
	goal    gridgraph.Position
	depart  int
	queue   []queueItem
	visited []bool
	parent  []int // nil unless ReturnPath
	limited bool  // a move was dropped by MaxDepth
	res     *Result
}

// Search finds the minimum arrival minute at goal for a walker standing at
// start who may not leave before depart. Each minute the walker either waits
// or moves one cell up, down, left or right; it may never end a minute on a
// wall or on an interior cell occupied by a hazard at that minute. The entry
// and exit are never occupied, so waiting there is always allowed.
//
// Returns ErrGridNil, ErrFieldNil, ErrFieldMismatch, ErrNegativeDeparture,
// ErrDepartureRange, ErrPositionNotWalkable or ErrOptionViolation for invalid input,
// ErrUnreachable when the reachable state space is exhausted,
// ErrDepthLimit when MaxDepth cut the search short, the context error on
// cancellation, or any error returned by the OnVisit hook.
//
// Complexity: O(W×H×Period) time and memory.
func Search(g *gridgraph.Grid, f *hazard.Field, start, goal gridgraph.Position, depart int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if f == nil {
		return nil, ErrFieldNil
	}
	if f.Grid() != g {
		return nil, ErrFieldMismatch
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if depart < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDeparture, depart)
	}
	for _, p := range []gridgraph.Position{start, goal} {
		if !g.Walkable(p) {
			return nil, fmt.Errorf("%w: %v", ErrPositionNotWalkable, p)
		}
	}
	// Hazards only ever remove cells, so static connectivity is necessary.
	if !g.Connected(start, goal) {
		return nil, unreachable(start, goal, depart)
	}

	period := f.Period()
	n := g.Cols() * g.Rows() * period
	// Arrival never exceeds depart + n - 1, so minutes stay representable.
	if depart > math.MaxInt-n {
		return nil, fmt.Errorf("%w: %d > %d", ErrDepartureRange, depart, math.MaxInt-n)
	}
	w := &walker{
		grid:    g,
		field:   f,
		opts:    o,
		ctx:     o.Ctx,
		period:  period,
		goal:    goal,
		depart:  depart,
		queue:   make([]queueItem, 0, g.Cols()*g.Rows()),
		visited: make([]bool, n),
		res: &Result{
			Start:     start,
			Goal:      goal,
			Departure: depart,
		},
	}
	if o.ReturnPath {
		w.parent = make([]int, n)
	}

	// Seed queue with start state (no parent)
	w.enqueue(w.stateIndex(w.stateAt(start, depart)), depart, -1)
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if found < 0 {
		if w.limited {
			return nil, fmt.Errorf("%w: %d minutes from %v to %v after minute %d",
				ErrDepthLimit, o.MaxDepth, start, goal, depart)
		}
		return nil, unreachable(start, goal, depart)
	}
	if o.ReturnPath {
		w.res.Route = w.route(found)
	}

	return w.res, nil
}

func unreachable(start, goal gridgraph.Position, depart int) error {
	return fmt.Errorf("%w: from %v to %v after minute %d", ErrUnreachable, start, goal, depart)
}

// stateAt returns the visited-set key of standing on p at minute t.
func (w *walker) stateAt(p gridgraph.Position, t int) State {
	return State{Pos: p, Phase: t % w.period}
}

// stateIndex flattens s for the visited and parent slices: cell*period + phase.
func (w *walker) stateIndex(s State) int {
	return w.grid.Index(s.Pos)*w.period + s.Phase
}

// state recovers the State of a flat index.
func (w *walker) state(idx int) State {
	return State{Pos: w.grid.Coordinate(idx / w.period), Phase: idx % w.period}
}

// statePos recovers the cell of a flat index.
func (w *walker) statePos(idx int) gridgraph.Position {
	return w.state(idx).Pos
}

// enqueue marks idx visited at minute t, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(idx, t, parent int) {
	w.visited[idx] = true
	if w.parent != nil {
		w.parent[idx] = parent
	}
	w.opts.OnEnqueue(w.statePos(idx), t)
	w.queue = append(w.queue, queueItem{idx: idx, time: t})
}

// loop processes the queue until the goal is dequeued, the queue empties,
// an error occurs, or the context is cancelled. Returns the goal's state index or -1.
func (w *walker) loop() (int, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return -1, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		p := w.statePos(item.idx)
		if err := w.visit(p, item); err != nil {
			return -1, err
		}
		if p == w.goal {
			w.res.Arrival = item.time
			w.res.Final = w.state(item.idx)
			return item.idx, nil
		}
		w.enqueueMoves(p, item)
	}
	return -1, nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Expanded++
	w.opts.OnDequeue(w.statePos(item.idx), item.time)
	return item
}

// visit calls OnVisit.
func (w *walker) visit(p gridgraph.Position, item queueItem) error {
	if err := w.opts.OnVisit(p, item.time); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v minute %d: %w", p, item.time, err)
	}
	return nil
}

// enqueueMoves tries the five moves from p and enqueues every admissible,
// unseen successor state at minute item.time+1.
func (w *walker) enqueueMoves(p gridgraph.Position, item queueItem) {
	next := item.time + 1
	if w.opts.MaxDepth > 0 && next-w.depart > w.opts.MaxDepth {
		w.limited = true
		return
	}
	for _, d := range w.grid.NeighborOffsets() {
		q := p.Add(d[0], d[1])
		if !w.admissible(q, next) {
			continue
		}
		idx := w.stateIndex(w.stateAt(q, next))
		if !w.visited[idx] {
			w.enqueue(idx, next, item.idx)
		}
	}
}

// admissible reports whether the walker may end minute t on q.
func (w *walker) admissible(q gridgraph.Position, t int) bool {
	if !w.grid.Walkable(q) {
		return false
	}
	if w.grid.IsOpening(q) {
		return true
	}
	return !w.field.Occupied(q, t)
}

// route walks parent links back from the goal state.
// Minutes are recovered from the arrival since each link spans one minute.
func (w *walker) route(goalIdx int) []Step {
	steps := make([]Step, w.res.Arrival-w.res.Departure+1)
	t := w.res.Arrival
	for i, at := len(steps)-1, goalIdx; i >= 0; i, at = i-1, w.parent[at] {
		steps[i] = Step{Pos: w.statePos(at), Time: t}
		t--
	}
	return steps
}
