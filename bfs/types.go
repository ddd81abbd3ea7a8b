// Package bfs provides tunable options and error definitions
// for breadth-first search through a valley whose hazards move with time.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/blizzard/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrFieldNil is returned if a nil hazard field is passed.
	ErrFieldNil = errors.New("bfs: hazard field is nil")

	// ErrFieldMismatch is returned when the field was derived from another grid.
	ErrFieldMismatch = errors.New("bfs: hazard field belongs to a different grid")

	// ErrNegativeDeparture is returned for a departure time below zero.
	ErrNegativeDeparture = errors.New("bfs: departure time must be non-negative")

	// ErrDepartureRange is returned when depart is so large that a minute of
	// the search could overflow int.
	ErrDepartureRange = errors.New("bfs: departure time out of range")

	// ErrPositionNotWalkable is returned when start or goal is a wall or out of bounds.
	ErrPositionNotWalkable = errors.New("bfs: position is not walkable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned when every reachable (cell, phase) state
	// has been expanded without reaching the goal.
	ErrUnreachable = errors.New("bfs: goal unreachable")

	// ErrDepthLimit is returned when the goal was not reached within MaxDepth
	// minutes but the state space was not exhausted.
	ErrDepthLimit = errors.New("bfs: goal not reached within depth limit")
)

// State is the visited-set key of the search: a cell and the hazard phase
// (minute modulo the field period) at which it is occupied.
type State struct {
	Pos   gridgraph.Position
	Phase int
}

// Step is one minute of a route: the cell occupied at absolute minute Time.
type Step struct {
	Pos  gridgraph.Position
	Time int
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize search execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, with its absolute minute.
	OnEnqueue func(p gridgraph.Position, t int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(p gridgraph.Position, t int)

	// OnVisit is called when visiting a state. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(p gridgraph.Position, t int) error

	// MaxDepth, if > 0, stops exploring more than MaxDepth minutes after departure.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// ReturnPath records parent links so Result.Route is filled in.
	ReturnPath bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no route reconstruction
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Position, int) {},
		OnDequeue: func(gridgraph.Position, int) {},
		OnVisit:   func(gridgraph.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p gridgraph.Position, t int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p gridgraph.Position, t int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(p gridgraph.Position, t int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search to d minutes after departure.
//
//	d > 0: limit to d minutes
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithReturnPath enables route reconstruction in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// Result holds the outcome of a search:
//   - Start, Goal: the requested endpoints.
//   - Departure: the earliest allowed departure minute.
//   - Arrival: the first minute at which Goal is occupied.
//   - Expanded: number of states dequeued.
//   - Final: the state in which Goal was dequeued, i.e. Goal at Arrival mod Period.
//   - Route: one Step per minute from Departure to Arrival (WithReturnPath only).
type Result struct {
	Start, Goal gridgraph.Position
	Departure   int
	Arrival     int
	Expanded    int
	Final       State
	Route       []Step
}

// Elapsed returns the minutes spent between departure and arrival.
func (r *Result) Elapsed() int {
	return r.Arrival - r.Departure
}
