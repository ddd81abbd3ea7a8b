// Package trip chains valley crossings into multi-leg trips.
//
// Each leg departs no earlier than the previous leg's arrival; the hazard
// clock keeps running between legs and is never reset. The standard return
// trip is entry → exit → entry → exit.
package trip

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/blizzard/bfs"
	"github.com/katalvlaran/blizzard/gridgraph"
	"github.com/katalvlaran/blizzard/hazard"
)

var (
	// ErrNoLegs is returned when Chain receives an empty leg list.
	ErrNoLegs = errors.New("trip: at least one leg is required")

	// ErrLegFailed wraps the search error of the first leg that could not be completed.
	ErrLegFailed = errors.New("trip: leg failed")
)

// Leg is one crossing from Start to Goal.
type Leg struct {
	Start, Goal gridgraph.Position
}

// LegResult records when a leg departed and arrived.
// Route is filled only when the planner was built with bfs.WithReturnPath.
type LegResult struct {
	Leg
	Departure int
	Arrival   int
	Route     []bfs.Step
}

// Report is the outcome of a chained trip. Arrival is the last leg's arrival.
type Report struct {
	Legs    []LegResult
	Arrival int
}

// Elapsed returns the minutes from the first departure to the final arrival.
func (r *Report) Elapsed() int {
	if len(r.Legs) == 0 {
		return 0
	}
	return r.Arrival - r.Legs[0].Departure
}

// Planner runs legs over one grid and its shared hazard field.
type Planner struct {
	grid  *gridgraph.Grid
	field *hazard.Field
	opts  []bfs.Option
}

// New derives the hazard field of g once; opts are forwarded to every leg's search.
func New(g *gridgraph.Grid, opts ...bfs.Option) (*Planner, error) {
	f, err := hazard.New(g)
	if err != nil {
		return nil, err
	}
	return &Planner{grid: g, field: f, opts: opts}, nil
}

// Field returns the shared hazard field.
func (p *Planner) Field() *hazard.Field { return p.field }

// Chain runs legs in order. The first leg departs no earlier than departAt and
// every later leg no earlier than its predecessor's arrival.
// Returns ErrNoLegs for an empty list, or ErrLegFailed wrapping the search error.
func (p *Planner) Chain(ctx context.Context, legs []Leg, departAt int) (*Report, error) {
	if len(legs) == 0 {
		return nil, ErrNoLegs
	}
	opts := append(append([]bfs.Option{}, p.opts...), bfs.WithContext(ctx))

	rep := &Report{Legs: make([]LegResult, 0, len(legs))}
	clock := departAt
	for i, leg := range legs {
		res, err := bfs.Search(p.grid, p.field, leg.Start, leg.Goal, clock, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: leg %d (%v -> %v) departing %d: %w",
				ErrLegFailed, i, leg.Start, leg.Goal, clock, err)
		}
		rep.Legs = append(rep.Legs, LegResult{
			Leg:       leg,
			Departure: clock,
			Arrival:   res.Arrival,
			Route:     res.Route,
		})
		clock = res.Arrival
	}
	rep.Arrival = clock

	return rep, nil
}

// Crossing is a single entry → exit leg.
func (p *Planner) Crossing(ctx context.Context, departAt int) (*Report, error) {
	return p.Chain(ctx, RoundTripLegs(p.grid, 1), departAt)
}

// RoundTrip runs n legs alternating entry → exit and exit → entry.
// n = 3 is the usual there, back and there again trip.
func (p *Planner) RoundTrip(ctx context.Context, n, departAt int) (*Report, error) {
	return p.Chain(ctx, RoundTripLegs(p.grid, n), departAt)
}

// RoundTripLegs returns n legs alternating between g's entry and exit,
// starting at the entry.
func RoundTripLegs(g *gridgraph.Grid, n int) []Leg {
	legs := make([]Leg, 0, max(n, 0))
	from, to := g.Entry, g.Exit
	for i := 0; i < n; i++ {
		legs = append(legs, Leg{Start: from, Goal: to})
		from, to = to, from
	}
	return legs
}
