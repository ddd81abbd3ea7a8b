package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blizzard/bfs"
	"github.com/katalvlaran/blizzard/gridgraph"
	"github.com/katalvlaran/blizzard/hazard"
	"github.com/katalvlaran/blizzard/internal/valleygen"
)

const sampleValley = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#`

// load parses s and derives its hazard field.
func load(t testing.TB, s string) (*gridgraph.Grid, *hazard.Field) {
	t.Helper()
	g, err := gridgraph.ParseString(s)
	require.NoError(t, err)
	f, err := hazard.New(g)
	require.NoError(t, err)
	return g, f
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	g, f := load(t, sampleValley)
	other, _ := load(t, sampleValley)
	otherField, err := hazard.New(other)
	require.NoError(t, err)

	cases := []struct {
		name  string
		grid  *gridgraph.Grid
		field *hazard.Field
		start gridgraph.Position
		dep   int
		opts  []bfs.Option
		err   error
	}{
		{"NilGrid", nil, f, g.Entry, 0, nil, bfs.ErrGridNil},
		{"NilField", g, nil, g.Entry, 0, nil, bfs.ErrFieldNil},
		{"ForeignField", g, otherField, g.Entry, 0, nil, bfs.ErrFieldMismatch},
		{"NegativeDepth", g, f, g.Entry, 0, []bfs.Option{bfs.WithMaxDepth(-1)}, bfs.ErrOptionViolation},
		{"NegativeDeparture", g, f, g.Entry, -1, nil, bfs.ErrNegativeDeparture},
		{"DepartureNearMaxInt", g, f, g.Entry, math.MaxInt - 5, nil, bfs.ErrDepartureRange},
		{"StartOnWall", g, f, gridgraph.Position{X: 0, Y: 0}, 0, nil, bfs.ErrPositionNotWalkable},
		{"StartOutside", g, f, gridgraph.Position{X: 1, Y: -1}, 0, nil, bfs.ErrPositionNotWalkable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bfs.Search(tc.grid, tc.field, tc.start, g.Exit, tc.dep, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Sample valley
//----------------------------------------------------------------------------//

// TestSearch_SampleCrossing reproduces the 18-minute crossing of the sample.
func TestSearch_SampleCrossing(t *testing.T) {
	g, f := load(t, sampleValley)
	res, err := bfs.Search(g, f, g.Entry, g.Exit, 0)
	require.NoError(t, err)
	require.Equal(t, 18, res.Arrival)
	require.Equal(t, 18, res.Elapsed())
	require.Equal(t, bfs.State{Pos: g.Exit, Phase: 18 % f.Period()}, res.Final)
	require.Nil(t, res.Route)
	require.LessOrEqual(t, res.Expanded, (g.Width*g.Height+2)*f.Period())
}

// TestSearch_SampleLegs checks the three legs of the return trip one by one.
func TestSearch_SampleLegs(t *testing.T) {
	g, f := load(t, sampleValley)

	back, err := bfs.Search(g, f, g.Exit, g.Entry, 18)
	require.NoError(t, err)
	require.Equal(t, 41, back.Arrival)

	again, err := bfs.Search(g, f, g.Entry, g.Exit, back.Arrival)
	require.NoError(t, err)
	require.Equal(t, 54, again.Arrival)
}

// TestSearch_LargeDeparture departs at the largest accepted minute and
// matches a departure at the same phase near zero.
func TestSearch_LargeDeparture(t *testing.T) {
	g, f := load(t, sampleValley)
	limit := math.MaxInt - g.Cols()*g.Rows()*f.Period()

	far, err := bfs.Search(g, f, g.Entry, g.Exit, limit, bfs.WithReturnPath())
	require.NoError(t, err)
	near, err := bfs.Search(g, f, g.Entry, g.Exit, limit%f.Period())
	require.NoError(t, err)
	require.Equal(t, near.Elapsed(), far.Elapsed())
	require.Equal(t, near.Final, far.Final)
	requireValidRoute(t, g, f, far)

	_, err = bfs.Search(g, f, g.Entry, g.Exit, limit+1)
	require.ErrorIs(t, err, bfs.ErrDepartureRange)
}

// TestSearch_Deterministic runs the same query repeatedly.
func TestSearch_Deterministic(t *testing.T) {
	g, f := load(t, sampleValley)
	first, err := bfs.Search(g, f, g.Entry, g.Exit, 3, bfs.WithReturnPath())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := bfs.Search(g, f, g.Entry, g.Exit, 3, bfs.WithReturnPath())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestSearch_StartIsGoal returns the departure minute without moving.
func TestSearch_StartIsGoal(t *testing.T) {
	g, f := load(t, sampleValley)
	res, err := bfs.Search(g, f, g.Exit, g.Exit, 7, bfs.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 7, res.Arrival)
	require.Equal(t, []bfs.Step{{Pos: g.Exit, Time: 7}}, res.Route)
}

// TestSearch_Route validates every minute of the reconstructed route.
func TestSearch_Route(t *testing.T) {
	g, f := load(t, sampleValley)
	res, err := bfs.Search(g, f, g.Entry, g.Exit, 0, bfs.WithReturnPath())
	require.NoError(t, err)
	requireValidRoute(t, g, f, res)
}

//----------------------------------------------------------------------------//
// Unreachable and limits
//----------------------------------------------------------------------------//

// TestSearch_Unreachable covers valleys whose interior is never free.
func TestSearch_Unreachable(t *testing.T) {
	cases := []struct {
		name   string
		valley string
	}{
		{"StuckHazard", "#.#\n#>#\n#.#"},
		{"PackedRows", "#.##\n#>>#\n#<<#\n##.#"},
		{"PackedColumns", "#.##\n#^v#\n#^v#\n##.#"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, f := load(t, tc.valley)
			_, err := bfs.Search(g, f, g.Entry, g.Exit, 0)
			require.ErrorIs(t, err, bfs.ErrUnreachable)
			// Retrying from another minute yields the same answer.
			_, err = bfs.Search(g, f, g.Entry, g.Exit, 5)
			require.ErrorIs(t, err, bfs.ErrUnreachable)
		})
	}
}

// TestSearch_WaitAtOpenings shows the walker may idle at the entry while the
// only interior cell is blocked, then slip through.
func TestSearch_WaitAtOpenings(t *testing.T) {
	// Two-cell column: the hazard sits on (1,1) at every odd minute.
	g, f := load(t, "#.#\n#.#\n#v#\n#.#")
	res, err := bfs.Search(g, f, g.Entry, g.Exit, 0, bfs.WithReturnPath())
	require.NoError(t, err)
	requireValidRoute(t, g, f, res)
	require.Equal(t, 4, res.Arrival)
	require.Equal(t, g.Entry, res.Route[1].Pos, "must wait at the entry first")
}

// TestSearch_MaxDepth verifies horizon handling.
func TestSearch_MaxDepth(t *testing.T) {
	g, f := load(t, sampleValley)

	_, err := bfs.Search(g, f, g.Entry, g.Exit, 0, bfs.WithMaxDepth(17))
	require.ErrorIs(t, err, bfs.ErrDepthLimit)
	require.NotErrorIs(t, err, bfs.ErrUnreachable)

	res, err := bfs.Search(g, f, g.Entry, g.Exit, 0, bfs.WithMaxDepth(18))
	require.NoError(t, err)
	require.Equal(t, 18, res.Arrival)

	// 0 means no limit.
	res, err = bfs.Search(g, f, g.Entry, g.Exit, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, 18, res.Arrival)
}

//----------------------------------------------------------------------------//
// Hooks and cancellation
//----------------------------------------------------------------------------//

// TestSearch_Hooks asserts that hooks fire in the expected sequence.
func TestSearch_Hooks(t *testing.T) {
	g, f := load(t, "#.#\n#.#\n#.#")
	mid := gridgraph.Position{X: 1, Y: 1}

	var enq, deq, vis []bfs.Step
	res, err := bfs.Search(g, f, g.Entry, g.Exit, 0,
		bfs.WithOnEnqueue(func(p gridgraph.Position, t int) { enq = append(enq, bfs.Step{Pos: p, Time: t}) }),
		bfs.WithOnDequeue(func(p gridgraph.Position, t int) { deq = append(deq, bfs.Step{Pos: p, Time: t}) }),
		bfs.WithOnVisit(func(p gridgraph.Position, t int) error {
			vis = append(vis, bfs.Step{Pos: p, Time: t})
			return nil
		}),
	)
	require.NoError(t, err)

	want := []bfs.Step{{Pos: g.Entry, Time: 0}, {Pos: mid, Time: 1}, {Pos: g.Exit, Time: 2}}
	require.Equal(t, want, enq)
	require.Equal(t, want, deq)
	require.Equal(t, want, vis)
	require.Equal(t, 2, res.Arrival)
	require.Equal(t, 3, res.Expanded)
}

// TestSearch_OnVisitError aborts the search with the hook's error.
func TestSearch_OnVisitError(t *testing.T) {
	g, f := load(t, sampleValley)
	stop := errors.New("stop")
	_, err := bfs.Search(g, f, g.Entry, g.Exit, 0, bfs.WithOnVisit(func(_ gridgraph.Position, t int) error {
		if t == 4 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestSearch_Cancellation verifies that a cancelled context halts the search.
func TestSearch_Cancellation(t *testing.T) {
	g, f := load(t, sampleValley)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Search(g, f, g.Entry, g.Exit, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestSearch_ConcurrentSafety runs searches in parallel over one shared field.
func TestSearch_ConcurrentSafety(t *testing.T) {
	g, f := load(t, sampleValley)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.Search(g, f, g.Entry, g.Exit, 0)
			if err == nil && res.Arrival != 18 {
				err = fmt.Errorf("arrival %d; want 18", res.Arrival)
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}
}

//----------------------------------------------------------------------------//
// Minimality against brute force
//----------------------------------------------------------------------------//

// TestSearch_MatchesBruteForce compares the search with a minute-by-minute
// simulation of every reachable cell on random 4×4 valleys.
func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	for trial := 0; trial < 200; trial++ {
		g, err := valleygen.Random(4, 4,
			valleygen.WithSeed(int64(trial)),
			valleygen.WithDensity(45),
			valleygen.WithRandomOpenings(),
		)
		require.NoError(t, err)
		f, err := hazard.New(g)
		require.NoError(t, err)
		depart := rng.Intn(2 * f.Period())

		want, ok := simulate(g, f, g.Entry, g.Exit, depart)
		res, err := bfs.Search(g, f, g.Entry, g.Exit, depart, bfs.WithReturnPath())
		if !ok {
			require.ErrorIs(t, err, bfs.ErrUnreachable, "trial %d:\n%s", trial, g)
			continue
		}
		require.NoError(t, err, "trial %d:\n%s", trial, g)
		require.Equal(t, want, res.Arrival, "trial %d depart %d:\n%s", trial, depart, g)
		requireValidRoute(t, g, f, res)
	}
}

// simulate advances the set of every cell occupiable at each minute until the
// goal appears. The bound covers every (cell, phase) pair once.
func simulate(g *gridgraph.Grid, f *hazard.Field, start, goal gridgraph.Position, depart int) (int, bool) {
	frontier := map[gridgraph.Position]bool{start: true}
	limit := depart + g.Cols()*g.Rows()*f.Period()
	for t := depart; t <= limit && len(frontier) > 0; t++ {
		if frontier[goal] {
			return t, true
		}
		occ := f.OccupiedAt(t + 1)
		next := make(map[gridgraph.Position]bool)
		for p := range frontier {
			for _, d := range g.NeighborOffsets() {
				q := p.Add(d[0], d[1])
				if g.Walkable(q) && !occ.Has(q) {
					next[q] = true
				}
			}
		}
		frontier = next
	}
	return 0, false
}

// requireValidRoute checks route endpoints, one-minute steps, adjacency and hazard avoidance.
func requireValidRoute(t *testing.T, g *gridgraph.Grid, f *hazard.Field, res *bfs.Result) {
	t.Helper()
	r := res.Route
	require.Len(t, r, res.Elapsed()+1)
	require.Equal(t, bfs.Step{Pos: res.Start, Time: res.Departure}, r[0])
	require.Equal(t, bfs.Step{Pos: res.Goal, Time: res.Arrival}, r[len(r)-1])
	for i := 1; i < len(r); i++ {
		prev, cur := r[i-1], r[i]
		require.Equal(t, prev.Time+1, cur.Time)
		dx, dy := cur.Pos.X-prev.Pos.X, cur.Pos.Y-prev.Pos.Y
		require.LessOrEqual(t, dx*dx+dy*dy, 1, "jump %v -> %v", prev.Pos, cur.Pos)
		require.True(t, g.Walkable(cur.Pos), "wall at %v", cur.Pos)
		require.False(t, f.Occupied(cur.Pos, cur.Time), "hazard at %v minute %d", cur.Pos, cur.Time)
	}
}
