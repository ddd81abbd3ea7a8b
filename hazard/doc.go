// Package hazard computes where the moving hazards of a valley are at any minute.
//
// Every hazard travels one cell per minute in its fixed direction and wraps
// around inside the interior, never touching the wall ring. Its column after t
// minutes is an affine function of t modulo Width and its row one modulo Height,
// so the whole configuration repeats with
//
//	Period = lcm(Width, Height)
//
// and OccupiedAt(t) == OccupiedAt(t + Period) for every t ≥ 0.
//
// Field answers occupancy in closed form. Per-phase occupancy bitmaps
// (phase = t mod Period) are built lazily on first use and kept forever;
// the cache is guarded by a mutex, so one Field may serve concurrent searches.
//
// Complexity:
//
//   - PositionAt:            O(1).
//   - OccupiedAt, At:        O(K) for K hazards.
//   - Occupied:              O(1) amortised, O(K) on the first query of a phase.
//   - Memory:                O(W×H) per cached phase, at most Period phases.
//
// Errors:
//
//   - ErrNilGrid: New called with a nil grid.
//   - ErrNegativeTime: a checked query received t < 0.
package hazard
