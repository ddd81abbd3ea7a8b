// Package bfs finds the fastest way through a valley whose hazards move
// every minute, as a breadth-first search over (cell, minute) pairs.
//
// What
//
//   - Search(g, f, start, goal, depart) returns the first minute ≥ depart at
//     which the walker can stand on goal.
//   - Each minute the walker waits or steps up, down, left or right. It may not
//     end a minute on a wall or on an interior cell a hazard occupies at that minute.
//   - The entry and exit lie outside the interior and are never occupied, so
//     waiting there is always admissible.
//   - Returns a Result containing:
//   - Arrival, Departure, Elapsed(): the timing of the crossing
//   - Expanded: number of states taken off the queue
//   - Route: one Step per minute (with WithReturnPath)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Termination
//
//	Hazard occupancy repeats every Period = lcm(W, H) minutes, so the visited
//	set is keyed by State{cell, minute mod Period}. There are at most
//	(W×H + 2) × Period such states; each is expanded at most once, and the
//	goal is detected when first dequeued. BFS dequeues minutes in
//	non-decreasing order, so the first dequeue of goal is the earliest arrival.
//	An empty queue without the goal means ErrUnreachable.
//
// Determinism
//
//	Moves are tried in the fixed order stay, up, right, down, left, so the
//	visit sequence and the reconstructed route are fully reproducible.
//
// Complexity (W×H interior, P = Period)
//
//   - Time:   O(W×H×P)
//   - Memory: O(W×H×P)   (visited flags, parent links with WithReturnPath)
//
// Usage
//
//	f, _ := hazard.New(g)
//	res, err := bfs.Search(g, f, g.Entry, g.Exit, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithReturnPath(),
//	)
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // no departure after minute 0 ever gets through
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no route.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithMaxDepth(d):       stop exploring more than d minutes after departure.
//   - WithReturnPath():      reconstruct the route.
//   - WithOnEnqueue(fn):     hook when a state is enqueued.
//   - WithOnDequeue(fn):     hook immediately before visiting a state.
//   - WithOnVisit(fn):       hook during visit; returning error aborts the search.
//
// Errors
//
//   - ErrGridNil, ErrFieldNil     if a nil pointer is passed.
//   - ErrFieldMismatch            if the field was derived from another grid.
//   - ErrNegativeDeparture        if depart < 0.
//   - ErrDepartureRange           if depart + (W+2)×(H+2)×Period would overflow int.
//   - ErrPositionNotWalkable      if start or goal is a wall or out of bounds.
//   - ErrOptionViolation          if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreachable              if the reachable state space holds no goal state.
//   - ErrDepthLimit               if MaxDepth stopped the search first.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
