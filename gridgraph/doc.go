// Package gridgraph describes a walled valley as an immutable grid,
// the static half of a traversal under moving hazards.
//
// What:
//
//   - Grid holds the interior Width×Height, the wall ring, the Entry and Exit
//     openings and the hazard placements at time 0.
//   - Parse / ParseString / FromLines read the "#.^>v<" text format.
//   - ConnectedComponents and Connected flood-fill walkable cells, ignoring hazards.
//   - Render draws the valley with any hazard placement (stacked hazards as a digit).
//
// Coordinates:
//
//   - Position{X, Y} uses full-grid coordinates: walls at X=0, X=Width+1, Y=0, Y=Height+1.
//   - Interior cells are 1..Width × 1..Height.
//   - Entry lies on row 0, Exit on row Height+1; neither is ever a wall.
//
// Complexity:
//
//   - NewGrid, Parse:       O((W+2)×(H+2)), Memory: O((W+2)×(H+2)).
//   - ConnectedComponents:  O(W×H), Memory: O(W×H).
//   - Connected:            O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows, no columns, or no interior.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: glyph outside "#.^>v<".
//   - ErrNoEntry / ErrNoExit: top or bottom row gap count differs from one.
//   - ErrMalformedWall: open side wall, interior wall, or hazard on the border.
//   - ErrBadOpening / ErrBadHazard: NewGrid arguments outside their allowed rows or cells.
package gridgraph
