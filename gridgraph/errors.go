package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows, no columns, or no interior.
	ErrEmptyGrid = errors.New("gridgraph: grid must have a non-empty interior")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates a glyph outside of "#.^>v<".
	ErrUnknownCell = errors.New("gridgraph: unknown cell glyph")
	// ErrNoEntry indicates the top wall row does not have exactly one gap.
	ErrNoEntry = errors.New("gridgraph: top wall must have exactly one entry gap")
	// ErrNoExit indicates the bottom wall row does not have exactly one gap.
	ErrNoExit = errors.New("gridgraph: bottom wall must have exactly one exit gap")
	// ErrMalformedWall indicates an open side wall, an interior wall, or a hazard on the border.
	ErrMalformedWall = errors.New("gridgraph: walls must form a closed border")
	// ErrBadOpening indicates an entry or exit outside its wall row.
	ErrBadOpening = errors.New("gridgraph: opening must lie on the top or bottom wall row")
	// ErrBadHazard indicates a hazard placed outside the interior.
	ErrBadHazard = errors.New("gridgraph: hazard must start inside the interior")
)
