package nxncube

import "errors"

// Geometry errors
var (
	// ErrInvalidSize indicates a cube size below 2.
	ErrInvalidSize = errors.New("nxncube: cube size must be at least 2")

	// ErrSameFace indicates a translation or commutation between a face
	// and itself.
	ErrSameFace = errors.New("nxncube: source and target face are the same")

	// ErrNoSharedSlice indicates two faces with no slice cycle in common.
	ErrNoSharedSlice = errors.New("nxncube: faces share no slice cycle")

	// ErrPointOutOfRange indicates a grid point outside the face.
	ErrPointOutOfRange = errors.New("nxncube: point outside face grid")
)

// Move errors
var (
	// ErrInvalidMove indicates unparseable move notation.
	ErrInvalidMove = errors.New("nxncube: invalid move notation")
)

// Commutator errors
var (
	// ErrPieceUnmovable indicates a block that overlaps both of its
	// quarter-turn images, which only the exact center cell of an odd
	// cube does.
	ErrPieceUnmovable = errors.New("nxncube: piece cannot be commutated from its position")

	// ErrBlockNotMovable indicates a block whose insertion cannot be made
	// exact, typically one hugging the wrong face edge.
	ErrBlockNotMovable = errors.New("nxncube: block cannot be moved exactly")
)

// Solve errors
var (
	// ErrReductionStalled indicates the reducer stopped making progress
	// before the phase completed.
	ErrReductionStalled = errors.New("nxncube: reduction stalled")

	// ErrParityRecurred indicates the same parity appeared twice within
	// one solve attempt after its fix was applied.
	ErrParityRecurred = errors.New("nxncube: parity recurred after fix")

	// ErrSolveFailed indicates all solve attempts were exhausted.
	ErrSolveFailed = errors.New("nxncube: solve attempts exhausted")
)
