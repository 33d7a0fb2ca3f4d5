package nxncube

import (
	"fmt"

	"go.uber.org/zap"
)

// ThreeSolver solves a reduced cube with 3x3 methods, one phase at a time.
// The two layer-3 phases are where reduction parity surfaces: a phase that
// finds a state impossible on a real 3x3 reports it as a PhaseResult
// instead of attempting repair. Implementations that cannot recognize those
// states report false from CanDetectParity and the orchestrator checks for
// them itself.
type ThreeSolver interface {
	SolveLayer1(c *Cube) (PhaseResult, error)
	SolveLayer2(c *Cube) (PhaseResult, error)
	SolveLayer3Cross(c *Cube) (PhaseResult, error)
	SolveLayer3Corners(c *Cube) (PhaseResult, error)
	CanDetectParity() bool
}

// Solution describes a completed solve.
type Solution struct {
	Size     int
	Moves    []Move
	Attempts int
	Parities []PhaseResult // parity signals handled along the way, in order
}

// Solver reduces a big cube and drives a ThreeSolver over the result,
// recovering from reduction parity along the way.
type Solver struct {
	cfg   config
	three ThreeSolver
}

// NewSolver creates a solver around a 3x3 phase solver.
func NewSolver(three ThreeSolver, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{cfg: cfg, three: three}
}

func (s *Solver) reducer(c *Cube) *reducer {
	return &reducer{cube: c, logger: s.cfg.logger, stall: s.cfg.stallLimit}
}

// Reduce builds the cube's centers and pairs its edges so that outer-layer
// turns behave exactly like a 3x3.
func (s *Solver) Reduce(c *Cube) error {
	if err := s.ReduceCenters(c); err != nil {
		return err
	}
	return s.ReduceEdges(c)
}

// ReduceCenters builds every face's center region to a single color.
func (s *Solver) ReduceCenters(c *Cube) error {
	return s.reducer(c).reduceCenters()
}

// ReduceEdges pairs every edge group into a single ordered color pair.
func (s *Solver) ReduceEdges(c *Cube) error {
	return s.reducer(c).reduceEdges()
}

// FixEdgeParity applies the slice sequence that flips one reduced edge.
// It breaks edge pairing, so the caller must re-reduce edges afterwards.
func (s *Solver) FixEdgeParity(c *Cube) {
	c.ApplyMoves(edgeParityMoves(c.Size()))
}

// FixCornerParity applies the slice sequence that swaps one diagonal pair
// of reduced edges, restoring permutation parity. It breaks edge pairing,
// so the caller must re-reduce edges afterwards.
func (s *Solver) FixCornerParity(c *Cube) {
	c.ApplyMoves(cornerParityMoves(c.Size()))
}

// Solve reduces the cube and runs the 3x3 phases, retrying after parity
// fixes. Each parity kind may occur at most once per call; a repeat means
// the fix did not take and is reported as a defect rather than retried.
func (s *Solver) Solve(c *Cube) (*Solution, error) {
	log := s.cfg.logger
	start := len(c.History())

	if err := s.Reduce(c); err != nil {
		return nil, err
	}
	log.Debug("cube reduced", zap.Int("size", c.Size()))

	var parities []PhaseResult
	seen := map[PhaseResult]bool{}

	for attempt := 1; attempt <= s.cfg.maxAttempts; attempt++ {
		res, err := s.runPhases(c)
		if err != nil {
			return nil, err
		}
		if res == PhaseDone {
			hist := c.History()
			return &Solution{
				Size:     c.Size(),
				Moves:    hist[start:],
				Attempts: attempt,
				Parities: parities,
			}, nil
		}

		log.Debug("parity detected", zap.Stringer("kind", res), zap.Int("attempt", attempt))
		if seen[res] {
			return nil, fmt.Errorf("failed to solve: %s seen twice: %w", res, ErrParityRecurred)
		}
		seen[res] = true
		parities = append(parities, res)

		switch res {
		case PhaseEdgeParity:
			s.FixEdgeParity(c)
		case PhaseCornerParity:
			s.FixCornerParity(c)
		}
		if err := s.ReduceEdges(c); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to solve after %d attempts: %w", s.cfg.maxAttempts, ErrSolveFailed)
}

// runPhases drives one full pass of the 3x3 phases and reports the first
// parity signal, if any. For solvers that cannot raise the signals
// themselves a probe runs first and the state inspection stands in for
// them.
func (s *Solver) runPhases(c *Cube) (PhaseResult, error) {
	if !s.three.CanDetectParity() {
		if res, err := s.probeParity(c); err != nil || res != PhaseDone {
			return res, err
		}
	}

	phases := []struct {
		name string
		run  func(*Cube) (PhaseResult, error)
	}{
		{"layer 1", s.three.SolveLayer1},
		{"layer 2", s.three.SolveLayer2},
		{"layer 3 cross", s.three.SolveLayer3Cross},
		{"layer 3 corners", s.three.SolveLayer3Corners},
	}
	for _, ph := range phases {
		res, err := ph.run(c)
		if err != nil {
			return PhaseDone, fmt.Errorf("failed to solve %s: %w", ph.name, err)
		}
		if res != PhaseDone {
			return res, nil
		}
		s.cfg.logger.Debug("phase complete", zap.String("phase", ph.name))
	}
	return PhaseDone, nil
}

// probeParity runs the early phases on a throwaway copy of the state, then
// inspects the result for parity and rolls everything back. The inspection
// counts invariants that outer turns cannot change, so running the phases
// first only mirrors what a detecting solver would see.
func (s *Solver) probeParity(c *Cube) (PhaseResult, error) {
	snap := c.Snapshot()
	defer c.Restore(snap)

	for _, run := range []func(*Cube) (PhaseResult, error){
		s.three.SolveLayer1, s.three.SolveLayer2, s.three.SolveLayer3Cross,
	} {
		if _, err := run(c); err != nil {
			return PhaseDone, fmt.Errorf("failed to probe for parity: %w", err)
		}
	}
	return detectParity(c), nil
}
