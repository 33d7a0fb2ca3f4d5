package nxncube

import (
	"errors"
	"testing"
)

// scriptedThree is a ThreeSolver test double. Each call to SolveLayer3Cross
// pops the next result from the script; every other phase reports done.
type scriptedThree struct {
	script    []PhaseResult
	canDetect bool
	calls     int
}

func (s *scriptedThree) SolveLayer1(*Cube) (PhaseResult, error) { return PhaseDone, nil }
func (s *scriptedThree) SolveLayer2(*Cube) (PhaseResult, error) { return PhaseDone, nil }

func (s *scriptedThree) SolveLayer3Cross(*Cube) (PhaseResult, error) {
	if s.calls < len(s.script) {
		r := s.script[s.calls]
		s.calls++
		return r, nil
	}
	return PhaseDone, nil
}

func (s *scriptedThree) SolveLayer3Corners(*Cube) (PhaseResult, error) { return PhaseDone, nil }
func (s *scriptedThree) CanDetectParity() bool                         { return s.canDetect }

func TestNewSolverOptions(t *testing.T) {
	s := NewSolver(nil)
	if s.cfg.maxAttempts != 3 {
		t.Errorf("default maxAttempts = %d, want 3", s.cfg.maxAttempts)
	}
	if s.cfg.stallLimit != 64 {
		t.Errorf("default stallLimit = %d, want 64", s.cfg.stallLimit)
	}
	if s.cfg.logger == nil {
		t.Error("default logger should not be nil")
	}

	s = NewSolver(nil, WithMaxAttempts(5), WithStallLimit(10))
	if s.cfg.maxAttempts != 5 {
		t.Errorf("maxAttempts = %d, want 5", s.cfg.maxAttempts)
	}
	if s.cfg.stallLimit != 10 {
		t.Errorf("stallLimit = %d, want 10", s.cfg.stallLimit)
	}
}

func TestSolveCleanRun(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(ScrambleOuter(20, 31))
	three := &scriptedThree{canDetect: true}
	sol, err := NewSolver(three).Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", sol.Attempts)
	}
	if len(sol.Parities) != 0 {
		t.Errorf("Parities = %v, want none", sol.Parities)
	}
	if sol.Size != 4 {
		t.Errorf("Size = %d, want 4", sol.Size)
	}
}

func TestSolveRecoversFromEdgeParity(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(edgeParityMoves(4))
	three := &scriptedThree{script: []PhaseResult{PhaseEdgeParity}, canDetect: true}
	sol, err := NewSolver(three).Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", sol.Attempts)
	}
	if len(sol.Parities) != 1 || sol.Parities[0] != PhaseEdgeParity {
		t.Errorf("Parities = %v, want [edge parity]", sol.Parities)
	}
	if !c.IsSolved() {
		t.Error("cube should be solved after edge parity recovery")
	}
}

func TestSolveRecoversFromCornerParity(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(cornerParityMoves(4))
	three := &scriptedThree{script: []PhaseResult{PhaseCornerParity}, canDetect: true}
	sol, err := NewSolver(three).Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Parities) != 1 || sol.Parities[0] != PhaseCornerParity {
		t.Errorf("Parities = %v, want [corner parity]", sol.Parities)
	}
	if !c.IsSolved() {
		t.Error("cube should be solved after corner parity recovery")
	}
}

func TestSolveRepeatedParityIsDefect(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	three := &scriptedThree{script: []PhaseResult{PhaseEdgeParity, PhaseEdgeParity}, canDetect: true}
	if _, err := NewSolver(three).Solve(c); !errors.Is(err, ErrParityRecurred) {
		t.Errorf("error = %v, want ErrParityRecurred", err)
	}
}

func TestSolveAttemptsExhausted(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	three := &scriptedThree{script: []PhaseResult{PhaseEdgeParity, PhaseCornerParity}, canDetect: true}
	if _, err := NewSolver(three, WithMaxAttempts(2)).Solve(c); !errors.Is(err, ErrSolveFailed) {
		t.Errorf("error = %v, want ErrSolveFailed", err)
	}
}

func TestSolveProbesWhenSolverCannotDetect(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(edgeParityMoves(4))
	three := &scriptedThree{canDetect: false}
	sol, err := NewSolver(three).Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", sol.Attempts)
	}
	if len(sol.Parities) != 1 || sol.Parities[0] != PhaseEdgeParity {
		t.Errorf("Parities = %v, want [edge parity]", sol.Parities)
	}
	if !c.IsSolved() {
		t.Error("cube should be solved after probe-driven recovery")
	}
}

func TestSolveProbeFindsCornerParity(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(cornerParityMoves(4))
	three := &scriptedThree{canDetect: false}
	sol, err := NewSolver(three).Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Parities) != 1 || sol.Parities[0] != PhaseCornerParity {
		t.Errorf("Parities = %v, want [corner parity]", sol.Parities)
	}
	if !c.IsSolved() {
		t.Error("cube should be solved after probe-driven recovery")
	}
}

func TestSolveRecordsMoves(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	scramble := Scramble(4, 20, 19)
	c.ApplyMoves(scramble)
	three := &scriptedThree{canDetect: true}
	sol, err := NewSolver(three).Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(c.History()) != len(scramble)+len(sol.Moves) {
		t.Errorf("history has %d moves, want %d scramble + %d solution",
			len(c.History()), len(scramble), len(sol.Moves))
	}
}

func TestSolveOnThreeByThree(t *testing.T) {
	c, err := NewCube(3)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(Scramble(3, 15, 29))
	three := &scriptedThree{canDetect: false}
	sol, err := NewSolver(three).Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Attempts != 1 || len(sol.Parities) != 0 {
		t.Errorf("3x3 solve: attempts %d, parities %v", sol.Attempts, sol.Parities)
	}
}
