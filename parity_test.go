package nxncube

import "testing"

func TestDetectParitySolved(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		c, err := NewCube(n)
		if err != nil {
			t.Fatal(err)
		}
		if got := detectParity(c); got != PhaseDone {
			t.Errorf("solved %dx%d: detectParity = %s", n, n, got)
		}
	}
}

func TestDetectParityInvariantUnderOuterTurns(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(ScrambleOuter(30, 21))
	if got := detectParity(c); got != PhaseDone {
		t.Errorf("outer-scrambled 4x4: detectParity = %s", got)
	}
}

func TestDetectEdgeParity(t *testing.T) {
	for _, n := range []int{4, 6} {
		c, err := NewCube(n)
		if err != nil {
			t.Fatal(err)
		}
		c.ApplyMoves(edgeParityMoves(n))
		if !CentersReduced(c) || !EdgesReduced(c) {
			t.Fatalf("%dx%d edge parity state should still be reduced", n, n)
		}
		if got := detectParity(c); got != PhaseEdgeParity {
			t.Errorf("%dx%d: detectParity = %s, want edge parity", n, n, got)
		}
		// Outer turns cannot clear it.
		c.ApplyMoves(ScrambleOuter(20, 17))
		if got := detectParity(c); got != PhaseEdgeParity {
			t.Errorf("%dx%d after outer turns: detectParity = %s", n, n, got)
		}
	}
}

func TestDetectCornerParity(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(cornerParityMoves(4))
	if !CentersReduced(c) || !EdgesReduced(c) {
		t.Fatal("corner parity state should still be reduced")
	}
	if got := detectParity(c); got != PhaseCornerParity {
		t.Errorf("detectParity = %s, want corner parity", got)
	}
}

func TestParityFixesAreInvolutions(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(edgeParityMoves(4))
	c.ApplyMoves(edgeParityMoves(4))
	if !c.IsSolved() {
		t.Error("edge parity fix applied twice should restore a solved cube")
	}

	c2, _ := NewCube(4)
	c2.ApplyMoves(cornerParityMoves(4))
	c2.ApplyMoves(cornerParityMoves(4))
	if !c2.IsSolved() {
		t.Error("corner parity fix applied twice should restore a solved cube")
	}
}

func TestOddCubesNeverReportParity(t *testing.T) {
	c, err := NewCube(5)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(ScrambleOuter(30, 23))
	if got := detectParity(c); got != PhaseDone {
		t.Errorf("5x5: detectParity = %s", got)
	}
}
