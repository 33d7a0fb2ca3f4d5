package nxncube

import (
	"errors"
	"testing"
)

func cubesEqual(a, b *Cube) bool {
	if a.Size() != b.Size() {
		return false
	}
	n := a.Size()
	for _, f := range Faces {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				p := Point{Row: r, Col: c}
				if a.At(f, p) != b.At(f, p) {
					return false
				}
			}
		}
	}
	return true
}

func TestNewCubeIsSolved(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 7} {
		c, err := NewCube(n)
		if err != nil {
			t.Fatalf("NewCube(%d): %v", n, err)
		}
		if !c.IsSolved() {
			t.Errorf("new %dx%d cube should be solved", n, n)
		}
	}
}

func TestNewCubeRejectsTinySizes(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := NewCube(n); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewCube(%d) error = %v, want ErrInvalidSize", n, err)
		}
	}
}

func TestSolvedFaceColors(t *testing.T) {
	c, err := NewCube(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range Faces {
		want := faceToSolvedColor(f)
		if got := c.ColorAt(f, Point{Row: 1, Col: 1}); got != want {
			t.Errorf("%s center = %s, want %s", f, got, want)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c, _ := NewCube(4)
	c.Apply(Move{Face: FaceRight, Turn: CW})
	if c.IsSolved() {
		t.Error("cube should not be solved after R")
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for _, f := range Faces {
		for depth := 0; depth < 2; depth++ {
			c, _ := NewCube(5)
			ref := c.Clone()
			for i := 0; i < 4; i++ {
				c.Apply(Move{Face: f, Depth: depth, Turn: CW})
			}
			if !cubesEqual(c, ref) {
				t.Errorf("%s depth %d: four quarter turns should be identity", f, depth)
				t.Log(c.String())
			}
		}
	}
}

func TestDoubleTurnTwiceIsIdentity(t *testing.T) {
	c, _ := NewCube(4)
	ref := c.Clone()
	c.Apply(Move{Face: FaceBack, Depth: 1, Turn: Double})
	c.Apply(Move{Face: FaceBack, Depth: 1, Turn: Double})
	if !cubesEqual(c, ref) {
		t.Error("2B2 2B2 should be identity")
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	c, _ := NewCube(5)
	ref := c.Clone()
	for i := 0; i < 6; i++ {
		c.Apply(Move{Face: FaceRight, Turn: CW})
		c.Apply(Move{Face: FaceUp, Turn: CW})
		c.Apply(Move{Face: FaceRight, Turn: CCW})
		c.Apply(Move{Face: FaceUp, Turn: CCW})
	}
	if !cubesEqual(c, ref) {
		t.Error("(R U R' U') x 6 should be identity")
		t.Log(c.String())
	}
}

func TestOppositeLayersCommute(t *testing.T) {
	a, _ := NewCube(4)
	b, _ := NewCube(4)
	a.Apply(Move{Face: FaceLeft, Turn: CW})
	a.Apply(Move{Face: FaceRight, Turn: CCW})
	b.Apply(Move{Face: FaceRight, Turn: CCW})
	b.Apply(Move{Face: FaceLeft, Turn: CW})
	if !cubesEqual(a, b) {
		t.Error("L and R' should commute")
	}
}

func TestHistoryRecordsMoves(t *testing.T) {
	c, _ := NewCube(3)
	moves, _ := ParseMoves("R U' F2")
	c.ApplyMoves(moves)
	h := c.History()
	if len(h) != len(moves) {
		t.Fatalf("history has %d moves, want %d", len(h), len(moves))
	}
	for i := range moves {
		if h[i] != moves[i] {
			t.Errorf("history[%d] = %s, want %s", i, h[i], moves[i])
		}
	}
	c.ResetHistory()
	if len(c.History()) != 0 {
		t.Error("history should be empty after reset")
	}
}

func TestSnapshotRestore(t *testing.T) {
	c, _ := NewCube(4)
	snap := c.Snapshot()
	c.ApplyMoves(Scramble(4, 15, 9))
	if cubesEqual(c, snap) {
		t.Fatal("scramble should change the cube")
	}
	c.Restore(snap)
	if !cubesEqual(c, snap) {
		t.Error("restore should bring back the snapshot state")
	}
	if len(c.History()) != 0 {
		t.Error("restore should rewind the history")
	}
}

func TestPieceIDsStayUnique(t *testing.T) {
	c, _ := NewCube(3)
	c.ApplyMoves(Scramble(3, 20, 4))
	seen := map[int]bool{}
	n := c.Size()
	for _, f := range Faces {
		for r := 0; r < n; r++ {
			for col := 0; col < n; col++ {
				id := c.At(f, Point{Row: r, Col: col}).ID
				if seen[id] {
					t.Fatalf("piece ID %d appears twice", id)
				}
				seen[id] = true
			}
		}
	}
	if len(seen) != 6*n*n {
		t.Errorf("saw %d IDs, want %d", len(seen), 6*n*n)
	}
}
