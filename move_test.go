package nxncube

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", Move{Face: FaceRight, Turn: CW}},
		{"R'", Move{Face: FaceRight, Turn: CCW}},
		{"R2", Move{Face: FaceRight, Turn: Double}},
		{"2R", Move{Face: FaceRight, Depth: 1, Turn: CW}},
		{"2R'", Move{Face: FaceRight, Depth: 1, Turn: CCW}},
		{"3U2", Move{Face: FaceUp, Depth: 2, Turn: Double}},
		{"L'", Move{Face: FaceLeft, Turn: CCW}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "0R", "R''"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidMove", in, err)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	seq := "R U2 2L' F' 3B2 D"
	moves, err := ParseMoves(seq)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(moves); got != seq {
		t.Errorf("FormatMoves = %q, want %q", got, seq)
	}
}

func TestInvertMoves(t *testing.T) {
	moves, err := ParseMoves("R U' 2F2")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(InvertMoves(moves)); got != "2F2 U R'" {
		t.Errorf("InvertMoves = %q", got)
	}
}

func TestMoveInverseUndoes(t *testing.T) {
	c, err := NewCube(4)
	if err != nil {
		t.Fatal(err)
	}
	moves, err := ParseMoves("R 2U' F2 L 3B'")
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(moves)
	c.ApplyMoves(InvertMoves(moves))
	if !c.IsSolved() {
		t.Error("sequence then inverse should return to solved")
		t.Log(c.String())
	}
}
