package nxncube

import (
	"errors"
	"testing"
)

func TestOppositePairs(t *testing.T) {
	pairs := map[Face]Face{
		FaceUp:    FaceDown,
		FaceFront: FaceBack,
		FaceRight: FaceLeft,
	}
	for a, b := range pairs {
		if Opposite(a) != b {
			t.Errorf("Opposite(%s) = %s, want %s", a, Opposite(a), b)
		}
		if Opposite(b) != a {
			t.Errorf("Opposite(%s) = %s, want %s", b, Opposite(b), a)
		}
	}
}

func TestAdjacentFaces(t *testing.T) {
	for _, f := range Faces {
		adj := AdjacentFaces(f)
		if len(adj) != 4 {
			t.Fatalf("AdjacentFaces(%s) has %d faces, want 4", f, len(adj))
		}
		for _, a := range adj {
			if a == f || a == Opposite(f) {
				t.Errorf("AdjacentFaces(%s) contains %s", f, a)
			}
		}
	}
}

func TestCellGridRoundTrip(t *testing.T) {
	n := 5
	for _, f := range Faces {
		fr := faceFrames[f]
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				p := Point{Row: r, Col: c}
				cell := fr.cell(n, p)
				if cell[fr.axis] != fr.level(n) {
					t.Fatalf("%s cell(%s) is not on the face layer", f, p)
				}
				if got := fr.grid(n, cell); got != p {
					t.Fatalf("%s grid(cell(%s)) = %s", f, p, got)
				}
			}
		}
	}
}

func TestSliceThrough(t *testing.T) {
	cases := []struct {
		f1, f2 Face
		want   Slice
	}{
		{FaceUp, FaceFront, SliceM},
		{FaceFront, FaceUp, SliceM},
		{FaceUp, FaceDown, SliceM}, // M is checked before S
		{FaceFront, FaceRight, SliceE},
		{FaceLeft, FaceBack, SliceE},
		{FaceUp, FaceRight, SliceS},
		{FaceRight, FaceLeft, SliceE},
	}
	for _, tc := range cases {
		got, err := SliceThrough(tc.f1, tc.f2)
		if err != nil {
			t.Errorf("SliceThrough(%s, %s): %v", tc.f1, tc.f2, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SliceThrough(%s, %s) = %s, want %s", tc.f1, tc.f2, got, tc.want)
		}
	}
}

func TestSliceThroughSameFace(t *testing.T) {
	if _, err := SliceThrough(FaceUp, FaceUp); !errors.Is(err, ErrSameFace) {
		t.Errorf("SliceThrough(U, U) error = %v, want ErrSameFace", err)
	}
}

func TestSliceCyclesContainTheirFaces(t *testing.T) {
	for _, s := range Slices {
		cycle := s.Cycle()
		seen := map[Face]bool{}
		ref := s.ReferenceFace()
		if s.Contains(ref) {
			t.Errorf("%s reference face %s should be perpendicular to its cycle", s, ref)
		}
		for _, f := range cycle {
			if f == ref || f == Opposite(ref) {
				t.Errorf("%s cycle face %s should be adjacent to reference %s", s, f, ref)
			}
			if !s.Contains(f) {
				t.Errorf("%s should contain %s", s, f)
			}
			if seen[f] {
				t.Errorf("%s cycle repeats %s", s, f)
			}
			seen[f] = true
		}
	}
}

func TestHopCount(t *testing.T) {
	cases := []struct {
		f1, f2 Face
		want   int
	}{
		{FaceUp, FaceFront, 1},
		{FaceUp, FaceDown, 2},
		{FaceUp, FaceBack, 1},
		{FaceRight, FaceLeft, 2},
	}
	for _, tc := range cases {
		got, err := HopCount(tc.f1, tc.f2)
		if err != nil {
			t.Errorf("HopCount(%s, %s): %v", tc.f1, tc.f2, err)
			continue
		}
		if got != tc.want {
			t.Errorf("HopCount(%s, %s) = %d, want %d", tc.f1, tc.f2, got, tc.want)
		}
	}
}

func TestRotateCellFourTimesIsIdentity(t *testing.T) {
	n := 7
	for a := axisX; a <= axisZ; a++ {
		cell := [3]int{1, 3, 6}
		got := cell
		for i := 0; i < 4; i++ {
			got = rotateCell(a, 1, n, got)
		}
		if got != cell {
			t.Errorf("axis %d: four quarter turns moved %v to %v", a, cell, got)
		}
	}
}

func TestRotateCellQuartersCompose(t *testing.T) {
	n := 6
	cell := [3]int{0, 2, 5}
	for a := axisX; a <= axisZ; a++ {
		twice := rotateCell(a, 1, n, rotateCell(a, 1, n, cell))
		if got := rotateCell(a, 2, n, cell); got != twice {
			t.Errorf("axis %d: q=2 gave %v, two q=1 gave %v", a, got, twice)
		}
	}
}
