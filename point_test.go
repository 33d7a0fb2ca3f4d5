package nxncube

import "testing"

func TestNewBlockNormalizes(t *testing.T) {
	b := NewBlock(Point{Row: 3, Col: 1}, Point{Row: 0, Col: 4})
	want := Block{Start: Point{Row: 0, Col: 1}, End: Point{Row: 3, Col: 4}}
	if b != want {
		t.Errorf("NewBlock = %s, want %s", b, want)
	}
}

func TestBlockPointsOrder(t *testing.T) {
	b := Block{Start: Point{Row: 1, Col: 2}, End: Point{Row: 2, Col: 3}}
	want := []Point{{1, 2}, {1, 3}, {2, 2}, {2, 3}}
	got := b.Points()
	if len(got) != len(want) {
		t.Fatalf("Points returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBlockOverlaps(t *testing.T) {
	a := Block{Start: Point{0, 0}, End: Point{1, 1}}
	b := Block{Start: Point{1, 1}, End: Point{2, 2}}
	c := Block{Start: Point{2, 0}, End: Point{2, 0}}
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("blocks sharing a corner should overlap")
	}
	if a.Overlaps(c) {
		t.Error("disjoint blocks should not overlap")
	}
}

func TestRotatedBlockRotationDetection(t *testing.T) {
	n := 5
	b := Block{Start: Point{Row: 1, Col: 0}, End: Point{Row: 2, Col: 3}}
	for q := 0; q < 4; q++ {
		rb := b.Rotate(n, q)
		if got := rb.Rotation(); got != q {
			t.Errorf("Rotate(%d).Rotation() = %d", q, got)
		}
		if got := rb.Normalized(n); got != b {
			t.Errorf("Rotate(%d).Normalized() = %s, want %s", q, got, b)
		}
	}
}

func TestRotatedBlockPointsFollowKernelOrder(t *testing.T) {
	n := 6
	b := Block{Start: Point{Row: 0, Col: 2}, End: Point{Row: 2, Col: 4}}
	kernel := b.Points()
	for q := 0; q < 4; q++ {
		got := b.Rotate(n, q).Points(n)
		if len(got) != len(kernel) {
			t.Fatalf("q=%d: %d points, want %d", q, len(got), len(kernel))
		}
		for i, p := range kernel {
			if want := p.rotateQuarters(n, q); got[i] != want {
				t.Errorf("q=%d: point %d = %s, want %s", q, i, got[i], want)
			}
		}
	}
}

func TestRotatedBlockFromSinglePoint(t *testing.T) {
	n := 3
	p := Point{Row: 2, Col: 0}
	rb := RotatedBlock{Start: p, End: p}
	pts := rb.Points(n)
	if len(pts) != 1 || pts[0] != p {
		t.Errorf("single point block yielded %v", pts)
	}
}
