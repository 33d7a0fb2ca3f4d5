package nxncube

import "fmt"

// TransformType describes how grid coordinates change across one hop
// between two faces of a slice cycle.
type TransformType struct {
	// Rotated is true when the slice cuts the two faces in different grid
	// directions, so index and slot swap between row and column.
	Rotated bool
	// IndexInverted is true when the slice index reads in opposite grid
	// directions on the two faces.
	IndexInverted bool
	// SlotInverted is true when the slot reads in opposite grid directions.
	SlotInverted bool
}

// String summarizes the transform flags.
func (t TransformType) String() string {
	s := "straight"
	if t.Rotated {
		s = "rotated"
	}
	if t.IndexInverted {
		s += "+index-flip"
	}
	if t.SlotInverted {
		s += "+slot-flip"
	}
	return s
}

// DeriveTransformType classifies the coordinate change between two faces
// that share a slice cycle. The classification is read off the faces'
// walking variants, which were themselves derived symbolically at the
// placeholder size, so no face-pair table is involved.
func DeriveTransformType(f1, f2 Face) (TransformType, error) {
	s, err := SliceThrough(f1, f2)
	if err != nil {
		return TransformType{}, err
	}
	w := unitWalkingInfo(s)
	v1 := w.faceInfo(f1).variant
	v2 := w.faceInfo(f2).variant
	return TransformType{
		Rotated:       v1.horizontal != v2.horizontal,
		IndexInverted: v1.indexInverted != v2.indexInverted,
		SlotInverted:  v1.slotInverted != v2.slotInverted,
	}, nil
}

// Translate carries a grid point from one face to another along their
// shared slice cycle. The point's slice index and slot are recovered on the
// source face and tracked separately across each hop: one hop for adjacent
// faces, two for opposites. The returned point is where a piece at p lands
// when the slice layers walk from the source face to the destination.
func Translate(n int, from, to Face, p Point) (Point, error) {
	if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
		return Point{}, fmt.Errorf("failed to translate %s: %w", p, ErrPointOutOfRange)
	}
	s, err := SliceThrough(from, to)
	if err != nil {
		return Point{}, err
	}

	w := sizedWalkingInfo(s, n)
	index, slot := w.faceInfo(from).variant.recover(n, p)

	pos := s.cyclePos(from)
	dist := s.cycleDistance(from, to)
	cur := p
	for hop := 0; hop < dist; hop++ {
		pos = (pos + 1) % 4
		cur = w.faces[pos].variant.place(n, index, slot)
	}
	return cur, nil
}
