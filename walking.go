package nxncube

import "sync"

// unitSize is the placeholder size walking info is derived at. It only has
// to be large enough that sample coordinates and their mirror images stay
// distinguishable.
const unitSize = 1024

// walkVariant describes how a slice's (index, slot) coordinates land on one
// face of its cycle. horizontal means the slice index selects a grid row;
// otherwise it selects a column.
type walkVariant struct {
	horizontal    bool
	indexInverted bool
	slotInverted  bool
}

// placeFunc maps slice coordinates to a grid point on a face of size n.
type placeFunc func(n, index, slot int) Point

// placeFuncs holds the eight possible coordinate variants, indexed by
// variantKey.
var placeFuncs = [8]placeFunc{
	func(n, i, s int) Point { return Point{Row: s, Col: i} },
	func(n, i, s int) Point { return Point{Row: n - 1 - s, Col: i} },
	func(n, i, s int) Point { return Point{Row: s, Col: n - 1 - i} },
	func(n, i, s int) Point { return Point{Row: n - 1 - s, Col: n - 1 - i} },
	func(n, i, s int) Point { return Point{Row: i, Col: s} },
	func(n, i, s int) Point { return Point{Row: i, Col: n - 1 - s} },
	func(n, i, s int) Point { return Point{Row: n - 1 - i, Col: s} },
	func(n, i, s int) Point { return Point{Row: n - 1 - i, Col: n - 1 - s} },
}

func (v walkVariant) key() int {
	k := 0
	if v.horizontal {
		k |= 4
	}
	if v.indexInverted {
		k |= 2
	}
	if v.slotInverted {
		k |= 1
	}
	return k
}

// place maps slice coordinates to a grid point under this variant.
func (v walkVariant) place(n, index, slot int) Point {
	return placeFuncs[v.key()](n, index, slot)
}

// recover inverts place, returning the slice coordinates of a grid point.
func (v walkVariant) recover(n int, p Point) (index, slot int) {
	if v.horizontal {
		index, slot = p.Row, p.Col
	} else {
		index, slot = p.Col, p.Row
	}
	if v.indexInverted {
		index = n - 1 - index
	}
	if v.slotInverted {
		slot = n - 1 - slot
	}
	return index, slot
}

// walkFace is one stop on a slice's cycle with its coordinate variant.
type walkFace struct {
	face    Face
	variant walkVariant
}

// walkingInfo carries the per-face coordinate variants of one slice family
// at a particular size.
type walkingInfo struct {
	slice Slice
	size  int
	faces [4]walkFace
}

// faceInfo returns the cycle entry for a face, or nil if the face is not on
// the cycle.
func (w *walkingInfo) faceInfo(f Face) *walkFace {
	for i := range w.faces {
		if w.faces[i].face == f {
			return &w.faces[i]
		}
	}
	return nil
}

var (
	unitMu    sync.Mutex
	unitCache = map[Slice]*walkingInfo{}

	sizedMu    sync.Mutex
	sizedCache = map[sizedKey]*walkingInfo{}
)

type sizedKey struct {
	slice Slice
	size  int
}

// unitWalkingInfo derives the slice's coordinate variants at the
// placeholder size by carrying a sample cell around the cycle with the
// slice's flow rotation, then reading the variant flags off the resulting
// grid coordinates. Results are cached per slice.
func unitWalkingInfo(s Slice) *walkingInfo {
	unitMu.Lock()
	defer unitMu.Unlock()
	if w, ok := unitCache[s]; ok {
		return w
	}

	si := sliceInfos[s]
	const (
		sampleIndex = 2
		sampleSlot  = 5
	)

	// Anchor the sample on the cycle's first face. The slot is the face's
	// free coordinate there; the flow rotation preserves both slice index
	// and slot, which is what makes the slot well defined on every face.
	first := faceFrames[si.cycle[0]]
	var cell [3]int
	cell[si.axis] = s.coordOf(unitSize, sampleIndex)
	cell[first.axis] = first.level(unitSize)
	freeAxis := otherAxis(si.axis, first.axis)
	cell[freeAxis] = sampleSlot

	w := &walkingInfo{slice: s, size: unitSize}
	for j, f := range si.cycle {
		p := faceFrames[f].grid(unitSize, cell)
		w.faces[j] = walkFace{face: f, variant: variantOf(unitSize, p, sampleIndex, sampleSlot)}
		cell = rotateCell(si.axis, si.flowQ, unitSize, cell)
	}

	unitCache[s] = w
	return w
}

// otherAxis returns the axis that is neither a nor b.
func otherAxis(a, b axis) axis {
	for x := axisX; x <= axisZ; x++ {
		if x != a && x != b {
			return x
		}
	}
	panic("nxncube: degenerate axes")
}

// variantOf reads the variant flags off a sample grid point whose slice
// coordinates are known.
func variantOf(n int, p Point, index, slot int) walkVariant {
	var v walkVariant
	switch p.Row {
	case index:
		v.horizontal = true
	case n - 1 - index:
		v.horizontal = true
		v.indexInverted = true
	case slot:
	case n - 1 - slot:
		v.slotInverted = true
	default:
		panic("nxncube: sample point does not match any variant")
	}
	if v.horizontal {
		switch p.Col {
		case slot:
		case n - 1 - slot:
			v.slotInverted = true
		default:
			panic("nxncube: sample point does not match any variant")
		}
	} else {
		switch p.Col {
		case index:
		case n - 1 - index:
			v.indexInverted = true
		default:
			panic("nxncube: sample point does not match any variant")
		}
	}
	return v
}

// sizedWalkingInfo rescales the slice's unit walking info to a concrete
// cube size. The variant flags are size independent, so rescaling is a
// matter of stamping the new size onto a copy. Cached per (slice, size).
func sizedWalkingInfo(s Slice, n int) *walkingInfo {
	sizedMu.Lock()
	defer sizedMu.Unlock()
	key := sizedKey{slice: s, size: n}
	if w, ok := sizedCache[key]; ok {
		return w
	}
	unit := unitWalkingInfo(s)
	w := &walkingInfo{slice: s, size: n, faces: unit.faces}
	sizedCache[key] = w
	return w
}
