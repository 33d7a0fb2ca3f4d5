package nxncube

// Face identifies one of the six cube faces.
type Face int

const (
	FaceUp Face = iota
	FaceDown
	FaceFront
	FaceBack
	FaceRight
	FaceLeft
)

// String returns the full face name.
func (f Face) String() string {
	switch f {
	case FaceUp:
		return "Up"
	case FaceDown:
		return "Down"
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	case FaceRight:
		return "Right"
	case FaceLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Letter returns the single-letter face name used in move notation.
func (f Face) Letter() string {
	switch f {
	case FaceUp:
		return "U"
	case FaceDown:
		return "D"
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	case FaceRight:
		return "R"
	case FaceLeft:
		return "L"
	default:
		return "?"
	}
}

// Faces lists all six faces in canonical order.
var Faces = []Face{FaceUp, FaceDown, FaceFront, FaceBack, FaceRight, FaceLeft}

// axis identifies one of the three cube axes: x runs Left to Right,
// y runs Down to Up, z runs Back to Front.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// faceFrame maps a face's 2D grid onto cubie coordinates. Row 0 is the
// bottom of the face and column 0 the left, as seen from outside the cube.
type faceFrame struct {
	axis     axis // the face normal's axis
	positive bool // true if the face sits at coordinate n-1 on that axis
	rowAxis  axis // the axis the grid row maps to
	rowNeg   bool // true if row r maps to coordinate n-1-r
	colAxis  axis
	colNeg   bool
}

var faceFrames = map[Face]faceFrame{
	FaceUp:    {axis: axisY, positive: true, rowAxis: axisZ, rowNeg: true, colAxis: axisX},
	FaceDown:  {axis: axisY, positive: false, rowAxis: axisZ, colAxis: axisX},
	FaceFront: {axis: axisZ, positive: true, rowAxis: axisY, colAxis: axisX},
	FaceBack:  {axis: axisZ, positive: false, rowAxis: axisY, colAxis: axisX, colNeg: true},
	FaceRight: {axis: axisX, positive: true, rowAxis: axisY, colAxis: axisZ, colNeg: true},
	FaceLeft:  {axis: axisX, positive: false, rowAxis: axisY, colAxis: axisZ},
}

// level returns the face's coordinate along its normal axis for size n.
func (fr faceFrame) level(n int) int {
	if fr.positive {
		return n - 1
	}
	return 0
}

// cell converts a grid point on the face to cubie coordinates.
func (fr faceFrame) cell(n int, p Point) [3]int {
	var c [3]int
	c[fr.axis] = fr.level(n)
	if fr.rowNeg {
		c[fr.rowAxis] = n - 1 - p.Row
	} else {
		c[fr.rowAxis] = p.Row
	}
	if fr.colNeg {
		c[fr.colAxis] = n - 1 - p.Col
	} else {
		c[fr.colAxis] = p.Col
	}
	return c
}

// grid converts cubie coordinates back to a grid point on the face. The
// coordinate along the face normal is ignored.
func (fr faceFrame) grid(n int, c [3]int) Point {
	r := c[fr.rowAxis]
	if fr.rowNeg {
		r = n - 1 - r
	}
	col := c[fr.colAxis]
	if fr.colNeg {
		col = n - 1 - col
	}
	return Point{Row: r, Col: col}
}

// faceAt returns the face whose outward normal points along the given axis
// end.
func faceAt(a axis, positive bool) Face {
	for _, f := range Faces {
		fr := faceFrames[f]
		if fr.axis == a && fr.positive == positive {
			return f
		}
	}
	panic("nxncube: no face for axis")
}

// Opposite returns the face on the other side of the cube.
func Opposite(f Face) Face {
	fr := faceFrames[f]
	return faceAt(fr.axis, !fr.positive)
}

// AdjacentFaces returns the four faces sharing an edge with f.
func AdjacentFaces(f Face) []Face {
	opp := Opposite(f)
	adj := make([]Face, 0, 4)
	for _, g := range Faces {
		if g != f && g != opp {
			adj = append(adj, g)
		}
	}
	return adj
}

// Slice identifies a family of inner layers, named after the 3x3 slice
// moves they generalize.
type Slice int

const (
	// SliceM cuts between Left and Right; its layers carry pieces around
	// the Up, Front, Down, Back cycle.
	SliceM Slice = iota
	// SliceE cuts between Down and Up; cycle Front, Right, Back, Left.
	SliceE
	// SliceS cuts between Front and Back; cycle Up, Right, Down, Left.
	SliceS
)

// String returns the slice name.
func (s Slice) String() string {
	switch s {
	case SliceM:
		return "M"
	case SliceE:
		return "E"
	case SliceS:
		return "S"
	default:
		return "?"
	}
}

// sliceInfo describes the geometry of a slice family: the axis its layers
// are stacked along, the reference face layers are indexed from, the face
// cycle pieces walk through, and the direction of a forward walk as a
// right-handed quarter-turn count about the axis.
type sliceInfo struct {
	axis     axis
	refFace  Face
	cycle    [4]Face
	flowQ    int  // right-handed quarter turns per forward hop
	refAtPos bool // true if the reference face sits at coordinate n-1
}

var sliceInfos = map[Slice]sliceInfo{
	SliceM: {axis: axisX, refFace: FaceLeft, cycle: [4]Face{FaceUp, FaceFront, FaceDown, FaceBack}, flowQ: 1},
	SliceE: {axis: axisY, refFace: FaceDown, cycle: [4]Face{FaceFront, FaceRight, FaceBack, FaceLeft}, flowQ: 1},
	SliceS: {axis: axisZ, refFace: FaceFront, cycle: [4]Face{FaceUp, FaceRight, FaceDown, FaceLeft}, flowQ: 3, refAtPos: true},
}

// Slices lists all three slice families.
var Slices = []Slice{SliceM, SliceE, SliceS}

// ReferenceFace returns the face the slice's layers are indexed from.
func (s Slice) ReferenceFace() Face {
	return sliceInfos[s].refFace
}

// Cycle returns the four faces a forward walk visits, in order.
func (s Slice) Cycle() [4]Face {
	return sliceInfos[s].cycle
}

// cyclePos returns f's position in the slice's cycle, or -1.
func (s Slice) cyclePos(f Face) int {
	for i, g := range sliceInfos[s].cycle {
		if g == f {
			return i
		}
	}
	return -1
}

// Contains reports whether f lies on the slice's cycle.
func (s Slice) Contains(f Face) bool {
	return s.cyclePos(f) >= 0
}

// indexOf returns the slice index of a cubie cell: its distance from the
// reference face along the slice axis.
func (s Slice) indexOf(n int, cell [3]int) int {
	si := sliceInfos[s]
	if si.refAtPos {
		return n - 1 - cell[si.axis]
	}
	return cell[si.axis]
}

// coordOf is the inverse of indexOf.
func (s Slice) coordOf(n, index int) int {
	if sliceInfos[s].refAtPos {
		return n - 1 - index
	}
	return index
}

// SliceThrough returns the slice family whose cycle carries pieces between
// the two faces. Opposite faces share two families; the first in M, E, S
// order is returned so callers get a deterministic route.
func SliceThrough(f1, f2 Face) (Slice, error) {
	if f1 == f2 {
		return 0, ErrSameFace
	}
	for _, s := range Slices {
		if s.Contains(f1) && s.Contains(f2) {
			return s, nil
		}
	}
	return 0, ErrNoSharedSlice
}

// slicesThrough returns every slice family whose cycle carries pieces
// between the two faces: one for adjacent faces, two for opposites.
func slicesThrough(f1, f2 Face) ([]Slice, error) {
	if f1 == f2 {
		return nil, ErrSameFace
	}
	var shared []Slice
	for _, s := range Slices {
		if s.Contains(f1) && s.Contains(f2) {
			shared = append(shared, s)
		}
	}
	if len(shared) == 0 {
		return nil, ErrNoSharedSlice
	}
	return shared, nil
}

// HopCount returns the number of translation hops between the faces: 1 for
// adjacent faces, 2 for opposites.
func HopCount(f1, f2 Face) (int, error) {
	if f1 == f2 {
		return 0, ErrSameFace
	}
	if Opposite(f1) == f2 {
		return 2, nil
	}
	return 1, nil
}

// cycleDistance returns the number of forward hops from f1 to f2 along the
// slice's cycle, in 1..3.
func (s Slice) cycleDistance(f1, f2 Face) int {
	p1, p2 := s.cyclePos(f1), s.cyclePos(f2)
	return ((p2-p1)%4 + 4) % 4
}

// rotateCell applies q right-handed quarter turns about the axis to a cubie
// cell in index space.
func rotateCell(a axis, q, n int, c [3]int) [3]int {
	q = ((q % 4) + 4) % 4
	for ; q > 0; q-- {
		switch a {
		case axisX:
			c[1], c[2] = n-1-c[2], c[1]
		case axisY:
			c[0], c[2] = c[2], n-1-c[0]
		case axisZ:
			c[0], c[1] = n-1-c[1], c[0]
		}
	}
	return c
}

// rotateDir applies the same rotation to a direction vector. The index-space
// map is affine, so the linear part is recovered by differencing.
func rotateDir(a axis, q, n int, d [3]int) [3]int {
	zero := rotateCell(a, q, n, [3]int{})
	moved := rotateCell(a, q, n, d)
	for i := range moved {
		moved[i] -= zero[i]
	}
	return moved
}
