package nxncube

import "fmt"

// Point is a position on a face grid. Row 0 is the bottom of the face and
// column 0 the left, as seen from outside the cube.
type Point struct {
	Row int
	Col int
}

// String returns the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// rotateCW rotates the point a quarter turn clockwise within an n-by-n grid.
func (p Point) rotateCW(n int) Point {
	return Point{Row: n - 1 - p.Col, Col: p.Row}
}

// rotateCCW rotates the point a quarter turn counterclockwise.
func (p Point) rotateCCW(n int) Point {
	return Point{Row: p.Col, Col: n - 1 - p.Row}
}

// rotateQuarters applies q clockwise quarter turns, q in 0..3.
func (p Point) rotateQuarters(n, q int) Point {
	q = ((q % 4) + 4) % 4
	for ; q > 0; q-- {
		p = p.rotateCW(n)
	}
	return p
}

// Block is an axis-aligned rectangle of face cells with Start at the
// bottom-left corner and End at the top-right, inclusive.
type Block struct {
	Start Point
	End   Point
}

// NewBlock builds a normalized block from any two opposite corners.
func NewBlock(a, b Point) Block {
	if a.Row > b.Row {
		a.Row, b.Row = b.Row, a.Row
	}
	if a.Col > b.Col {
		a.Col, b.Col = b.Col, a.Col
	}
	return Block{Start: a, End: b}
}

// String returns the block as "start-end".
func (b Block) String() string {
	return fmt.Sprintf("%s-%s", b.Start, b.End)
}

// Rows returns the number of rows the block spans.
func (b Block) Rows() int { return b.End.Row - b.Start.Row + 1 }

// Cols returns the number of columns the block spans.
func (b Block) Cols() int { return b.End.Col - b.Start.Col + 1 }

// Area returns the number of cells in the block.
func (b Block) Area() int { return b.Rows() * b.Cols() }

// Contains reports whether the point lies inside the block.
func (b Block) Contains(p Point) bool {
	return p.Row >= b.Start.Row && p.Row <= b.End.Row &&
		p.Col >= b.Start.Col && p.Col <= b.End.Col
}

// Overlaps reports whether the two blocks share a cell.
func (b Block) Overlaps(o Block) bool {
	return b.Start.Row <= o.End.Row && o.Start.Row <= b.End.Row &&
		b.Start.Col <= o.End.Col && o.Start.Col <= b.End.Col
}

// Points lists the block's cells row by row, bottom-left first.
func (b Block) Points() []Point {
	pts := make([]Point, 0, b.Area())
	for r := b.Start.Row; r <= b.End.Row; r++ {
		for c := b.Start.Col; c <= b.End.Col; c++ {
			pts = append(pts, Point{Row: r, Col: c})
		}
	}
	return pts
}

// Rotate returns the block's image under q clockwise quarter turns of the
// face grid, as a RotatedBlock remembering the orientation.
func (b Block) Rotate(n, q int) RotatedBlock {
	return RotatedBlock{
		Start: b.Start.rotateQuarters(n, q),
		End:   b.End.rotateQuarters(n, q),
	}
}

// RotatedBlock is a block whose corners are stored as the images of a
// normalized block's corners under some number of clockwise quarter turns.
// The orientation is recovered from the corner sign pattern rather than
// stored, so a rotated block can be built directly from two mapped corners.
type RotatedBlock struct {
	Start Point
	End   Point
}

// String returns the rotated block as "start-end@k" with its turn count.
func (rb RotatedBlock) String() string {
	return fmt.Sprintf("%s-%s@%d", rb.Start, rb.End, rb.Rotation())
}

// Rotation returns the number of clockwise quarter turns separating the
// stored corners from normalized order, in 0..3. The comparisons are
// non-strict so degenerate blocks (single rows, columns, or cells) resolve
// to the smallest consistent count.
func (rb RotatedBlock) Rotation() int {
	rowsUp := rb.Start.Row <= rb.End.Row
	colsUp := rb.Start.Col <= rb.End.Col
	switch {
	case rowsUp && colsUp:
		return 0
	case !rowsUp && colsUp:
		return 1
	case !rowsUp && !colsUp:
		return 2
	default:
		return 3
	}
}

// Normalized returns the underlying axis-aligned block.
func (rb RotatedBlock) Normalized(n int) Block {
	q := rb.Rotation()
	return NewBlock(rb.Start.rotateQuarters(n, 4-q), rb.End.rotateQuarters(n, 4-q))
}

// Points lists the rotated block's cells in the grid, ordered so that the
// i-th cell is the rotated image of the i-th cell of the normalized block's
// Points. Each case fuses the inverse rotation of the stored corners with
// the forward rotation of the yielded cell.
func (rb RotatedBlock) Points(n int) []Point {
	sr, sc := rb.Start.Row, rb.Start.Col
	er, ec := rb.End.Row, rb.End.Col
	var pts []Point
	switch rb.Rotation() {
	case 0:
		for r := sr; r <= er; r++ {
			for c := sc; c <= ec; c++ {
				pts = append(pts, Point{Row: r, Col: c})
			}
		}
	case 1:
		for r := sc; r <= ec; r++ {
			for c := n - 1 - sr; c <= n-1-er; c++ {
				pts = append(pts, Point{Row: n - 1 - c, Col: r})
			}
		}
	case 2:
		for r := n - 1 - sr; r <= n-1-er; r++ {
			for c := n - 1 - sc; c <= n-1-ec; c++ {
				pts = append(pts, Point{Row: n - 1 - r, Col: n - 1 - c})
			}
		}
	default:
		for r := n - 1 - sc; r <= n-1-ec; r++ {
			for c := sr; c <= er; c++ {
				pts = append(pts, Point{Row: c, Col: n - 1 - r})
			}
		}
	}
	return pts
}
