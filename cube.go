package nxncube

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White Color = iota
	Yellow
	Green
	Blue
	Red
	Orange
)

// String returns the single-letter color name.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// faceToSolvedColor returns the color of a face on a solved cube.
func faceToSolvedColor(f Face) Color {
	switch f {
	case FaceUp:
		return White
	case FaceDown:
		return Yellow
	case FaceFront:
		return Green
	case FaceBack:
		return Blue
	case FaceRight:
		return Red
	default:
		return Orange
	}
}

// Piece is a single sticker. The ID is assigned at construction and travels
// with the sticker through every turn, so individual pieces stay
// distinguishable even when their colors match.
type Piece struct {
	Color Color
	ID    int
}

// Cube is an NxN cube held as six n*n sticker grids. Row 0 of each grid is
// the bottom of the face and column 0 the left, seen from outside.
type Cube struct {
	size    int
	faces   [6][]Piece
	history []Move
}

// NewCube creates a solved cube of the given size.
func NewCube(size int) (*Cube, error) {
	if size < 2 {
		return nil, fmt.Errorf("failed to create cube of size %d: %w", size, ErrInvalidSize)
	}
	c := &Cube{size: size}
	id := 0
	for _, f := range Faces {
		c.faces[f] = make([]Piece, size*size)
		col := faceToSolvedColor(f)
		for i := range c.faces[f] {
			c.faces[f][i] = Piece{Color: col, ID: id}
			id++
		}
	}
	return c, nil
}

// Size returns the cube's edge length.
func (c *Cube) Size() int { return c.size }

// At returns the sticker at a grid point of a face.
func (c *Cube) At(f Face, p Point) Piece {
	return c.faces[f][p.Row*c.size+p.Col]
}

// ColorAt returns the color of the sticker at a grid point of a face.
func (c *Cube) ColorAt(f Face, p Point) Color {
	return c.At(f, p).Color
}

// Clone returns a deep copy of the cube, history included.
func (c *Cube) Clone() *Cube {
	d := &Cube{size: c.size}
	for i := range c.faces {
		d.faces[i] = make([]Piece, len(c.faces[i]))
		copy(d.faces[i], c.faces[i])
	}
	d.history = make([]Move, len(c.history))
	copy(d.history, c.history)
	return d
}

// Snapshot captures the cube's state for a later Restore.
func (c *Cube) Snapshot() *Cube {
	return c.Clone()
}

// Restore rewinds the cube to a previously captured snapshot.
func (c *Cube) Restore(s *Cube) {
	c.size = s.size
	for i := range s.faces {
		c.faces[i] = make([]Piece, len(s.faces[i]))
		copy(c.faces[i], s.faces[i])
	}
	c.history = make([]Move, len(s.history))
	copy(c.history, s.history)
}

// History returns the moves applied since construction or the last
// ResetHistory, oldest first.
func (c *Cube) History() []Move {
	h := make([]Move, len(c.history))
	copy(h, c.history)
	return h
}

// ResetHistory clears the move journal without touching the stickers.
func (c *Cube) ResetHistory() {
	c.history = nil
}

// IsSolved reports whether every face shows a single color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		first := c.faces[f][0].Color
		for _, p := range c.faces[f] {
			if p.Color != first {
				return false
			}
		}
	}
	return true
}

// normalDir returns the face's outward normal as a direction vector.
func normalDir(f Face) [3]int {
	fr := faceFrames[f]
	var d [3]int
	if fr.positive {
		d[fr.axis] = 1
	} else {
		d[fr.axis] = -1
	}
	return d
}

// faceForNormal returns the face whose outward normal matches the vector.
func faceForNormal(d [3]int) Face {
	for a := axisX; a <= axisZ; a++ {
		if d[a] == 1 {
			return faceAt(a, true)
		}
		if d[a] == -1 {
			return faceAt(a, false)
		}
	}
	panic("nxncube: not a face normal")
}

// Apply turns one layer of the cube and records the move.
func (c *Cube) Apply(m Move) {
	n := c.size
	c.history = append(c.history, m)

	q := m.quarters()
	if q == 0 {
		return
	}
	a := faceFrames[m.Face].axis
	layer := m.layer(n)

	next := [6][]Piece{}
	for i := range c.faces {
		next[i] = make([]Piece, len(c.faces[i]))
		copy(next[i], c.faces[i])
	}

	for _, f := range Faces {
		fr := faceFrames[f]
		for r := 0; r < n; r++ {
			for col := 0; col < n; col++ {
				p := Point{Row: r, Col: col}
				cell := fr.cell(n, p)
				if cell[a] != layer {
					continue
				}
				newCell := rotateCell(a, q, n, cell)
				newNormal := rotateDir(a, q, n, normalDir(f))
				nf := faceForNormal(newNormal)
				np := faceFrames[nf].grid(n, newCell)
				next[nf][np.Row*n+np.Col] = c.faces[f][r*n+col]
			}
		}
	}
	c.faces = next
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// String renders the cube as an unfolded net: Up on top, then the Left,
// Front, Right and Back faces side by side, then Down. Each face is drawn
// with its top row first.
func (c *Cube) String() string {
	n := c.size
	var b strings.Builder
	indent := strings.Repeat("  ", n)

	writeRow := func(f Face, row int) {
		for col := 0; col < n; col++ {
			b.WriteString(c.ColorAt(f, Point{Row: row, Col: col}).String())
			b.WriteString(" ")
		}
	}

	for r := n - 1; r >= 0; r-- {
		b.WriteString(indent)
		writeRow(FaceUp, r)
		b.WriteString("\n")
	}
	for r := n - 1; r >= 0; r-- {
		for _, f := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			writeRow(f, r)
		}
		b.WriteString("\n")
	}
	for r := n - 1; r >= 0; r-- {
		b.WriteString(indent)
		writeRow(FaceDown, r)
		b.WriteString("\n")
	}
	return b.String()
}

// cellAfterMove returns where a cubie cell travels under a single move.
func cellAfterMove(n int, cell [3]int, m Move) [3]int {
	a := faceFrames[m.Face].axis
	if cell[a] != m.layer(n) {
		return cell
	}
	return rotateCell(a, m.quarters(), n, cell)
}

// cellAfterMoves applies a move sequence to a cubie cell.
func cellAfterMoves(n int, cell [3]int, moves []Move) [3]int {
	for _, m := range moves {
		cell = cellAfterMove(n, cell, m)
	}
	return cell
}
