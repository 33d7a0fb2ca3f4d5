package nxncube

import (
	"fmt"
	"strconv"
	"strings"
)

// Turn is the amount a layer is turned, as seen looking at the move's face
// from outside the cube.
type Turn int

const (
	// CW is a quarter turn clockwise.
	CW Turn = 1
	// CCW is a quarter turn counterclockwise.
	CCW Turn = -1
	// Double is a half turn.
	Double Turn = 2
)

// Inverse returns the turn that undoes this one.
func (t Turn) Inverse() Turn {
	switch t {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return t
	}
}

// Move is a single layer turn. Depth selects the layer: 0 is the outer face
// layer, 1 the layer directly behind it, and so on. A slice move is written
// as a deep turn of the slice's reference face.
type Move struct {
	Face  Face
	Depth int
	Turn  Turn
}

// Notation returns the move in SiGN-style notation: "R", "R'", "R2" for the
// outer layer, with a numeric prefix for deeper layers ("2R" is the layer
// behind R).
func (m Move) Notation() string {
	s := m.Face.Letter()
	if m.Depth > 0 {
		s = strconv.Itoa(m.Depth+1) + s
	}
	switch m.Turn {
	case CCW:
		s += "'"
	case Double:
		s += "2"
	}
	return s
}

// String returns the move's notation.
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Depth: m.Depth, Turn: m.Turn.Inverse()}
}

// ParseMove parses a single move in notation form.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, fmt.Errorf("failed to parse move %q: %w", s, ErrInvalidMove)
	}

	m := Move{Turn: CW}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		layer, err := strconv.Atoi(s[:i])
		if err != nil || layer < 1 {
			return Move{}, fmt.Errorf("failed to parse move %q: %w", s, ErrInvalidMove)
		}
		m.Depth = layer - 1
	}
	if i >= len(s) {
		return Move{}, fmt.Errorf("failed to parse move %q: %w", s, ErrInvalidMove)
	}

	switch s[i] {
	case 'U':
		m.Face = FaceUp
	case 'D':
		m.Face = FaceDown
	case 'F':
		m.Face = FaceFront
	case 'B':
		m.Face = FaceBack
	case 'R':
		m.Face = FaceRight
	case 'L':
		m.Face = FaceLeft
	default:
		return Move{}, fmt.Errorf("failed to parse move %q: %w", s, ErrInvalidMove)
	}
	i++

	switch s[i:] {
	case "":
	case "'":
		m.Turn = CCW
	case "2":
		m.Turn = Double
	case "2'", "'2":
		m.Turn = Double
	default:
		return Move{}, fmt.Errorf("failed to parse move %q: %w", s, ErrInvalidMove)
	}

	return m, nil
}

// ParseMoves parses a whitespace-separated move sequence.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence as space-separated notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes the given one.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// quarters returns the move's rotation as right-handed quarter turns about
// its face's axis. Faces at the positive end of their axis turn clockwise
// against the axis; faces at the negative end turn with it.
func (m Move) quarters() int {
	base := 1
	if faceFrames[m.Face].positive {
		base = 3
	}
	q := base * int(m.Turn)
	return ((q % 4) + 4) % 4
}

// layer returns the 3D coordinate of the turned layer along the face's axis.
func (m Move) layer(n int) int {
	if faceFrames[m.Face].positive {
		return n - 1 - m.Depth
	}
	return m.Depth
}

// layerMoves builds the per-layer moves that rotate 3D layers lo..hi about
// the axis by q right-handed quarter turns. Each layer is expressed as a
// turn of its nearest face, the negative-end face winning ties.
func layerMoves(a axis, lo, hi, q, n int) []Move {
	q = ((q % 4) + 4) % 4
	if q == 0 || lo > hi {
		return nil
	}
	neg := faceAt(a, false)
	pos := faceAt(a, true)
	var moves []Move
	for l := lo; l <= hi; l++ {
		if l <= n-1-l {
			moves = append(moves, Move{Face: neg, Depth: l, Turn: quartersToTurn(q)})
		} else {
			moves = append(moves, Move{Face: pos, Depth: n - 1 - l, Turn: quartersToTurn(4 - q)})
		}
	}
	return moves
}

// quartersToTurn converts right-handed quarter turns of a negative-end face
// into that face's Turn. For a positive-end face pass 4-q.
func quartersToTurn(q int) Turn {
	switch ((q % 4) + 4) % 4 {
	case 1:
		return CW
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return 0
	}
}
