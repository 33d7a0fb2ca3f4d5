package nxncube

// PhaseResult is what a solving phase reports back to the orchestrator: the
// phase either completed, or found a state that cannot occur on a real 3x3
// and names the parity kind it implies.
type PhaseResult int

const (
	PhaseDone PhaseResult = iota
	PhaseEdgeParity
	PhaseCornerParity
)

func (p PhaseResult) String() string {
	switch p {
	case PhaseDone:
		return "done"
	case PhaseEdgeParity:
		return "edge parity"
	case PhaseCornerParity:
		return "corner parity"
	default:
		return "unknown"
	}
}

// detectParity inspects a reduced cube as if it were a 3x3 and reports the
// first parity it finds. Edge flip parity and the edge/corner permutation
// parity mismatch are both invariant under outer face turns, so the answer
// does not depend on how far a probe solve got. Odd cubes have fixed centers
// and cannot reach either state.
func detectParity(c *Cube) PhaseResult {
	n := c.Size()
	if n < 4 || n%2 == 1 {
		return PhaseDone
	}
	if oddEdgeFlips(c) {
		return PhaseEdgeParity
	}
	if edgePermutationOdd(c) != cornerPermutationOdd(c) {
		return PhaseCornerParity
	}
	return PhaseDone
}

// virtualEdge returns the ordered sticker colors of one reduced edge,
// first face of the group first. Any wing of the group works once edges
// are paired; the first is used.
func virtualEdge(c *Cube, g edgeGroup) [2]Color {
	return g.wingPair(c, g.wingCells(c.Size())[0])
}

// edgeAxisFace picks the face whose sticker decides an edge's orientation:
// the up/down face when the group has one, else its front/back face. Every
// non-opposite face pair contains exactly one such face.
func edgeAxisFace(g edgeGroup) (primary, other Face) {
	for _, pair := range [][2]Face{{g.a, g.b}, {g.b, g.a}} {
		if pair[0] == FaceUp || pair[0] == FaceDown {
			return pair[0], pair[1]
		}
	}
	for _, pair := range [][2]Face{{g.a, g.b}, {g.b, g.a}} {
		if pair[0] == FaceFront || pair[0] == FaceBack {
			return pair[0], pair[1]
		}
	}
	return g.a, g.b
}

// oddEdgeFlips counts misoriented reduced edges with the usual convention:
// an edge is flipped when its up/down (or front/back) sticker shows a
// left/right color, or shows a front/back color while its partner shows an
// up/down color. Legal 3x3 states always have an even count, so an odd
// count is the reduction edge parity.
func oddEdgeFlips(c *Cube) bool {
	ud := map[Color]bool{faceToSolvedColor(FaceUp): true, faceToSolvedColor(FaceDown): true}
	fb := map[Color]bool{faceToSolvedColor(FaceFront): true, faceToSolvedColor(FaceBack): true}

	flips := 0
	for _, g := range edgeGroups() {
		primary, _ := edgeAxisFace(g)
		pair := virtualEdge(c, g)
		p, q := pair[0], pair[1]
		if primary != g.a {
			p, q = q, p
		}
		switch {
		case ud[p]:
		case fb[p] && !ud[q]:
		default:
			flips++
		}
	}
	return flips%2 == 1
}

// edgePermutationOdd computes the permutation parity of the twelve reduced
// edges, identifying each cubie by its unordered color pair.
func edgePermutationOdd(c *Cube) bool {
	groups := edgeGroups()
	home := make(map[[2]Color]int, len(groups))
	for i, g := range groups {
		home[orderedPair(faceToSolvedColor(g.a), faceToSolvedColor(g.b))] = i
	}
	perm := make([]int, len(groups))
	for i, g := range groups {
		pair := virtualEdge(c, g)
		perm[i] = home[orderedPair(pair[0], pair[1])]
	}
	return permutationOdd(perm)
}

// cornerPermutationOdd computes the permutation parity of the eight
// corners, identifying each cubie by its color set.
func cornerPermutationOdd(c *Cube) bool {
	n := c.Size()
	corners := cornerCells(n)
	home := make(map[[3]Color]int, len(corners))
	for i, cell := range corners {
		home[cornerColorsSolved(n, cell)] = i
	}
	perm := make([]int, len(corners))
	for i, cell := range corners {
		perm[i] = home[cornerColors(c, cell)]
	}
	return permutationOdd(perm)
}

// cornerCells lists the eight corner cubie cells in a fixed order.
func cornerCells(n int) [][3]int {
	var cells [][3]int
	for _, x := range []int{0, n - 1} {
		for _, y := range []int{0, n - 1} {
			for _, z := range []int{0, n - 1} {
				cells = append(cells, [3]int{x, y, z})
			}
		}
	}
	return cells
}

// cornerFaces returns the three faces a corner cell touches.
func cornerFaces(n int, cell [3]int) [3]Face {
	var faces [3]Face
	for a := axisX; a <= axisZ; a++ {
		faces[a] = faceAt(a, cell[a] == n-1)
	}
	return faces
}

// cornerColors reads a corner's three sticker colors, sorted so the triple
// identifies the cubie independent of orientation.
func cornerColors(c *Cube, cell [3]int) [3]Color {
	n := c.Size()
	var cols [3]Color
	for i, f := range cornerFaces(n, cell) {
		cols[i] = c.ColorAt(f, faceFrames[f].grid(n, cell))
	}
	return sortedTriple(cols)
}

// cornerColorsSolved is the solved-state color triple of a corner cell.
func cornerColorsSolved(n int, cell [3]int) [3]Color {
	var cols [3]Color
	for i, f := range cornerFaces(n, cell) {
		cols[i] = faceToSolvedColor(f)
	}
	return sortedTriple(cols)
}

func orderedPair(a, b Color) [2]Color {
	if b < a {
		a, b = b, a
	}
	return [2]Color{a, b}
}

func sortedTriple(c [3]Color) [3]Color {
	if c[1] < c[0] {
		c[0], c[1] = c[1], c[0]
	}
	if c[2] < c[1] {
		c[1], c[2] = c[2], c[1]
	}
	if c[1] < c[0] {
		c[0], c[1] = c[1], c[0]
	}
	return c
}

// permutationOdd reports the parity of a permutation given as images, by
// cycle counting.
func permutationOdd(perm []int) bool {
	seen := make([]bool, len(perm))
	transpositions := 0
	for i := range perm {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		transpositions += length - 1
	}
	return transpositions%2 == 1
}
