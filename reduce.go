package nxncube

import (
	"fmt"

	"go.uber.org/zap"
)

// reducer rebuilds a big cube's centers and edges until the cube behaves
// like a 3x3: uniform centers and uniformly paired edge groups.
type reducer struct {
	cube   *Cube
	logger *zap.Logger
	stall  int
}

// centerRegion returns the block of true center cells of a face.
func centerRegion(n int) Block {
	return Block{Start: Point{Row: 1, Col: 1}, End: Point{Row: n - 2, Col: n - 2}}
}

// CentersReduced reports whether every face's center region is uniform and
// the six center colors are all distinct.
func CentersReduced(c *Cube) bool {
	n := c.Size()
	if n <= 3 {
		return true
	}
	seen := map[Color]bool{}
	for _, f := range Faces {
		first := c.ColorAt(f, Point{Row: 1, Col: 1})
		for _, p := range centerRegion(n).Points() {
			if c.ColorAt(f, p) != first {
				return false
			}
		}
		if seen[first] {
			return false
		}
		seen[first] = true
	}
	return true
}

// reduceCenters builds each face's center region to its solved color, one
// face at a time. Donor faces are any faces not yet completed; the engine's
// exact cycles guarantee finished faces are never raided. On odd cubes the
// true centers are first realigned with slice turns so the target colors
// are reachable at all.
func (r *reducer) reduceCenters() error {
	c := r.cube
	n := c.Size()
	if n <= 3 {
		return nil
	}

	if n%2 == 1 {
		r.alignTrueCenters()
	}

	done := map[Face]bool{}
	for _, target := range Faces {
		if err := r.buildCenter(target, done); err != nil {
			return err
		}
		done[target] = true
		r.logger.Debug("center built", zap.Stringer("face", target))
	}
	return nil
}

// alignTrueCenters turns middle layers until each true center shows its
// face's solved color. The six fixed centers only ever occupy the 24 cube
// orientations, so a short breadth-first search over middle layer turns
// finds the alignment.
func (r *reducer) alignTrueCenters() {
	c := r.cube
	n := c.Size()
	mid := (n - 1) / 2
	center := Point{Row: mid, Col: mid}

	aligned := func(cc *Cube) bool {
		for _, f := range Faces {
			if cc.ColorAt(f, center) != faceToSolvedColor(f) {
				return false
			}
		}
		return true
	}
	if aligned(c) {
		return
	}

	var gens []Move
	for _, f := range []Face{FaceLeft, FaceDown, FaceBack} {
		for _, t := range []Turn{CW, CCW, Double} {
			gens = append(gens, Move{Face: f, Depth: mid, Turn: t})
		}
	}

	type node struct {
		cube  *Cube
		moves []Move
	}
	queue := []node{{cube: c.Clone()}}
	for depth := 0; depth < 4 && len(queue) > 0; depth++ {
		var next []node
		for _, nd := range queue {
			for _, g := range gens {
				cc := nd.cube.Clone()
				cc.Apply(g)
				moves := append(append([]Move{}, nd.moves...), g)
				if aligned(cc) {
					c.ApplyMoves(moves)
					return
				}
				next = append(next, node{cube: cc, moves: moves})
			}
		}
		queue = next
	}
}

// buildCenter fills one face's center region with its solved color.
func (r *reducer) buildCenter(target Face, done map[Face]bool) error {
	c := r.cube
	n := c.Size()
	col := faceToSolvedColor(target)

	budget := r.stall * n * n
	for iter := 0; ; iter++ {
		wrong := r.wrongCenterCells(target, col)
		if len(wrong) == 0 {
			return nil
		}
		if iter >= budget {
			return fmt.Errorf("failed to build %s center, %d cells left: %w", target, len(wrong), ErrReductionStalled)
		}

		cand, ok := r.pickCenterCandidate(target, col, wrong, done)
		if !ok {
			// The wanted color may be stranded on the opposite face, out
			// of reach of direct commutations.
			if r.relayCenterSticker(target, col, done) {
				continue
			}
			return fmt.Errorf("failed to build %s center, no donor for %d cells: %w", target, len(wrong), ErrReductionStalled)
		}
		for k := 0; k < cand.setup; k++ {
			c.Apply(Move{Face: cand.donor, Turn: CW})
		}
		c.ApplyMoves(cand.plan.Moves)
	}
}

func (r *reducer) wrongCenterCells(target Face, col Color) []Point {
	var wrong []Point
	for _, p := range centerRegion(r.cube.Size()).Points() {
		if r.cube.ColorAt(target, p) != col {
			wrong = append(wrong, p)
		}
	}
	return wrong
}

// centerCandidate is one viable commutation for center building: a donor
// face pre-rotated setup quarter turns so the needed color sits at the
// plan's source cell.
type centerCandidate struct {
	donor Face
	setup int
	plan  *Commutation
}

// centerDonors lists every donor commutation that inserts the wanted color
// into the block, in scanning order.
func (r *reducer) centerDonors(target Face, col Color, block Block, done map[Face]bool) []centerCandidate {
	c := r.cube
	n := c.Size()
	var cands []centerCandidate
	for _, donor := range Faces {
		if donor == target || done[donor] {
			continue
		}
		plan, err := PlanCommutation(n, donor, target, block)
		if err != nil {
			continue
		}
		src := plan.Source.Start
		if src.Row == 0 || src.Row == n-1 || src.Col == 0 || src.Col == n-1 {
			continue
		}
		for setup := 0; setup < 4; setup++ {
			// After setup clockwise turns of the donor, the sticker at
			// the source cell is the one currently sitting at the
			// counter-rotated position.
			from := src.rotateQuarters(n, 4-setup%4)
			if c.ColorAt(donor, from) != col {
				continue
			}
			cands = append(cands, centerCandidate{donor: donor, setup: setup, plan: plan})
		}
	}
	return cands
}

// pickCenterCandidate scans wrong cells, donors and donor rotations for a
// commutation that makes strict progress. Two insertion shapes do: filling
// a wrong cell whose displaced piece lands on a cell that is wrong anyway,
// and filling the already-correct rotation image of a wrong cell so the
// wrong piece itself is pushed off the face. A candidate that trades one
// correct cell for another is kept as a fallback so the loop can still
// move when nothing cleaner exists.
func (r *reducer) pickCenterCandidate(target Face, col Color, wrong []Point, done map[Face]bool) (centerCandidate, bool) {
	c := r.cube
	n := c.Size()

	var fallback centerCandidate
	haveFallback := false

	for _, t := range wrong {
		for _, cand := range r.centerDonors(target, col, Block{Start: t, End: t}, done) {
			if c.ColorAt(target, cand.plan.Third.Start) != col {
				return cand, true
			}
			if !haveFallback {
				fallback, haveFallback = cand, true
			}
		}
		// Every direct fill deposits the displaced piece back on the
		// target face, so a face's last wrong cell can only be cleared by
		// the indirect shape: insert into the rotation image of t whose
		// third block is exactly t; t then inherits that cell's correct
		// color and the wrong piece leaves for the donor.
		for _, u := range []Point{t.rotateCW(n), t.rotateCCW(n)} {
			if c.ColorAt(target, u) != col {
				continue
			}
			for _, cand := range r.centerDonors(target, col, Block{Start: u, End: u}, done) {
				if cand.plan.Third.Start != t {
					continue
				}
				return cand, true
			}
		}
	}
	return fallback, haveFallback
}

// relayCenterSticker pulls one sticker of the wanted color off the face
// opposite the target and onto an adjacent face, where the donor scan can
// reach it. Commutations between opposite faces only exist for cells
// mirrored onto themselves, so a stranded color travels through a side
// face instead.
func (r *reducer) relayCenterSticker(target Face, col Color, done map[Face]bool) bool {
	c := r.cube
	n := c.Size()
	opp := Opposite(target)
	if done[opp] {
		return false
	}
	for _, via := range AdjacentFaces(target) {
		if done[via] {
			continue
		}
		for _, p := range centerRegion(n).Points() {
			for _, cand := range r.centerDonors(via, col, Block{Start: p, End: p}, done) {
				if cand.donor != opp {
					continue
				}
				for k := 0; k < cand.setup; k++ {
					c.Apply(Move{Face: opp, Turn: CW})
				}
				c.ApplyMoves(cand.plan.Moves)
				return true
			}
		}
	}
	return false
}

// edgeGroup identifies one of the twelve edge groups by its two faces.
type edgeGroup struct {
	a Face
	b Face
}

// edgeGroups lists the twelve edge groups with a canonical face order.
func edgeGroups() []edgeGroup {
	var groups []edgeGroup
	for i, a := range Faces {
		for _, b := range Faces[i+1:] {
			if Opposite(a) != b {
				groups = append(groups, edgeGroup{a: a, b: b})
			}
		}
	}
	return groups
}

// wingCells returns the cubie cells of the group's wings, reference face
// first in each sticker lookup. Index 0 is nearest one corner; corners are
// excluded.
func (g edgeGroup) wingCells(n int) [][3]int {
	fa, fb := faceFrames[g.a], faceFrames[g.b]
	free := otherAxis(fa.axis, fb.axis)
	cells := make([][3]int, 0, n-2)
	for i := 1; i <= n-2; i++ {
		var cell [3]int
		cell[fa.axis] = fa.level(n)
		cell[fb.axis] = fb.level(n)
		cell[free] = i
		cells = append(cells, cell)
	}
	return cells
}

// wingPair returns the ordered sticker colors of a wing cubie: the sticker
// on the group's first face, then the second.
func (g edgeGroup) wingPair(c *Cube, cell [3]int) [2]Color {
	n := c.Size()
	return [2]Color{
		c.ColorAt(g.a, faceFrames[g.a].grid(n, cell)),
		c.ColorAt(g.b, faceFrames[g.b].grid(n, cell)),
	}
}

// EdgesReduced reports whether every edge group shows a single ordered
// color pair along its whole length.
func EdgesReduced(c *Cube) bool {
	n := c.Size()
	if n <= 3 {
		return true
	}
	for _, g := range edgeGroups() {
		cells := g.wingCells(n)
		ref := g.wingPair(c, cells[0])
		for _, cell := range cells[1:] {
			if g.wingPair(c, cell) != ref {
				return false
			}
		}
	}
	return true
}

// reduceEdges pairs the wings of each edge group using the same exact
// cycles as center building, pulling matching wings in from other groups
// with donor-face setup turns. Centers survive untouched because each
// commutation moves exactly three cubies.
func (r *reducer) reduceEdges() error {
	c := r.cube
	n := c.Size()
	if n <= 3 {
		return nil
	}

	budget := r.stall * n * len(edgeGroups())
	for iter := 0; ; iter++ {
		group, cell, ok := r.firstBrokenWing()
		if !ok {
			return nil
		}
		if iter >= budget {
			return fmt.Errorf("failed to pair edges: %w", ErrReductionStalled)
		}
		if err := r.fixWing(group, cell); err != nil {
			return err
		}
	}
}

// firstBrokenWing finds a wing that disagrees with its group's reference
// pair. The reference is the group's first wing, which for odd cubes is on
// the same side as the fixed middle wing.
func (r *reducer) firstBrokenWing() (edgeGroup, [3]int, bool) {
	n := r.cube.Size()
	for _, g := range edgeGroups() {
		cells := g.wingCells(n)
		ref := g.wingPair(r.cube, cells[refWingIndex(n)])
		for _, cell := range cells {
			if g.wingPair(r.cube, cell) != ref {
				return g, cell, true
			}
		}
	}
	return edgeGroup{}, [3]int{}, false
}

// refWingIndex picks the wing the rest of the group is matched against:
// the middle wing on odd cubes, the first otherwise.
func refWingIndex(n int) int {
	if n%2 == 1 {
		return (n-1)/2 - 1
	}
	return 0
}

// fixWing replaces one mismatched wing with a matching one pulled from
// elsewhere. Both sticker faces of the slot are tried as commutation
// targets, which covers the two arrival orientations.
func (r *reducer) fixWing(g edgeGroup, cell [3]int) error {
	c := r.cube
	n := c.Size()
	ref := g.wingPair(c, g.wingCells(n)[refWingIndex(n)])

	type slot struct {
		target Face
		want   [2]Color // color that must arrive on target face, partner
	}
	slots := []slot{
		{target: g.a, want: [2]Color{ref[0], ref[1]}},
		{target: g.b, want: [2]Color{ref[1], ref[0]}},
	}

	var fallback func()
	for _, sl := range slots {
		tp := faceFrames[sl.target].grid(n, cell)
		block := Block{Start: tp, End: tp}
		for _, donor := range Faces {
			if donor == sl.target || donor == Opposite(sl.target) {
				continue
			}
			plan, err := PlanCommutation(n, donor, sl.target, block)
			if err != nil {
				continue
			}
			srcCell := faceFrames[donor].cell(n, plan.Source.Start)
			if _, ok := wingPartnerFace(n, srcCell, donor); !ok {
				continue
			}
			for setup := 0; setup < 4; setup++ {
				arriving, partnerColor := r.wingAfterSetup(donor, srcCell, setup)
				if arriving != sl.want[0] || partnerColor != sl.want[1] {
					continue
				}
				apply := func() {
					for k := 0; k < setup; k++ {
						c.Apply(Move{Face: donor, Turn: CW})
					}
					c.ApplyMoves(plan.Moves)
				}
				if !r.wingMatches(sl.target, plan.Third.Start) {
					apply()
					return nil
				}
				if fallback == nil {
					fallback = apply
				}
			}
		}
	}
	if fallback != nil {
		fallback()
		return nil
	}
	return fmt.Errorf("failed to pair wing on %s/%s: %w", g.a, g.b, ErrReductionStalled)
}

// wingAfterSetup returns the sticker colors that will occupy a donor-face
// wing cell after the donor is turned clockwise setup times: the sticker on
// the donor face and its partner on the neighboring face.
func (r *reducer) wingAfterSetup(donor Face, srcCell [3]int, setup int) (Color, Color) {
	c := r.cube
	n := c.Size()
	fr := faceFrames[donor]
	// Undo the setup rotation to find which cubie will arrive at srcCell.
	q := (4 - setup%4) % 4
	if fr.positive {
		q = (4 - q) % 4 // face CW runs against the axis on positive faces
	}
	from := rotateCell(fr.axis, q, n, srcCell)
	pf, ok := wingPartnerFace(n, from, donor)
	if !ok {
		return 255, 255
	}
	return c.ColorAt(donor, fr.grid(n, from)), c.ColorAt(pf, faceFrames[pf].grid(n, from))
}

// wingPartnerFace returns the face carrying the second sticker of a wing
// cubie, given the face carrying the first. Returns false when the cell is
// not a two-sticker cubie.
func wingPartnerFace(n int, cell [3]int, f Face) (Face, bool) {
	fr := faceFrames[f]
	var found Face
	count := 0
	for a := axisX; a <= axisZ; a++ {
		if a == fr.axis {
			continue
		}
		if cell[a] == 0 {
			found = faceAt(a, false)
			count++
		} else if cell[a] == n-1 {
			found = faceAt(a, true)
			count++
		}
	}
	if count != 1 {
		return 0, false
	}
	return found, true
}

// wingMatches reports whether the wing at a sticker cell currently agrees
// with its group's reference pair.
func (r *reducer) wingMatches(f Face, p Point) bool {
	n := r.cube.Size()
	cell := faceFrames[f].cell(n, p)
	pf, ok := wingPartnerFace(n, cell, f)
	if !ok {
		return false
	}
	g := edgeGroup{a: f, b: pf}
	if canon := canonicalGroup(f, pf); canon != g {
		g = canon
	}
	cells := g.wingCells(n)
	ref := g.wingPair(r.cube, cells[refWingIndex(n)])
	return g.wingPair(r.cube, cell) == ref
}

// canonicalGroup orders a face pair the way edgeGroups enumerates them.
func canonicalGroup(a, b Face) edgeGroup {
	for _, g := range edgeGroups() {
		if (g.a == a && g.b == b) || (g.a == b && g.b == a) {
			return g
		}
	}
	return edgeGroup{a: a, b: b}
}

// wideMoves turns layers fromDepth..toDepth of a face, one move per layer.
func wideMoves(f Face, fromDepth, toDepth int, t Turn) []Move {
	var moves []Move
	for d := fromDepth; d <= toDepth; d++ {
		moves = append(moves, Move{Face: f, Depth: d, Turn: t})
	}
	return moves
}

// edgeParityMoves builds the generalized edge-flip parity fix for even
// cubes: r2 B2 U2 l U2 r' U2 r U2 F2 r F2 l' B2 r2, with r and l standing
// for all inner layers of their half.
func edgeParityMoves(n int) []Move {
	r := func(t Turn) []Move { return wideMoves(FaceRight, 1, n/2-1, t) }
	l := func(t Turn) []Move { return wideMoves(FaceLeft, 1, n/2-1, t) }
	one := func(f Face, t Turn) []Move { return []Move{{Face: f, Turn: t}} }

	var moves []Move
	for _, part := range [][]Move{
		r(Double), one(FaceBack, Double), one(FaceUp, Double),
		l(CW), one(FaceUp, Double), r(CCW), one(FaceUp, Double),
		r(CW), one(FaceUp, Double), one(FaceFront, Double),
		r(CW), one(FaceFront, Double), l(CCW),
		one(FaceBack, Double), r(Double),
	} {
		moves = append(moves, part...)
	}
	return moves
}

// cornerParityMoves builds the generalized permutation parity fix for even
// cubes: r2 U2 r2 Uw2 r2 Uw2.
func cornerParityMoves(n int) []Move {
	r := func() []Move { return wideMoves(FaceRight, 1, n/2-1, Double) }
	uw := func() []Move { return wideMoves(FaceUp, 0, n/2-1, Double) }

	var moves []Move
	for _, part := range [][]Move{
		r(), {{Face: FaceUp, Turn: Double}}, r(), uw(), r(), uw(),
	} {
		moves = append(moves, part...)
	}
	return moves
}
