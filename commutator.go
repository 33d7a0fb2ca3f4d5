package nxncube

import "fmt"

// Commutation is a planned block transfer: a move sequence whose net effect
// is an exact 3-cycle carrying the source block's pieces onto the target
// block, the target's pieces onto the third block, and the third block's
// pieces back to the source. Every piece outside the three blocks is left
// untouched.
type Commutation struct {
	SourceFace Face
	TargetFace Face

	// Target is the block the caller asked to fill.
	Target Block
	// NaturalSource is where the target's cells sit on the source face
	// before any setup, found by a dry-run translation of the corners.
	NaturalSource RotatedBlock
	// Source is the block whose pieces actually land on the target: the
	// natural source as displaced by the masking turns. It is derived by
	// applying the inverse alignment to the target's cells, so it always
	// matches what the moves do.
	Source RotatedBlock
	// Third is where the target's current pieces end up, on the target
	// face.
	Third RotatedBlock
	// Sign is the direction the target face is turned.
	Sign Turn

	Moves []Move
}

// insertion is the worked-out geometry of one commutation before emission.
type insertion struct {
	slice    Slice
	hops     int // forward cycle hops from source to target
	lineLo   int // slice layer range of the block, along the slice axis
	lineHi   int
	slotLo   int // block extent along the slot axis
	slotHi   int
	slotAxis axis
	maskQ    int // right-handed quarter turns of the masking rotation
}

// PlanCommutation plans the exact 3-cycle that moves a block of pieces from
// the source face onto the target block. The plan depends only on geometry,
// not on sticker colors, so it needs the cube size rather than a cube.
// Opposite faces share two slice families; both routes are tried before the
// block is declared unmovable.
func PlanCommutation(n int, source, target Face, block Block) (*Commutation, error) {
	if n < 2 {
		return nil, ErrInvalidSize
	}
	if block.Start.Row < 0 || block.Start.Col < 0 || block.End.Row >= n || block.End.Col >= n {
		return nil, fmt.Errorf("failed to plan for block %s: %w", block, ErrPointOutOfRange)
	}
	shared, err := slicesThrough(source, target)
	if err != nil {
		return nil, err
	}
	var lastErr error
	for _, s := range shared {
		comm, err := planOnSlice(n, source, target, block, s)
		if err == nil {
			return comm, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func planOnSlice(n int, source, target Face, block Block, s Slice) (*Commutation, error) {
	si := sliceInfos[s]
	tf := faceFrames[target]

	// Block extents in cubie coordinates.
	c1 := tf.cell(n, block.Start)
	c2 := tf.cell(n, block.End)
	ins := insertion{
		slice:    s,
		hops:     s.cycleDistance(source, target),
		lineLo:   min(c1[si.axis], c2[si.axis]),
		lineHi:   max(c1[si.axis], c2[si.axis]),
		slotAxis: otherAxis(si.axis, tf.axis),
	}
	ins.slotLo = min(c1[ins.slotAxis], c2[ins.slotAxis])
	ins.slotHi = max(c1[ins.slotAxis], c2[ins.slotAxis])

	sign, err := chooseSign(n, target, s, block)
	if err != nil {
		return nil, err
	}

	maskQ, err := chooseMaskDirection(n, target, ins)
	if err != nil {
		return nil, err
	}
	ins.maskQ = maskQ

	align := alignMoves(n, ins)
	alignInv := InvertMoves(align)
	faceTurn := Move{Face: target, Turn: sign}

	// The block must leave the target face's layer during the insertion,
	// and the cells it is pulled from must all sit on the source face.
	// Blocks hugging the edge shared with the next face on the cycle wrap
	// around the corner; between opposite faces the masking turns displace
	// any block that is not its own mirror image along the slot axis. Both
	// fail here.
	sf := faceFrames[source]
	level := tf.level(n)
	for _, p := range block.Points() {
		cell := tf.cell(n, p)
		if cellAfterMoves(n, cell, align)[tf.axis] == level {
			return nil, fmt.Errorf("failed to plan for block %s on %s: %w", block, target, ErrBlockNotMovable)
		}
		back := cellAfterMoves(n, cell, alignInv)
		if back[tf.axis] == level || back[sf.axis] != sf.level(n) {
			return nil, fmt.Errorf("failed to plan for block %s from %s to %s: %w", block, source, target, ErrBlockNotMovable)
		}
	}

	moves := make([]Move, 0, 2*len(align)+2*len(alignInv)+2)
	moves = append(moves, align...)
	moves = append(moves, faceTurn)
	moves = append(moves, alignInv...)
	moves = append(moves, faceTurn.Inverse())

	comm := &Commutation{
		SourceFace: source,
		TargetFace: target,
		Target:     block,
		Sign:       sign,
		Moves:      moves,
	}

	// Reported blocks are read off the emitted moves so they cannot drift
	// from what execution does.
	srcStart := sf.grid(n, cellAfterMoves(n, tf.cell(n, block.Start), alignInv))
	srcEnd := sf.grid(n, cellAfterMoves(n, tf.cell(n, block.End), alignInv))
	comm.Source = RotatedBlock{Start: srcStart, End: srcEnd}

	natStart, err := Translate(n, target, source, block.Start)
	if err != nil {
		return nil, err
	}
	natEnd, err := Translate(n, target, source, block.End)
	if err != nil {
		return nil, err
	}
	comm.NaturalSource = RotatedBlock{Start: natStart, End: natEnd}

	thirdQ := 3
	if sign == CCW {
		thirdQ = 1
	}
	comm.Third = block.Rotate(n, thirdQ)

	return comm, nil
}

// chooseSign picks the direction of the target face turn. Clockwise is
// preferred; if the clockwise image of the block overlaps it along the
// slice direction, counterclockwise is used instead. When both images
// overlap the block cannot be commutated at all, which on odd cubes happens
// exactly at the face's center cell.
func chooseSign(n int, target Face, s Slice, block Block) (Turn, error) {
	lineIsRow := faceFrames[target].rowAxis == sliceInfos[s].axis

	interval := func(b Block) (int, int) {
		if lineIsRow {
			return b.Start.Row, b.End.Row
		}
		return b.Start.Col, b.End.Col
	}

	lo, hi := interval(block)
	cwLo, cwHi := interval(NewBlock(block.Start.rotateCW(n), block.End.rotateCW(n)))
	if cwHi < lo || hi < cwLo {
		return CW, nil
	}
	ccwLo, ccwHi := interval(NewBlock(block.Start.rotateCCW(n), block.End.rotateCCW(n)))
	if ccwHi < lo || hi < ccwLo {
		return CCW, nil
	}
	return 0, fmt.Errorf("failed to plan for block %s on %s: %w", block, target, ErrPieceUnmovable)
}

// chooseMaskDirection picks the masking rotation about the slot axis. The
// mask carries the rest of the target face's layer into one of the two
// outermost slice layers; that layer must not be one the insertion itself
// rotates, or the mask would not restore cleanly. Between opposite faces
// the source face's layer is masked too, so its landing layer gets the same
// treatment.
func chooseMaskDirection(n int, target Face, ins insertion) (int, error) {
	tf := faceFrames[target]
	lineAxis := sliceInfos[ins.slice].axis
	levels := []int{tf.level(n)}
	if ins.hops == 2 {
		levels = append(levels, n-1-tf.level(n))
	}
	for _, q := range []int{1, 3} {
		ok := true
		for _, lv := range levels {
			var sample [3]int
			sample[tf.axis] = lv
			landing := rotateCell(ins.slotAxis, q, n, sample)[lineAxis]
			if landing >= ins.lineLo && landing <= ins.lineHi {
				ok = false
				break
			}
		}
		if ok {
			return q, nil
		}
	}
	return 0, fmt.Errorf("failed to plan on %s: %w", target, ErrBlockNotMovable)
}

// alignMoves emits the insertion: masking turns bracketing the rotation of
// the block's slice layers toward the target face.
func alignMoves(n int, ins insertion) []Move {
	si := sliceInfos[ins.slice]
	rotQ := (si.flowQ * ins.hops) % 4

	maskHi := layerMoves(ins.slotAxis, ins.slotHi+1, n-1, ins.maskQ, n)
	maskLo := layerMoves(ins.slotAxis, 0, ins.slotLo-1, ins.maskQ, n)
	line := layerMoves(si.axis, ins.lineLo, ins.lineHi, rotQ, n)

	var moves []Move
	moves = append(moves, maskHi...)
	moves = append(moves, maskLo...)
	moves = append(moves, line...)
	moves = append(moves, InvertMoves(maskLo)...)
	moves = append(moves, InvertMoves(maskHi)...)
	return moves
}

// FindMovableBlock searches the sub-blocks of the desired block, largest
// first, and returns the plan for the biggest one that can be commutated
// from the source face. The result is always the desired block itself or a
// smaller piece of it; an error means not even a single cell inside it can
// move.
func FindMovableBlock(n int, source, target Face, desired Block) (*Commutation, error) {
	type candidate struct {
		block Block
		area  int
	}
	var cands []candidate
	for r1 := desired.Start.Row; r1 <= desired.End.Row; r1++ {
		for r2 := r1; r2 <= desired.End.Row; r2++ {
			for col1 := desired.Start.Col; col1 <= desired.End.Col; col1++ {
				for col2 := col1; col2 <= desired.End.Col; col2++ {
					b := Block{Start: Point{Row: r1, Col: col1}, End: Point{Row: r2, Col: col2}}
					cands = append(cands, candidate{block: b, area: b.Area()})
				}
			}
		}
	}
	// Largest first; ties keep enumeration order for determinism.
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && cands[j].area > cands[j-1].area; j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}

	var lastErr error
	for _, cand := range cands {
		comm, err := PlanCommutation(n, source, target, cand.block)
		if err == nil {
			return comm, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("failed to search %s on %s: %w", desired, target, ErrBlockNotMovable)
	}
	return nil, lastErr
}
