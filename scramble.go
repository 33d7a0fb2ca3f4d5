package nxncube

import "math/rand"

// Scramble returns a random move sequence for a cube of the given size.
// Consecutive moves never turn the same face, and layer depths cover every
// turnable layer of the cube. The sequence is reproducible from the seed.
func Scramble(size, length int, seed int64) []Move {
	rng := rand.New(rand.NewSource(seed))
	moves := make([]Move, 0, length)
	turns := []Turn{CW, CCW, Double}

	last := Face(255)
	for len(moves) < length {
		f := Faces[rng.Intn(len(Faces))]
		if f == last {
			continue
		}
		last = f
		moves = append(moves, Move{
			Face:  f,
			Depth: rng.Intn(size / 2),
			Turn:  turns[rng.Intn(len(turns))],
		})
	}
	return moves
}

// ScrambleOuter is Scramble restricted to outer layers. Outer-only
// scrambles keep a reduced cube reduced, which makes them useful for
// exercising the 3x3 phases in isolation.
func ScrambleOuter(length int, seed int64) []Move {
	rng := rand.New(rand.NewSource(seed))
	moves := make([]Move, 0, length)
	turns := []Turn{CW, CCW, Double}

	last := Face(255)
	for len(moves) < length {
		f := Faces[rng.Intn(len(Faces))]
		if f == last {
			continue
		}
		last = f
		moves = append(moves, Move{Face: f, Turn: turns[rng.Intn(len(turns))]})
	}
	return moves
}
