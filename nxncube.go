// Package nxncube models NxN twisty cubes and solves them by reduction.
//
// The package has three layers. The geometry layer (Face, Slice, Point,
// Block) answers questions about how face grids relate in space and how
// points travel between faces. The commutator layer plans exact three-cycle
// move sequences that relocate a block of stickers from one face to another
// without disturbing anything else. The solving layer uses those cycles to
// reduce a big cube to a 3x3 equivalent, hands it to a ThreeSolver, and
// recovers from the parity states reduction can produce on even cubes.
package nxncube
