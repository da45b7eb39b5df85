// Package cross_set keeps the per-square search data used by the move
// generator: anchors, which say where a word may be built from, and
// cross-sets, which say which letters fit under the words already played
// in the other direction.
package cross_set

import (
	"github.com/domino14/gordon/tilemapping"
)

const (
	across = 0
	down   = 1
)

// squareData is the storage for one square, in untransposed orientation.
type squareData struct {
	anchor   [2]bool
	crossSet [2]tilemapping.LetterSet
}

type store struct {
	dim   int
	cells []squareData
}

// A Grid holds the SquareData of every square of a board. Like a board, it
// can be seen transposed; views share their storage.
type Grid struct {
	st         *store
	transposed bool
}

// NewGrid makes a grid for a board of dimension dim. Every anchor is off
// and every cross-set is empty.
func NewGrid(dim int) *Grid {
	return &Grid{st: &store{dim: dim, cells: make([]squareData, dim*dim)}}
}

func (g *Grid) Dim() int {
	return g.st.dim
}

func (g *Grid) Transpose() *Grid {
	return &Grid{st: g.st, transposed: !g.transposed}
}

func (g *Grid) IsTransposed() bool {
	return g.transposed
}

// At returns the data of a square, seen in this grid's orientation.
func (g *Grid) At(row, col int) SquareData {
	if g.transposed {
		row, col = col, row
	}
	return SquareData{d: &g.st.cells[row*g.st.dim+col], transposed: g.transposed}
}

// Copy returns a grid with its own storage, in the same orientation.
func (g *Grid) Copy() *Grid {
	cells := make([]squareData, len(g.st.cells))
	copy(cells, g.st.cells)
	return &Grid{st: &store{dim: g.st.dim, cells: cells}, transposed: g.transposed}
}

// Equals compares the data of every square of both grids, as seen through
// their views.
func (g *Grid) Equals(o *Grid) bool {
	if g.Dim() != o.Dim() {
		return false
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			if !g.At(row, col).Equals(o.At(row, col)) {
				return false
			}
		}
	}
	return true
}

// SquareData is the anchor and cross-set pair of one square.
type SquareData struct {
	d          *squareData
	transposed bool
}

func (s SquareData) Anchor() Anchor {
	return Anchor(s)
}

func (s SquareData) CrossSet() CrossSet {
	return CrossSet(s)
}

// Transpose swaps what is across and what is down. The storage is shared.
func (s SquareData) Transpose() SquareData {
	return SquareData{d: s.d, transposed: !s.transposed}
}

func (s SquareData) Equals(o SquareData) bool {
	return s.Anchor().Across() == o.Anchor().Across() &&
		s.Anchor().Down() == o.Anchor().Down() &&
		s.CrossSet().Across() == o.CrossSet().Across() &&
		s.CrossSet().Down() == o.CrossSet().Down()
}

func axis(transposed bool, a int) int {
	if transposed {
		return 1 - a
	}
	return a
}

// Anchor is a view of the two anchor flags of a square.
type Anchor struct {
	d          *squareData
	transposed bool
}

// Across is whether an across word may be built from this square.
func (a Anchor) Across() bool {
	return a.d.anchor[axis(a.transposed, across)]
}

func (a Anchor) Down() bool {
	return a.d.anchor[axis(a.transposed, down)]
}

func (a Anchor) SetAcross(v bool) {
	a.d.anchor[axis(a.transposed, across)] = v
}

func (a Anchor) SetDown(v bool) {
	a.d.anchor[axis(a.transposed, down)] = v
}

func (a Anchor) Transpose() Anchor {
	return Anchor{d: a.d, transposed: !a.transposed}
}

// CrossSet is a view of the two cross-sets of a square. The across set
// holds the letters that may be put here as part of an across word; it is
// limited by the down word through the square.
type CrossSet struct {
	d          *squareData
	transposed bool
}

func (c CrossSet) Across() tilemapping.LetterSet {
	return c.d.crossSet[axis(c.transposed, across)]
}

func (c CrossSet) Down() tilemapping.LetterSet {
	return c.d.crossSet[axis(c.transposed, down)]
}

func (c CrossSet) SetAcross(ls tilemapping.LetterSet) {
	c.d.crossSet[axis(c.transposed, across)] = ls
}

func (c CrossSet) SetDown(ls tilemapping.LetterSet) {
	c.d.crossSet[axis(c.transposed, down)] = ls
}

func (c CrossSet) Transpose() CrossSet {
	return CrossSet{d: c.d, transposed: !c.transposed}
}
