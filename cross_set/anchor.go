package cross_set

import (
	"github.com/domino14/gordon/board"
)

// isAcrossAnchor says whether an across word may be built from (row, col),
// looking at b in its own orientation. A square with a tile is an anchor
// if it starts a word, that is, the square to its left is empty. An empty
// square is an anchor if a tile touches it from above or below and none
// from the sides; words touching it from the sides are built from their
// own first tile.
func isAcrossAnchor(b *board.Board, row, col int) bool {
	if b.IsEmpty() {
		sr, sc := b.Start()
		return row == sr && col == sc
	}
	if b.HasLetter(row, col) {
		return !b.HasLetter(row, col-1)
	}
	return !b.HasLetter(row, col-1) && !b.HasLetter(row, col+1) &&
		(b.HasLetter(row-1, col) || b.HasLetter(row+1, col))
}

// updateAnchors recomputes both anchors of (row, col). The down anchor is
// the across rule applied to the transposed board.
func updateAnchors(b *board.Board, g *Grid, row, col int) {
	if !b.PosExists(row, col) {
		return
	}
	a := g.At(row, col).Anchor()
	a.SetAcross(isAcrossAnchor(b, row, col))
	a.SetDown(isAcrossAnchor(b.Transpose(), col, row))
}
