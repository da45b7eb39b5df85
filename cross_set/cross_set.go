package cross_set

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/tilemapping"
)

// traverseBackwards follows the tiles on the board from (row, col) going
// left, starting at arc. It stops at the first empty square, or before
// column stopCol when stopCol >= 0. It returns the last arc followed, which
// is NoArc if the tiles left the dictionary.
func traverseBackwards(b *board.Board, gd *gaddag.Gaddag, row, col, stopCol int,
	arc gaddag.ArcIndex) gaddag.ArcIndex {

	for b.HasLetter(row, col) && col > stopCol {
		arc = gd.Next(arc, b.GetLetter(row, col))
		if arc == gaddag.NoArc {
			return gaddag.NoArc
		}
		col--
	}
	return arc
}

// wordCompletes checks that the tiles from col leftwards to leftCol,
// followed from arc, finish a word that ends exactly at leftCol.
func wordCompletes(b *board.Board, gd *gaddag.Gaddag, row, col, leftCol int,
	arc gaddag.ArcIndex) bool {

	arc = traverseBackwards(b, gd, row, col, leftCol, arc)
	return gd.HasFinal(arc, b.GetLetter(row, leftCol))
}

// Compute returns the letters that may go on the empty square (row, col)
// given the tiles directly left and right of it on the same row: the
// letters that join them into a word. With no tiles on either side every
// letter of the alphabet fits. An occupied square gets an empty set.
func Compute(b *board.Board, gd *gaddag.Gaddag, row, col int) tilemapping.LetterSet {
	if b.HasLetter(row, col) {
		return 0
	}
	leftTile := b.HasLetter(row, col-1)
	rightTile := b.HasLetter(row, col+1)
	if !leftTile && !rightTile {
		return gd.Alphabet().AllLetters()
	}
	if !rightTile {
		// LEFT x: the reversed left word, then the delimiter, ends in x.
		arc := traverseBackwards(b, gd, row, col-1, -1, gaddag.RootArc)
		return gd.FinalLetters(gd.NextArc(arc, gaddag.Delimiter))
	}
	rightCol := b.WordEdge(row, col+1, board.RightDirection)
	arc := traverseBackwards(b, gd, row, rightCol, col, gaddag.RootArc)
	if arc == gaddag.NoArc {
		return 0
	}
	if !leftTile {
		// x RIGHT: the whole word reversed, with x as its first letter.
		return gd.FinalLetters(arc)
	}
	// LEFT x RIGHT. Try every letter that continues the reversed path and
	// see whether the left part then completes the word.
	leftCol := b.WordEdge(row, col-1, board.LeftDirection)
	var cs tilemapping.LetterSet
	for _, ml := range gd.NextLetters(arc).Letters() {
		if wordCompletes(b, gd, row, col-1, leftCol, gd.Next(arc, ml)) {
			cs = cs.Add(ml)
		}
	}
	log.Debug().Int("row", row).Int("col", col).Int("left", leftCol).
		Int("right", rightCol).Msgf("cross-set between words: %v", cs.Letters())
	return cs
}

// genCrossSet computes the cross-set of (row, col) from the word on its row
// and stores it as the down set, since it limits what a down word can put
// there. b and g must be seen in the same orientation.
func genCrossSet(b *board.Board, g *Grid, gd *gaddag.Gaddag, row, col int) {
	if !b.PosExists(row, col) {
		return
	}
	g.At(row, col).CrossSet().SetDown(Compute(b, gd, row, col))
}
