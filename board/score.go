package board

import (
	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

const (
	RackTileLimit = 7
	// BingoBonus is added when a move uses a whole rack.
	BingoBonus = 50
)

// scoreLine scores the word running across through column col of row,
// with tile ml newly placed at col. Squares with tiles already on the
// board score face value.
func (g *Board) scoreLine(row, col int, placed map[int]tilemapping.MachineLetter,
	alph *tilemapping.Alphabet) (int, int) {

	has := func(c int) bool {
		if _, ok := placed[c]; ok {
			return true
		}
		return g.HasLetter(row, c)
	}
	start, end := col, col
	for has(start - 1) {
		start--
	}
	for has(end + 1) {
		end++
	}
	score, wordMult := 0, 1
	for c := start; c <= end; c++ {
		if ml, ok := placed[c]; ok {
			mod := g.GetModifier(row, c)
			score += alph.Score(ml) * mod.letterMultiplier()
			wordMult *= mod.wordMultiplier()
		} else {
			score += alph.Score(g.GetLetter(row, c))
		}
	}
	return score * wordMult, end - start + 1
}

// ScoreMove scores a move that has not been placed yet: the main word plus
// every perpendicular word the new tiles form. Modifiers only count under
// new tiles, and blanks are worth nothing.
func (g *Board) ScoreMove(m *move.Move, alph *tilemapping.Alphabet) int {
	ps := m.Positions()
	if len(ps) == 0 {
		return 0
	}
	a := g.Aligned(m)
	row := m.RowOrCol()
	placed := make(map[int]tilemapping.MachineLetter, len(ps))
	for _, p := range ps {
		placed[p], _ = m.Tile(p)
	}
	total := 0
	if main, length := a.scoreLine(row, ps[0], placed, alph); length > 1 {
		total += main
	}
	t := a.Transpose()
	for _, p := range ps {
		cross, length := t.scoreLine(p, row, map[int]tilemapping.MachineLetter{row: placed[p]}, alph)
		if length > 1 {
			total += cross
		}
	}
	if len(ps) == RackTileLimit {
		total += BingoBonus
	}
	return total
}
