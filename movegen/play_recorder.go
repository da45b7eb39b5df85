package movegen

import (
	"github.com/domino14/gordon/move"
)

// PlayRecorderFunc is called for each word found, with the columns of its
// ends on the current row of the searched orientation.
type PlayRecorderFunc func(gen *GordonGenerator, leftstrip, rightstrip int)

func NullPlayRecorder(gen *GordonGenerator, leftstrip, rightstrip int) {
}

// AllPlaysRecorder turns the word into a move with absolute coordinates,
// scores it, and adds it to the generator's plays. Words made only of
// tiles already on the board are not moves.
func AllPlaysRecorder(gen *GordonGenerator, leftstrip, rightstrip int) {
	m := gen.stripToMove(leftstrip, rightstrip)
	if m.TilesPlayed() == 0 {
		return
	}
	m.SetScore(gen.board.ScoreMove(m, gen.alphabet))
	gen.plays.Add(m)
}

func (gen *GordonGenerator) stripToMove(leftstrip, rightstrip int) *move.Move {
	// We only generate vertical moves when the board is transposed, so the
	// row we are on is really a column.
	dir := move.Across
	if gen.vertical {
		dir = move.Down
	}
	m := move.New(dir, gen.curRowIdx)
	for col := leftstrip; col <= rightstrip; col++ {
		if !gen.vBoard.HasLetter(gen.curRowIdx, col) {
			m.Place(col, gen.strip[col])
		}
	}
	return m
}
