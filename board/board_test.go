package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

func TestMakeBoard(t *testing.T) {
	is := is.New(t)
	b, err := MakeBoard(CrosswordGameBoard)
	is.NoErr(err)
	is.Equal(b.Dim(), 15)
	r, c := b.Start()
	is.Equal(r, 7)
	is.Equal(c, 7)
	is.Equal(b.GetModifier(0, 0), Modifier{WordScore, 3})
	is.Equal(b.GetModifier(7, 7), Modifier{WordScore, 2})
	is.Equal(b.GetModifier(0, 3), Modifier{LetterScore, 2})
	is.Equal(b.GetModifier(1, 5), Modifier{LetterScore, 3})
	is.Equal(b.GetModifier(0, 1), Modifier{})
	is.True(b.IsEmpty())
}

func TestMakeBoardErrors(t *testing.T) {
	is := is.New(t)
	_, err := MakeBoard([]string{"  ", " "})
	var bse *BoardSizeError
	is.True(errors.As(err, &bse))

	_, err = MakeBoard(nil)
	is.True(errors.As(err, &bse))
	is.Equal(bse.Size, 0)

	_, err = MakeBoard([]string{" x", "  "})
	var ume *UnknownModifierError
	is.True(errors.As(err, &ume))
	is.Equal(ume.Name, "x")
	is.Equal(ume.Row, 0)
	is.Equal(ume.Col, 1)
}

func TestNewBoardFromLayout(t *testing.T) {
	mods := map[string]Modifier{"DL": {LetterScore, 2}, "TW": {WordScore, 3}}
	b, err := NewBoardFromLayout(Layout{
		Dim: 5, StartRow: 1, StartCol: 3, Modifiers: mods,
		Assignments: []Assignment{{0, 0, "TW"}, {4, 2, "DL"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, Modifier{WordScore, 3}, b.GetModifier(0, 0))
	assert.Equal(t, Modifier{LetterScore, 2}, b.GetModifier(4, 2))

	_, err = NewBoardFromLayout(Layout{Dim: 0})
	var bse *BoardSizeError
	assert.ErrorAs(t, err, &bse)

	_, err = NewBoardFromLayout(Layout{Dim: 5, StartRow: 5, StartCol: 0})
	var spe *StartPositionError
	assert.ErrorAs(t, err, &spe)
	assert.Equal(t, 5, spe.Row)

	_, err = NewBoardFromLayout(Layout{Dim: 5, Modifiers: mods,
		Assignments: []Assignment{{1, 1, "QW"}}})
	var ume *UnknownModifierError
	assert.ErrorAs(t, err, &ume)
	assert.Equal(t, "QW", ume.Name)

	_, err = NewBoardFromLayout(Layout{Dim: 5, Modifiers: mods,
		Assignments: []Assignment{{1, 7, "DL"}}})
	var pe *PositionError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, 7, pe.Col)
}

func TestTransposeSharesSquares(t *testing.T) {
	is := is.New(t)
	b := NewCrosswordGameBoard()
	tr := b.Transpose()
	is.True(tr.IsTransposed())
	tr.SetLetter(2, 9, 5)
	is.Equal(b.GetLetter(9, 2), tilemapping.MachineLetter(5))
	b.SetLetter(4, 1, 7)
	is.Equal(tr.GetLetter(1, 4), tilemapping.MachineLetter(7))
	is.True(tr.GetSquare(1, 4) == b.GetSquare(4, 1))
	is.Equal(b.TilesPlayed(), 2)
	is.Equal(tr.TilesPlayed(), 2)

	r, c := tr.Start()
	is.Equal(r, 7)
	is.Equal(c, 7)
}

func TestTransposeTwiceIsIdentity(t *testing.T) {
	is := is.New(t)
	b, err := NewBoardFromLayout(Layout{Dim: 4, StartRow: 0, StartCol: 2,
		Modifiers:   map[string]Modifier{"TL": {LetterScore, 3}},
		Assignments: []Assignment{{0, 3, "TL"}}})
	is.NoErr(err)
	b.SetLetter(1, 2, 3)
	tt := b.Transpose().Transpose()
	is.True(!tt.IsTransposed())
	is.True(tt.Equals(b))
	for row := 0; row < b.Dim(); row++ {
		for col := 0; col < b.Dim(); col++ {
			is.True(tt.GetSquare(row, col) == b.GetSquare(row, col))
		}
	}
	r, c := tt.Start()
	is.Equal(r, 0)
	is.Equal(c, 2)
	sq := b.GetSquare(0, 3)
	is.True(sq.Transpose().Transpose() == sq)
	is.True(!b.Transpose().Equals(b))
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b := NewCrosswordGameBoard()
	b.SetLetter(7, 7, 1)
	c := b.Copy()
	c.SetLetter(7, 8, 2)
	is.True(!b.HasLetter(7, 8))
	is.Equal(c.TilesPlayed(), 2)
	is.Equal(b.TilesPlayed(), 1)
}

func TestWordEdgeAndWordAt(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	b := NewCrosswordGameBoard()
	_, err := b.SetRow(7, "       CAT", alph)
	is.NoErr(err)
	is.Equal(b.WordEdge(7, 8, LeftDirection), 7)
	is.Equal(b.WordEdge(7, 8, RightDirection), 9)
	start, word := b.WordAt(7, 9)
	is.Equal(start, 7)
	is.Equal(word.UserVisible(alph), "CAT")
	_, word = b.WordAt(7, 10)
	is.True(word == nil)
}

func TestSetRowRejectsBadRows(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	b := NewCrosswordGameBoard()
	_, err := b.SetRow(7, "       CAT", alph)
	is.NoErr(err)
	before := b.Copy()

	for _, row := range []string{"   C?T", "   CA1", "      CATCATCATCAT"} {
		_, err = b.SetRow(7, row, alph)
		is.True(err != nil) // row
		is.True(b.Equals(before))
	}
	placed, err := b.SetRow(7, "cAT", alph)
	is.NoErr(err)
	is.Equal(len(placed), 3)
	is.True(b.GetLetter(7, 0).IsBlanked())
	is.True(!b.HasLetter(7, 8))
}

func TestPlaceAndValidateMove(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	b := NewCrosswordGameBoard()
	m, err := move.FromString("H7", "CAT", alph)
	is.NoErr(err)
	is.NoErr(b.ValidateMove(m, alph))
	b.PlaceMove(m)
	is.Equal(b.GetLetter(6, 7).UserVisible(alph, false), "C")
	is.Equal(b.GetLetter(8, 7).UserVisible(alph, false), "T")

	is.True(b.ValidateMove(m, alph) != nil)
	off, err := move.FromString("15N", "CAT", alph)
	is.NoErr(err)
	var pe *PositionError
	is.True(errors.As(b.ValidateMove(off, alph), &pe))
	is.True(b.ValidateMove(move.New(move.Across, 3), alph) != nil)
}

func TestScoreMove(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	b := NewCrosswordGameBoard()

	cat, _ := move.FromString("8H", "CAT", alph)
	is.Equal(b.ScoreMove(cat, alph), 10)
	catDown, _ := move.FromString("H8", "CAT", alph)
	is.Equal(b.ScoreMove(catDown, alph), 10)
	blank, _ := move.FromString("8H", "cAT", alph)
	is.Equal(b.ScoreMove(blank, alph), 4)

	b.PlaceMove(cat)
	cats, _ := move.FromString("8H", "...S", alph)
	is.Equal(b.ScoreMove(cats, alph), 6)

	// Z on the double letter at 7I, through the A of CAT.
	za, _ := move.FromString("I7", "Z.", alph)
	is.Equal(b.ScoreMove(za, alph), 21)

	// A single tile above the T only forms AT down.
	at, _ := move.FromString("7J", "A", alph)
	is.Equal(b.ScoreMove(at, alph), 2)
}

func BenchmarkTranspose(b *testing.B) {
	bd := NewCrosswordGameBoard()
	for i := 0; i < b.N; i++ {
		t := bd.Transpose()
		_ = t.GetLetter(3, 4)
	}
}
