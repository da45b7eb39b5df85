package cross_set

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

var testWords = []string{
	"AT", "TA", "CAT", "CATS", "SCAT", "ACT", "ACTS", "CARS", "CABS", "TAT",
	"OAT", "BOAT", "BOATS", "QI", "ZA", "ZAS",
}

func testGaddag(t *testing.T) *gaddag.Gaddag {
	t.Helper()
	gd, err := gaddag.GenerateFromReader(strings.NewReader(strings.Join(testWords, "\n")),
		tilemapping.EnglishAlphabet())
	if err != nil {
		t.Fatal(err)
	}
	return gd
}

func letterSet(t *testing.T, alph *tilemapping.Alphabet, letters string) tilemapping.LetterSet {
	t.Helper()
	var ls tilemapping.LetterSet
	for _, ch := range letters {
		ml, err := alph.Val(string(ch))
		if err != nil {
			t.Fatal(err)
		}
		ls = ls.Add(ml)
	}
	return ls
}

func play(t *testing.T, b *board.Board, g *Grid, gen Generator, coords, word string) {
	t.Helper()
	m, err := move.FromString(coords, word, gen.Gaddag.Alphabet())
	if err != nil {
		t.Fatal(err)
	}
	b.PlaceMove(m)
	gen.UpdateForMove(b, g, m)
}

func TestEmptyBoardAnchors(t *testing.T) {
	is := is.New(t)
	gd := testGaddag(t)
	b := board.NewCrosswordGameBoard()
	g := NewGrid(b.Dim())
	Generator{Gaddag: gd}.GenerateAll(b, g)

	all := gd.Alphabet().AllLetters()
	for row := 0; row < b.Dim(); row++ {
		for col := 0; col < b.Dim(); col++ {
			a := g.At(row, col).Anchor()
			center := row == 7 && col == 7
			is.Equal(a.Across(), center)
			is.Equal(a.Down(), center)
			is.Equal(g.At(row, col).CrossSet().Across(), all)
			is.Equal(g.At(row, col).CrossSet().Down(), all)
		}
	}
}

type crossSetTestCase struct {
	row, col int
	letters  string
	down     bool
}

func TestCrossSetsAroundCat(t *testing.T) {
	gd := testGaddag(t)
	alph := gd.Alphabet()
	gen := Generator{Gaddag: gd}
	b := board.NewCrosswordGameBoard()
	g := NewGrid(b.Dim())
	gen.GenerateAll(b, g)
	play(t, b, g, gen, "8H", "CAT")

	testCases := []crossSetTestCase{
		// CAT_ takes an S, _CAT takes an S.
		{7, 10, "S", true},
		{7, 6, "S", true},
		// Below and above the letters of CAT, nothing horizontal limits
		// down plays; the across sets are limited by the single tiles.
		{8, 7, "", false},
		{6, 7, "", false},
		{8, 8, "T", false},
		{6, 8, "TZ", false},
		{6, 9, "A", false},
		{8, 9, "A", false},
		// Squares on the word itself can't take anything.
		{7, 8, "", true},
		{7, 8, "", false},
	}
	for _, tc := range testCases {
		cs := g.At(tc.row, tc.col).CrossSet()
		got := cs.Across()
		if tc.down {
			got = cs.Down()
		}
		assert.Equal(t, letterSet(t, alph, tc.letters), got,
			"row %d col %d down %v: got %v", tc.row, tc.col, tc.down, got.UserVisible(alph))
	}
	// The transposed grid sees the same set as an across set.
	assert.Equal(t, letterSet(t, alph, "S"), g.Transpose().At(10, 7).CrossSet().Across())
}

func TestCrossSetBetweenWords(t *testing.T) {
	is := is.New(t)
	gd := testGaddag(t)
	alph := gd.Alphabet()
	b := board.NewCrosswordGameBoard()
	_, err := b.SetRow(4, "  CA S BOA S", alph)
	is.NoErr(err)
	is.Equal(Compute(b, gd, 4, 4), letterSet(t, alph, "TRB"))
	is.Equal(Compute(b, gd, 4, 10), letterSet(t, alph, "T"))
	// Nothing joins S and BOA.
	is.Equal(Compute(b, gd, 4, 6), tilemapping.LetterSet(0))
	is.Equal(Compute(b, gd, 4, 0), alph.AllLetters())
	is.Equal(Compute(b, gd, 4, 2), tilemapping.LetterSet(0))
}

// A cross-set holds exactly the letters that make a word with the tiles
// around them.
func TestCrossSetSoundness(t *testing.T) {
	gd := testGaddag(t)
	alph := gd.Alphabet()
	rows := []string{"  CA S", "  AT", "   AT", "     ZA", " OAT"}
	for _, r := range rows {
		b := board.NewCrosswordGameBoard()
		_, err := b.SetRow(3, r, alph)
		assert.NoError(t, err)
		for col := 0; col < b.Dim(); col++ {
			if b.HasLetter(3, col) || (!b.HasLetter(3, col-1) && !b.HasLetter(3, col+1)) {
				continue
			}
			cs := Compute(b, gd, 3, col)
			for ml := tilemapping.MachineLetter(1); int(ml) <= alph.NumLetters(); ml++ {
				b.SetLetter(3, col, ml)
				_, word := b.WordAt(3, col)
				b.SetLetter(3, col, 0)
				assert.Equal(t, gd.FindWord(word), cs.Has(ml),
					"row %q col %d letter %v", r, col, ml.UserVisible(alph, false))
			}
		}
	}
}

func TestUpdateMatchesGenerateAll(t *testing.T) {
	gd := testGaddag(t)
	gen := Generator{Gaddag: gd}
	b := board.NewCrosswordGameBoard()
	g := NewGrid(b.Dim())
	gen.GenerateAll(b, g)

	plays := [][2]string{
		{"8H", "CAT"},
		{"8K", "S"},
		{"J9", "A"},
		{"K6", "ZA."},
		{"4G", "BOAT"},
		{"G5", "AT"},
		{"O1", "QI"},
	}
	for _, p := range plays {
		play(t, b, g, gen, p[0], p[1])
		fresh := NewGrid(b.Dim())
		gen.GenerateAll(b, fresh)
		if !assert.True(t, g.Equals(fresh), "after %v %v", p[0], p[1]) {
			t.Log(ToDisplayText(b, g, gd.Alphabet()))
			t.Log(ToDisplayText(b, fresh, gd.Alphabet()))
		}
		assert.True(t, g.Transpose().Equals(fresh.Transpose()))
	}
}

func TestAnchorsAfterMove(t *testing.T) {
	is := is.New(t)
	gd := testGaddag(t)
	gen := Generator{Gaddag: gd}
	b := board.NewCrosswordGameBoard()
	g := NewGrid(b.Dim())
	gen.GenerateAll(b, g)
	play(t, b, g, gen, "8H", "CAT")

	// The C starts the across word; each letter starts a down word.
	is.True(g.At(7, 7).Anchor().Across())
	is.True(!g.At(7, 8).Anchor().Across())
	is.True(g.At(7, 8).Anchor().Down())
	// Squares above and below are across anchors, not down anchors.
	is.True(g.At(6, 8).Anchor().Across())
	is.True(!g.At(6, 8).Anchor().Down())
	// Squares left and right are down anchors.
	is.True(g.At(7, 10).Anchor().Down())
	is.True(g.At(7, 6).Anchor().Down())
	is.True(!g.At(7, 10).Anchor().Across())
	is.True(!g.At(0, 0).Anchor().Across())
}

func TestGridTranspose(t *testing.T) {
	is := is.New(t)
	g := NewGrid(5)
	sd := g.At(1, 3)
	sd.Anchor().SetAcross(true)
	sd.CrossSet().SetDown(tilemapping.LetterSet(6))

	tg := g.Transpose()
	is.True(tg.At(3, 1).Anchor().Down())
	is.True(!tg.At(3, 1).Anchor().Across())
	is.Equal(tg.At(3, 1).CrossSet().Across(), tilemapping.LetterSet(6))
	is.Equal(tg.At(3, 1).CrossSet().Down(), tilemapping.LetterSet(0))

	// Writes through the transposed view are seen by the original.
	tg.At(0, 4).CrossSet().SetAcross(tilemapping.LetterSet(10))
	is.Equal(g.At(4, 0).CrossSet().Down(), tilemapping.LetterSet(10))

	is.True(tg.Transpose().Equals(g))
	is.True(sd.Transpose().Transpose().Equals(sd))
	is.True(sd.Transpose().Anchor().Down())
	is.True(sd.Anchor().Transpose().Down())
	is.Equal(sd.CrossSet().Transpose().Across(), tilemapping.LetterSet(6))
	is.True(!sd.Transpose().Equals(sd))

	c := g.Copy()
	is.True(c.Equals(g))
	c.At(2, 2).Anchor().SetDown(true)
	is.True(!c.Equals(g))
}
