package game

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/cache"
	"github.com/domino14/gordon/config"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

var testWords = []string{
	"AA", "AS", "AT", "TA", "CAT", "CATS", "ACT", "ACTS", "SCAT", "CAST",
	"TACT", "TAT", "TATS", "SAT", "OAT", "OATS", "TAO", "TAOS", "QI", "QIS",
}

func newTestGame(t testing.TB, rows ...string) *Game {
	t.Helper()
	alph := tilemapping.EnglishAlphabet()
	gd, err := gaddag.GenerateFromReader(strings.NewReader(strings.Join(testWords, "\n")), alph)
	if err != nil {
		t.Fatal(err)
	}
	b := board.NewCrosswordGameBoard()
	for i, r := range rows {
		if _, err := b.SetRow(i, r, alph); err != nil {
			t.Fatal(err)
		}
	}
	return NewGame(b, alph, gd)
}

func rack(t testing.TB, g *Game, letters string) *tilemapping.Rack {
	t.Helper()
	r, err := tilemapping.RackFromString(letters, g.Alphabet())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func mv(t testing.TB, g *Game, coords, word string) *move.Move {
	t.Helper()
	m, err := move.FromString(coords, word, g.Alphabet())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func containsMove(plays []*move.Move, m *move.Move) bool {
	for _, p := range plays {
		if p.Equal(m) {
			return true
		}
	}
	return false
}

func TestPlayAndGenerate(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	plays := g.Generate(rack(t, g, "CAT"))
	cat := mv(t, g, "8H", "CAT")
	is.True(containsMove(plays, cat))

	is.True(g.PlayMove(cat))
	plays = g.Generate(rack(t, g, "S"))
	is.True(containsMove(plays, mv(t, g, "8K", "S")))
	// SCAT, CATS and AS under the A.
	is.True(containsMove(plays, mv(t, g, "8G", "S")))
	is.True(containsMove(plays, mv(t, g, "I9", "S")))
	is.Equal(len(plays), 3)
}

func TestGenerateIsSortedByScore(t *testing.T) {
	g := newTestGame(t)
	g.PlayMove(mv(t, g, "8G", "CAST"))
	plays := g.Generate(rack(t, g, "AOQIST"))
	assert.NotEmpty(t, plays)
	for i := 1; i < len(plays); i++ {
		assert.GreaterOrEqual(t, plays[i-1].Score(), plays[i].Score())
	}
	for _, p := range plays {
		assert.Equal(t, g.Board().ScoreMove(p, g.Alphabet()), p.Score())
	}
}

func TestIllegalMoveIsIgnored(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	is.True(g.PlayMove(mv(t, g, "8H", "CAT")))
	before := g.Copy()

	// Onto a square that is taken.
	is.True(!g.PlayMove(mv(t, g, "8H", "S")))
	// Off the board.
	is.True(!g.PlayMove(mv(t, g, "8N", "CATS")))
	// Nothing at all.
	is.True(!g.PlayMove(move.New(move.Across, 3)))
	// Undesignated blank.
	blank := move.New(move.Across, 3)
	blank.Place(4, 0)
	is.True(!g.PlayMove(blank))

	is.True(g.Board().Equals(before.Board()))
	is.True(g.Grid().Equals(before.Grid()))
}

func TestNewGameOnFilledBoard(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "", "", "", "", "", "", "", "       CAT")
	s, _ := g.Alphabet().Val("S")
	is.True(g.Grid().At(7, 10).CrossSet().Down().Has(s))
	is.True(g.Grid().At(7, 7).Anchor().Across())
	is.True(!g.Grid().At(7, 8).Anchor().Across())

	played := newTestGame(t)
	played.PlayMove(mv(t, played, "8H", "CAT"))
	is.True(played.Grid().Equals(g.Grid()))

	plays := g.Generate(rack(t, g, "S"))
	is.True(containsMove(plays, mv(t, g, "8K", "S")))
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	g.PlayMove(mv(t, g, "8H", "CAT"))
	c := g.Copy()
	is.True(c.PlayMove(mv(t, c, "8K", "S")))
	is.True(!g.Board().HasLetter(7, 10))
	is.True(c.Board().HasLetter(7, 10))
	is.True(!g.Grid().Equals(c.Grid()))
	is.True(c.Gaddag() == g.Gaddag())

	// The original still generates as before.
	plays := g.Generate(rack(t, g, "S"))
	is.True(containsMove(plays, mv(t, g, "8K", "S")))
}

func TestGenerateBatch(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	g.PlayMove(mv(t, g, "8G", "CAST"))
	racks := []*tilemapping.Rack{
		rack(t, g, "AT"), rack(t, g, "QIS"), rack(t, g, "OATS?"), rack(t, g, "S"), rack(t, g, "TTA"),
	}
	results, err := g.GenerateBatch(context.Background(), racks, 3)
	is.NoErr(err)
	is.Equal(len(results), len(racks))
	for i, r := range racks {
		want := g.Generate(r)
		is.Equal(len(results[i]), len(want))
		for _, m := range want {
			is.True(containsMove(results[i], m))
		}
	}
	// Racks are left alone.
	is.Equal(racks[2].NumTiles(), 5)
}

func TestGenerateCancelled(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.GenerateContext(ctx, rack(t, g, "CAT"))
	is.Equal(err, context.Canceled)
	_, err = g.GenerateBatch(ctx, []*tilemapping.Rack{rack(t, g, "CAT")}, 2)
	is.Equal(err, context.Canceled)
}

func TestNewBasicGameRules(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "TINY.txt"),
		[]byte(strings.Join(testWords, "\n")+"\n"), 0o644))
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, dir)
	cache.Put("ld:english", tilemapping.EnglishLetterDistribution())

	rules, err := NewBasicGameRules(cfg, "TINY", "", "english")
	is.NoErr(err)
	is.Equal(rules.BoardName(), CrosswordGameLayout)
	is.Equal(rules.LexiconName(), "TINY")
	is.Equal(rules.LetterDistributionName(), "english")
	is.True(rules.Gaddag().FindWordString("TAOS"))

	g, err := NewGameFromRules(rules)
	is.NoErr(err)
	is.True(g.Board().IsEmpty())
	is.True(containsMove(g.Generate(rack(t, g, "QI")), mv(t, g, "8G", "QI")))

	_, err = NewBasicGameRules(cfg, "TINY", "SuperCrosswordGame", "english")
	is.True(err != nil)
}
