// Package game ties a board, its search data and a dictionary together
// behind the small API a driver needs: play moves and generate moves.
package game

import (
	"cmp"
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/cross_set"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/movegen"
	"github.com/domino14/gordon/tilemapping"
)

// Game is a board position with everything needed to generate moves for
// it. The gaddag is shared and never written to; everything else belongs
// to the game. A Game is not safe for concurrent use, but copies of it
// are independent of each other.
type Game struct {
	gaddag *gaddag.Gaddag
	alph   *tilemapping.Alphabet
	board  *board.Board
	grid   *cross_set.Grid
	csGen  cross_set.Generator
	gen    *movegen.GordonGenerator
}

// NewGame makes a game on a board, which may already hold tiles. The game
// takes ownership of the board.
func NewGame(b *board.Board, alph *tilemapping.Alphabet, gd *gaddag.Gaddag) *Game {
	g := &Game{
		gaddag: gd,
		alph:   alph,
		board:  b,
		grid:   cross_set.NewGrid(b.Dim()),
		csGen:  cross_set.Generator{Gaddag: gd},
	}
	g.csGen.GenerateAll(g.board, g.grid)
	g.gen = movegen.NewGordonGenerator(gd, g.board, g.grid)
	log.Debug().Int("dim", b.Dim()).Int("tiles", b.TilesPlayed()).
		Str("lexicon", gd.LexiconName()).Msg("new game")
	return g
}

// PlayMove puts a move on the board and updates the search data. A move
// that can't be put on the board (no tiles, off the board, onto occupied
// squares, undesignated blanks) is ignored, and false is returned. Whether
// the words it makes are in the dictionary is not checked.
func (g *Game) PlayMove(m *move.Move) bool {
	if err := g.board.ValidateMove(m, g.alph); err != nil {
		log.Debug().Err(err).Str("move", m.ShortDescription(g.alph)).Msg("ignoring move")
		return false
	}
	g.board.PlaceMove(m)
	g.csGen.UpdateForMove(g.board, g.grid, m)
	return true
}

// Generate returns every legal move for the rack, best score first.
func (g *Game) Generate(rack *tilemapping.Rack) []*move.Move {
	plays, _ := g.GenerateContext(context.Background(), rack)
	return plays
}

// GenerateContext is Generate, giving up with the context's error if the
// context is done first.
func (g *Game) GenerateContext(ctx context.Context, rack *tilemapping.Rack) ([]*move.Move, error) {
	set, err := g.gen.GenerateContext(ctx, rack)
	if err != nil {
		return nil, err
	}
	plays := set.Moves()
	slices.SortStableFunc(plays, func(a, b *move.Move) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	return plays, nil
}

// Copy returns a game with its own board and search data. The gaddag is
// shared.
func (g *Game) Copy() *Game {
	c := &Game{
		gaddag: g.gaddag,
		alph:   g.alph,
		board:  g.board.Copy(),
		grid:   g.grid.Copy(),
		csGen:  g.csGen,
	}
	c.gen = movegen.NewGordonGenerator(c.gaddag, c.board, c.grid)
	return c
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Grid returns the anchors and cross-sets of the board.
func (g *Game) Grid() *cross_set.Grid {
	return g.grid
}

func (g *Game) Gaddag() *gaddag.Gaddag {
	return g.gaddag
}

func (g *Game) Alphabet() *tilemapping.Alphabet {
	return g.alph
}

// ToDisplayText draws the board, with its anchors if showAnchors is set.
func (g *Game) ToDisplayText(showAnchors bool) string {
	if showAnchors {
		return cross_set.ToDisplayText(g.board, g.grid, g.alph)
	}
	return g.board.ToDisplayText(g.alph)
}
