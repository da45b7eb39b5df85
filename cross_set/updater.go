package cross_set

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

// Generator keeps a Grid in step with a board, using a GADDAG to decide
// which letters form words.
type Generator struct {
	Gaddag *gaddag.Gaddag
}

// aligned returns g in the same orientation as b.
func aligned(b *board.Board, g *Grid) *Grid {
	if b.IsTransposed() == g.IsTransposed() {
		return g
	}
	return g.Transpose()
}

// GenerateAll computes every anchor and cross-set of the grid from scratch.
// This is only needed once per game; after that use UpdateForMove.
func (gen Generator) GenerateAll(b *board.Board, g *Grid) {
	g = aligned(b, g)
	t, gt := b.Transpose(), g.Transpose()
	n := b.Dim()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			genCrossSet(b, g, gen.Gaddag, row, col)
			genCrossSet(t, gt, gen.Gaddag, col, row)
			updateAnchors(b, g, row, col)
		}
	}
	log.Debug().Int("dim", n).Int("tiles", b.TilesPlayed()).Msg("generated all cross-sets")
}

// UpdateForMove recomputes the squares a move could have changed. The move
// must already be on the board.
func (gen Generator) UpdateForMove(b *board.Board, g *Grid, m *move.Move) {
	ps := m.Positions()
	if len(ps) == 0 {
		return
	}
	// Work in the orientation where the move runs across.
	a := b.Aligned(m)
	ga := aligned(a, g)
	row := m.RowOrCol()
	left := a.WordEdge(row, ps[0], board.LeftDirection)
	right := a.WordEdge(row, ps[len(ps)-1], board.RightDirection)
	log.Debug().Str("move", m.String()).Int("row", row).Int("left", left).
		Int("right", right).Msg("updating cross-sets for move")

	// The word along the move's own row.
	for col := left - 1; col <= right+1; col++ {
		genCrossSet(a, ga, gen.Gaddag, row, col)
	}
	// Every new tile makes or extends a word in the other direction.
	t, gt := a.Transpose(), ga.Transpose()
	for _, p := range ps {
		top := t.WordEdge(p, row, board.LeftDirection)
		bottom := t.WordEdge(p, row, board.RightDirection)
		genCrossSet(t, gt, gen.Gaddag, p, top-1)
		genCrossSet(t, gt, gen.Gaddag, p, row)
		genCrossSet(t, gt, gen.Gaddag, p, bottom+1)
	}

	for r := row - 1; r <= row+1; r++ {
		for col := left - 1; col <= right+1; col++ {
			updateAnchors(a, ga, r, col)
		}
	}
	sr, sc := b.Start()
	updateAnchors(b, aligned(b, g), sr, sc)
}

// ToDisplayText draws the board with its anchors marked: > for across,
// v for down, and + for both.
func ToDisplayText(b *board.Board, g *Grid, alph *tilemapping.Alphabet) string {
	g = aligned(b, g)
	var sb strings.Builder
	n := b.Dim()
	sb.WriteString("   ")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	sb.WriteString("\n")
	for row := 0; row < n; row++ {
		sb.WriteString(fmt.Sprintf("%2d|", row+1))
		for col := 0; col < n; col++ {
			a := g.At(row, col).Anchor()
			switch {
			case a.Across() && a.Down():
				sb.WriteString("+")
			case a.Across():
				sb.WriteString(">")
			case a.Down():
				sb.WriteString("v")
			case b.HasLetter(row, col):
				sb.WriteString(b.GetLetter(row, col).UserVisible(alph, false))
			default:
				sb.WriteString(".")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
