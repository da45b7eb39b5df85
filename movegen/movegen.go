// Package movegen contains the move generator. It makes heavy use of the
// GADDAG, and of the anchors and cross-sets kept by the cross_set package.
package movegen

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/cross_set"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

// GordonGenerator generates moves using the algorithm from Steven Gordon's
// GADDAG paper. It keeps scratch state for the search, so a generator must
// not be used by two goroutines at once.
type GordonGenerator struct {
	gaddag   *gaddag.Gaddag
	board    *board.Board
	grid     *cross_set.Grid
	alphabet *tilemapping.Alphabet

	// The orientation being searched. These are views of board and grid.
	vBoard *board.Board
	vGrid  *cross_set.Grid

	vertical     bool
	curRowIdx    int
	curAnchorCol int
	// strip holds the tiles of the word being built, by column. leftstrip
	// is its left end once the search has turned right.
	strip     []tilemapping.MachineLetter
	leftstrip int

	recorder PlayRecorderFunc
	plays    *move.Set
	ctx      context.Context
}

// NewGordonGenerator returns a generator for a board and the grid kept in
// step with it.
func NewGordonGenerator(gd *gaddag.Gaddag, b *board.Board, g *cross_set.Grid) *GordonGenerator {
	return &GordonGenerator{
		gaddag:   gd,
		board:    b,
		grid:     g,
		alphabet: gd.Alphabet(),
		strip:    make([]tilemapping.MachineLetter, b.Dim()),
		recorder: AllPlaysRecorder,
		plays:    move.NewSet(),
	}
}

// SetPlayRecorder sets what happens to each play found.
func (gen *GordonGenerator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.recorder = pr
}

// Plays returns the moves found by the last generation.
func (gen *GordonGenerator) Plays() *move.Set {
	return gen.plays
}

// Generate finds every legal placement of tiles from the rack. The rack is
// left as it was.
func (gen *GordonGenerator) Generate(rack *tilemapping.Rack) *move.Set {
	plays, _ := gen.GenerateContext(context.Background(), rack)
	return plays
}

// GenerateContext is Generate with a context. If the context is done
// before the search ends, the partial result is thrown away and the
// context's error is returned.
func (gen *GordonGenerator) GenerateContext(ctx context.Context, rack *tilemapping.Rack) (*move.Set, error) {
	gen.plays = move.NewSet()
	gen.ctx = ctx
	defer func() { gen.ctx = nil }()

	if err := gen.genByOrientation(rack, false); err != nil {
		return nil, err
	}
	if err := gen.genByOrientation(rack, true); err != nil {
		return nil, err
	}
	log.Debug().Int("plays", gen.plays.Len()).Str("rack", rack.String()).Msg("generated plays")
	return gen.plays, nil
}

func (gen *GordonGenerator) genByOrientation(rack *tilemapping.Rack, vertical bool) error {
	gen.vertical = vertical
	gen.vBoard, gen.vGrid = gen.board, gen.grid
	if vertical {
		// Down plays are across plays on the transposed board.
		gen.vBoard, gen.vGrid = gen.board.Transpose(), gen.grid.Transpose()
	}
	dim := gen.vBoard.Dim()
	for row := 0; row < dim; row++ {
		gen.curRowIdx = row
		for col := 0; col < dim; col++ {
			if !gen.vGrid.At(row, col).Anchor().Across() {
				continue
			}
			if err := gen.ctx.Err(); err != nil {
				return err
			}
			gen.curAnchorCol = col
			gen.recursiveGen(col, rack, gaddag.RootArc)
		}
	}
	return nil
}

// recursiveGen is an implementation of the Gordon Gen function.
func (gen *GordonGenerator) recursiveGen(col int, rack *tilemapping.Rack, arc gaddag.ArcIndex) {
	if gen.vBoard.HasLetter(gen.curRowIdx, col) {
		// Tiles on the board are followed without branching.
		ml := gen.vBoard.GetLetter(gen.curRowIdx, col)
		gen.goOn(col, ml, rack, gen.gaddag.Next(arc, ml), arc)
		return
	}
	if rack.Empty() {
		return
	}
	crossSet := gen.vGrid.At(gen.curRowIdx, col).CrossSet().Across()
	// Letters that either continue the path or end a word right here.
	possible := crossSet & (gen.gaddag.NextLetters(arc) | gen.gaddag.FinalLetters(arc))
	if possible == 0 {
		return
	}
	for i := 1; i < len(rack.LetArr); i++ {
		ml := tilemapping.MachineLetter(i)
		if rack.LetArr[i] == 0 || !possible.Has(ml) {
			continue
		}
		rack.Take(ml)
		gen.goOn(col, ml, rack, gen.gaddag.Next(arc, ml), arc)
		rack.Add(ml)
	}
	if rack.LetArr[0] > 0 {
		// The blank can be any letter the square allows.
		for _, ml := range possible.Letters() {
			rack.Take(0)
			gen.goOn(col, ml.Blank(), rack, gen.gaddag.Next(arc, ml), arc)
			rack.Add(0)
		}
	}
}

// goOn is an implementation of the Gordon GoOn function.
func (gen *GordonGenerator) goOn(curCol int, ml tilemapping.MachineLetter, rack *tilemapping.Rack,
	newArc, oldArc gaddag.ArcIndex) {

	row := gen.curRowIdx
	gen.strip[curCol] = ml
	if curCol <= gen.curAnchorCol {
		noLetterDirectlyLeft := !gen.vBoard.HasLetter(row, curCol-1)
		// The word so far runs from curCol to the anchor; it only stands on
		// its own if the square past the anchor is empty too.
		if gen.gaddag.HasFinal(oldArc, ml) && noLetterDirectlyLeft &&
			!gen.vBoard.HasLetter(row, gen.curAnchorCol+1) {
			gen.recorder(gen, curCol, gen.curAnchorCol)
		}
		if newArc == gaddag.NoArc {
			return
		}
		// Keep generating prefixes if there is room to the left.
		if curCol > 0 {
			gen.recursiveGen(curCol-1, rack, newArc)
		}
		// Then shift direction, if the prefix can't grow any more to the
		// left and there is room right of the anchor.
		sepArc := gen.gaddag.NextArc(newArc, gaddag.Delimiter)
		if sepArc != gaddag.NoArc && noLetterDirectlyLeft && gen.curAnchorCol < gen.vBoard.Dim()-1 {
			gen.leftstrip = curCol
			gen.recursiveGen(gen.curAnchorCol+1, rack, sepArc)
		}
		return
	}

	noLetterDirectlyRight := !gen.vBoard.HasLetter(row, curCol+1)
	if gen.gaddag.HasFinal(oldArc, ml) && noLetterDirectlyRight {
		gen.recorder(gen, gen.leftstrip, curCol)
	}
	if newArc != gaddag.NoArc && curCol < gen.vBoard.Dim()-1 {
		gen.recursiveGen(curCol+1, rack, newArc)
	}
}
