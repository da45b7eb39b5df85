package board

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

type WordDirection int

const (
	LeftDirection  WordDirection = -1
	RightDirection WordDirection = 1
)

// BoardSizeError is returned for a board with a dimension smaller than 1,
// or a description whose rows don't make a square.
type BoardSizeError struct {
	Size int
}

func (e *BoardSizeError) Error() string {
	return fmt.Sprintf("invalid board size %d", e.Size)
}

// StartPositionError is returned when the start square is off the board.
type StartPositionError struct {
	Row, Col int
}

func (e *StartPositionError) Error() string {
	return fmt.Sprintf("start position (%d, %d) is not on the board", e.Row, e.Col)
}

// UnknownModifierError is returned when a layout refers to a modifier that
// is not in its modifier table, or a description has an unknown glyph.
type UnknownModifierError struct {
	Name     string
	Row, Col int
}

func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unknown modifier %q at (%d, %d)", e.Name, e.Row, e.Col)
}

// PositionError is returned for a coordinate that is off the board.
type PositionError struct {
	Row, Col int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position (%d, %d) is not on the board", e.Row, e.Col)
}

// squares is the cell storage shared by a board and its transposed view.
type squares struct {
	dim         int
	cells       []Square
	startRow    int
	startCol    int
	tilesPlayed int
}

// A Board is a square grid of squares, seen either normally or transposed.
// Transposed views share their squares with the board they came from, so
// writes through one are visible through the other.
type Board struct {
	sq         *squares
	transposed bool
}

func newBoard(dim, startRow, startCol int) (*Board, error) {
	if dim < 1 {
		return nil, &BoardSizeError{Size: dim}
	}
	if startRow < 0 || startRow >= dim || startCol < 0 || startCol >= dim {
		return nil, &StartPositionError{Row: startRow, Col: startCol}
	}
	return &Board{sq: &squares{
		dim:      dim,
		cells:    make([]Square, dim*dim),
		startRow: startRow,
		startCol: startCol,
	}}, nil
}

// Dim is the dimension of the board.
func (g *Board) Dim() int {
	return g.sq.dim
}

func (g *Board) index(row, col int) int {
	if g.transposed {
		row, col = col, row
	}
	return row*g.sq.dim + col
}

// Start returns the start square in this view's coordinates.
func (g *Board) Start() (int, int) {
	if g.transposed {
		return g.sq.startCol, g.sq.startRow
	}
	return g.sq.startRow, g.sq.startCol
}

// Transpose returns a view of the board with rows and columns swapped. No
// square is copied.
func (g *Board) Transpose() *Board {
	return &Board{sq: g.sq, transposed: !g.transposed}
}

func (g *Board) IsTransposed() bool {
	return g.transposed
}

// PosExists returns whether the coordinate is on the board.
func (g *Board) PosExists(row, col int) bool {
	d := g.sq.dim
	return row >= 0 && row < d && col >= 0 && col < d
}

func (g *Board) GetSquare(row, col int) *Square {
	return &g.sq.cells[g.index(row, col)]
}

// GetLetter returns the tile at a square, or 0 if it is empty.
func (g *Board) GetLetter(row, col int) tilemapping.MachineLetter {
	return g.sq.cells[g.index(row, col)].tile
}

// HasLetter returns whether the square exists and holds a tile.
func (g *Board) HasLetter(row, col int) bool {
	return g.PosExists(row, col) && g.sq.cells[g.index(row, col)].tile != 0
}

func (g *Board) GetModifier(row, col int) Modifier {
	return g.sq.cells[g.index(row, col)].modifier
}

// SetLetter puts a tile on a square, or clears it if letter is 0.
func (g *Board) SetLetter(row, col int, letter tilemapping.MachineLetter) {
	sq := &g.sq.cells[g.index(row, col)]
	if sq.tile == 0 && letter != 0 {
		g.sq.tilesPlayed++
	} else if sq.tile != 0 && letter == 0 {
		g.sq.tilesPlayed--
	}
	sq.tile = letter
}

func (g *Board) setModifier(row, col int, m Modifier) {
	g.sq.cells[g.index(row, col)].modifier = m
}

// IsEmpty returns if the board is empty.
func (g *Board) IsEmpty() bool {
	return g.sq.tilesPlayed == 0
}

func (g *Board) TilesPlayed() int {
	return g.sq.tilesPlayed
}

// Clear removes every tile from the board.
func (g *Board) Clear() {
	for i := range g.sq.cells {
		g.sq.cells[i].tile = 0
	}
	g.sq.tilesPlayed = 0
}

// WordEdge finds the edge of a word on the board, returning the column.
// Starting on an empty square returns the column next to it, back the way
// we came.
func (g *Board) WordEdge(row, col int, dir WordDirection) int {
	for g.HasLetter(row, col) {
		col += int(dir)
	}
	return col - int(dir)
}

// Copy returns a deep copy of the board, in the same orientation.
func (g *Board) Copy() *Board {
	cells := make([]Square, len(g.sq.cells))
	copy(cells, g.sq.cells)
	sq := *g.sq
	sq.cells = cells
	return &Board{sq: &sq, transposed: g.transposed}
}

// Equals compares the tiles and modifiers of two boards, as seen through
// their views.
func (g *Board) Equals(g2 *Board) bool {
	if g.Dim() != g2.Dim() {
		return false
	}
	r1, c1 := g.Start()
	r2, c2 := g2.Start()
	if r1 != r2 || c1 != c2 {
		return false
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			if *g.GetSquare(row, col) != *g2.GetSquare(row, col) {
				log.Debug().Int("row", row).Int("col", col).Msg("squares not equal")
				return false
			}
		}
	}
	return true
}

// Aligned returns the view of this board in which the move runs across.
func (g *Board) Aligned(m *move.Move) *Board {
	wantTransposed := m.Direction() == move.Down
	if g.transposed == wantTransposed {
		return g
	}
	return g.Transpose()
}

// PlaceMove puts the move's tiles on the board. It does not check that the
// squares are empty; see ValidateMove.
func (g *Board) PlaceMove(m *move.Move) {
	a := g.Aligned(m)
	row := m.RowOrCol()
	for _, p := range m.Positions() {
		ml, _ := m.Tile(p)
		a.SetLetter(row, p, ml)
	}
}

// ValidateMove checks that a move can be put on the board: it places at
// least one tile, every tile is a designated letter, and every target
// square exists and is empty. Whether the words formed are in the
// dictionary is not checked.
func (g *Board) ValidateMove(m *move.Move, alph *tilemapping.Alphabet) error {
	if m.TilesPlayed() == 0 {
		return fmt.Errorf("move places no tiles")
	}
	a := g.Aligned(m)
	row := m.RowOrCol()
	for _, p := range m.Positions() {
		r, c := m.Coords(p)
		if !a.PosExists(row, p) {
			return &PositionError{Row: r, Col: c}
		}
		if a.HasLetter(row, p) {
			return fmt.Errorf("square %v is already occupied", move.ToBoardGameCoords(r, c, false))
		}
		ml, _ := m.Tile(p)
		if ml.Unblank() == 0 || int(ml.Unblank()) > alph.NumLetters() {
			return fmt.Errorf("tile %v at %v is not a letter", ml, move.ToBoardGameCoords(r, c, false))
		}
	}
	return nil
}
