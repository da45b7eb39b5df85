package board

import (
	"github.com/rs/zerolog/log"
)

var (
	// CrosswordGameBoard is a board for a fun Crossword Game, featuring lots
	// of wingos and blonks.
	CrosswordGameBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
)

// Assignment puts a named modifier on a square.
type Assignment struct {
	Row, Col int
	Name     string
}

// Layout describes a board shape: its dimension, start square, a table of
// named modifiers and where they go.
type Layout struct {
	Dim         int
	StartRow    int
	StartCol    int
	Modifiers   map[string]Modifier
	Assignments []Assignment
}

// NewBoardFromLayout creates an empty board from a layout. Nothing is built
// if any part of the layout is invalid.
func NewBoardFromLayout(l Layout) (*Board, error) {
	b, err := newBoard(l.Dim, l.StartRow, l.StartCol)
	if err != nil {
		return nil, err
	}
	for _, a := range l.Assignments {
		if !b.PosExists(a.Row, a.Col) {
			return nil, &PositionError{Row: a.Row, Col: a.Col}
		}
		mod, ok := l.Modifiers[a.Name]
		if !ok {
			return nil, &UnknownModifierError{Name: a.Name, Row: a.Row, Col: a.Col}
		}
		b.setModifier(a.Row, a.Col, mod)
	}
	log.Debug().Int("dim", l.Dim).Int("modifiers", len(l.Assignments)).Msg("created board from layout")
	return b, nil
}

// MakeBoard creates a board from a description string, one string per row
// and one bonus glyph per square. The start square is the center.
func MakeBoard(desc []string) (*Board, error) {
	dim := len(desc)
	l := Layout{
		Dim:       dim,
		StartRow:  dim / 2,
		StartCol:  dim / 2,
		Modifiers: map[string]Modifier{},
	}
	for b, m := range bonusModifiers {
		l.Modifiers[string(b)] = m
	}
	for row, s := range desc {
		runes := []rune(s)
		if len(runes) != dim {
			return nil, &BoardSizeError{Size: len(runes)}
		}
		for col, c := range runes {
			if BonusSquare(c) == NoBonus {
				continue
			}
			l.Assignments = append(l.Assignments, Assignment{Row: row, Col: col, Name: string(c)})
		}
	}
	return NewBoardFromLayout(l)
}

// NewCrosswordGameBoard returns an empty standard 15x15 board.
func NewCrosswordGameBoard() *Board {
	b, err := MakeBoard(CrosswordGameBoard)
	if err != nil {
		panic(err)
	}
	return b
}
