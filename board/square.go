package board

import (
	"fmt"
	"os"

	"github.com/domino14/gordon/tilemapping"
)

var (
	ColorSupport = os.Getenv("GORDON_DISABLE_COLOR") != "on"
)

// ModifierKind tells what a modifier multiplies.
type ModifierKind uint8

const (
	NoModifier ModifierKind = iota
	LetterScore
	WordScore
)

// Modifier is a bonus on a square: a letter-score or word-score multiplier
// with a magnitude. The zero value is no modifier.
type Modifier struct {
	Kind      ModifierKind
	Magnitude int
}

func (m Modifier) String() string {
	switch m.Kind {
	case LetterScore:
		return fmt.Sprintf("%dL", m.Magnitude)
	case WordScore:
		return fmt.Sprintf("%dW", m.Magnitude)
	}
	return ""
}

// letterMultiplier and wordMultiplier give the factors a newly placed tile
// on this modifier gets.
func (m Modifier) letterMultiplier() int {
	if m.Kind == LetterScore {
		return m.Magnitude
	}
	return 1
}

func (m Modifier) wordMultiplier() int {
	if m.Kind == WordScore {
		return m.Magnitude
	}
	return 1
}

// A BonusSquare is the glyph for a modifier in a board description.
type BonusSquare rune

const (
	Bonus4WS BonusSquare = '~'
	Bonus4LS BonusSquare = '^'
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	NoBonus  BonusSquare = ' '
)

var bonusModifiers = map[BonusSquare]Modifier{
	Bonus4WS: {WordScore, 4},
	Bonus4LS: {LetterScore, 4},
	Bonus3WS: {WordScore, 3},
	Bonus3LS: {LetterScore, 3},
	Bonus2LS: {LetterScore, 2},
	Bonus2WS: {WordScore, 2},
	NoBonus:  {},
}

// Glyph returns the board description glyph for a modifier.
func (m Modifier) Glyph() BonusSquare {
	for b, mod := range bonusModifiers {
		if mod == m {
			return b
		}
	}
	return '?'
}

// A Square is a single square in a game board. It holds a tile (0 when
// empty) and a modifier. Nothing in it depends on board orientation.
type Square struct {
	tile     tilemapping.MachineLetter
	modifier Modifier
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) (%v)>", s.tile, s.modifier)
}

func (s *Square) Tile() tilemapping.MachineLetter {
	return s.tile
}

func (s *Square) Modifier() Modifier {
	return s.modifier
}

func (s *Square) IsEmpty() bool {
	return s.tile == 0
}

// Transpose returns the square itself.
func (s *Square) Transpose() *Square {
	return s
}

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus4WS:
		return fmt.Sprintf("\033[33m%s\033[0m", string(b))
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus4LS:
		return fmt.Sprintf("\033[95m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return string(b)
	}
}

func (s *Square) DisplayString(alph *tilemapping.Alphabet) string {
	if s.tile == 0 {
		return s.modifier.Glyph().displayString()
	}
	return s.tile.UserVisible(alph, false)
}
