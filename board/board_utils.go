package board

import (
	"fmt"
	"strings"

	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

func (g *Board) ToDisplayText(alph *tilemapping.Alphabet) string {
	var sb strings.Builder
	n := g.Dim()
	sb.WriteString("   ")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			sb.WriteString(g.GetSquare(i, j).DisplayString(alph) + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + sb.String()
}

// SetRow sets a row of the board from a string, one character per square.
// A space is an empty square and a lowercase letter is a designated blank;
// an undesignated blank is an error. It returns the tiles put on the board.
// On error the row is left as it was.
func (g *Board) SetRow(rowNum int, letters string, alph *tilemapping.Alphabet) ([]tilemapping.MachineLetter, error) {
	if rowNum < 0 || rowNum >= g.Dim() {
		return nil, &PositionError{Row: rowNum, Col: 0}
	}
	row := make([]tilemapping.MachineLetter, g.Dim())
	var lettersPlayed []tilemapping.MachineLetter
	idx := 0
	for _, r := range letters {
		if r != ' ' {
			if idx >= g.Dim() {
				return nil, &PositionError{Row: rowNum, Col: idx}
			}
			letter, err := alph.Val(string(r))
			if err != nil {
				return nil, err
			}
			if letter == 0 {
				return nil, fmt.Errorf("undesignated blank at %v", move.ToBoardGameCoords(rowNum, idx, false))
			}
			row[idx] = letter
			lettersPlayed = append(lettersPlayed, letter)
		}
		idx++
	}
	for col, letter := range row {
		g.SetLetter(rowNum, col, letter)
	}
	return lettersPlayed, nil
}

// WordAt returns the word running across through (row, col), with its
// starting column. It returns nil if the square is empty.
func (g *Board) WordAt(row, col int) (int, tilemapping.MachineWord) {
	if !g.HasLetter(row, col) {
		return col, nil
	}
	start := g.WordEdge(row, col, LeftDirection)
	end := g.WordEdge(row, col, RightDirection)
	word := make(tilemapping.MachineWord, 0, end-start+1)
	for c := start; c <= end; c++ {
		word = append(word, g.GetLetter(row, c))
	}
	return start, word
}
