package move

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"

	"github.com/domino14/gordon/tilemapping"
)

// Direction is the orientation of a move.
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Move is a placement of new tiles along one row (Across) or one column
// (Down). Tiles already on the board are not part of the move. All
// coordinates are absolute, never relative to a transposed board.
type Move struct {
	dir      Direction
	rowOrCol int
	// tiles maps the coordinate along the line to the tile placed there.
	tiles map[int]tilemapping.MachineLetter
	score int
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// New creates an empty move on row (Across) or column (Down) rowOrCol.
func New(dir Direction, rowOrCol int) *Move {
	return &Move{
		dir:      dir,
		rowOrCol: rowOrCol,
		tiles:    make(map[int]tilemapping.MachineLetter),
	}
}

// Place puts a tile at coordinate pos along the move's line.
func (m *Move) Place(pos int, ml tilemapping.MachineLetter) {
	m.tiles[pos] = ml
}

func (m *Move) Direction() Direction {
	return m.dir
}

func (m *Move) RowOrCol() int {
	return m.rowOrCol
}

// Tile returns the tile placed at coordinate pos along the line.
func (m *Move) Tile(pos int) (tilemapping.MachineLetter, bool) {
	ml, ok := m.tiles[pos]
	return ml, ok
}

// Positions returns the coordinates along the line that get a tile, in
// order.
func (m *Move) Positions() []int {
	ps := lo.Keys(m.tiles)
	slices.Sort(ps)
	return ps
}

// Tiles returns the placed tiles in coordinate order.
func (m *Move) Tiles() tilemapping.MachineWord {
	return lo.Map(m.Positions(), func(p int, _ int) tilemapping.MachineLetter {
		return m.tiles[p]
	})
}

func (m *Move) TilesPlayed() int {
	return len(m.tiles)
}

// Coords turns a coordinate along the line into an absolute (row, col).
func (m *Move) Coords(pos int) (int, int) {
	if m.dir == Down {
		return pos, m.rowOrCol
	}
	return m.rowOrCol, pos
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) SetScore(s int) {
	m.score = s
}

// Equal implements move equality: empty moves are all equal, single-tile
// moves are equal if they put the same tile on the same square no matter
// their direction, and any other moves must match exactly.
func (m *Move) Equal(o *Move) bool {
	if len(m.tiles) != len(o.tiles) {
		return false
	}
	switch len(m.tiles) {
	case 0:
		return true
	case 1:
		r1, c1, t1 := m.single()
		r2, c2, t2 := o.single()
		return r1 == r2 && c1 == c2 && t1 == t2
	}
	if m.dir != o.dir || m.rowOrCol != o.rowOrCol {
		return false
	}
	for p, ml := range m.tiles {
		if oml, ok := o.tiles[p]; !ok || oml != ml {
			return false
		}
	}
	return true
}

func (m *Move) single() (int, int, tilemapping.MachineLetter) {
	for p, ml := range m.tiles {
		r, c := m.Coords(p)
		return r, c, ml
	}
	return 0, 0, 0
}

// Hash is consistent with Equal: equal moves have equal hashes.
func (m *Move) Hash() uint64 {
	switch len(m.tiles) {
	case 0:
		return 0
	case 1:
		r, c, ml := m.single()
		buf := []byte{1, byte(ml)}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c))
		return xxhash.Sum64(buf)
	}
	buf := make([]byte, 0, 6+5*len(m.tiles))
	buf = append(buf, 2, byte(m.dir))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.rowOrCol))
	for _, p := range m.Positions() {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(p))
		buf = append(buf, byte(m.tiles[p]))
	}
	return xxhash.Sum64(buf)
}

// Copy returns a deep copy of the move.
func (m *Move) Copy() *Move {
	c := New(m.dir, m.rowOrCol)
	for p, ml := range m.tiles {
		c.tiles[p] = ml
	}
	c.score = m.score
	return c
}

// BoardCoords returns the coordinates of the first placed tile, like 8H
// (across) or H8 (down).
func (m *Move) BoardCoords() string {
	if len(m.tiles) == 0 {
		return ""
	}
	r, c := m.Coords(m.Positions()[0])
	return ToBoardGameCoords(r, c, m.dir == Down)
}

// ShortDescription provides a short description, useful for logging or
// user display. Gaps between placed tiles, which are tiles already on the
// board, are shown with the played-through marker.
func (m *Move) ShortDescription(alph *tilemapping.Alphabet) string {
	if len(m.tiles) == 0 {
		return "(Pass)"
	}
	ps := m.Positions()
	var sb strings.Builder
	for p := ps[0]; p <= ps[len(ps)-1]; p++ {
		ml, ok := m.tiles[p]
		if !ok {
			sb.WriteRune(tilemapping.ASCIIPlayedThrough)
			continue
		}
		sb.WriteString(ml.UserVisible(alph, false))
	}
	return fmt.Sprintf("%v %v", m.BoardCoords(), sb.String())
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%v %d tiles: %v score: %v>", m.dir, m.rowOrCol, m.tiles, m.score)
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (int, int, bool, error) {
	c = strings.ToUpper(c)
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, _ := strconv.Atoi(vMatches[2])
		return row - 1, int(vMatches[1][0] - 'A'), true, nil
	}
	if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, _ := strconv.Atoi(hMatches[1])
		return row - 1, int(hMatches[2][0] - 'A'), false, nil
	}
	return 0, 0, false, fmt.Errorf("invalid coordinates: %v", c)
}

// FromString makes a move from coordinates and a word, e.g. "8H" and
// "CA.S". A "." is a tile already on the board and a lowercase letter is
// a designated blank.
func FromString(coords, word string, alph *tilemapping.Alphabet) (*Move, error) {
	row, col, vertical, err := FromBoardGameCoords(coords)
	if err != nil {
		return nil, err
	}
	m := New(Across, row)
	pos := col
	if vertical {
		m = New(Down, col)
		pos = row
	}
	for _, ch := range word {
		if ch != tilemapping.ASCIIPlayedThrough {
			ml, err := alph.Val(string(ch))
			if err != nil {
				return nil, err
			}
			if ml == 0 {
				return nil, fmt.Errorf("blank in %v must be designated", word)
			}
			m.Place(pos, ml)
		}
		pos++
	}
	return m, nil
}
