package move

// Set is an insertion-ordered set of moves, using Move.Equal for identity.
type Set struct {
	moves   []*Move
	buckets map[uint64][]int
}

func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]int)}
}

func (s *Set) find(m *Move, h uint64) bool {
	for _, idx := range s.buckets[h] {
		if s.moves[idx].Equal(m) {
			return true
		}
	}
	return false
}

// Add adds a move unless an equal one is already there. It returns whether
// the move was added.
func (s *Set) Add(m *Move) bool {
	h := m.Hash()
	if s.find(m, h) {
		return false
	}
	s.buckets[h] = append(s.buckets[h], len(s.moves))
	s.moves = append(s.moves, m)
	return true
}

func (s *Set) Contains(m *Move) bool {
	return s.find(m, m.Hash())
}

func (s *Set) Len() int {
	return len(s.moves)
}

// Moves returns the moves in the order they were added.
func (s *Set) Moves() []*Move {
	ms := make([]*Move, len(s.moves))
	copy(ms, s.moves)
	return ms
}
