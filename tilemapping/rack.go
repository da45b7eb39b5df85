package tilemapping

import (
	"fmt"
)

// Rack is a machine-friendly representation of a user's rack.
type Rack struct {
	// LetArr holds a count per machine letter, from 0 to NumLetters.
	// The undesignated blank goes at 0.
	LetArr     []int
	numLetters int
	alphabet   *Alphabet
}

// NewRack creates a brand new rack structure with an alphabet.
func NewRack(alph *Alphabet) *Rack {
	return &Rack{
		alphabet: alph,
		LetArr:   make([]int, alph.NumLetters()+1),
	}
}

// RackFromString creates a Rack from a string and an alphabet. Use ? for
// a blank.
func RackFromString(rack string, a *Alphabet) (*Rack, error) {
	mls, err := a.ToMachineWord(rack)
	if err != nil {
		return nil, err
	}
	r := NewRack(a)
	for _, ml := range mls {
		if ml.IsBlanked() {
			return nil, fmt.Errorf("rack cannot hold a designated blank: %s", rack)
		}
	}
	r.Set(mls)
	return r, nil
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	n := &Rack{
		numLetters: r.numLetters,
		alphabet:   r.alphabet,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

// Set sets the rack from a list of machine letters
func (r *Rack) Set(mls []MachineLetter) {
	r.Clear()
	for _, ml := range mls {
		r.LetArr[ml]++
	}
	r.numLetters = len(mls)
}

func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.numLetters = 0
}

// Take removes a letter from the rack. It should only be called if the
// letter is on the rack.
func (r *Rack) Take(letter MachineLetter) {
	r.LetArr[letter]--
	r.numLetters--
}

func (r *Rack) Has(letter MachineLetter) bool {
	return r.LetArr[letter] > 0
}

func (r *Rack) CountOf(letter MachineLetter) int {
	return r.LetArr[letter]
}

func (r *Rack) Add(letter MachineLetter) {
	r.LetArr[letter]++
	r.numLetters++
}

// TilesOn returns the MachineLetters of the rack's current tiles. It is
// alphabetized, blanks first.
func (r *Rack) TilesOn() MachineWord {
	letters := make(MachineWord, 0, r.numLetters)
	for i, ct := range r.LetArr {
		for j := 0; j < ct; j++ {
			letters = append(letters, MachineLetter(i))
		}
	}
	return letters
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

func (r *Rack) Alphabet() *Alphabet {
	return r.alphabet
}
