package tilemapping

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// A "letter" or tile is internally represented by a byte, its MachineLetter.
// The 0 value is used to represent two things, depending on context:
// - an empty square on the board
// - an undesignated blank on a rack
// Real letters go from 1 to the size of the alphabet, in the sort order of
// their text. A blank that has been designated as a letter is that letter
// with the high bit set (0x80 | ml).
const (
	// MaxAlphabetSize should be below 64 so that a LetterSet can be a 64-bit
	// int.
	MaxAlphabetSize = 62
	// ASCIIPlayedThrough is a somewhat user-friendly representation of a
	// played-through letter, used mostly for debug purposes.
	ASCIIPlayedThrough = '.'
	// BlankToken is the user-friendly representation of a blank.
	BlankToken = '?'
)

const (
	BlankMask   = 0x80
	UnblankMask = (0x80 - 1)
)

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

type MachineWord []MachineLetter

// Letter is an alphabet symbol. Its text is its identity; two letters are
// equal iff their texts match.
type Letter struct {
	Text  string
	Score int
}

// Equal compares two letters by text.
func (l Letter) Equal(o Letter) bool {
	return l.Text == o.Text
}

// Compare orders letters by text.
func (l Letter) Compare(o Letter) int {
	return strings.Compare(l.Text, o.Text)
}

// DuplicateLetterError is returned when an alphabet lists the same letter
// text twice.
type DuplicateLetterError struct {
	Text string
}

func (e *DuplicateLetterError) Error() string {
	return fmt.Sprintf("letter %q appears more than once in alphabet", e.Text)
}

// AlphabetSizeError is returned when an alphabet is empty or too big to be
// represented by a LetterSet.
type AlphabetSizeError struct {
	Size int
}

func (e *AlphabetSizeError) Error() string {
	return fmt.Sprintf("alphabet size %d not in range [1, %d]", e.Size, MaxAlphabetSize)
}

// An Alphabet maps user-visible letter texts to MachineLetters and back,
// and knows the score of every letter.
type Alphabet struct {
	// letters[ml-1] is the letter for machine letter ml.
	letters []Letter
	vals    map[string]MachineLetter
}

// NewAlphabet creates an alphabet from an ordered collection of letters.
// Letters are re-sorted by text so that machine letter order matches letter
// order.
func NewAlphabet(letters []Letter) (*Alphabet, error) {
	if len(letters) == 0 || len(letters) > MaxAlphabetSize {
		return nil, &AlphabetSizeError{Size: len(letters)}
	}
	sorted := slices.Clone(letters)
	slices.SortFunc(sorted, Letter.Compare)
	a := &Alphabet{
		letters: sorted,
		vals:    make(map[string]MachineLetter, len(sorted)),
	}
	for idx, l := range sorted {
		if l.Text == "" {
			return nil, fmt.Errorf("letter at position %d has no text", idx)
		}
		if _, ok := a.vals[l.Text]; ok {
			return nil, &DuplicateLetterError{Text: l.Text}
		}
		a.vals[l.Text] = MachineLetter(idx + 1)
	}
	log.Debug().Int("num-letters", len(sorted)).Msg("created alphabet")
	return a, nil
}

// NumLetters returns the number of letters in this alphabet.
func (a *Alphabet) NumLetters() int {
	return len(a.letters)
}

// Letter returns the letter for a machine letter. Designated blanks return
// the letter they stand for.
func (a *Alphabet) Letter(ml MachineLetter) Letter {
	return a.letters[ml.Unblank()-1]
}

// Letters returns all the letters of the alphabet, in order.
func (a *Alphabet) Letters() []Letter {
	return slices.Clone(a.letters)
}

// AllLetters returns a LetterSet with every letter of the alphabet.
func (a *Alphabet) AllLetters() LetterSet {
	var ls LetterSet
	for i := range a.letters {
		ls = ls.Add(MachineLetter(i + 1))
	}
	return ls
}

// Score returns the score of a tile. Blanks, designated or not, score 0.
func (a *Alphabet) Score(ml MachineLetter) int {
	if ml == 0 || ml.IsBlanked() {
		return 0
	}
	return a.letters[ml-1].Score
}

// Val returns the machine letter for a letter text. A lowercase version of
// an uppercase letter is a designated blank, and BlankToken is the
// undesignated blank.
func (a *Alphabet) Val(text string) (MachineLetter, error) {
	if text == string(BlankToken) {
		return 0, nil
	}
	if ml, ok := a.vals[text]; ok {
		return ml, nil
	}
	if upper := strings.ToUpper(text); upper != text {
		if ml, ok := a.vals[upper]; ok {
			return ml.Blank(), nil
		}
	}
	return 0, fmt.Errorf("letter `%s` not found in alphabet", text)
}

// ToMachineWord converts a user-visible string into a machine word, one
// rune at a time.
func (a *Alphabet) ToMachineWord(word string) (MachineWord, error) {
	mw := make(MachineWord, 0, len(word))
	for _, ch := range word {
		ml, err := a.Val(string(ch))
		if err != nil {
			return nil, err
		}
		mw = append(mw, ml)
	}
	return mw, nil
}

// MapWord maps a dictionary line character by character, silently dropping
// characters that are not in the alphabet. Lowercase characters map to
// their uppercase letter when the alphabet has no lowercase letter of that
// text; they never become blanks here.
func (a *Alphabet) MapWord(line string) MachineWord {
	mw := make(MachineWord, 0, len(line))
	for _, ch := range line {
		if ml, ok := a.vals[string(ch)]; ok {
			mw = append(mw, ml)
			continue
		}
		if ml, ok := a.vals[string(unicode.ToUpper(ch))]; ok {
			mw = append(mw, ml)
		}
	}
	return mw
}

// UserVisible turns the passed-in machine letter into a user-visible string.
func (ml MachineLetter) UserVisible(a *Alphabet, zeroForPlayedThrough bool) string {
	if ml == 0 {
		if zeroForPlayedThrough {
			return string(ASCIIPlayedThrough)
		}
		return string(BlankToken)
	}
	if ml.IsBlanked() {
		return strings.ToLower(a.Letter(ml).Text)
	}
	return a.Letter(ml).Text
}

// Blank turns the machine letter into its blank version
func (ml MachineLetter) Blank() MachineLetter {
	return ml | BlankMask
}

// Unblank turns the machine letter into its non-blank version (if it's a
// blanked letter)
func (ml MachineLetter) Unblank() MachineLetter {
	return ml & UnblankMask
}

// IsBlanked returns true if the machine letter is a designated blank letter.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask > 0
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(a *Alphabet) string {
	var sb strings.Builder
	for _, l := range mw {
		sb.WriteString(l.UserVisible(a, false))
	}
	return sb.String()
}

// UserVisiblePlayedTiles is like UserVisible, but uses the played-through
// marker for 0.
func (mw MachineWord) UserVisiblePlayedTiles(a *Alphabet) string {
	var sb strings.Builder
	for _, l := range mw {
		sb.WriteString(l.UserVisible(a, true))
	}
	return sb.String()
}

// EnglishAlphabet returns the English alphabet with the usual tile scores.
// It should be used for testing; in production the alphabet comes from a
// letter distribution file.
func EnglishAlphabet() *Alphabet {
	scores := []int{1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, 1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10}
	letters := make([]Letter, len(scores))
	for i, s := range scores {
		letters[i] = Letter{Text: string(rune('A' + i)), Score: s}
	}
	a, err := NewAlphabet(letters)
	if err != nil {
		panic(err)
	}
	return a
}
