package tilemapping

import "math/bits"

// LetterSet is a bit set of machine letters; bit ml is set if letter ml is
// in the set. Blanks are stored unblanked.
type LetterSet uint64

// Has returns whether the (unblanked) letter is in the set.
func (ls LetterSet) Has(ml MachineLetter) bool {
	return ls&(1<<ml.Unblank()) != 0
}

// Add returns a set that also contains ml.
func (ls LetterSet) Add(ml MachineLetter) LetterSet {
	return ls | (1 << ml.Unblank())
}

func (ls LetterSet) Remove(ml MachineLetter) LetterSet {
	return ls &^ (1 << ml.Unblank())
}

func (ls LetterSet) Len() int {
	return bits.OnesCount64(uint64(ls))
}

// Letters returns the letters of the set in machine letter order.
func (ls LetterSet) Letters() MachineWord {
	mw := make(MachineWord, 0, ls.Len())
	for s := uint64(ls); s != 0; s &= s - 1 {
		mw = append(mw, MachineLetter(bits.TrailingZeros64(s)))
	}
	return mw
}

// UserVisible returns the letters of the set as a string, for display.
func (ls LetterSet) UserVisible(a *Alphabet) string {
	return ls.Letters().UserVisible(a)
}
