package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestNewAlphabetSortsLetters(t *testing.T) {
	is := is.New(t)
	a, err := NewAlphabet([]Letter{{"C", 3}, {"A", 1}, {"T", 1}})
	is.NoErr(err)
	is.Equal(a.NumLetters(), 3)
	is.Equal(a.Letter(1).Text, "A")
	is.Equal(a.Letter(2).Text, "C")
	is.Equal(a.Letter(3).Text, "T")
	is.Equal(a.Score(2), 3)
}

func TestNewAlphabetErrors(t *testing.T) {
	is := is.New(t)
	_, err := NewAlphabet([]Letter{{"A", 1}, {"A", 2}})
	var dup *DuplicateLetterError
	is.True(errors.As(err, &dup))
	is.Equal(dup.Text, "A")

	_, err = NewAlphabet(nil)
	var sz *AlphabetSizeError
	is.True(errors.As(err, &sz))
	is.Equal(sz.Size, 0)
}

func TestToMachineWord(t *testing.T) {
	is := is.New(t)
	a := EnglishAlphabet()
	mls, err := a.ToMachineWord("CAt?")
	is.NoErr(err)
	is.Equal(mls, MachineWord{3, 1, 20 | 0x80, 0})
	is.Equal(mls.UserVisible(a), "CAt?")
	is.Equal(MachineWord{3, 0, 20}.UserVisiblePlayedTiles(a), "C.T")

	_, err = a.ToMachineWord("CA7")
	is.True(err != nil)
}

func TestMapWord(t *testing.T) {
	is := is.New(t)
	a := EnglishAlphabet()
	is.Equal(a.MapWord("cat"), MachineWord{3, 1, 20})
	is.Equal(a.MapWord("DON'T\r"), MachineWord{4, 15, 14, 20})
	is.Equal(len(a.MapWord("123")), 0)
}

func TestBlankRoundTrip(t *testing.T) {
	is := is.New(t)
	ml := MachineLetter(5)
	is.True(!ml.IsBlanked())
	is.True(ml.Blank().IsBlanked())
	is.Equal(ml.Blank().Unblank(), ml)
	is.Equal(EnglishAlphabet().Score(ml.Blank()), 0)
}

func TestLetterSet(t *testing.T) {
	is := is.New(t)
	var ls LetterSet
	ls = ls.Add(3).Add(1).Add(20 | 0x80)
	is.True(ls.Has(1))
	is.True(ls.Has(20))
	is.True(ls.Has(20 | 0x80))
	is.True(!ls.Has(2))
	is.Equal(ls.Len(), 3)
	is.Equal(ls.Letters(), MachineWord{1, 3, 20})
	is.Equal(ls.Remove(3).Letters(), MachineWord{1, 20})
	is.Equal(EnglishAlphabet().AllLetters().Len(), 26)
}
