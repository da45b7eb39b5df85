package gaddag

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gordon/tilemapping"
)

type testpair struct {
	word  string
	found bool
}

var testWords = []string{
	"AA", "AB", "ABA", "ABBA", "BA", "BAA", "BAAS", "CAB", "CABS", "CAT",
	"CATS", "SCAB", "SCAT", "STAB", "TABS", "TSKTSK", "ZZZ",
}

var findWordTests = []testpair{
	{"ABBA", true},
	{"ABB", false},
	{"BAAS", true},
	{"BAASS", false},
	{"SCAT", true},
	{"CAT", true},
	{"AT", false},
	{"TSKTSK", true},
	{"TSK", false},
	{"ZZZ", true},
	{"ZZ", false},
	{"Z", false},
	{"TABS", true},
	{"STAB", true},
	{"BATS", false},
}

func TestFindWord(t *testing.T) {
	is := is.New(t)
	g := mustGenerate(t, tilemapping.EnglishAlphabet(), testWords...)
	for _, pair := range findWordTests {
		is.Equal(g.FindWordString(pair.word), pair.found) // pair.word
	}
}

func TestAllSplitsReachable(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	g := mustGenerate(t, alph, testWords...)
	for _, w := range testWords {
		mw, err := alph.ToMachineWord(w)
		is.NoErr(err)
		for i := range mw {
			if !g.FindSplit(mw, i) {
				t.Errorf("split %d of %v not found", i, w)
			}
		}
	}
	// A prefix of a word is a path but not a complete word at any split.
	mw, err := alph.ToMachineWord("SCA")
	is.NoErr(err)
	for i := range mw {
		is.True(!g.FindSplit(mw, i))
	}
}

func TestReversedWordThenDelimiter(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	g := mustGenerate(t, alph, testWords...)
	for _, w := range testWords {
		mw, err := alph.ToMachineWord(w)
		is.NoErr(err)
		// REV(w[0..n-2]) ^ is completed by the last letter.
		path := make([]ArcLetter, 0, len(mw))
		for j := len(mw) - 2; j >= 0; j-- {
			path = append(path, LetterArc(mw[j]))
		}
		path = append(path, Delimiter)
		a := g.walk(path)
		is.True(a != NoArc)
		is.True(g.HasFinal(a, mw[len(mw)-1]))
	}
}

func TestWords(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	g := mustGenerate(t, alph, "CATS", "AB", "CAT")
	words := g.Words()
	is.Equal(len(words), 3)
	is.Equal(words[0].UserVisible(alph), "AB")
	is.Equal(words[1].UserVisible(alph), "CAT")
	is.Equal(words[2].UserVisible(alph), "CATS")
}

func BenchmarkGenerate(b *testing.B) {
	alph := tilemapping.EnglishAlphabet()
	for i := 0; i < b.N; i++ {
		g := New(alph)
		for _, w := range testWords {
			_ = g.AddWord(alph.MapWord(w))
		}
	}
}
