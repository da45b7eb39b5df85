// Utility functions for doing cool things with gaddags.
package gaddag

import (
	"slices"

	"github.com/domino14/gordon/tilemapping"
)

// walk follows a sequence of arc letters from the root and returns the last
// arc, or NoArc if the path does not exist.
func (g *Gaddag) walk(letters []ArcLetter) ArcIndex {
	a := RootArc
	for _, l := range letters {
		a = g.NextArc(a, l)
		if a == NoArc {
			return NoArc
		}
	}
	return a
}

// FindSplit reports whether the word is stored with its split after
// position i, that is, as the path REV(w[0..i]) ^ w[i+1..]. The last
// letter of the path is checked against the final set of the arc before it.
func (g *Gaddag) FindSplit(word tilemapping.MachineWord, i int) bool {
	n := len(word)
	if n < 2 || i < 0 || i >= n {
		return false
	}
	path := make([]ArcLetter, 0, n)
	var last tilemapping.MachineLetter
	if i == n-1 {
		for j := n - 1; j >= 1; j-- {
			path = append(path, LetterArc(word[j]))
		}
		last = word[0]
	} else {
		for j := i; j >= 0; j-- {
			path = append(path, LetterArc(word[j]))
		}
		path = append(path, Delimiter)
		for j := i + 1; j < n-1; j++ {
			path = append(path, LetterArc(word[j]))
		}
		last = word[n-1]
	}
	a := g.walk(path)
	return g.HasFinal(a, last)
}

// FindWord reports whether the word is in the dictionary.
func (g *Gaddag) FindWord(word tilemapping.MachineWord) bool {
	return g.FindSplit(word, len(word)-1)
}

// FindWordString is FindWord for user-visible text.
func (g *Gaddag) FindWordString(word string) bool {
	mw, err := g.alphabet.ToMachineWord(word)
	if err != nil {
		return false
	}
	return g.FindWord(mw)
}

// Words returns every word in the dictionary, sorted. It walks the
// reversed-word paths, which never cross the delimiter.
func (g *Gaddag) Words() []tilemapping.MachineWord {
	var words []tilemapping.MachineWord
	var rev []tilemapping.MachineLetter
	var visit func(a ArcIndex)
	visit = func(a ArcIndex) {
		for _, ml := range g.arcs[a].final.Letters() {
			w := make(tilemapping.MachineWord, 0, len(rev)+1)
			w = append(w, ml)
			for j := len(rev) - 1; j >= 0; j-- {
				w = append(w, rev[j])
			}
			words = append(words, w)
		}
		for _, e := range g.nodes[g.arcs[a].dest].edges {
			if e.letter == Delimiter {
				continue
			}
			rev = append(rev, tilemapping.MachineLetter(e.letter))
			visit(e.arc)
			rev = rev[:len(rev)-1]
		}
	}
	visit(RootArc)
	slices.SortFunc(words, func(a, b tilemapping.MachineWord) int {
		return slices.Compare(a, b)
	})
	return words
}
