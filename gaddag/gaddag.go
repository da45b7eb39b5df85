// Package gaddag implements the GADDAG, a pretty cool data structure
// invented by Steven Gordon.
//
// Every word c0..c(n-1) is stored once per split point i as the path
// REV(c0..ci) ^ c(i+1)..c(n-1), where ^ is the delimiter. Nodes and arcs
// live in an arena owned by the Gaddag and refer to each other by index,
// so many arcs may share a destination node.
package gaddag

import (
	"slices"
	"strconv"

	"github.com/domino14/gordon/tilemapping"
)

// ArcLetter labels an arc: a machine letter (1..MaxAlphabetSize), or the
// Delimiter.
type ArcLetter byte

// Delimiter separates the reversed prefix from the suffix. It sorts after
// every letter.
const Delimiter ArcLetter = tilemapping.MaxAlphabetSize + 1

// ArcIndex addresses an arc in the arena. NoArc is the zero value.
type ArcIndex uint32

// NodeIndex addresses a node in the arena.
type NodeIndex uint32

const (
	NoArc   ArcIndex  = 0
	RootArc ArcIndex  = 1
	Root    NodeIndex = 0
)

// LetterArc turns a tile into the arc letter that labels it. Blanks are
// looked up as the letter they stand for.
func LetterArc(ml tilemapping.MachineLetter) ArcLetter {
	return ArcLetter(ml.Unblank())
}

func (l ArcLetter) String() string {
	if l == Delimiter {
		return "^"
	}
	return strconv.Itoa(int(l))
}

type arc struct {
	dest  NodeIndex
	final tilemapping.LetterSet
}

type edge struct {
	letter ArcLetter
	arc    ArcIndex
}

// node keeps its outgoing arcs sorted by letter.
type node struct {
	edges []edge
}

// Gaddag is a dictionary graph. Once built it is read-only, and can be
// shared between goroutines.
type Gaddag struct {
	arcs     []arc
	nodes    []node
	seen     tilemapping.LetterSet
	alphabet *tilemapping.Alphabet
	name     string
}

// New creates an empty GADDAG over an alphabet.
func New(alph *tilemapping.Alphabet) *Gaddag {
	return &Gaddag{
		// arcs[0] is the NoArc sentinel, arcs[1] the synthetic root arc.
		arcs:     []arc{{}, {dest: Root}},
		nodes:    []node{{}},
		alphabet: alph,
	}
}

func (g *Gaddag) Alphabet() *tilemapping.Alphabet {
	return g.alphabet
}

// LexiconName is the name of the word list this graph was built from.
func (g *Gaddag) LexiconName() string {
	return g.name
}

func (g *Gaddag) SetLexiconName(name string) {
	g.name = name
}

// SeenLetters returns every letter that labels an arc somewhere in the
// graph.
func (g *Gaddag) SeenLetters() tilemapping.LetterSet {
	return g.seen
}

// NumArcs counts real arcs, not the sentinel or the root arc.
func (g *Gaddag) NumArcs() int {
	return len(g.arcs) - 2
}

func (g *Gaddag) NumNodes() int {
	return len(g.nodes)
}

// Destination returns the node an arc points to.
func (g *Gaddag) Destination(a ArcIndex) NodeIndex {
	return g.arcs[a].dest
}

// FinalLetters returns the letters that complete a word right after
// following the arc.
func (g *Gaddag) FinalLetters(a ArcIndex) tilemapping.LetterSet {
	return g.arcs[a].final
}

// HasFinal reports whether appending ml to the path ending in arc a
// spells a complete word.
func (g *Gaddag) HasFinal(a ArcIndex, ml tilemapping.MachineLetter) bool {
	if a == NoArc {
		return false
	}
	return g.arcs[a].final.Has(ml)
}

func (g *Gaddag) findEdge(n NodeIndex, l ArcLetter) (int, bool) {
	return slices.BinarySearchFunc(g.nodes[n].edges, l, func(e edge, l ArcLetter) int {
		return int(e.letter) - int(l)
	})
}

// NextArc returns the arc labelled l leaving the destination of arc a, or
// NoArc.
func (g *Gaddag) NextArc(a ArcIndex, l ArcLetter) ArcIndex {
	if a == NoArc {
		return NoArc
	}
	n := g.arcs[a].dest
	idx, ok := g.findEdge(n, l)
	if !ok {
		return NoArc
	}
	return g.nodes[n].edges[idx].arc
}

// Next is NextArc for a tile.
func (g *Gaddag) Next(a ArcIndex, ml tilemapping.MachineLetter) ArcIndex {
	return g.NextArc(a, LetterArc(ml))
}

// NextLetters returns the letters that label arcs leaving the destination
// of arc a. The delimiter is not included.
func (g *Gaddag) NextLetters(a ArcIndex) tilemapping.LetterSet {
	var ls tilemapping.LetterSet
	if a == NoArc {
		return ls
	}
	for _, e := range g.nodes[g.arcs[a].dest].edges {
		if e.letter != Delimiter {
			ls = ls.Add(tilemapping.MachineLetter(e.letter))
		}
	}
	return ls
}

// ArcLetters lists the labels of the arcs leaving node n, in order.
func (g *Gaddag) ArcLetters(n NodeIndex) []ArcLetter {
	ls := make([]ArcLetter, len(g.nodes[n].edges))
	for i, e := range g.nodes[n].edges {
		ls[i] = e.letter
	}
	return ls
}
