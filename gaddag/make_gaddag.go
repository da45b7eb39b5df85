// Here we have utility functions for creating a GADDAG.
package gaddag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/tilemapping"
)

// WordSizeError is returned for a word list entry with fewer than two
// letters after mapping it through the alphabet.
type WordSizeError struct {
	Word string
	// Line is the 1-based line number in the word list, or 0.
	Line int
}

func (e *WordSizeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("word %q on line %d is shorter than 2 letters", e.Word, e.Line)
	}
	return fmt.Sprintf("word %q is shorter than 2 letters", e.Word)
}

// MalformedGraphError is the panic value raised when an arc must be forced
// to a node but an arc with the same label already points elsewhere. It
// means construction itself is broken, not that the input is bad.
type MalformedGraphError struct {
	From     NodeIndex
	Letter   ArcLetter
	Existing NodeIndex
	Wanted   NodeIndex
}

func (e *MalformedGraphError) Error() string {
	return fmt.Sprintf("arc %v from node %d already points to node %d, not %d",
		e.Letter, e.From, e.Existing, e.Wanted)
}

func (g *Gaddag) createNode() NodeIndex {
	g.nodes = append(g.nodes, node{})
	return NodeIndex(len(g.nodes) - 1)
}

// createArcFrom creates an arc labelled l from node "from" to node "to",
// keeping the node's arcs sorted.
func (g *Gaddag) createArcFrom(from NodeIndex, l ArcLetter, to NodeIndex) ArcIndex {
	g.arcs = append(g.arcs, arc{dest: to})
	a := ArcIndex(len(g.arcs) - 1)
	idx, _ := g.findEdge(from, l)
	g.nodes[from].edges = slices.Insert(g.nodes[from].edges, idx, edge{letter: l, arc: a})
	if l != Delimiter {
		g.seen = g.seen.Add(tilemapping.MachineLetter(l))
	}
	return a
}

// addArc returns the arc labelled l from node "from", creating it and a
// fresh destination node if it does not exist.
func (g *Gaddag) addArc(from NodeIndex, l ArcLetter) ArcIndex {
	if idx, ok := g.findEdge(from, l); ok {
		return g.nodes[from].edges[idx].arc
	}
	return g.createArcFrom(from, l, g.createNode())
}

// forceArc makes sure the arc labelled l from node "from" goes to node
// "to". An existing arc pointing anywhere else is a construction bug.
func (g *Gaddag) forceArc(from NodeIndex, l ArcLetter, to NodeIndex) ArcIndex {
	if idx, ok := g.findEdge(from, l); ok {
		a := g.nodes[from].edges[idx].arc
		if g.arcs[a].dest != to {
			panic(&MalformedGraphError{From: from, Letter: l, Existing: g.arcs[a].dest, Wanted: to})
		}
		return a
	}
	return g.createArcFrom(from, l, to)
}

// addPath walks the given letters backwards from the root, creating arcs
// as needed, and returns the last arc.
func (g *Gaddag) addPath(letters []ArcLetter) ArcIndex {
	a := RootArc
	for i := len(letters) - 1; i >= 0; i-- {
		a = g.addArc(g.arcs[a].dest, letters[i])
	}
	return a
}

func (g *Gaddag) validate(word tilemapping.MachineWord) error {
	if len(word) < 2 {
		return &WordSizeError{Word: word.UserVisible(g.alphabet)}
	}
	for _, ml := range word {
		if ml == 0 || ml.IsBlanked() || int(ml) > g.alphabet.NumLetters() {
			return fmt.Errorf("word %v contains a tile that is not a letter", []tilemapping.MachineLetter(word))
		}
	}
	return nil
}

// AddWord inserts a word into the graph. A word that is too short returns
// a *WordSizeError and leaves the graph untouched. Adding a word that is
// already present changes nothing.
func (g *Gaddag) AddWord(word tilemapping.MachineWord) error {
	if err := g.validate(word); err != nil {
		return err
	}
	g.addWord(word)
	return nil
}

func (g *Gaddag) addWord(word tilemapping.MachineWord) {
	n := len(word)
	// seq is ^ c0 c1 ... c(n-1)
	seq := make([]ArcLetter, n+1)
	seq[0] = Delimiter
	for i, ml := range word {
		seq[i+1] = LetterArc(ml)
	}
	first, last := word[0], word[n-1]

	// REV(c1..c(n-1)), completed by c0.
	a := g.addPath(seq[2:])
	g.arcs[a].final = g.arcs[a].final.Add(first)

	// REV(c0..c(n-2)) ^, completed by c(n-1).
	a = g.addPath(seq[:n])
	g.arcs[a].final = g.arcs[a].final.Add(last)
	target := g.arcs[a].dest

	// REV(c0..c(m-2)) ^ c(m-1) joins the node reached above for the
	// longer prefix.
	for m := n - 1; m >= 2; m-- {
		a = g.addPath(seq[:m])
		from := g.arcs[a].dest
		forced := g.forceArc(from, seq[m], target)
		if m == n-1 {
			g.arcs[forced].final = g.arcs[forced].final.Add(last)
		}
		target = from
	}
}

// GenerateFromReader builds a GADDAG from a newline-delimited word list.
// Each line is mapped through the alphabet, dropping unknown characters.
// Blank lines are skipped. If any line maps to fewer than two letters, no
// graph is built and a *WordSizeError naming it is returned.
func GenerateFromReader(r io.Reader, alph *tilemapping.Alphabet) (*Gaddag, error) {
	words, err := readWords(r, alph)
	if err != nil {
		return nil, err
	}
	g := New(alph)
	for idx, w := range words {
		if idx%10000 == 0 && idx > 0 {
			log.Debug().Int("words", idx).Msg("adding words")
		}
		g.addWord(w)
	}
	log.Debug().Int("words", len(words)).Int("arcs", g.NumArcs()).
		Int("nodes", g.NumNodes()).Msg("generated gaddag")
	return g, nil
}

func readWords(r io.Reader, alph *tilemapping.Alphabet) ([]tilemapping.MachineWord, error) {
	var words []tilemapping.MachineWord
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		mw := alph.MapWord(text)
		if len(mw) < 2 {
			return nil, &WordSizeError{Word: text, Line: line}
		}
		words = append(words, mw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// GenerateFromFile builds a GADDAG from a UTF-8 word list file. The
// lexicon name is the file name without its extension.
func GenerateFromFile(filename string, alph *tilemapping.Alphabet) (*Gaddag, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := GenerateFromReader(f, alph)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	g.name = LexiconNameFromPath(filename)
	return g, nil
}

// LexiconNameFromPath turns /path/to/NWL23.txt into NWL23.
func LexiconNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
