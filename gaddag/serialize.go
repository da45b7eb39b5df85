package gaddag

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/tilemapping"
)

// The file format, all little-endian:
//
//	"ggdg"
//	lexicon name: uint8 length, bytes
//	alphabet: uint8 letter count, then per letter uint8 length, bytes
//	seen letters: uint64
//	arcs: uint32 count, then per arc uint32 destination, uint64 final set
//	nodes: uint32 count, then per node uint8 arc count, then per arc
//	  uint8 letter, uint32 arc index
//
// The NoArc sentinel is not written.
const magic = "ggdg"

var (
	ErrBadMagic         = errors.New("not a gaddag file")
	ErrAlphabetMismatch = errors.New("gaddag was built with a different alphabet")
	ErrMalformedFile    = errors.New("malformed gaddag file")
)

// maxGraphSize bounds the arc and node counts accepted by Load.
const maxGraphSize = 1 << 28

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(data any) {
	if ew.err != nil {
		return
	}
	ew.err = binary.Write(ew.w, binary.LittleEndian, data)
}

func (ew *errWriter) writeString(s string) {
	if ew.err == nil && len(s) > math.MaxUint8 {
		ew.err = fmt.Errorf("string too long to save (%d bytes): %.20q...", len(s), s)
		return
	}
	ew.write(uint8(len(s)))
	ew.write([]byte(s))
}

// Save writes the graph in binary form.
func (g *Gaddag) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}
	ew.write([]byte(magic))
	ew.writeString(g.name)
	letters := g.alphabet.Letters()
	ew.write(uint8(len(letters)))
	for _, l := range letters {
		ew.writeString(l.Text)
	}
	ew.write(uint64(g.seen))
	ew.write(uint32(len(g.arcs) - 1))
	for _, a := range g.arcs[1:] {
		ew.write(uint32(a.dest))
		ew.write(uint64(a.final))
	}
	ew.write(uint32(len(g.nodes)))
	for _, n := range g.nodes {
		ew.write(uint8(len(n.edges)))
		for _, e := range n.edges {
			ew.write(uint8(e.letter))
			ew.write(uint32(e.arc))
		}
	}
	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// SaveFile writes the graph to a file.
func (g *Gaddag) SaveFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := g.Save(f); err != nil {
		f.Close()
		return err
	}
	log.Debug().Str("filename", filename).Int("arcs", g.NumArcs()).Msg("saved gaddag")
	return f.Close()
}

type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) read(data any) {
	if er.err != nil {
		return
	}
	er.err = binary.Read(er.r, binary.LittleEndian, data)
}

func (er *errReader) readString() string {
	var n uint8
	er.read(&n)
	b := make([]byte, n)
	er.read(b)
	return string(b)
}

// Load reads a graph written by Save. The alphabet must have the same
// letters, in the same order, as the one the graph was built with.
func Load(r io.Reader, alph *tilemapping.Alphabet) (*Gaddag, error) {
	er := &errReader{r: bufio.NewReader(r)}
	var m [4]byte
	er.read(&m)
	if er.err != nil {
		return nil, er.err
	}
	if string(m[:]) != magic {
		return nil, ErrBadMagic
	}
	g := &Gaddag{alphabet: alph}
	g.name = er.readString()

	var nletters uint8
	er.read(&nletters)
	if er.err == nil && int(nletters) != alph.NumLetters() {
		return nil, fmt.Errorf("%w: %d letters, expected %d", ErrAlphabetMismatch, nletters, alph.NumLetters())
	}
	for i, l := range alph.Letters() {
		text := er.readString()
		if er.err == nil && text != l.Text {
			return nil, fmt.Errorf("%w: letter %d is %q, expected %q", ErrAlphabetMismatch, i+1, text, l.Text)
		}
	}
	er.read((*uint64)(&g.seen))
	all := alph.AllLetters()
	if er.err == nil && g.seen&^all != 0 {
		return nil, fmt.Errorf("%w: seen letters outside the alphabet", ErrMalformedFile)
	}

	var narcs uint32
	er.read(&narcs)
	if er.err != nil {
		return nil, er.err
	}
	if narcs < 1 || narcs > maxGraphSize {
		return nil, fmt.Errorf("%w: %d arcs", ErrMalformedFile, narcs)
	}
	g.arcs = make([]arc, int(narcs)+1)
	for i := 1; i <= int(narcs) && er.err == nil; i++ {
		var dest uint32
		var final uint64
		er.read(&dest)
		er.read(&final)
		if er.err == nil && tilemapping.LetterSet(final)&^all != 0 {
			return nil, fmt.Errorf("%w: arc %d has final letters outside the alphabet", ErrMalformedFile, i)
		}
		g.arcs[i] = arc{dest: NodeIndex(dest), final: tilemapping.LetterSet(final)}
	}
	if er.err != nil {
		return nil, er.err
	}
	if g.arcs[RootArc].dest != Root {
		return nil, fmt.Errorf("%w: root arc does not lead to the root node", ErrMalformedFile)
	}

	var nnodes uint32
	er.read(&nnodes)
	if er.err != nil {
		return nil, er.err
	}
	if nnodes < 1 || nnodes > maxGraphSize {
		return nil, fmt.Errorf("%w: %d nodes", ErrMalformedFile, nnodes)
	}
	maxLetter := ArcLetter(alph.NumLetters())
	g.nodes = make([]node, nnodes)
	for i := 0; i < len(g.nodes) && er.err == nil; i++ {
		var nedges uint8
		er.read(&nedges)
		edges := make([]edge, 0, nedges)
		for j := 0; j < int(nedges) && er.err == nil; j++ {
			var l uint8
			var a uint32
			er.read(&l)
			er.read(&a)
			if er.err != nil {
				break
			}
			letter := ArcLetter(l)
			if letter == 0 || (letter > maxLetter && letter != Delimiter) {
				return nil, fmt.Errorf("%w: node %d has arc letter %d", ErrMalformedFile, i, l)
			}
			if j > 0 && letter <= edges[j-1].letter {
				return nil, fmt.Errorf("%w: arcs of node %d are not sorted", ErrMalformedFile, i)
			}
			if a == 0 || a > narcs {
				return nil, fmt.Errorf("%w: arc index %d out of range", ErrMalformedFile, a)
			}
			edges = append(edges, edge{letter: letter, arc: ArcIndex(a)})
		}
		g.nodes[i].edges = edges
	}
	if er.err != nil {
		return nil, er.err
	}
	for _, a := range g.arcs[1:] {
		if int(a.dest) >= len(g.nodes) {
			return nil, fmt.Errorf("%w: node index %d out of range", ErrMalformedFile, a.dest)
		}
	}
	log.Debug().Str("lexicon", g.name).Int("arcs", g.NumArcs()).Int("nodes", g.NumNodes()).Msg("loaded gaddag")
	return g, nil
}

// LoadFile loads a graph from a file written by SaveFile.
func LoadFile(filename string, alph *tilemapping.Alphabet) (*Gaddag, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Load(f, alph)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return g, nil
}
