package tilemapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// LetterDistribution encodes the tile distribution for the relevant game.
// The blank row, if any, is not part of the alphabet; its count is kept
// separately.
type LetterDistribution struct {
	alphabet *Alphabet
	// distribution[ml] is the number of tiles of machine letter ml; index
	// 0 is the blank.
	distribution []int
	Vowels       []MachineLetter
	Name         string
}

// ScanLetterDistribution reads a CSV distribution with the columns
// letter,quantity,value[,vowel].
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = -1
	var letters []Letter
	counts := map[string]int{}
	vowels := map[string]bool{}
	blanks := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("distribution row %v has too few columns", record)
		}
		letter := strings.TrimSpace(record[0])
		n, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, err
		}
		if letter == string(BlankToken) {
			blanks = n
			continue
		}
		if len(record) > 3 && strings.TrimSpace(record[3]) == "1" {
			vowels[letter] = true
		}
		counts[letter] = n
		letters = append(letters, Letter{Text: letter, Score: p})
	}
	alph, err := NewAlphabet(letters)
	if err != nil {
		return nil, err
	}
	ld := &LetterDistribution{
		alphabet:     alph,
		distribution: make([]int, alph.NumLetters()+1),
	}
	ld.distribution[0] = blanks
	for i, l := range alph.letters {
		ml := MachineLetter(i + 1)
		ld.distribution[ml] = counts[l.Text]
		if vowels[l.Text] {
			ld.Vowels = append(ld.Vowels, ml)
		}
	}
	return ld, nil
}

// NamedLetterDistribution loads a distribution by name from the given
// directory. The name can also be a path to a CSV file.
func NamedLetterDistribution(dir, name string) (*LetterDistribution, error) {
	var path string
	if strings.HasSuffix(strings.ToLower(name), ".csv") {
		path = name
	} else {
		name = strings.ToLower(name)
		path = filepath.Join(dir, name+".csv")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	base := filepath.Base(name)
	ld.Name = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	log.Debug().Str("name", ld.Name).Int("tiles", ld.NumTotalTiles()).Msg("loaded letter distribution")
	return ld, nil
}

func (ld *LetterDistribution) Alphabet() *Alphabet {
	return ld.alphabet
}

// Score gives the score of the given machine letter.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	return ld.alphabet.Score(ml)
}

// WordScore returns the sum of the tile scores of a word.
func (ld *LetterDistribution) WordScore(mw MachineWord) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}

func (ld *LetterDistribution) Distribution() []int {
	return ld.distribution
}

func (ld *LetterDistribution) NumTotalTiles() int {
	t := 0
	for _, ct := range ld.distribution {
		t += ct
	}
	return t
}

// MakeBag returns a full, shuffled bag of tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	b := NewBag(ld)
	b.Shuffle()
	return b
}

// ErrEmptyBag is returned when drawing more tiles than the bag has.
var ErrEmptyBag = errors.New("not enough tiles in bag")

// EnglishLetterDistribution is the standard English distribution, without
// reading any file. Useful for tests.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution(strings.NewReader(englishCSV))
	if err != nil {
		panic(err)
	}
	ld.Name = "english"
	return ld
}

const englishCSV = `A,9,1,1
B,2,3,0
C,2,3,0
D,4,2,0
E,12,1,1
F,2,4,0
G,3,2,0
H,2,4,0
I,9,1,1
J,1,8,0
K,1,5,0
L,4,1,0
M,2,3,0
N,6,1,0
O,8,1,1
P,2,3,0
Q,1,10,0
R,6,1,0
S,4,1,0
T,6,1,0
U,4,1,1
V,2,4,0
W,2,4,0
X,1,8,0
Y,2,4,0
Z,1,10,0
?,2,0,0
`
