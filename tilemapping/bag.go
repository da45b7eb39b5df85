package tilemapping

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles!
type Bag struct {
	tiles []MachineLetter
	ld    *LetterDistribution
	rng   *frand.RNG
}

// NewBag creates an unshuffled bag from a letter distribution.
func NewBag(ld *LetterDistribution) *Bag {
	b := &Bag{ld: ld, rng: frand.New()}
	b.Refill()
	return b
}

// Refill puts every tile of the distribution back in the bag, in order.
func (b *Bag) Refill() {
	b.tiles = b.tiles[:0]
	for ml, ct := range b.ld.distribution {
		for i := 0; i < ct; i++ {
			b.tiles = append(b.tiles, MachineLetter(ml))
		}
	}
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	b.rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]MachineLetter, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %v tiles", n)
	}
	if n > len(b.tiles) {
		return nil, fmt.Errorf("%w: tried to draw %v, bag has %v", ErrEmptyBag, n, len(b.tiles))
	}
	drawn := make([]MachineLetter, n)
	copy(drawn, b.tiles[len(b.tiles)-n:])
	b.tiles = b.tiles[:len(b.tiles)-n]
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []MachineLetter {
	n = max(n, 0)
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// PutBack returns tiles to the bag and reshuffles it.
func (b *Bag) PutBack(letters []MachineLetter) {
	for _, l := range letters {
		if l.IsBlanked() {
			l = 0
		}
		b.tiles = append(b.tiles, l)
	}
	b.Shuffle()
}

// Remove takes specific tiles out of the bag, for example tiles already
// placed on a board.
func (b *Bag) Remove(letters []MachineLetter) error {
	for _, l := range letters {
		if l.IsBlanked() {
			l = 0
		}
		found := false
		for i, t := range b.tiles {
			if t == l {
				b.tiles[i] = b.tiles[len(b.tiles)-1]
				b.tiles = b.tiles[:len(b.tiles)-1]
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: tile %v not in bag", ErrEmptyBag, l.UserVisible(b.ld.alphabet, false))
		}
	}
	return nil
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Copy copies the bag. The copy gets its own random source.
func (b *Bag) Copy() *Bag {
	tiles := make([]MachineLetter, len(b.tiles))
	copy(tiles, b.tiles)
	return &Bag{tiles: tiles, ld: b.ld, rng: frand.New()}
}
