package game

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

// GenerateBatch generates moves for many racks on the current position,
// using up to workers goroutines. Each goroutine works on its own copy of
// the game. Results are in the order of racks. If any generation fails,
// or ctx is done, no results are returned.
func (g *Game) GenerateBatch(ctx context.Context, racks []*tilemapping.Rack, workers int) ([][]*move.Move, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([][]*move.Move, len(racks))
	copies := make(chan *Game, workers)
	for i := 0; i < workers; i++ {
		copies <- g.Copy()
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, rack := range racks {
		i, rack := i, rack
		eg.Go(func() error {
			c := <-copies
			defer func() { copies <- c }()
			plays, err := c.GenerateContext(ctx, rack.Copy())
			if err != nil {
				return err
			}
			results[i] = plays
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("racks", len(racks)).Int("workers", workers).Msg("batch generated")
	return results, nil
}
