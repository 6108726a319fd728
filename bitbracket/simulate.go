/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bitbracket

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Matchup decides a match outright: it returns 0 if a wins, else 1 (b wins).
type Matchup[T any] func(a, b T) int

// WinProb returns the probability that a beats b.
type WinProb[T any] func(a, b T) float64

// Play runs one tournament among teams, asking matchup for the winner of
// every match, and returns the resulting Bitbracket.
func Play[T any](teams []T, matchup Matchup[T]) (Bitbracket, error) {
	if err := ValidateTeams(teams); err != nil {
		return 0, err
	}
	if matchup == nil {
		return 0, fmt.Errorf("%w: matchup must be a function", ErrType)
	}

	return play(teams, matchup)
}

func play[T any](teams []T, matchup Matchup[T]) (Bitbracket, error) {
	var bb Bitbracket
	err := knockout(teams, func(match int, a, b T) (int, error) {
		winner := matchup(a, b)
		if winner == 1 {
			bb |= 1 << match
		}
		return winner, nil
	}, nil)

	return bb, err
}

// PlayProb runs one tournament among teams in which a beats b with
// probability p(a, b), drawing once from rng per match. Probabilities
// outside [0,1] saturate and NaN always favors b. A nil rng draws from a
// freshly seeded generator.
func PlayProb[T any](teams []T, p WinProb[T], rng *rand.Rand) (Bitbracket,
	error) {

	if err := ValidateTeams(teams); err != nil {
		return 0, err
	}
	if p == nil {
		return 0, fmt.Errorf("%w: win probability must be a function", ErrType)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return playProb(teams, p, rng), nil
}

func playProb[T any](teams []T, p WinProb[T], rng *rand.Rand) Bitbracket {
	var bb Bitbracket
	// the decider only ever returns 0 or 1
	_ = knockout(teams, func(match int, a, b T) (int, error) {
		if rng.Float64() < p(a, b) {
			return 0, nil
		}
		bb |= 1 << match
		return 1, nil
	}, nil)

	return bb
}

// Simulate plays n tournaments among teams using matchup and tallies the
// resulting bitbrackets. Runs are sequential since matchup need not be safe
// for concurrent use.
func Simulate[T any](teams []T, matchup Matchup[T], n int) (Tally, error) {
	if err := ValidateTeams(teams); err != nil {
		return nil, err
	}
	if err := probeMatchup(teams, matchup); err != nil {
		return nil, err
	}
	if err := ValidateN(n); err != nil {
		return nil, err
	}

	tally := make(Tally)
	for range n {
		bb, err := play(teams, matchup)
		if err != nil {
			return nil, err
		}
		tally.Add(bb)
	}

	return tally, nil
}

type simConfig struct {
	workers int
	seed    uint64
	seeded  bool
}

// Option configures SimulateProb.
type Option func(*simConfig)

// WithWorkers sets the number of concurrent workers. The default is
// GOMAXPROCS; values < 1 are ignored.
func WithWorkers(workers int) Option {
	return func(c *simConfig) {
		if workers > 0 {
			c.workers = workers
		}
	}
}

// WithSeed makes SimulateProb reproducible: the same seed, worker count and
// inputs always yield the same tally.
func WithSeed(seed uint64) Option {
	return func(c *simConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// SimulateProb plays n tournaments among teams in which a beats b with
// probability p(a, b) and tallies the resulting bitbrackets.
//
// The runs are split across workers, each with its own generator, and the
// per-worker tallies are merged once every worker finishes. p must be safe
// for concurrent use.
func SimulateProb[T any](ctx context.Context, teams []T, p WinProb[T], n int,
	opts ...Option) (Tally, error) {

	if err := ValidateTeams(teams); err != nil {
		return nil, err
	}
	if err := probeWinProb(teams, p); err != nil {
		return nil, err
	}
	if err := ValidateN(n); err != nil {
		return nil, err
	}

	cfg := simConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = rand.Uint64()
	}
	if cfg.workers > n {
		cfg.workers = n
	}

	var mu sync.Mutex
	tally := make(Tally)
	g, ctx := errgroup.WithContext(ctx)

	for w := range cfg.workers {
		runs := n / cfg.workers
		if w < n%cfg.workers {
			runs++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(cfg.seed, uint64(w)))
			local := make(Tally)
			for i := range runs {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				local.Add(playProb(teams, p, rng))
			}

			mu.Lock()
			tally.Merge(local)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tally, nil
}
