package search

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/grille/score"
	"github.com/katalvlaran/grille/synth"
)

// Search evaluates up to attempts random seeds for the given order and
// returns the one with the lowest score. It stops as soon as a candidate
// scores score.Perfect.
//
// Behavior:
//  1. Draw a non-negative 31-bit seed from the Source.
//  2. Synthesize and score its grille.
//  3. Keep it if its score is strictly lower than the best so far.
//  4. Stop when the best score is perfect or the budget is exhausted.
//
// Ties keep the earlier seed. The search is sequential; the Source is
// consulted exactly once per evaluated attempt.
//
// Returns synth.ErrOrderRange for a bad order, ErrOptionViolation for a
// negative budget or invalid option, and ErrNoAttempts when attempts is 0.
//
// Complexity: O(attempts · order²).
func Search(order, attempts int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if o.Source == nil {
		o.Source = clockSource()
	}
	if err := synth.ValidateOrder(order); err != nil {
		return Result{}, err
	}
	if attempts < 0 {
		return Result{}, fmt.Errorf("%w: attempts cannot be negative (%d)", ErrOptionViolation, attempts)
	}
	if attempts == 0 {
		return Result{}, ErrNoAttempts
	}

	best := Result{Score: math.MaxInt}
	for i := 0; i < attempts; i++ {
		seed := int64(o.Source.Int31() & math.MaxInt32)
		g, err := synth.Synthesize(order, seed)
		if err != nil {
			return Result{}, err
		}
		s := score.Score(g)
		best.Attempts = i + 1

		improved := s < best.Score
		if improved {
			best.Seed, best.Score, best.Grid = seed, s, g
			o.Logger.Debug("improved candidate",
				zap.Int("attempt", i),
				zap.Int64("seed", seed),
				zap.Int("score", s))
		}
		o.OnCandidate(Candidate{
			Attempt:  i,
			Seed:     seed,
			Score:    s,
			Best:     best.Score,
			Improved: improved,
		})
		if best.Score == score.Perfect {
			break
		}
	}

	o.Logger.Info("search finished",
		zap.Int("order", order),
		zap.Int64("seed", best.Seed),
		zap.Int("score", best.Score),
		zap.Int("attempts", best.Attempts))
	return best, nil
}
