// Package search provides tunable options, result types and sentinel errors
// for the seed search.
package search

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/grille/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNoAttempts is returned when the attempt budget is zero: no candidate
	// was evaluated, so there is no seed to report.
	ErrNoAttempts = errors.New("search: attempt budget is zero")

	// ErrOptionViolation is returned when an invalid argument or Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Source proposes candidate seeds. Int31 must return values in [0, 2^31).
// *math/rand.Rand and *stream.Random both satisfy it.
type Source interface {
	Int31() int32
}

// Candidate describes one evaluated seed, passed to the OnCandidate hook.
type Candidate struct {
	// Attempt is the zero-based index of this evaluation.
	Attempt int
	// Seed and Score of the candidate itself.
	Seed  int64
	Score int
	// Best is the lowest score seen so far, including this candidate.
	Best int
	// Improved reports whether this candidate became the new best.
	Improved bool
}

// Result is the best candidate found by a search.
type Result struct {
	Seed  int64
	Score int
	// Grid is the grille synthesized from Seed.
	Grid *grid.Grid
	// Attempts is the number of candidates actually evaluated.
	Attempts int
}

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a search run.
type Options struct {
	// Source proposes candidate seeds.
	Source Source

	// OnCandidate is called after every evaluation.
	OnCandidate func(Candidate)

	// Logger receives debug entries for every improvement.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no Source (Search falls back to clockSource)
//   - a no-op OnCandidate hook
//   - zap.NewNop() as logger
func DefaultOptions() Options {
	return Options{
		OnCandidate: func(Candidate) {},
		Logger:      zap.NewNop(),
	}
}

// clockSource is the Source used when no option supplies one.
func clockSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// WithSource sets the candidate seed source.
// A nil source is recorded as ErrOptionViolation.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil Source", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithSeed makes the candidate sequence reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = rand.New(rand.NewSource(seed))
	}
}

// WithOnCandidate registers a callback run after each evaluation.
func WithOnCandidate(fn func(Candidate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// WithLogger sets the logger used for progress entries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
