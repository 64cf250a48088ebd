package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/grille/score"
	"github.com/katalvlaran/grille/search"
	"github.com/katalvlaran/grille/stream"
	"github.com/katalvlaran/grille/synth"
)

// countingSource wraps a Source and counts draws.
type countingSource struct {
	src   search.Source
	calls int
}

func (c *countingSource) Int31() int32 {
	c.calls++
	return c.src.Int31()
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := search.Search(4, 0); !errors.Is(err, search.ErrNoAttempts) {
		t.Errorf("zero attempts: want ErrNoAttempts, got %v", err)
	}
	if _, err := search.Search(4, -1); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("negative attempts: want ErrOptionViolation, got %v", err)
	}
	if _, err := search.Search(0, 10); !errors.Is(err, synth.ErrOrderRange) {
		t.Errorf("order 0: want synth.ErrOrderRange, got %v", err)
	}
	if _, err := search.Search(4, 10, search.WithSource(nil)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("nil source: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_StopsOnPerfect uses order 1, where every grille scores zero, so
// the loop must stop after the first evaluation.
func TestSearch_StopsOnPerfect(t *testing.T) {
	src := &countingSource{src: stream.New(5)}
	var seen []search.Candidate

	res, err := search.Search(1, 1000,
		search.WithSource(src),
		search.WithOnCandidate(func(c search.Candidate) { seen = append(seen, c) }),
	)
	require.NoError(t, err)
	assert.Equal(t, score.Perfect, res.Score)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, src.calls)
	require.Len(t, seen, 1)
	assert.True(t, seen[0].Improved)
	assert.Equal(t, res.Seed, seen[0].Seed)
}

// TestSearch_Monotone records every candidate and checks that the best score
// never increases, that Improved marks exactly the strict improvements, and
// that nothing is evaluated after a perfect score.
func TestSearch_Monotone(t *testing.T) {
	for _, order := range []int{3, 6, 9} {
		src := &countingSource{src: stream.New(int64(order))}
		var seen []search.Candidate

		res, err := search.Search(order, 400,
			search.WithSource(src),
			search.WithOnCandidate(func(c search.Candidate) { seen = append(seen, c) }),
		)
		require.NoError(t, err)
		require.Len(t, seen, res.Attempts)
		require.Equal(t, res.Attempts, src.calls)

		best := int(^uint(0) >> 1)
		for i, c := range seen {
			require.Equal(t, i, c.Attempt)
			require.Equal(t, c.Score < best, c.Improved, "attempt %d", i)
			if c.Improved {
				best = c.Score
			}
			require.Equal(t, best, c.Best, "attempt %d", i)
			if c.Best == score.Perfect {
				require.Equal(t, len(seen)-1, i, "evaluated past a perfect score")
			}
		}
		require.Equal(t, best, res.Score)
		if res.Score != score.Perfect {
			require.Equal(t, 400, res.Attempts)
		}

		// The reported seed reproduces the reported grid and score.
		g, err := synth.Synthesize(order, res.Seed)
		require.NoError(t, err)
		require.True(t, g.Equal(res.Grid))
		require.Equal(t, res.Score, score.Score(g))
	}
}

// TestSearch_Reproducible checks that WithSeed fixes the whole run.
func TestSearch_Reproducible(t *testing.T) {
	a, err := search.Search(8, 150, search.WithSeed(99))
	require.NoError(t, err)
	b, err := search.Search(8, 150, search.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Attempts, b.Attempts)
	assert.True(t, a.Grid.Equal(b.Grid))
}

// TestSearch_Logging asserts one debug entry per improvement and a final summary.
func TestSearch_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	improvements := 0

	res, err := search.Search(5, 200,
		search.WithSeed(3),
		search.WithLogger(zap.New(core)),
		search.WithOnCandidate(func(c search.Candidate) {
			if c.Improved {
				improvements++
			}
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, improvements, logs.FilterMessage("improved candidate").Len())
	done := logs.FilterMessage("search finished").All()
	require.Len(t, done, 1)
	assert.Equal(t, res.Seed, done[0].ContextMap()["seed"])
	assert.Equal(t, int64(res.Attempts), done[0].ContextMap()["attempts"])
}

// TestSearch_DefaultSource covers the clock-seeded fallback: DefaultOptions
// leaves Source unset and Search supplies one only when no option did.
func TestSearch_DefaultSource(t *testing.T) {
	assert.Nil(t, search.DefaultOptions().Source)

	res, err := search.Search(4, 10)
	require.NoError(t, err)
	assert.NoError(t, synth.ValidateSeed(res.Seed))
	assert.NotNil(t, res.Grid)

	src := &countingSource{src: stream.New(7)}
	_, err = search.Search(4, 10, search.WithSource(src))
	require.NoError(t, err)
	assert.Positive(t, src.calls)
}
