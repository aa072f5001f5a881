package simulator

import (
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// UndoMode selects what Undo does with the history.
type UndoMode string

const (
	// UndoErase drops the last algorithm and replays the rest.
	UndoErase UndoMode = "erase"
	// UndoAppendInverse keeps the last algorithm and appends its inverse.
	UndoAppendInverse UndoMode = "append-inverse"
)

// DefaultScrambleLength is the number of moves in a scramble when no count
// is given.
const DefaultScrambleLength = 22

// Option configures a Simulator.
type Option func(*config)

type config struct {
	logger         logrus.FieldLogger
	rng            *rand.Rand
	undoMode       UndoMode
	scrambleLength int
}

func defaultConfig() *config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &config{
		logger:         discard,
		rng:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		undoMode:       UndoErase,
		scrambleLength: DefaultScrambleLength,
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRand sets the random source used by Scramble.
// Tests pass a seeded source to get reproducible scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed is shorthand for WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithUndoMode selects the undo behavior. The default is UndoErase.
func WithUndoMode(mode UndoMode) Option {
	return func(c *config) {
		c.undoMode = mode
	}
}

// WithScrambleLength sets the move count used by Scramble(0).
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}
