// Package simulator applies notation algorithms to a cube and keeps the
// session history used for undo, inverse and scramble.
package simulator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
)

// Sentinel errors for the simulator package.
var (
	ErrEmptyHistory     = errors.New("simulator: history is empty")
	ErrInvalidUndoMode  = errors.New("simulator: invalid undo mode")
	ErrInvalidMoveCount = errors.New("simulator: invalid scramble length")
)

// Algorithm is one history entry: the moves of a single input line.
type Algorithm struct {
	Moves    notation.Sequence
	Scramble bool // Produced by Scramble rather than typed
}

// String returns the algorithm in notation form.
func (a Algorithm) String() string {
	return a.Moves.String()
}

// Inverse returns the algorithm that undoes a.
func (a Algorithm) Inverse() Algorithm {
	return Algorithm{Moves: a.Moves.Inverse()}
}

// Simulator owns a cube and the list of algorithms applied to it.
// It is not safe for concurrent use.
type Simulator struct {
	cube    *cube.Cube
	history []Algorithm
	cfg     *config
}

// New creates a simulator with a solved cube of the given size.
func New(size int, opts ...Option) (*Simulator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.undoMode != UndoErase && cfg.undoMode != UndoAppendInverse {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUndoMode, cfg.undoMode)
	}

	c, err := cube.New(size)
	if err != nil {
		return nil, err
	}

	return &Simulator{cube: c, cfg: cfg}, nil
}

// Size returns the side length of the cube.
func (s *Simulator) Size() int {
	return s.cube.Size()
}

// Cube returns a copy of the current cube state.
func (s *Simulator) Cube() *cube.Cube {
	return s.cube.Clone()
}

// History returns the applied algorithms, oldest first.
func (s *Simulator) History() []Algorithm {
	out := make([]Algorithm, len(s.history))
	copy(out, s.history)
	return out
}

// ApplyAlgorithm parses text and applies every move to the cube, recording
// the whole line as one history entry. Nothing changes if any token is
// invalid. Blank input is accepted and not recorded.
func (s *Simulator) ApplyAlgorithm(text string) (Algorithm, error) {
	seq, err := notation.ParseForSize(text, s.Size())
	if err != nil {
		return Algorithm{}, fmt.Errorf("apply %q: %w", strings.TrimSpace(text), err)
	}
	if len(seq) == 0 {
		return Algorithm{}, nil
	}

	alg := Algorithm{Moves: seq}
	if err := s.apply(alg); err != nil {
		panic(fmt.Sprintf("simulator: apply %q: %v", alg, err))
	}

	s.cfg.logger.WithFields(logrus.Fields{
		"moves":       alg.String(),
		"history_len": len(s.history),
		"size":        s.Size(),
	}).Debug("Applied algorithm")

	return alg, nil
}

// apply validates every move of alg against the current size, then turns
// the cube and appends alg to the history.
func (s *Simulator) apply(alg Algorithm) error {
	turns, err := alg.Moves.Turns(s.Size())
	if err != nil {
		return err
	}
	s.turn(turns)
	s.history = append(s.history, alg)
	return nil
}

// turn performs already validated layer turns.
func (s *Simulator) turn(turns []notation.LayerTurn) {
	for _, t := range turns {
		if err := s.cube.RotateLayer(t.Axis, t.Layer, t.Dir); err != nil {
			// The letter table only produces layers inside the cube.
			panic(fmt.Sprintf("simulator: %v", err))
		}
	}
}

// Undo reverts the last algorithm and returns it.
//
// In UndoErase mode the algorithm is dropped and the cube is rebuilt by
// replaying the remaining history from solved. In UndoAppendInverse mode the
// inverse is applied and recorded as a new entry.
func (s *Simulator) Undo() (Algorithm, error) {
	if len(s.history) == 0 {
		return Algorithm{}, ErrEmptyHistory
	}
	last := s.history[len(s.history)-1]

	switch s.cfg.undoMode {
	case UndoAppendInverse:
		if err := s.apply(last.Inverse()); err != nil {
			panic(fmt.Sprintf("simulator: inverse of %q: %v", last, err))
		}
	default:
		s.history = s.history[:len(s.history)-1]
		s.replay()
	}

	s.cfg.logger.WithFields(logrus.Fields{
		"moves":       last.String(),
		"history_len": len(s.history),
		"size":        s.Size(),
		"mode":        string(s.cfg.undoMode),
	}).Debug("Undid algorithm")

	return last, nil
}

// replay rebuilds the cube from solved using the current history.
func (s *Simulator) replay() {
	if err := s.cube.Reset(s.Size()); err != nil {
		panic(fmt.Sprintf("simulator: %v", err))
	}
	for _, alg := range s.history {
		turns, err := alg.Moves.Turns(s.Size())
		if err != nil {
			panic(fmt.Sprintf("simulator: replay %q: %v", alg, err))
		}
		s.turn(turns)
	}
}

// InverseOfLast returns the notation that undoes the last algorithm without
// applying it.
func (s *Simulator) InverseOfLast() (string, error) {
	if len(s.history) == 0 {
		return "", ErrEmptyHistory
	}
	return s.history[len(s.history)-1].Inverse().String(), nil
}

// Reset restores a solved cube of the current size and clears the history.
func (s *Simulator) Reset() {
	size := s.Size()
	s.history = nil
	if err := s.cube.Reset(size); err != nil {
		panic(fmt.Sprintf("simulator: %v", err))
	}
	s.cfg.logger.WithField("size", size).Debug("Reset cube")
}

// Resize replaces the cube with a solved cube of a new size and clears the
// history.
func (s *Simulator) Resize(size int) error {
	if err := s.cube.Reset(size); err != nil {
		return err
	}
	s.history = nil
	s.cfg.logger.WithField("size", size).Debug("Resized cube")
	return nil
}

// Scramble applies moveCount random outer face moves, each with a random
// modifier, and records them as a single algorithm. A moveCount of 0 means
// the configured scramble length (22 unless set with WithScrambleLength),
// so an empty scramble cannot be requested. Negative counts return
// ErrInvalidMoveCount.
func (s *Simulator) Scramble(moveCount int) (Algorithm, error) {
	if moveCount < 0 {
		return Algorithm{}, fmt.Errorf("%w: %d", ErrInvalidMoveCount, moveCount)
	}
	if moveCount == 0 {
		moveCount = s.cfg.scrambleLength
	}

	alg := Algorithm{Moves: RandomSequence(s.cfg.rng, moveCount), Scramble: true}
	if err := s.apply(alg); err != nil {
		panic(fmt.Sprintf("simulator: scramble %q: %v", alg, err))
	}

	s.cfg.logger.WithFields(logrus.Fields{
		"moves":       alg.String(),
		"history_len": len(s.history),
		"size":        s.Size(),
	}).Debug("Scrambled cube")

	return alg, nil
}
