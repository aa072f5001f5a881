package notation

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// layerSet selects which layers of an axis a letter turns.
type layerSet int

const (
	nearLayer  layerSet = iota // layer 0
	farLayer                   // layer N-1
	innerLayer                 // layers 1..N-2
	nearWide                   // layers 0 and 1
	farWide                    // layers N-1 and N-2
	allLayers                  // every layer
)

// letterSpec describes what a letter does before any modifier.
type letterSpec struct {
	axis   cube.Axis
	layers layerSet
	dir    cube.Direction
}

// letters maps each move letter to its axis, layers and base direction.
// Directions are seen from the positive face of the axis, so L, D and B run
// counter-clockwise on their axis.
var letters = map[Letter]letterSpec{
	'R': {cube.X, nearLayer, cube.Clockwise},
	'L': {cube.X, farLayer, cube.CounterClockwise},
	'U': {cube.Y, nearLayer, cube.Clockwise},
	'D': {cube.Y, farLayer, cube.CounterClockwise},
	'F': {cube.Z, nearLayer, cube.Clockwise},
	'B': {cube.Z, farLayer, cube.CounterClockwise},

	// Slices follow L, D and F respectively.
	'M': {cube.X, innerLayer, cube.CounterClockwise},
	'E': {cube.Y, innerLayer, cube.CounterClockwise},
	'S': {cube.Z, innerLayer, cube.Clockwise},

	'r': {cube.X, nearWide, cube.Clockwise},
	'l': {cube.X, farWide, cube.CounterClockwise},
	'u': {cube.Y, nearWide, cube.Clockwise},
	'd': {cube.Y, farWide, cube.CounterClockwise},
	'f': {cube.Z, nearWide, cube.Clockwise},
	'b': {cube.Z, farWide, cube.CounterClockwise},

	// Whole-cube rotations follow R, U and F.
	'x': {cube.X, allLayers, cube.Clockwise},
	'y': {cube.Y, allLayers, cube.Clockwise},
	'z': {cube.Z, allLayers, cube.Clockwise},
}

// OuterLetters are the face letters used for scrambles.
var OuterLetters = []Letter{'R', 'L', 'U', 'D', 'F', 'B'}

// LayerTurn is a single quarter turn of one layer.
type LayerTurn struct {
	Axis  cube.Axis
	Layer int
	Dir   cube.Direction
}

// IsSlice reports whether the letter turns inner layers only.
func (l Letter) IsSlice() bool {
	spec, ok := letters[l]
	return ok && spec.layers == innerLayer
}

// IsRotation reports whether the letter turns the whole cube.
func (l Letter) IsRotation() bool {
	spec, ok := letters[l]
	return ok && spec.layers == allLayers
}

func (s layerSet) resolve(size int) []int {
	switch s {
	case nearLayer:
		return []int{0}
	case farLayer:
		return []int{size - 1}
	case innerLayer:
		out := make([]int, 0, size-2)
		for i := 1; i < size-1; i++ {
			out = append(out, i)
		}
		return out
	case nearWide:
		return []int{0, 1}
	case farWide:
		return []int{size - 1, size - 2}
	default:
		out := make([]int, size)
		for i := range out {
			out[i] = i
		}
		return out
	}
}

// Turns expands a move into quarter turns for a cube of the given size.
// Slice moves need at least one inner layer, so they fail on a 2x2.
func (m Move) Turns(size int) ([]LayerTurn, error) {
	spec, ok := letters[m.Letter]
	if !ok {
		return nil, newParseError(m.Notation(), m.Notation(), 0, "unknown move")
	}
	if size < cube.MinSize {
		return nil, fmt.Errorf("%w: %d", cube.ErrInvalidSize, size)
	}

	layers := spec.layers.resolve(size)
	if len(layers) == 0 {
		err := newParseError(m.Notation(), m.Notation(), 0,
			fmt.Sprintf("slice move needs a cube of at least 3, got %d", size))
		err.Suggestion = ""
		return nil, err
	}

	dir := spec.dir
	if m.Turn == CCW {
		dir = dir.Reverse()
	}

	out := make([]LayerTurn, 0, len(layers)*m.Quarters())
	for q := 0; q < m.Quarters(); q++ {
		for _, layer := range layers {
			out = append(out, LayerTurn{Axis: spec.axis, Layer: layer, Dir: dir})
		}
	}
	return out, nil
}

// Turns expands a whole sequence, validating every move before returning.
// A parse error reports the position of the failing token within the
// sequence's notation string.
func (s Sequence) Turns(size int) ([]LayerTurn, error) {
	var out []LayerTurn
	pos := 0
	for _, m := range s {
		turns, err := m.Turns(size)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Input = s.String()
				pe.Pos = pos
			}
			return nil, err
		}
		out = append(out, turns...)
		pos += len(m.Notation()) + 1
	}
	return out, nil
}
