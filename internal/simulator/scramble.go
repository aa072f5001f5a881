package simulator

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/cubesim/internal/notation"
)

var scrambleTurns = []notation.Turn{notation.CW, notation.CCW, notation.Double}

// RandomSequence draws n independent outer face moves from rng.
func RandomSequence(rng *rand.Rand, n int) notation.Sequence {
	seq := make(notation.Sequence, n)
	for i := range seq {
		seq[i] = notation.Move{
			Letter: notation.OuterLetters[rng.IntN(len(notation.OuterLetters))],
			Turn:   scrambleTurns[rng.IntN(len(scrambleTurns))],
		}
	}
	return seq
}
