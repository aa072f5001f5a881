// Package notation parses and formats cube move notation and maps moves onto
// layer turns.
package notation

import (
	"errors"
	"strings"
	"unicode"
)

// Letter is the move letter of a token: a face (R L U D F B), a slice
// (M E S), a wide move (r l u d f b) or a cube rotation (x y z).
type Letter byte

func (l Letter) String() string {
	return string(rune(l))
}

// Turn represents the direction and magnitude of a move.
type Turn int

const (
	CW     Turn = 1  // Clockwise quarter turn
	CCW    Turn = -1 // Counter-clockwise quarter turn
	Double Turn = 2  // Half turn
)

// Move represents a single parsed notation token.
type Move struct {
	Letter Letter
	Turn   Turn
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, M', x2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Letter.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// Quarters returns how many quarter turns the move is made of.
func (m Move) Quarters() int {
	if m.Turn == Double {
		return 2
	}
	return 1
}

// Sequence is an ordered list of moves, i.e. an algorithm.
type Sequence []Move

// String formats the sequence as space-separated notation.
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}

	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Inverse returns the sequence that undoes s: moves in reverse order, each
// one inverted.
func (s Sequence) Inverse() Sequence {
	inv := make(Sequence, len(s))
	for i, m := range s {
		inv[len(s)-1-i] = m.Inverse()
	}
	return inv
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Parse parses a notation string into a sequence.
// Whitespace between tokens is optional, so "RUR'U'" and "R U R' U'" are the
// same algorithm. A token is a letter followed by an optional '2' and an
// optional prime (' or `) in either order. The whole string is validated;
// on error no partial sequence is returned.
func Parse(s string) (Sequence, error) {
	var seq Sequence
	err := scan(s, func(m Move, _ string, _ int) error {
		seq = append(seq, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// ParseForSize parses s like Parse and also checks every move against a cube
// of the given size. Errors point at the token as it appears in s.
func ParseForSize(s string, size int) (Sequence, error) {
	var seq Sequence
	err := scan(s, func(m Move, token string, pos int) error {
		if _, err := m.Turns(size); err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Input = s
				pe.Token = token
				pe.Pos = pos
			}
			return err
		}
		seq = append(seq, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// scan tokenizes s and calls fn with each move, its source text and its rune
// offset. Scanning stops at the first error.
func scan(s string, fn func(m Move, token string, pos int) error) error {
	runes := []rune(s)

	for i := 0; i < len(runes); {
		r := runes[i]
		if unicode.IsSpace(r) {
			i++
			continue
		}

		start := i
		i++
		if isModifier(r) {
			return newParseError(s, string(r), start, "modifier with no move before it")
		}

		var double, prime bool
		for i < len(runes) && isModifier(runes[i]) {
			switch runes[i] {
			case '2':
				if double {
					return newParseError(s, string(runes[start:i+1]), start, "repeated modifier")
				}
				double = true
			default:
				if prime {
					return newParseError(s, string(runes[start:i+1]), start, "repeated modifier")
				}
				prime = true
			}
			i++
		}

		token := string(runes[start:i])
		if r > unicode.MaxASCII {
			return newParseError(s, token, start, "unknown move")
		}
		letter := Letter(r)
		if _, ok := letters[letter]; !ok {
			return newParseError(s, token, start, "unknown move")
		}

		turn := CW
		switch {
		case double:
			turn = Double
		case prime:
			turn = CCW
		}
		if err := fn(Move{Letter: letter, Turn: turn}, token, start); err != nil {
			return err
		}
	}

	return nil
}

// ParseMove parses exactly one token.
func ParseMove(s string) (Move, error) {
	seq, err := Parse(s)
	if err != nil {
		return Move{}, err
	}
	if len(seq) != 1 {
		return Move{}, newParseError(s, strings.TrimSpace(s), 0, "expected a single move")
	}
	return seq[0], nil
}

func isModifier(r rune) bool {
	return r == '2' || r == '\'' || r == '`'
}

// SwapCase swaps the case of every letter. The toggle-case session flag uses
// it so that lower case input selects outer faces.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}
