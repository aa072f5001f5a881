package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// ErrInvalidNotation is the sentinel wrapped by every ParseError.
var ErrInvalidNotation = errors.New("notation: invalid notation")

// letterOrder fixes the order suggestions are searched in.
const letterOrder = "RLUDFBMESrludfbxyz"

var validModifiers = map[string]bool{
	"": true, "'": true, "`": true, "2": true,
	"2'": true, "'2": true, "2`": true, "`2": true,
}

// ParseError reports the first token of an algorithm that could not be used.
type ParseError struct {
	Input      string // Whole algorithm as given
	Token      string // Offending token
	Pos        int    // Rune offset of the token in Input
	Reason     string
	Suggestion string // Closest valid token, empty if none is close
}

func newParseError(input, token string, pos int, reason string) *ParseError {
	return &ParseError{
		Input:      input,
		Token:      token,
		Pos:        pos,
		Reason:     reason,
		Suggestion: suggestMove(token),
	}
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("notation: %s %q at position %d", e.Reason, e.Token, e.Pos)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}

// suggestMove finds the valid token closest to an invalid one. A letter in
// the wrong case wins over any edit distance match.
func suggestMove(token string) string {
	if token == "" {
		return ""
	}
	runes := []rune(token)
	mods := string(runes[1:])

	swapped := SwapCase(string(runes[0]))
	if swapped != string(runes[0]) && strings.Contains(letterOrder, swapped) && validModifiers[mods] {
		return swapped + mods
	}

	// A single character is too short to guess from.
	if len(runes) == 1 || !unicode.IsLetter(runes[0]) {
		return ""
	}

	var candidates []string
	for _, l := range letterOrder {
		for _, suffix := range []string{"", "'", "2"} {
			candidates = append(candidates, string(l)+suffix)
		}
	}
	return Suggest(token, candidates, 1)
}

// Suggest returns the candidate with the smallest edit distance to input,
// provided it is within maxDistance. Ties go to the earlier candidate.
func Suggest(input string, candidates []string, maxDistance int) string {
	best := ""
	bestDist := maxDistance + 1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
