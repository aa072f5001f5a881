package notation

// normalizeQuarters maps a quarter turn count onto a Turn.
// -3 -> CW, -2 -> Double, -1 -> CCW, 1 -> CW, 2 -> Double, 3 -> CCW.
// ok is false for a multiple of four, which is no move at all.
func normalizeQuarters(q int) (Turn, bool) {
	q = ((q % 4) + 4) % 4
	switch q {
	case 1:
		return CW, true
	case 2:
		return Double, true
	case 3:
		return CCW, true
	}
	return 0, false
}

func quarters(t Turn) int {
	switch t {
	case CCW:
		return -1
	case Double:
		return 2
	}
	return 1
}

// Simplify merges runs of the same letter and drops moves that cancel:
// "R R" becomes "R2", "R R'" disappears and "U R2 R2 U" becomes "U2".
// The simplified sequence has the same effect on any cube.
func (s Sequence) Simplify() Sequence {
	out := make(Sequence, 0, len(s))
	for _, m := range s {
		if n := len(out); n > 0 && out[n-1].Letter == m.Letter {
			turn, ok := normalizeQuarters(quarters(out[n-1].Turn) + quarters(m.Turn))
			if ok {
				out[n-1].Turn = turn
			} else {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// QuarterTurnCount returns the length of the sequence in quarter turns,
// counting a half turn as two.
func (s Sequence) QuarterTurnCount() int {
	total := 0
	for _, m := range s {
		total += m.Quarters()
	}
	return total
}
