package notation

import "strings"

// Plain words for each letter, seen facing F with U on top.
// Entries are the clockwise, counter-clockwise and half turn phrases.
var descriptions = map[Letter][3]string{
	'R': {"right face up", "right face down", "right face up x 2"},
	'L': {"left face down", "left face up", "left face down x 2"},
	'U': {"top rotate left", "top rotate right", "top rotate left x 2"},
	'D': {"bottom rotate right", "bottom rotate left", "bottom rotate right x 2"},
	'F': {"front rotate clockwise", "front rotate anti-clockwise", "front rotate x 2"},
	'B': {"back rotate clockwise", "back rotate anti-clockwise", "back rotate x 2"},

	'M': {"middle slice down", "middle slice up", "middle slice x 2"},
	'E': {"equator slice right", "equator slice left", "equator slice x 2"},
	'S': {"standing slice clockwise", "standing slice anti-clockwise", "standing slice x 2"},

	'r': {"right two layers up", "right two layers down", "right two layers up x 2"},
	'l': {"left two layers down", "left two layers up", "left two layers down x 2"},
	'u': {"top two layers rotate left", "top two layers rotate right", "top two layers rotate left x 2"},
	'd': {"bottom two layers rotate right", "bottom two layers rotate left", "bottom two layers rotate right x 2"},
	'f': {"front two layers clockwise", "front two layers anti-clockwise", "front two layers x 2"},
	'b': {"back two layers clockwise", "back two layers anti-clockwise", "back two layers x 2"},

	'x': {"tilt cube so front faces up", "tilt cube so front faces down", "flip cube over"},
	'y': {"turn cube left", "turn cube right", "turn cube around"},
	'z': {"roll cube clockwise", "roll cube anti-clockwise", "roll cube over"},
}

// Describe converts a move into plain words.
func Describe(m Move) string {
	d, ok := descriptions[m.Letter]
	if !ok {
		return m.Notation()
	}
	switch m.Turn {
	case CCW:
		return d[1]
	case Double:
		return d[2]
	default:
		return d[0]
	}
}

// DescribeSequence formats a sequence as comma-separated plain words.
func DescribeSequence(s Sequence) string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
