// Package cube provides an N x N x N Rubik's cube model.
package cube

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the cube package.
var (
	ErrInvalidSize   = errors.New("cube: invalid size")
	ErrInvalidLayer  = errors.New("cube: invalid layer")
	ErrInvalidString = errors.New("cube: invalid facelet string")
)

// MinSize is the smallest supported cube.
const MinSize = 2

// NumFaces is the number of faces on a cube.
const NumFaces = 6

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// Colors lists every color in face order.
var Colors = [NumFaces]Color{White, Yellow, Green, Blue, Red, Orange}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ParseColor converts a single color letter into a Color.
func ParseColor(r rune) (Color, bool) {
	switch r {
	case 'W':
		return White, true
	case 'Y':
		return Yellow, true
	case 'G':
		return Green, true
	case 'B':
		return Blue, true
	case 'R':
		return Red, true
	case 'O':
		return Orange, true
	default:
		return 0, false
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Faces lists every face in storage order.
var Faces = [NumFaces]Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Cube represents an N x N x N Rubik's cube.
//
// Each face is stored row-major as seen from outside the cube, laid out as
// the usual net:
//
//	      U
//	   L  F  R  B
//	      D
//
// so U has the back edge on its first row and D has the front edge on its
// first row. For a 3x3 the indices of one face are:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Cube struct {
	size     int
	facelets [NumFaces][]Color
}

// New creates a solved cube of the given size.
func New(size int) (*Cube, error) {
	c := &Cube{}
	if err := c.Reset(size); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on an invalid size.
func MustNew(size int) *Cube {
	c, err := New(size)
	if err != nil {
		panic(err)
	}
	return c
}

// Reset reinitializes the cube to the solved state for the given size.
func (c *Cube) Reset(size int) error {
	if size < MinSize {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}
	c.size = size
	for _, face := range Faces {
		cells := make([]Color, size*size)
		color := face.SolvedColor()
		for i := range cells {
			cells[i] = color
		}
		c.facelets[face] = cells
	}
	return nil
}

// Size returns the side length N.
func (c *Cube) Size() int {
	return c.size
}

// Facelet returns the color at the given face, row and column.
func (c *Cube) Facelet(face Face, row, col int) Color {
	return c.facelets[face][row*c.size+col]
}

// Face returns a copy of a face's facelets in row-major order.
func (c *Cube) Face(face Face) []Color {
	out := make([]Color, len(c.facelets[face]))
	copy(out, c.facelets[face])
	return out
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{size: c.size}
	for f := range c.facelets {
		clone.facelets[f] = make([]Color, len(c.facelets[f]))
		copy(clone.facelets[f], c.facelets[f])
	}
	return clone
}

// Equal reports whether both cubes have identical facelets position for
// position. Cubes that only differ by a whole-cube rotation are not equal.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.size != other.size {
		return false
	}
	for f := range c.facelets {
		for i, color := range c.facelets[f] {
			if other.facelets[f][i] != color {
				return false
			}
		}
	}
	return true
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		expected := face.SolvedColor()
		for _, color := range c.facelets[face] {
			if color != expected {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns how many facelets of each color the cube has.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, NumFaces)
	for f := range c.facelets {
		for _, color := range c.facelets[f] {
			counts[color]++
		}
	}
	return counts
}

// FaceletString returns the colors of every facelet, face by face in
// storage order. A solved 2x2 is "WWWWYYYYGGGGBBBBRRRROOOO".
func (c *Cube) FaceletString() string {
	var b strings.Builder
	b.Grow(NumFaces * c.size * c.size)
	for _, face := range Faces {
		for _, color := range c.facelets[face] {
			b.WriteString(color.String())
		}
	}
	return b.String()
}

// FromFaceletString builds a cube from the output of FaceletString.
// The layout is not checked for solvability.
func FromFaceletString(size int, s string) (*Cube, error) {
	c, err := New(size)
	if err != nil {
		return nil, err
	}
	if len(s) != NumFaces*size*size {
		return nil, fmt.Errorf("%w: want %d facelets, got %d", ErrInvalidString, NumFaces*size*size, len(s))
	}
	for i, r := range s {
		color, ok := ParseColor(r)
		if !ok {
			return nil, fmt.Errorf("%w: unknown color %q at %d", ErrInvalidString, r, i)
		}
		c.facelets[i/(size*size)][i%(size*size)] = color
	}
	return c, nil
}

// String returns a text representation of the cube as a net.
func (c *Cube) String() string {
	var b strings.Builder
	n := c.size
	indent := strings.Repeat(" ", n*2)

	writeRow := func(face Face, row int) {
		for col := 0; col < n; col++ {
			b.WriteString(c.Facelet(face, row, col).String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(U, row)
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		for _, face := range []Face{L, F, R, B} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(D, row)
		b.WriteString("\n")
	}
	return b.String()
}
