package cube

import "fmt"

// Axis is one of the three rotation axes. Each axis points out of one face:
// X through R, Y through U and Z through F.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Axes lists every axis.
var Axes = [3]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Direction is the sense of a quarter turn, seen from the positive face of
// the axis (R for X, U for Y, F for Z).
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}

// strip selects one row or column of a face for a given layer.
type strip struct {
	face     Face
	row      bool // row when true, column otherwise
	mirrored bool // index is N-1-layer instead of layer
	reversed bool // walk the strip from the far end
}

// ringTables holds, per axis, the four strips a layer turn cycles through.
// A clockwise quarter turn moves the contents of strip i into strip i+1.
var ringTables = [3][4]strip{
	X: {
		{face: F, mirrored: true},
		{face: U, mirrored: true},
		{face: B, reversed: true},
		{face: D, mirrored: true},
	},
	Y: {
		{face: F, row: true},
		{face: L, row: true},
		{face: B, row: true},
		{face: R, row: true},
	},
	Z: {
		{face: U, row: true, mirrored: true},
		{face: R},
		{face: D, row: true, reversed: true},
		{face: L, mirrored: true, reversed: true},
	},
}

// outerFaces holds, per axis, the face turned with layer 0 and the face
// turned with layer N-1.
var outerFaces = [3][2]Face{
	X: {R, L},
	Y: {U, D},
	Z: {F, B},
}

// OuterFace returns the face that turns along with the given outer layer.
// ok is false for inner layers.
func OuterFace(axis Axis, layer, size int) (face Face, ok bool) {
	switch layer {
	case 0:
		return outerFaces[axis][0], true
	case size - 1:
		return outerFaces[axis][1], true
	}
	return 0, false
}

// indices returns the facelet indices of a strip in walk order.
func (s strip) indices(size, layer int) []int {
	line := layer
	if s.mirrored {
		line = size - 1 - layer
	}
	out := make([]int, size)
	for j := 0; j < size; j++ {
		pos := j
		if s.reversed {
			pos = size - 1 - j
		}
		if s.row {
			out[j] = line*size + pos
		} else {
			out[j] = pos*size + line
		}
	}
	return out
}

// RotateLayer turns one layer perpendicular to axis by 90 degrees.
// Layer 0 is the layer of the axis' positive face and layer N-1 the layer of
// the opposite face. Turning an outer layer also turns that face.
func (c *Cube) RotateLayer(axis Axis, layer int, dir Direction) error {
	if axis < X || axis > Z {
		return fmt.Errorf("%w: unknown axis %d", ErrInvalidLayer, int(axis))
	}
	if layer < 0 || layer >= c.size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidLayer, layer, c.size)
	}

	c.cycleRing(axis, layer, dir)

	if layer == 0 {
		c.rotateFace(outerFaces[axis][0], dir)
	}
	if layer == c.size-1 {
		// Seen from the opposite face the same turn runs the other way.
		c.rotateFace(outerFaces[axis][1], dir.Reverse())
	}
	return nil
}

// cycleRing moves the four edge strips of a layer one step around the ring.
func (c *Cube) cycleRing(axis Axis, layer int, dir Direction) {
	table := ringTables[axis]

	var idx [4][]int
	var saved [4][]Color
	for i, s := range table {
		idx[i] = s.indices(c.size, layer)
		saved[i] = make([]Color, c.size)
		for j, p := range idx[i] {
			saved[i][j] = c.facelets[s.face][p]
		}
	}

	for i := range table {
		src, dst := i, (i+1)%4
		if dir == CounterClockwise {
			src, dst = (i+1)%4, i
		}
		face := table[dst].face
		for j, p := range idx[dst] {
			c.facelets[face][p] = saved[src][j]
		}
	}
}

// rotateFace rotates a face's own grid 90 degrees as seen from outside.
func (c *Cube) rotateFace(face Face, dir Direction) {
	n := c.size
	old := make([]Color, n*n)
	copy(old, c.facelets[face])
	f := c.facelets[face]
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if dir == Clockwise {
				f[row*n+col] = old[(n-1-col)*n+row]
			} else {
				f[row*n+col] = old[col*n+(n-1-row)]
			}
		}
	}
}
