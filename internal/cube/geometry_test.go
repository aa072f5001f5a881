package cube

import (
	"math"
	"testing"

	"github.com/westphae/quaternion"
)

// Geometric cross-check of the ring tables: every sticker gets a position and
// an outward normal in space, the stickers of one layer are spun by a quarter
// turn with a quaternion, and the result must match RotateLayer.

var faceNormals = map[Face]quaternion.Vec3{
	U: {X: 0, Y: 1, Z: 0},
	D: {X: 0, Y: -1, Z: 0},
	F: {X: 0, Y: 0, Z: 1},
	B: {X: 0, Y: 0, Z: -1},
	R: {X: 1, Y: 0, Z: 0},
	L: {X: -1, Y: 0, Z: 0},
}

// stickerKey is a rounded (position, normal) pair.
type stickerKey [6]int

// stickerPosition returns the cubie coordinates of a facelet, doubled and
// centered so every coordinate is an integer in [-(N-1), N-1].
func stickerPosition(size int, face Face, row, col int) quaternion.Vec3 {
	m := size - 1
	var x, y, z int
	switch face {
	case U:
		x, y, z = col, m, row
	case D:
		x, y, z = col, 0, m-row
	case F:
		x, y, z = col, m-row, m
	case B:
		x, y, z = m-col, m-row, 0
	case R:
		x, y, z = m, m-row, m-col
	case L:
		x, y, z = 0, m-row, col
	}
	return quaternion.Vec3{X: float64(2*x - m), Y: float64(2*y - m), Z: float64(2*z - m)}
}

func keyOf(pos, normal quaternion.Vec3) stickerKey {
	r := func(v float64) int { return int(math.Round(v)) }
	return stickerKey{r(pos.X), r(pos.Y), r(pos.Z), r(normal.X), r(normal.Y), r(normal.Z)}
}

func axisComponent(v quaternion.Vec3, axis Axis) float64 {
	switch axis {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

func quarterTurn(axis Axis, sign float64) quaternion.Quaternion {
	angle := sign * math.Pi / 2
	switch axis {
	case X:
		return quaternion.FromEuler(angle, 0, 0)
	case Y:
		return quaternion.FromEuler(0, angle, 0)
	default:
		return quaternion.FromEuler(0, 0, angle)
	}
}

// geometricTurn spins the stickers of one layer and returns the new cube.
func geometricTurn(c *Cube, axis Axis, layer int, turn quaternion.Quaternion) *Cube {
	n := c.Size()
	type slot struct {
		face Face
		row  int
		col  int
	}
	lookup := make(map[stickerKey]slot)
	for _, face := range Faces {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				lookup[keyOf(stickerPosition(n, face, row, col), faceNormals[face])] = slot{face, row, col}
			}
		}
	}

	// Layer 0 sits at the positive end of the axis.
	target := float64(n - 1 - 2*layer)
	out := c.Clone()
	for _, face := range Faces {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				pos := stickerPosition(n, face, row, col)
				if math.Abs(axisComponent(pos, axis)-target) > 1e-9 {
					continue
				}
				dst := lookup[keyOf(pos.Rotate(turn), faceNormals[face].Rotate(turn))]
				out.facelets[dst.face][dst.row*n+dst.col] = c.Facelet(face, row, col)
			}
		}
	}
	return out
}

func TestRingTablesMatchGeometry(t *testing.T) {
	// The handedness of the quaternion rotation is not assumed: clockwise must
	// match one sign and counter-clockwise the other, consistently per axis.
	clockwiseSign := map[Axis]float64{}
	for size := 2; size <= 5; size++ {
		start := scrambled(t, size)
		for _, axis := range Axes {
			for layer := 0; layer < size; layer++ {
				cw := start.Clone()
				turn(t, cw, axis, layer, Clockwise)
				ccw := start.Clone()
				turn(t, ccw, axis, layer, CounterClockwise)

				plus := geometricTurn(start, axis, layer, quarterTurn(axis, 1))
				minus := geometricTurn(start, axis, layer, quarterTurn(axis, -1))

				var sign float64
				switch {
				case cw.Equal(plus) && ccw.Equal(minus):
					sign = 1
				case cw.Equal(minus) && ccw.Equal(plus):
					sign = -1
				default:
					t.Fatalf("size %d: %v layer %d does not match a geometric quarter turn", size, axis, layer)
				}
				if prev, ok := clockwiseSign[axis]; !ok {
					clockwiseSign[axis] = sign
				} else if sign != prev {
					t.Fatalf("size %d: %v layer %d turns the other way round", size, axis, layer)
				}
			}
		}
	}
}
