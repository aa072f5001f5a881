package cube

import (
	"errors"
	"testing"
)

// turn applies a single quarter turn and fails the test on error.
func turn(t *testing.T, c *Cube, axis Axis, layer int, dir Direction) {
	t.Helper()
	if err := c.RotateLayer(axis, layer, dir); err != nil {
		t.Fatalf("RotateLayer(%v, %d, %v): %v", axis, layer, dir, err)
	}
}

// scrambled returns a cube of the given size with a fixed mix of turns on
// every axis and layer.
func scrambled(t *testing.T, size int) *Cube {
	t.Helper()
	c := MustNew(size)
	for i := 0; i < 5*size; i++ {
		axis := Axes[i%3]
		layer := (i * 7) % size
		dir := Clockwise
		if i%4 == 1 {
			dir = CounterClockwise
		}
		turn(t, c, axis, layer, dir)
	}
	return c
}

func TestNewCubeIsSolved(t *testing.T) {
	for size := 2; size <= 7; size++ {
		c := MustNew(size)
		if !c.IsSolved() {
			t.Errorf("New(%d) should be solved", size)
		}
		for _, face := range Faces {
			cells := c.Face(face)
			if len(cells) != size*size {
				t.Errorf("size %d face %v: got %d cells, want %d", size, face, len(cells), size*size)
			}
			for _, color := range cells {
				if color != face.SolvedColor() {
					t.Errorf("size %d face %v: found %v", size, face, color)
					break
				}
			}
		}
		counts := c.ColorCounts()
		if len(counts) != NumFaces {
			t.Errorf("size %d: got %d distinct colors, want %d", size, len(counts), NumFaces)
		}
	}
}

func TestNewRejectsSmallSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d): got %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestSolvedFaceletString(t *testing.T) {
	c := MustNew(2)
	if got := c.FaceletString(); got != "WWWWYYYYGGGGBBBBRRRROOOO" {
		t.Errorf("got %s", got)
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	c := MustNew(3)
	turn(t, c, X, 0, Clockwise) // R
	if c.IsSolved() {
		t.Error("Cube should not be solved after R")
	}
}

func TestRotateLayerRejectsBadLayer(t *testing.T) {
	c := MustNew(3)
	before := c.Clone()
	for _, layer := range []int{-1, 3, 10} {
		if err := c.RotateLayer(Y, layer, Clockwise); !errors.Is(err, ErrInvalidLayer) {
			t.Errorf("layer %d: got %v, want ErrInvalidLayer", layer, err)
		}
	}
	if err := c.RotateLayer(Axis(7), 0, Clockwise); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("bad axis: got %v, want ErrInvalidLayer", err)
	}
	if !c.Equal(before) {
		t.Error("Rejected rotations should not mutate the cube")
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for size := 2; size <= 5; size++ {
		start := scrambled(t, size)
		for _, axis := range Axes {
			for layer := 0; layer < size; layer++ {
				for _, dir := range []Direction{Clockwise, CounterClockwise} {
					c := start.Clone()
					for i := 0; i < 4; i++ {
						turn(t, c, axis, layer, dir)
					}
					if !c.Equal(start) {
						t.Errorf("size %d: %v layer %d %v x 4 should be identity", size, axis, layer, dir)
						t.Log(c.String())
					}
				}
			}
		}
	}
}

func TestTurnThenReverseIsIdentity(t *testing.T) {
	for size := 2; size <= 5; size++ {
		start := scrambled(t, size)
		for _, axis := range Axes {
			for layer := 0; layer < size; layer++ {
				c := start.Clone()
				turn(t, c, axis, layer, Clockwise)
				if c.Equal(start) {
					t.Errorf("size %d: %v layer %d should change a scrambled cube", size, axis, layer)
				}
				turn(t, c, axis, layer, CounterClockwise)
				if !c.Equal(start) {
					t.Errorf("size %d: %v layer %d cw then ccw should be identity", size, axis, layer)
				}
			}
		}
	}
}

func TestColorCountsInvariant(t *testing.T) {
	for size := 2; size <= 6; size++ {
		c := scrambled(t, size)
		counts := c.ColorCounts()
		for _, color := range Colors {
			if counts[color] != size*size {
				t.Errorf("size %d: color %v has %d facelets, want %d", size, color, counts[color], size*size)
			}
		}
	}
}

func TestInnerLayerLeavesOuterFaces(t *testing.T) {
	c := MustNew(4)
	turn(t, c, X, 1, Clockwise)
	for _, face := range []Face{R, L} {
		for _, color := range c.Face(face) {
			if color != face.SolvedColor() {
				t.Errorf("Inner X layer should not touch face %v", face)
				break
			}
		}
	}
}

func TestKnownStates(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		turns func(t *testing.T, c *Cube)
		want  string
	}{
		{
			name: "R U",
			size: 3,
			turns: func(t *testing.T, c *Cube) {
				turn(t, c, X, 0, Clockwise)
				turn(t, c, Y, 0, Clockwise)
			},
			want: "WWWWWWGGGYYBYYBYYBRRRGGYGGYOOOWBBWBBWBBRRRRRRGGYOOOOOO",
		},
		{
			name: "mixed layers",
			size: 3,
			turns: func(t *testing.T, c *Cube) {
				turn(t, c, X, 0, Clockwise)
				turn(t, c, Y, 1, CounterClockwise)
				turn(t, c, Z, 2, Clockwise)
			},
			want: "OWOWWGWWGYYBYYBRYRGGYOOOGGYBRBBRBWRWRRWGGWRRGYOOYBBBOO",
		},
		{
			name: "4x4 inner X",
			size: 4,
			turns: func(t *testing.T, c *Cube) {
				turn(t, c, X, 1, Clockwise)
			},
			want: "WWGWWWGWWWGWWWGWYYBYYYBYYYBYYYBYGGYGGGYGGGYGGGYGBWBBBWBBBWBBBWBBRRRRRRRRRRRRRRRROOOOOOOOOOOOOOOO",
		},
		{
			name: "4x4 inner Z",
			size: 4,
			turns: func(t *testing.T, c *Cube) {
				turn(t, c, Z, 2, CounterClockwise)
			},
			want: "WWWWRRRRWWWWWWWWYYYYYYYYOOOOYYYYGGGGGGGGGGGGGGGGBBBBBBBBBBBBBBBBRRYRRRYRRRYRRRYROWOOOWOOOWOOOWOO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNew(tt.size)
			tt.turns(t, c)
			if got := c.FaceletString(); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
				t.Log(c.String())
			}
		})
	}
}

func TestFaceletStringRoundTrip(t *testing.T) {
	c := scrambled(t, 4)
	back, err := FromFaceletString(4, c.FaceletString())
	if err != nil {
		t.Fatalf("FromFaceletString: %v", err)
	}
	if !back.Equal(c) {
		t.Error("Round trip through facelet string should preserve the cube")
	}

	if _, err := FromFaceletString(2, "WWWW"); !errors.Is(err, ErrInvalidString) {
		t.Errorf("short string: got %v, want ErrInvalidString", err)
	}
	if _, err := FromFaceletString(2, "XWWWYYYYGGGGBBBBRRRROOOO"); !errors.Is(err, ErrInvalidString) {
		t.Errorf("bad color: got %v, want ErrInvalidString", err)
	}
}

func TestEqualIsPositional(t *testing.T) {
	a := MustNew(3)
	b := MustNew(3)
	if !a.Equal(b) {
		t.Error("Two solved cubes should be equal")
	}

	// A whole-cube rotation keeps the cube solved in the physical sense but
	// moves every face, so the cubes are no longer equal.
	for layer := 0; layer < 3; layer++ {
		turn(t, b, Y, layer, Clockwise)
	}
	if a.Equal(b) {
		t.Error("Rotated cube should not compare equal")
	}
	if a.Equal(MustNew(4)) {
		t.Error("Cubes of different sizes should not compare equal")
	}
	if a.Equal(nil) {
		t.Error("Cube should not equal nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := MustNew(3)
	clone := c.Clone()
	turn(t, clone, Z, 0, Clockwise)
	if !c.IsSolved() {
		t.Error("Turning a clone should not affect the original")
	}
}

func TestResetChangesSize(t *testing.T) {
	c := scrambled(t, 3)
	if err := c.Reset(5); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if c.Size() != 5 || !c.IsSolved() {
		t.Errorf("Reset(5) gave size %d solved=%v", c.Size(), c.IsSolved())
	}
	if err := c.Reset(1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Reset(1): got %v, want ErrInvalidSize", err)
	}
}

func TestOuterFace(t *testing.T) {
	if face, ok := OuterFace(X, 0, 3); !ok || face != R {
		t.Errorf("X layer 0: got %v %v", face, ok)
	}
	if face, ok := OuterFace(Z, 2, 3); !ok || face != B {
		t.Errorf("Z layer 2: got %v %v", face, ok)
	}
	if _, ok := OuterFace(Y, 1, 3); ok {
		t.Error("Y layer 1 should be an inner layer")
	}
}
