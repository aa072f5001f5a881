// cubesim - terminal Rubik's Cube simulator for N x N x N cubes.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
