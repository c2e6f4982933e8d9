package tiling_test

import (
	"fmt"

	"github.com/katalvlaran/tessella/tiling"
)

// ExampleTile_Color reads the four colors of catalog tile 0 in side
// order (right, top, left, bottom). Two 'a' sides mark it as a corner
// tile: both face the exterior.
func ExampleTile_Color() {
	t := tiling.Tile(0)
	for _, s := range tiling.Sides {
		fmt.Print(t.Color(s))
	}
	fmt.Println()

	// Output: jaar
}

// ExampleRotatedTile_Color rotates tile 0 a quarter turn left: every
// color moves one side counterclockwise, so the side reading starts
// with what was the bottom.
func ExampleRotatedTile_Color() {
	rt := tiling.RotatedTile{Tile: 0, Rotation: tiling.QuarterTurnLeft}
	for _, s := range tiling.Sides {
		fmt.Print(rt.Color(s))
	}
	fmt.Println()

	// Output: rjaa
}

// ExampleEdge_Reversed shows how gluing queries flip a boundary: two
// mosaics sharing a boundary read it in opposite directions.
func ExampleEdge_Reversed() {
	e, err := tiling.ParseEdge("jade")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e.Reversed())
	fmt.Println(e.FlipEq(e.Reversed()))

	// Output:
	// edaj
	// true
}
