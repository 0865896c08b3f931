package builder_test

import (
	"fmt"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/internal/presets"
)

// ExampleBuild compiles the one-dimensional lattice layout and walks into
// the block of the last rank.
func ExampleBuild() {
	l := presets.Line42()
	root, err := builder.Build(l.Geometry, l.Rules)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(root.Names())
	fmt.Println(root.Depth())

	last, _ := root.Child(3)
	fmt.Println(last.Class.Describe())
	// Output:
	// [MPI X VECTOR X halos X EO EO-flattened]
	// 5
	// Q1D size:9 parity:1 nparts:2 bc:OPEN dimension:0
}

// ExampleWithCache shows a second build of the same layout served entirely
// from a shared cache.
func ExampleWithCache() {
	cache := builder.NewCache()
	l := presets.Line42()

	a, _ := builder.Build(l.Geometry, l.Rules, builder.WithCache(cache))
	first := cache.Stats()
	b, _ := builder.Build(l.Geometry, l.Rules, builder.WithCache(cache))
	second := cache.Stats()

	fmt.Println(a == b)
	fmt.Println(second.Misses == first.Misses, second.Entries == first.Entries)
	// Output:
	// true
	// true true
}
