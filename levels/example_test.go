package levels_test

import (
	"fmt"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/internal/presets"
	"github.com/mmesiti/hypercubes/levels"
)

// ExampleAnalyze shows that on a 40-site line only the flattening level
// depends on others: its extent changes with the halo zone and the
// checkerboard colour above it.
func ExampleAnalyze() {
	l := presets.Standard([]int{40}, []int{2}, []int{2}, 1)
	root, err := builder.Build(l.Geometry, l.Rules)
	if err != nil {
		fmt.Println(err)
		return
	}
	deps := levels.Analyze(root)
	fmt.Println(deps)

	order, _ := levels.TopologicalOrder(deps, 3)
	fmt.Println(order)
	// Output:
	// [[] [] [] [] [2 3]]
	// [3 0 1 2 4]
}
