package logspace_test

import (
	"fmt"

	"github.com/katalvlaran/numspace/logspace"
)

// ExampleLogSpaceInclusive climbs three decades in four evenly spaced
// logarithmic steps.
func ExampleLogSpaceInclusive() {
	seq := logspace.LogSpaceInclusive(1.0, 1000.0, 4)
	for v := range seq.Values() {
		fmt.Printf("%.0f ", v)
	}
	fmt.Println()
	// Output: 1 10 100 1000
}
