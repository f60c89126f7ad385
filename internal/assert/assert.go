package assert

import (
	"fmt"
	"math"
)

// Finite panics if value is NaN or infinite. Simulation state that turns
// non-finite is a bug, it must never be rendered or propagated silently.
func Finite(value float64, what string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("%s is not finite: %v", what, value))
	}
}
