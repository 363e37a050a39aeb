package nn

import "math/rand"

// Uniform draws a value from U(-bound, bound).
func Uniform(rng *rand.Rand, bound float64) float64 {
	return (rng.Float64()*2.0 - 1.0) * bound
}
