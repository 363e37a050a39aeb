package nn_test

import "math/rand"

func newRand(seed int64) *rand.Rand {
	//nolint:gosec // deterministic test fixtures
	return rand.New(rand.NewSource(seed))
}
