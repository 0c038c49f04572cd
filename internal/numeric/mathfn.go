package numeric

import "math"

// mathPow evaluates a^b at float64 precision. Transcendental/irrational
// exponentiation has no arbitrary-precision path in this tower; results
// are reduced back into the tower at the caller's configured precision.
func mathPow(a, b float64) float64 {
	return math.Pow(a, b)
}
