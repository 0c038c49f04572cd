package numeric

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// mulBigFFT multiplies two large big.Int values with bigfft's FFT-based
// multiplier, used by mulInt once both operands cross bigMulThreshold.
func mulBigFFT(a, b *big.Int) *big.Int {
	return bigfft.Mul(a, b)
}
