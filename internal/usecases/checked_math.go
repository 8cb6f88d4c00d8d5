package usecases

import (
	"math"
	"math/big"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// mulDiv computes a*b/div with a widened intermediate so the product cannot
// wrap. The divisor must be validated nonzero by the caller. Fails with
// calculation-overflow when the result does not fit back into uint64.
func mulDiv(a, b, div uint64) (uint64, error) {
	result := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	result.Div(result, new(big.Int).SetUint64(div))
	if result.Cmp(maxUint64) > 0 {
		return 0, domainerrors.ErrCalculationOverflow
	}
	return result.Uint64(), nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, domainerrors.ErrCalculationOverflow
	}
	return a + b, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, domainerrors.ErrCalculationOverflow
	}
	return a - b, nil
}
