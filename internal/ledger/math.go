package ledger

import (
	"math"

	"github.com/DishankChauhan/ChainImpact/internal/model"
)

// CheckedAdd adds two unsigned amounts, failing instead of wrapping.
func CheckedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, model.ErrAmountOverflow
	}
	return a + b, nil
}

// CheckedSub subtracts b from a, failing instead of wrapping.
func CheckedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, model.ErrAmountOverflow
	}
	return a - b, nil
}
