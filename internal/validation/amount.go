package validation

import (
	"math"

	apperrors "trustshield/internal/errors"
)

// ValidateAmount rejects amounts that cannot be scored: NaN, infinities,
// zero and negatives.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	return nil
}
