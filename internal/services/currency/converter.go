package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "trustshield/internal/errors"
)

// Supported currency codes. USD is the internal unit; INR is what users type.
const (
	USD = "USD"
	INR = "INR"
)

// DefaultINRPerUSD is the fixed rate used when none is configured.
const DefaultINRPerUSD = 83

// Converter moves amounts between the display currency and the internal unit.
type Converter struct {
	inrPerUSD decimal.Decimal
}

// NewConverter creates a converter; a non-positive rate falls back to DefaultINRPerUSD.
func NewConverter(inrPerUSD float64) *Converter {
	rate := decimal.NewFromFloat(inrPerUSD)
	if !rate.IsPositive() {
		rate = decimal.NewFromInt(DefaultINRPerUSD)
	}
	return &Converter{inrPerUSD: rate}
}

// Rate returns rupees per internal unit.
func (c *Converter) Rate() decimal.Decimal {
	return c.inrPerUSD
}

// Normalize upper-cases code and defaults an empty code to INR.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return INR
	}
	return code
}

// ToInternal converts amount in the given currency into the internal unit.
func (c *Converter) ToInternal(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	switch Normalize(code) {
	case USD:
		return amount, nil
	case INR:
		return amount.DivRound(c.inrPerUSD, 8), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, code)
	}
}

// ToDisplay converts an internal amount into rupees at two decimals.
func (c *Converter) ToDisplay(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.inrPerUSD).Round(2)
}
