package price

import (
	"errors"

	"github.com/namehash/price/chrono"
)

var (
	// ErrCurrencyMismatch is returned by arithmetic across prices of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrEmptyPrices is returned when summing an empty list of prices.
	ErrEmptyPrices = errors.New("no prices")
	// ErrInvalidScalar is returned for non-finite or sign-violating scaling factors.
	ErrInvalidScalar = chrono.ErrInvalidScalar
	// ErrInvalidNumber is returned for malformed or non-finite numeric input.
	ErrInvalidNumber = chrono.ErrInvalidNumber
)
