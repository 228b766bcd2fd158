package domain

import "errors"

var (
	ErrRatesUnavailable     = errors.New("exchange rates are unavailable")
	ErrCurrencyNotAvailable = errors.New("currency not available")
	ErrDuplicateFavorite    = errors.New("pair is already in favorites")
	ErrFavoriteNotFound     = errors.New("favorite pair not found")
	ErrInvalidPairKey       = errors.New("invalid pair key")
)

// Messages shown to the user as-is.
const (
	DuplicateFavoriteNotice = "This pair is already in favorites."
	RatesUnavailableNotice  = "Exchange rates are unavailable. Please try again later."
)

// CurrencyNotAvailableError reports a code missing from a rate snapshot.
type CurrencyNotAvailableError struct {
	Code string
}

func (e *CurrencyNotAvailableError) Error() string { return "currency not available: " + e.Code }

func (e *CurrencyNotAvailableError) Unwrap() error { return ErrCurrencyNotAvailable }
