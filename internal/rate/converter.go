package rate

import (
	"errors"
	"fxwidget/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	InvalidAmountMessage   = "Please enter a valid number."
	HistoricalErrorMessage = "Error fetching historical data. Please try again later."
)

// Convert renders amount of base in target using the snapshot cross-rate,
// e.g. "90.00 EUR".
func Convert(amount, base, target string, snap domain.Snapshot) (string, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}

	if base == target {
		return format(value, target), nil
	}

	baseRate, err := snap.Lookup(base)
	if err != nil {
		return "", err
	}
	targetRate, err := snap.Lookup(target)
	if err != nil {
		return "", err
	}

	converted := value.Mul(decimal.NewFromFloat(targetRate)).Div(decimal.NewFromFloat(baseRate))
	return format(converted, target), nil
}

func format(value decimal.Decimal, code string) string {
	return value.StringFixed(2) + " " + code
}

// DisplayMessage is the text the conversion display shows for err.
func DisplayMessage(err error) string {
	var notAvailable *domain.CurrencyNotAvailableError
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return InvalidAmountMessage
	case errors.Is(err, domain.ErrRatesUnavailable):
		return domain.RatesUnavailableNotice
	case errors.As(err, &notAvailable):
		return "Currency " + notAvailable.Code + " is not available."
	default:
		return err.Error()
	}
}
