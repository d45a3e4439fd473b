package exchange

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/charge"
)

var ErrNotFound = errors.New("not found")

// RateError reports a missing conversion rate for a currency on a date.
type RateError struct {
	Currency charge.Currency
	Date     time.Time
}

func (e *RateError) Error() string {
	return fmt.Sprintf("no exchange rate for %s on %s", e.Currency, e.Date.Format(time.DateOnly))
}

// Rates holds the published conversion rates to local currency for one
// date. A nil component means no rate was published for that currency on
// that day (non-trading day); callers must not default it.
type Rates struct {
	Date time.Time
	USD  *decimal.Decimal
	EUR  *decimal.Decimal
	GBP  *decimal.Decimal
}

// For returns the conversion rate to local currency for cur. The local
// currency itself always converts at 1. The second return is false when no
// rate is available for the requested currency on this date.
func (r *Rates) For(local, cur charge.Currency) (decimal.Decimal, bool) {
	if cur == local {
		return decimal.NewFromInt(1), true
	}

	var rate *decimal.Decimal

	switch cur {
	case charge.CurrencyUSD:
		rate = r.USD
	case charge.CurrencyEUR:
		rate = r.EUR
	case charge.CurrencyGBP:
		rate = r.GBP
	}

	if rate == nil {
		return decimal.Decimal{}, false
	}

	return *rate, true
}

// Day normalizes t to midnight UTC so that rates are keyed purely by
// calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
