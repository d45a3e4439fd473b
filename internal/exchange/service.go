package exchange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/batch"
	"github.com/Urigo/accounter-ledger/internal/charge"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=exchange
type Repository interface {
	GetRatesByDates(ctx context.Context, dates []time.Time) (map[time.Time]*Rates, error)
}

// Service resolves conversion rates to local currency. Lookups are
// exact-date only: a missing rate is reported, never substituted.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewScope opens the rate caches for one top-level request. Concurrent
// lookups inside a scope coalesce into batched fetches and repeated dates
// are served from the scope's cache; nothing cached in a scope outlives
// the request, so a re-imported rate is visible to the next request.
func (s *Service) NewScope(ctx context.Context) *Scope {
	return &Scope{rates: batch.NewLoader(ctx, s.repo.GetRatesByDates)}
}

// Scope is the per-request rate lookup surface.
type Scope struct {
	rates *batch.Loader[time.Time, *Rates]
}

// RatesByDate returns the rates published for the calendar date of t.
func (sc *Scope) RatesByDate(ctx context.Context, t time.Time) (*Rates, error) {
	day := Day(t)

	rates, err := sc.rates.Load(ctx, day)
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("loading rates for %s: %w", day.Format(time.DateOnly), err)
	}

	return rates, nil
}

// RateFor resolves the conversion rate from cur to local at the calendar
// date of t. Reports a RateError when no rate is published, including when
// the whole date is absent from the rate table.
func (sc *Scope) RateFor(ctx context.Context, local, cur charge.Currency, t time.Time) (decimal.Decimal, error) {
	if cur == local {
		return decimal.NewFromInt(1), nil
	}

	rates, err := sc.RatesByDate(ctx, t)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return decimal.Decimal{}, &RateError{Currency: cur, Date: Day(t)}
		}

		return decimal.Decimal{}, err
	}

	rate, ok := rates.For(local, cur)
	if !ok {
		return decimal.Decimal{}, &RateError{Currency: cur, Date: Day(t)}
	}

	return rate, nil
}
