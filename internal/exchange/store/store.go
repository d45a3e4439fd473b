package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/exchange"
)

// Store reads and writes the date-keyed exchange rate table.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetRatesByDates(ctx context.Context, dates []time.Time) (map[time.Time]*exchange.Rates, error) {
	placeholders := make([]string, len(dates))
	args := make([]any, len(dates))

	for i, d := range dates {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = exchange.Day(d)
	}

	query := `
		SELECT exchange_date, usd, eur, gbp
		FROM exchange_rates
		WHERE exchange_date IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exchange rates: %w", err)
	}
	defer rows.Close()

	rates := make(map[time.Time]*exchange.Rates, len(dates))

	for rows.Next() {
		var r exchange.Rates

		var usd, eur, gbp sql.NullString

		if err := rows.Scan(&r.Date, &usd, &eur, &gbp); err != nil {
			return nil, fmt.Errorf("scanning exchange rates: %w", err)
		}

		if r.USD, err = nullRate(usd); err != nil {
			return nil, err
		}

		if r.EUR, err = nullRate(eur); err != nil {
			return nil, err
		}

		if r.GBP, err = nullRate(gbp); err != nil {
			return nil, err
		}

		r.Date = exchange.Day(r.Date)
		rates[r.Date] = &r
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exchange rate rows: %w", err)
	}

	return rates, nil
}

// UpsertRates writes one day's published rates; NULL columns mean the
// currency did not trade that day.
func (s *Store) UpsertRates(ctx context.Context, rates *exchange.Rates) error {
	query := `
		INSERT INTO exchange_rates (exchange_date, usd, eur, gbp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (exchange_date) DO UPDATE SET usd = EXCLUDED.usd, eur = EXCLUDED.eur, gbp = EXCLUDED.gbp
	`

	_, err := s.db.ExecContext(ctx, query,
		exchange.Day(rates.Date),
		rateArg(rates.USD),
		rateArg(rates.EUR),
		rateArg(rates.GBP),
	)
	if err != nil {
		return fmt.Errorf("upserting exchange rates: %w", err)
	}

	return nil
}

func nullRate(v sql.NullString) (*decimal.Decimal, error) {
	if !v.Valid {
		return nil, nil
	}

	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, fmt.Errorf("parsing rate %q: %w", v.String, err)
	}

	return &d, nil
}

func rateArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return d.String()
}
