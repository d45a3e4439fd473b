// Package rates parses bank-issued exchange rate files into rows for the
// rate table. One line per calendar date; an empty cell means the currency
// did not trade that day and stays unset rather than defaulting.
package rates

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/encoding"
	"github.com/Urigo/accounter-ledger/internal/exchange"
)

// dateLayouts covers the formats seen across bank exports.
var dateLayouts = []string{time.DateOnly, "02/01/2006", "02.01.2006"}

// Parse reads a rates CSV with a "date,usd,eur,gbp" header, decoding the
// input charset first.
func Parse(r io.Reader) ([]*exchange.Rates, error) {
	utf8Reader, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}

	reader := csv.NewReader(utf8Reader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []*exchange.Rates

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

type columns struct {
	date, usd, eur, gbp int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{date: -1, usd: -1, eur: -1, gbp: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date", "exchange_date":
			cols.date = i
		case "usd":
			cols.usd = i
		case "eur":
			cols.eur = i
		case "gbp":
			cols.gbp = i
		}
	}

	if cols.date == -1 {
		return cols, fmt.Errorf("header %v has no date column", header)
	}

	return cols, nil
}

func parseRow(record []string, cols columns) (*exchange.Rates, error) {
	date, err := parseDate(record[cols.date])
	if err != nil {
		return nil, err
	}

	row := &exchange.Rates{Date: date}

	if row.USD, err = parseRate(record, cols.usd); err != nil {
		return nil, err
	}

	if row.EUR, err = parseRate(record, cols.eur); err != nil {
		return nil, err
	}

	if row.GBP, err = parseRate(record, cols.gbp); err != nil {
		return nil, err
	}

	return row, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return exchange.Day(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func parseRate(record []string, col int) (*decimal.Decimal, error) {
	if col == -1 || col >= len(record) {
		return nil, nil
	}

	s := strings.TrimSpace(record[col])
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing rate %q: %w", s, err)
	}

	if !d.IsPositive() {
		return nil, fmt.Errorf("rate %q is not positive", s)
	}

	return &d, nil
}
