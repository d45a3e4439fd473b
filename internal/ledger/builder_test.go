package ledger_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urigo/accounter-ledger/internal/charge"
	"github.com/Urigo/accounter-ledger/internal/exchange"
	"github.com/Urigo/accounter-ledger/internal/ledger"
)

// stubRates resolves rates from a fixed currency|date table, failing like
// the real resolver for anything not listed.
type stubRates struct {
	table map[string]decimal.Decimal
}

func (s *stubRates) RateFor(_ context.Context, local, cur charge.Currency, t time.Time) (decimal.Decimal, error) {
	if cur == local {
		return decimal.NewFromInt(1), nil
	}

	key := fmt.Sprintf("%s|%s", cur, exchange.Day(t).Format(time.DateOnly))

	rate, ok := s.table[key]
	if !ok {
		return decimal.Decimal{}, &exchange.RateError{Currency: cur, Date: exchange.Day(t)}
	}

	return rate, nil
}

type fixture struct {
	owner       *charge.FinancialEntity
	business    *charge.FinancialEntity
	taxCategory *charge.TaxCategory
	vatAccount  *charge.TaxCategory
	exchAccount *charge.TaxCategory
}

func newFixture() *fixture {
	return &fixture{
		owner:       &charge.FinancialEntity{ID: uuid.New(), Name: "Owner Ltd", Country: "Israel"},
		business:    &charge.FinancialEntity{ID: uuid.New(), Name: "Supplier GmbH", Country: "Germany"},
		taxCategory: &charge.TaxCategory{ID: uuid.New(), Name: "Software Services"},
		vatAccount:  &charge.TaxCategory{ID: uuid.New(), Name: "VAT"},
		exchAccount: &charge.TaxCategory{ID: uuid.New(), Name: "Exchange Rates"},
	}
}

func (f *fixture) builder(rates ledger.RateResolver) *ledger.Builder {
	return ledger.NewBuilder(charge.CurrencyILS, ledger.Accounts{
		VAT:           f.vatAccount,
		ExchangeRates: f.exchAccount,
	}).WithRates(rates)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) bundle(c *charge.Charge, txs []*charge.Transaction, docs []*charge.Document) *charge.Bundle {
	return &charge.Bundle{
		Charge:       c,
		Transactions: txs,
		Documents:    docs,
		Owner:        f.owner,
		Counterparty: f.business,
		TaxCategory:  f.taxCategory,
	}
}

func TestBuilder_LocalChargeWithDocument(t *testing.T) {
	f := newFixture()
	b := f.builder(&stubRates{})

	chargeID := uuid.New()
	eventDate := day(2023, 10, 27)

	bundle := f.bundle(
		&charge.Charge{ID: chargeID, OwnerID: f.owner.ID},
		[]*charge.Transaction{{
			ID:         uuid.New(),
			ChargeID:   chargeID,
			Amount:     dec("-1170"),
			Currency:   charge.CurrencyILS,
			EventDate:  eventDate,
			BusinessID: &f.business.ID,
			SourceRef:  "bank-417",
		}},
		[]*charge.Document{{
			ID:        uuid.New(),
			ChargeID:  chargeID,
			Type:      charge.DocumentInvoice,
			Amount:    dec("1170"),
			VATAmount: dec("170"),
			Currency:  charge.CurrencyILS,
			Date:      eventDate,
			Serial:    "INV-88",
		}},
	)

	records, err := b.Build(context.Background(), bundle)
	require.NoError(t, err)
	require.Len(t, records, 2)

	financial := records[0]
	assert.Equal(t, f.business.ID, financial.DebitAccount1.ID)
	assert.Equal(t, f.owner.ID, financial.CreditAccount1.ID)
	assert.True(t, financial.DebitAmount1.Equal(dec("1170")))
	assert.True(t, financial.LocalCurrencyDebitAmount1.Equal(dec("1170")))

	accounting := records[1]
	assert.Equal(t, ledger.KindTaxCategory, accounting.DebitAccount1.Kind)
	assert.Equal(t, f.taxCategory.ID, accounting.DebitAccount1.ID)
	assert.True(t, accounting.DebitAmount1.Equal(dec("1000")), "principal in slot 1")
	require.NotNil(t, accounting.DebitAccount2)
	assert.Equal(t, f.vatAccount.ID, accounting.DebitAccount2.ID)
	assert.True(t, accounting.DebitAmount2.Equal(dec("170")), "VAT in slot 2")
	assert.Equal(t, f.business.ID, accounting.CreditAccount1.ID)
	assert.True(t, accounting.CreditAmount1.Equal(dec("1170")))
	assert.Equal(t, "INV-88", accounting.Reference1)
}

func TestBuilder_NoInvoicesRequiredBusiness(t *testing.T) {
	tests := []struct {
		name     string
		currency charge.Currency
		rates    map[string]decimal.Decimal
	}{
		{
			name:     "LocalCurrency",
			currency: charge.CurrencyILS,
		},
		{
			name:     "ForeignCurrency",
			currency: charge.CurrencyUSD,
			rates:    map[string]decimal.Decimal{"USD|2023-10-27": dec("4.05")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.business.NoInvoicesRequired = true
			b := f.builder(&stubRates{table: tt.rates})

			chargeID := uuid.New()

			bundle := f.bundle(
				&charge.Charge{ID: chargeID, OwnerID: f.owner.ID},
				[]*charge.Transaction{{
					ID:         uuid.New(),
					ChargeID:   chargeID,
					Amount:     dec("-250"),
					Currency:   tt.currency,
					EventDate:  day(2023, 10, 27),
					BusinessID: &f.business.ID,
				}},
				nil,
			)
			bundle.TaxCategory = nil

			records, err := b.Build(context.Background(), bundle)
			require.NoError(t, err)
			assert.Len(t, records, 1)
		})
	}
}

func TestBuilder_ForeignChargeConsistentDates(t *testing.T) {
	f := newFixture()
	b := f.builder(&stubRates{table: map[string]decimal.Decimal{
		"USD|2023-10-27": dec("4.05"),
	}})

	chargeID := uuid.New()
	date := day(2023, 10, 27)

	bundle := f.bundle(
		&charge.Charge{ID: chargeID, OwnerID: f.owner.ID},
		[]*charge.Transaction{{
			ID:         uuid.New(),
			ChargeID:   chargeID,
			Amount:     dec("-100"),
			Currency:   charge.CurrencyUSD,
			EventDate:  date,
			BusinessID: &f.business.ID,
		}},
		[]*charge.Document{{
			ID:       uuid.New(),
			ChargeID: chargeID,
			Type:     charge.DocumentInvoice,
			Amount:   dec("100"),
			Currency: charge.CurrencyUSD,
			Date:     date,
		}},
	)

	records, err := b.Build(context.Background(), bundle)
	require.NoError(t, err)
	require.Len(t, records, 2, "consistent dates produce no exchange record")

	// Round-trip: local = foreign x rate at the common date.
	for _, rec := range records {
		if rec.DebitAccount1 != nil {
			assert.True(t, rec.LocalCurrencyDebitAmount1.Equal(rec.DebitAmount1.Mul(dec("4.05")).Round(2)))
		}

		if rec.CreditAccount1 != nil {
			assert.True(t, rec.LocalCurrencyCreditAmount1.Equal(rec.CreditAmount1.Mul(dec("4.05")).Round(2)))
		}
	}
}

func TestBuilder_ForeignChargeDateMismatch(t *testing.T) {
	f := newFixture()

	chargeID := uuid.New()
	docDate := day(2023, 10, 20)
	txDate := day(2023, 10, 27)

	rates := &stubRates{table: map[string]decimal.Decimal{
		"USD|2023-10-20": dec("4.00"),
		"USD|2023-10-27": dec("4.10"),
	}}

	newBundle := func(eventDate, documentDate time.Time) *charge.Bundle {
		return newFixtureBundle(f, chargeID, eventDate, documentDate)
	}

	t.Run("DocumentFirst", func(t *testing.T) {
		b := f.builder(rates)

		records, err := b.Build(context.Background(), newBundle(txDate, docDate))
		require.NoError(t, err)
		require.Len(t, records, 3)

		exRec := records[2]
		assert.Equal(t, ledger.ExchangeRecordDescription, exRec.Description)
		assert.Equal(t, f.exchAccount.ID, exRec.DebitAccount1.ID, "document first puts the exchange account on the debit side")
		assert.Equal(t, f.business.ID, exRec.CreditAccount1.ID)
		// 100 x 4.10 - 100 x 4.00
		assert.True(t, exRec.DebitAmount1.Equal(dec("10")))
	})

	t.Run("TransactionFirst", func(t *testing.T) {
		b := f.builder(rates)

		// Same charge, sides of the date mismatch swapped.
		records, err := b.Build(context.Background(), newBundle(docDate, txDate))
		require.NoError(t, err)
		require.Len(t, records, 3)

		exRec := records[2]
		assert.Equal(t, ledger.ExchangeRecordDescription, exRec.Description)
		assert.Equal(t, f.business.ID, exRec.DebitAccount1.ID)
		assert.Equal(t, f.exchAccount.ID, exRec.CreditAccount1.ID, "transaction first inverts the sides")
	})
}

// newFixtureBundle builds a foreign-currency charge whose transaction falls
// on eventDate and whose invoice falls on documentDate.
func newFixtureBundle(f *fixture, chargeID uuid.UUID, eventDate, documentDate time.Time) *charge.Bundle {
	return f.bundle(
		&charge.Charge{ID: chargeID, OwnerID: f.owner.ID},
		[]*charge.Transaction{{
			ID:         uuid.New(),
			ChargeID:   chargeID,
			Amount:     dec("-100"),
			Currency:   charge.CurrencyUSD,
			EventDate:  eventDate,
			BusinessID: &f.business.ID,
		}},
		[]*charge.Document{{
			ID:       uuid.New(),
			ChargeID: chargeID,
			Type:     charge.DocumentInvoice,
			Amount:   dec("100"),
			Currency: charge.CurrencyUSD,
			Date:     documentDate,
		}},
	)
}

func TestBuilder_SettlementDateDrivesValuation(t *testing.T) {
	f := newFixture()
	b := f.builder(&stubRates{table: map[string]decimal.Decimal{
		"USD|2023-10-25": dec("4.00"),
		"USD|2023-10-27": dec("4.20"),
	}})

	chargeID := uuid.New()
	eventDate := day(2023, 10, 25)
	debitDate := day(2023, 10, 27)

	bundle := f.bundle(
		&charge.Charge{ID: chargeID, OwnerID: f.owner.ID},
		[]*charge.Transaction{{
			ID:         uuid.New(),
			ChargeID:   chargeID,
			Amount:     dec("-100"),
			Currency:   charge.CurrencyUSD,
			EventDate:  eventDate,
			DebitDate:  &debitDate,
			BusinessID: &f.business.ID,
		}},
		[]*charge.Document{{
			ID:       uuid.New(),
			ChargeID: chargeID,
			Type:     charge.DocumentInvoice,
			Amount:   dec("100"),
			Currency: charge.CurrencyUSD,
			Date:     eventDate,
		}},
	)

	records, err := b.Build(context.Background(), bundle)
	require.NoError(t, err)
	require.Len(t, records, 3, "settlement date differing from document date forces an exchange record")

	assert.True(t, records[0].LocalCurrencyDebitAmount1.Equal(dec("420")), "financial record valued at the settlement date")
	assert.True(t, records[2].DebitAmount1.Equal(dec("20")))
}

func TestBuilder_MissingRateFailsCharge(t *testing.T) {
	f := newFixture()
	b := f.builder(&stubRates{})

	chargeID := uuid.New()
	date := day(2023, 10, 27)

	bundle := newFixtureBundle(f, chargeID, date, date)

	records, err := b.Build(context.Background(), bundle)
	require.Error(t, err)
	assert.Nil(t, records, "no partial records on failure")

	var rateErr *exchange.RateError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, charge.CurrencyUSD, rateErr.Currency)
}

func TestBuilder_Conversion(t *testing.T) {
	f := newFixture()

	chargeID := uuid.New()
	date := day(2023, 10, 27)

	newConversion := func(usdAmount string) *charge.Bundle {
		bundle := f.bundle(
			&charge.Charge{ID: chargeID, OwnerID: f.owner.ID, IsConversion: true},
			[]*charge.Transaction{
				{
					ID:        uuid.New(),
					ChargeID:  chargeID,
					Amount:    dec("-405"),
					Currency:  charge.CurrencyILS,
					EventDate: date,
				},
				{
					ID:        uuid.New(),
					ChargeID:  chargeID,
					Amount:    dec(usdAmount),
					Currency:  charge.CurrencyUSD,
					EventDate: date,
				},
			},
			nil,
		)
		bundle.Counterparty = nil
		bundle.TaxCategory = nil

		return bundle
	}

	t.Run("Balanced", func(t *testing.T) {
		b := f.builder(&stubRates{table: map[string]decimal.Decimal{
			"USD|2023-10-27": dec("4.05"),
		}})

		records, err := b.Build(context.Background(), newConversion("100"))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, f.owner.ID, records[0].CreditAccount1.ID)
		assert.True(t, records[0].LocalCurrencyCreditAmount1.Equal(dec("405")))
		assert.Equal(t, f.owner.ID, records[1].DebitAccount1.ID)
		assert.True(t, records[1].LocalCurrencyDebitAmount1.Equal(dec("405")))
	})

	t.Run("Unbalanced", func(t *testing.T) {
		b := f.builder(&stubRates{table: map[string]decimal.Decimal{
			"USD|2023-10-27": dec("4.05"),
		}})

		records, err := b.Build(context.Background(), newConversion("90"))
		require.Error(t, err)
		assert.Nil(t, records)
		assert.Contains(t, err.Error(), ledger.BalanceErrorMessage)
	})

	t.Run("DifferingDatesAppendExchangeRecord", func(t *testing.T) {
		b := f.builder(&stubRates{table: map[string]decimal.Decimal{
			"USD|2023-10-27": dec("4.05"),
			"USD|2023-10-30": dec("4.05"),
		}})

		bundle := f.bundle(
			&charge.Charge{ID: chargeID, OwnerID: f.owner.ID, IsConversion: true},
			[]*charge.Transaction{
				{
					ID:        uuid.New(),
					ChargeID:  chargeID,
					Amount:    dec("-405"),
					Currency:  charge.CurrencyILS,
					EventDate: day(2023, 10, 27),
				},
				{
					ID:        uuid.New(),
					ChargeID:  chargeID,
					Amount:    dec("100"),
					Currency:  charge.CurrencyUSD,
					EventDate: day(2023, 10, 30),
				},
			},
			nil,
		)
		bundle.Counterparty = nil
		bundle.TaxCategory = nil

		records, err := b.Build(context.Background(), bundle)
		require.NoError(t, err)
		require.Len(t, records, 3)

		exRec := records[2]
		assert.Equal(t, ledger.ExchangeRecordDescription, exRec.Description)
		// Same rate on both dates: the revaluation row is present but nets to zero.
		assert.True(t, exRec.DebitAmount1.IsZero())
	})
}

func TestBuilder_Idempotence(t *testing.T) {
	f := newFixture()
	b := f.builder(&stubRates{table: map[string]decimal.Decimal{
		"USD|2023-10-20": dec("4.00"),
		"USD|2023-10-27": dec("4.10"),
	}})

	bundle := newFixtureBundle(f, uuid.New(), day(2023, 10, 27), day(2023, 10, 20))

	first, err := b.Build(context.Background(), bundle)
	require.NoError(t, err)

	second, err := b.Build(context.Background(), bundle)
	require.NoError(t, err)

	require.Len(t, second, len(first))

	for i := range first {
		got, want := second[i], first[i]

		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.InvoiceDate, got.InvoiceDate)
		assert.Equal(t, want.ValueDate, got.ValueDate)
		assert.Equal(t, want.DebitAccount1, got.DebitAccount1)
		assert.Equal(t, want.CreditAccount1, got.CreditAccount1)
		assert.True(t, want.DebitAmount1.Equal(got.DebitAmount1))
		assert.True(t, want.CreditAmount1.Equal(got.CreditAmount1))
		assert.True(t, want.LocalCurrencyDebitAmount1.Equal(got.LocalCurrencyDebitAmount1))
		assert.True(t, want.LocalCurrencyCreditAmount1.Equal(got.LocalCurrencyCreditAmount1))
	}
}

func TestBuilder_DocumentSelection(t *testing.T) {
	f := newFixture()
	b := f.builder(&stubRates{})

	chargeID := uuid.New()
	date := day(2023, 10, 27)

	bundle := f.bundle(
		&charge.Charge{ID: chargeID, OwnerID: f.owner.ID},
		[]*charge.Transaction{{
			ID:         uuid.New(),
			ChargeID:   chargeID,
			Amount:     dec("-100"),
			Currency:   charge.CurrencyILS,
			EventDate:  date,
			BusinessID: &f.business.ID,
		}},
		[]*charge.Document{
			{ID: uuid.New(), ChargeID: chargeID, Type: charge.DocumentProforma, Amount: dec("90"), Currency: charge.CurrencyILS, Date: date, Serial: "PRO-1"},
			{ID: uuid.New(), ChargeID: chargeID, Type: charge.DocumentInvoice, Amount: dec("100"), Currency: charge.CurrencyILS, Date: date, Serial: "INV-1"},
			{ID: uuid.New(), ChargeID: chargeID, Type: charge.DocumentUnprocessed, Amount: dec("999"), Currency: charge.CurrencyILS, Date: date},
		},
	)

	records, err := b.Build(context.Background(), bundle)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "INV-1", records[1].Reference1, "invoice outranks proforma; unprocessed is ignored")
}

func TestBuilder_MissingDocument(t *testing.T) {
	f := newFixture()
	b := f.builder(&stubRates{})

	chargeID := uuid.New()

	bundle := f.bundle(
		&charge.Charge{ID: chargeID, OwnerID: f.owner.ID},
		[]*charge.Transaction{{
			ID:         uuid.New(),
			ChargeID:   chargeID,
			Amount:     dec("-100"),
			Currency:   charge.CurrencyILS,
			EventDate:  day(2023, 10, 27),
			BusinessID: &f.business.ID,
		}},
		nil,
	)

	records, err := b.Build(context.Background(), bundle)
	require.Error(t, err, "a business that requires invoices cannot settle without a document")
	assert.Nil(t, records)
}
