package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/charge"
	"github.com/Urigo/accounter-ledger/internal/exchange"
)

// RateResolver converts an amount's currency to local currency at a given
// date. Implemented by exchange.Scope.
type RateResolver interface {
	RateFor(ctx context.Context, local, cur charge.Currency, t time.Time) (decimal.Decimal, error)
}

// Accounts are the fixed bookkeeping accounts the builder posts to: the
// input-VAT account and the exchange-rate differences account.
type Accounts struct {
	VAT           *charge.TaxCategory
	ExchangeRates *charge.TaxCategory
}

// Builder derives ledger records from an aggregated charge. It is a pure
// decision tree: the same bundle snapshot always yields the same records,
// save for the freshly minted record ids.
type Builder struct {
	local    charge.Currency
	rates    RateResolver
	accounts Accounts
}

func NewBuilder(local charge.Currency, accounts Accounts) *Builder {
	return &Builder{local: local, accounts: accounts}
}

// WithRates returns a copy of the builder bound to a rate resolver. A bound
// copy is created once per top-level request so that rate lookups share the
// request's batching scope.
func (b *Builder) WithRates(rates RateResolver) *Builder {
	bound := *b
	bound.rates = rates

	return &bound
}

// Build produces the ordered record list for one charge: the financial
// (transaction-side) record, the accounting (document-side) record when a
// document exists, and the exchange-difference record when a foreign
// charge is valued at two different dates. On any failure no records are
// returned at all.
func (b *Builder) Build(ctx context.Context, bundle *charge.Bundle) ([]*Record, error) {
	c := bundle.Charge

	if c.IsConversion {
		return b.buildConversion(ctx, bundle)
	}

	if n := len(bundle.Transactions); n != 1 {
		return nil, commonErrorf("charge %s has %d transactions; expected exactly 1", c.ID, n)
	}

	tx := bundle.Transactions[0]

	doc := relevantDocument(bundle.Documents)
	if doc == nil {
		if bundle.Counterparty == nil || !bundle.Counterparty.NoInvoicesRequired {
			return nil, commonErrorf("charge %s has no document to reconcile against", c.ID)
		}

		rec, err := b.financialRecord(ctx, bundle, tx)
		if err != nil {
			return nil, err
		}

		return []*Record{rec}, nil
	}

	if bundle.Counterparty == nil {
		return nil, commonErrorf("charge %s has no counterparty business", c.ID)
	}

	if bundle.TaxCategory == nil {
		return nil, commonErrorf("charge %s has no tax category", c.ID)
	}

	financial, err := b.financialRecord(ctx, bundle, tx)
	if err != nil {
		return nil, err
	}

	accounting, err := b.accountingRecord(ctx, bundle, tx, doc)
	if err != nil {
		return nil, err
	}

	records := []*Record{financial, accounting}

	txDate := tx.RelevantDate()
	foreign := tx.Currency != b.local || doc.Currency != b.local

	if foreign && !exchange.Day(txDate).Equal(exchange.Day(doc.Date)) {
		exRec, err := b.exchangeRecord(ctx, bundle, doc.Amount.Abs(), doc.Currency, txDate, doc.Date)
		if err != nil {
			return nil, err
		}

		records = append(records, exRec)
	}

	return records, nil
}

// financialRecord books the bank/card movement itself: the counterparty
// business against the charge owner, valued at the transaction's relevant
// date.
func (b *Builder) financialRecord(ctx context.Context, bundle *charge.Bundle, tx *charge.Transaction) (*Record, error) {
	rate, err := b.rates.RateFor(ctx, b.local, tx.Currency, tx.RelevantDate())
	if err != nil {
		return nil, err
	}

	amount := tx.Amount.Abs()
	local := amount.Mul(rate).Round(2)

	rec := &Record{
		ID:          uuid.New(),
		ChargeID:    bundle.Charge.ID,
		InvoiceDate: tx.EventDate,
		ValueDate:   tx.RelevantDate(),
		Reference1:  tx.SourceRef,
		Currency:    tx.Currency,
	}

	business := NamedAccount(bundle.Counterparty)
	owner := NamedAccount(bundle.Owner)

	if tx.Amount.IsNegative() {
		// Money left the owner's account: clear the payable, credit the bank.
		rec.DebitAccount1 = business
		rec.DebitAmount1 = amount
		rec.LocalCurrencyDebitAmount1 = local
		rec.CreditAccount1 = owner
		rec.CreditAmount1 = amount
		rec.LocalCurrencyCreditAmount1 = local
	} else {
		rec.DebitAccount1 = owner
		rec.DebitAmount1 = amount
		rec.LocalCurrencyDebitAmount1 = local
		rec.CreditAccount1 = business
		rec.CreditAmount1 = amount
		rec.LocalCurrencyCreditAmount1 = local
	}

	return rec, nil
}

// accountingRecord books the document against the tax category, splitting
// VAT into slot 2, valued at the document date.
func (b *Builder) accountingRecord(ctx context.Context, bundle *charge.Bundle, tx *charge.Transaction, doc *charge.Document) (*Record, error) {
	rate, err := b.rates.RateFor(ctx, b.local, doc.Currency, doc.Date)
	if err != nil {
		return nil, err
	}

	full := doc.Amount.Abs()
	vat := doc.VATAmount.Abs()
	principal := full.Sub(vat)

	localFull := full.Mul(rate).Round(2)
	localVAT := vat.Mul(rate).Round(2)
	localPrincipal := localFull.Sub(localVAT)

	rec := &Record{
		ID:          uuid.New(),
		ChargeID:    bundle.Charge.ID,
		InvoiceDate: doc.Date,
		ValueDate:   tx.RelevantDate(),
		Reference1:  doc.Serial,
		Currency:    doc.Currency,
	}

	business := NamedAccount(bundle.Counterparty)
	category := TaxCategoryAccount(bundle.TaxCategory)

	if tx.Amount.IsNegative() {
		rec.DebitAccount1 = category
		rec.DebitAmount1 = principal
		rec.LocalCurrencyDebitAmount1 = localPrincipal
		rec.CreditAccount1 = business
		rec.CreditAmount1 = full
		rec.LocalCurrencyCreditAmount1 = localFull

		if vat.IsPositive() {
			rec.DebitAccount2 = TaxCategoryAccount(b.accounts.VAT)
			rec.DebitAmount2 = vat
			rec.LocalCurrencyDebitAmount2 = localVAT
		}
	} else {
		rec.CreditAccount1 = category
		rec.CreditAmount1 = principal
		rec.LocalCurrencyCreditAmount1 = localPrincipal
		rec.DebitAccount1 = business
		rec.DebitAmount1 = full
		rec.LocalCurrencyDebitAmount1 = localFull

		if vat.IsPositive() {
			rec.CreditAccount2 = TaxCategoryAccount(b.accounts.VAT)
			rec.CreditAmount2 = vat
			rec.LocalCurrencyCreditAmount2 = localVAT
		}
	}

	return rec, nil
}

// exchangeRecord books the FX difference between valuing amount at the
// transaction date and at the document date. The debit/credit assignment
// follows chronological precedence alone: document first puts the exchange
// account on the debit side, transaction first inverts the sides. A record
// is emitted for every date mismatch, zero difference included, so that a
// mismatched charge always shows its revaluation row.
func (b *Builder) exchangeRecord(ctx context.Context, bundle *charge.Bundle, amount decimal.Decimal, cur charge.Currency, txDate, docDate time.Time) (*Record, error) {
	txRate, err := b.rates.RateFor(ctx, b.local, cur, txDate)
	if err != nil {
		return nil, err
	}

	docRate, err := b.rates.RateFor(ctx, b.local, cur, docDate)
	if err != nil {
		return nil, err
	}

	diff := amount.Mul(txRate).Round(2).Sub(amount.Mul(docRate).Round(2)).Abs()

	exchangeSide := TaxCategoryAccount(b.accounts.ExchangeRates)

	other := NamedAccount(bundle.Owner)
	if bundle.Counterparty != nil {
		other = NamedAccount(bundle.Counterparty)
	}

	rec := &Record{
		ID:          uuid.New(),
		ChargeID:    bundle.Charge.ID,
		InvoiceDate: exchange.Day(docDate),
		ValueDate:   exchange.Day(txDate),
		Description: ExchangeRecordDescription,
		Currency:    b.local,
	}

	if exchange.Day(docDate).Before(exchange.Day(txDate)) {
		rec.DebitAccount1 = exchangeSide
		rec.CreditAccount1 = other
	} else {
		rec.DebitAccount1 = other
		rec.CreditAccount1 = exchangeSide
	}

	rec.DebitAmount1 = diff
	rec.CreditAmount1 = diff
	rec.LocalCurrencyDebitAmount1 = diff
	rec.LocalCurrencyCreditAmount1 = diff

	return rec, nil
}

// buildConversion handles a currency exchange between the organization's
// own accounts: one record per leg, each in its own currency, plus an
// exchange-difference record when the legs settle on different dates. The
// legs' local equivalents must net to zero or the whole computation fails.
func (b *Builder) buildConversion(ctx context.Context, bundle *charge.Bundle) ([]*Record, error) {
	c := bundle.Charge

	if n := len(bundle.Transactions); n != 2 {
		return nil, commonErrorf("conversion charge %s has %d transactions; expected exactly 2", c.ID, n)
	}

	outgoing, incoming := conversionLegs(bundle.Transactions)
	if outgoing == nil || incoming == nil {
		return nil, commonErrorf("conversion charge %s needs one outgoing and one incoming transaction", c.ID)
	}

	side := NamedAccount(bundle.Owner)
	if bundle.Counterparty != nil {
		side = NamedAccount(bundle.Counterparty)
	}

	balance := decimal.Zero

	var records []*Record

	for _, tx := range []*charge.Transaction{outgoing, incoming} {
		rate, err := b.rates.RateFor(ctx, b.local, tx.Currency, tx.RelevantDate())
		if err != nil {
			return nil, err
		}

		amount := tx.Amount.Abs()
		local := amount.Mul(rate).Round(2)

		balance = balance.Add(tx.Amount.Mul(rate))

		rec := &Record{
			ID:          uuid.New(),
			ChargeID:    c.ID,
			InvoiceDate: tx.EventDate,
			ValueDate:   tx.RelevantDate(),
			Reference1:  tx.SourceRef,
			Currency:    tx.Currency,
		}

		if tx.Amount.IsNegative() {
			rec.CreditAccount1 = side
			rec.CreditAmount1 = amount
			rec.LocalCurrencyCreditAmount1 = local
		} else {
			rec.DebitAccount1 = side
			rec.DebitAmount1 = amount
			rec.LocalCurrencyDebitAmount1 = local
		}

		records = append(records, rec)
	}

	if err := validateConversionBalance(balance); err != nil {
		return nil, err
	}

	outDate := outgoing.RelevantDate()
	inDate := incoming.RelevantDate()

	if !exchange.Day(outDate).Equal(exchange.Day(inDate)) {
		// The incoming leg is re-valued at the outgoing leg's date; the
		// outgoing leg plays the document role in the direction rule.
		exRec, err := b.exchangeRecord(ctx, bundle, incoming.Amount.Abs(), incoming.Currency, inDate, outDate)
		if err != nil {
			return nil, err
		}

		records = append(records, exRec)
	}

	return records, nil
}

// conversionLegs splits the two legs by sign: money out of one account,
// money into the other.
func conversionLegs(txs []*charge.Transaction) (outgoing, incoming *charge.Transaction) {
	for _, tx := range txs {
		if tx.Amount.IsNegative() {
			outgoing = tx
		} else if tx.Amount.IsPositive() {
			incoming = tx
		}
	}

	return outgoing, incoming
}

// relevantDocument picks the document the builder reconciles against.
// Invoice-grade documents win over receipts and proformas; unprocessed
// documents never qualify; ties break toward the latest document date.
func relevantDocument(docs []*charge.Document) *charge.Document {
	rank := func(t charge.DocumentType) int {
		switch t {
		case charge.DocumentInvoice:
			return 4
		case charge.DocumentInvoiceReceipt:
			return 3
		case charge.DocumentReceipt:
			return 2
		case charge.DocumentProforma:
			return 1
		default:
			return 0
		}
	}

	var best *charge.Document

	for _, doc := range docs {
		if rank(doc.Type) == 0 {
			continue
		}

		if best == nil || rank(doc.Type) > rank(best.Type) ||
			(rank(doc.Type) == rank(best.Type) && doc.Date.After(best.Date)) {
			best = doc
		}
	}

	return best
}
