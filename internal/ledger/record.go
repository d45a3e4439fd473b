package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/charge"
)

// ExchangeRecordDescription labels the supplementary record that books the
// FX gain/loss caused by valuing a charge at two different dates.
const ExchangeRecordDescription = "Exchange ledger record"

// CounterpartyKind discriminates the two account variants.
type CounterpartyKind string

const (
	KindTaxCategory       CounterpartyKind = "tax_category"
	KindNamedCounterparty CounterpartyKind = "named_counterparty"
)

// Counterparty is one side of a ledger record: either an internal tax
// category or an external named business. It is a tagged variant, not an
// interface, so the boundary can serialize it with an explicit type tag.
type Counterparty struct {
	Kind CounterpartyKind
	ID   uuid.UUID
	Name string
}

func TaxCategoryAccount(tc *charge.TaxCategory) *Counterparty {
	return &Counterparty{Kind: KindTaxCategory, ID: tc.ID, Name: tc.Name}
}

func NamedAccount(fe *charge.FinancialEntity) *Counterparty {
	return &Counterparty{Kind: KindNamedCounterparty, ID: fe.ID, Name: fe.Name}
}

// Record is one double-entry bookkeeping row. Slot 1 carries the principal
// amount; slot 2 carries VAT when the document splits it out. Records are
// immutable once the builder returns them.
type Record struct {
	ID          uuid.UUID
	ChargeID    uuid.UUID
	InvoiceDate time.Time
	ValueDate   time.Time
	Description string
	Reference1  string

	DebitAccount1  *Counterparty
	DebitAccount2  *Counterparty
	CreditAccount1 *Counterparty
	CreditAccount2 *Counterparty

	Currency      charge.Currency
	DebitAmount1  decimal.Decimal
	DebitAmount2  decimal.Decimal
	CreditAmount1 decimal.Decimal
	CreditAmount2 decimal.Decimal

	LocalCurrencyDebitAmount1  decimal.Decimal
	LocalCurrencyDebitAmount2  decimal.Decimal
	LocalCurrencyCreditAmount1 decimal.Decimal
	LocalCurrencyCreditAmount2 decimal.Decimal
}

// CommonError is the single error shape crossing the engine boundary.
type CommonError struct {
	Message string
}

func (e *CommonError) Error() string { return e.Message }

func commonErrorf(format string, args ...any) *CommonError {
	return &CommonError{Message: fmt.Sprintf(format, args...)}
}

// Result is the outcome for one charge: either its full record list or an
// error, never both and never a partial list.
type Result struct {
	ChargeID uuid.UUID
	Records  []*Record
	Err      *CommonError
}
