package charge

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrNoTransactions reports a charge carrying no bank or card
	// movements to derive records from.
	ErrNoTransactions = errors.New("has no transactions")
)

// Currency is an ISO-4217 currency code.
type Currency string

const (
	CurrencyILS Currency = "ILS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// DocumentType classifies a supporting document.
type DocumentType string

const (
	DocumentInvoice        DocumentType = "invoice"
	DocumentReceipt        DocumentType = "receipt"
	DocumentProforma       DocumentType = "proforma"
	DocumentInvoiceReceipt DocumentType = "invoice_receipt"
	DocumentUnprocessed    DocumentType = "unprocessed"
)

// Charge groups the financial activity of one business event: one or more
// transactions plus any supporting documents.
type Charge struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	TaxCategoryID     *uuid.UUID
	IsConversion      bool
	TransactionsCount int
	DocumentsCount    int
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Transaction is a single bank or card movement belonging to a charge.
// DebitDate is the settlement date and may differ from EventDate.
type Transaction struct {
	ID         uuid.UUID
	ChargeID   uuid.UUID
	Amount     decimal.Decimal
	Currency   Currency
	EventDate  time.Time
	DebitDate  *time.Time
	BusinessID *uuid.UUID
	SourceRef  string
}

// RelevantDate is the date at which the transaction is valued: the
// settlement date when known, the event date otherwise.
func (t *Transaction) RelevantDate() time.Time {
	if t.DebitDate != nil {
		return *t.DebitDate
	}

	return t.EventDate
}

// Document is an invoice/receipt/proforma evidencing a charge.
type Document struct {
	ID         uuid.UUID
	ChargeID   uuid.UUID
	Type       DocumentType
	Amount     decimal.Decimal
	VATAmount  decimal.Decimal
	Currency   Currency
	Date       time.Time
	CreditorID *uuid.UUID
	DebtorID   *uuid.UUID
	Serial     string
}

// FinancialEntity is a counterparty business or the charge owner.
type FinancialEntity struct {
	ID                 uuid.UUID
	Name               string
	Country            string
	NoInvoicesRequired bool
}

// TaxCategory is a bookkeeping classification node. It acts as one side of
// a ledger record, but it is not a business.
type TaxCategory struct {
	ID       uuid.UUID
	Name     string
	HashCode string // hashavshevet-style external ledger code
	SortCode int
}
