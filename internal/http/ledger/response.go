package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/ledger"
)

// accountResponse is the tagged-union JSON form of a record's debit/credit
// account: either a tax category or a named counterparty, distinguished by
// the type tag.
type accountResponse struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type recordResponse struct {
	ID          string `json:"id"`
	ChargeID    string `json:"chargeId"`
	InvoiceDate string `json:"invoiceDate"`
	ValueDate   string `json:"valueDate"`
	Description string `json:"description,omitempty"`
	Reference1  string `json:"reference1,omitempty"`
	Currency    string `json:"currency"`

	DebitAccount1  *accountResponse `json:"debitAccount1,omitempty"`
	DebitAccount2  *accountResponse `json:"debitAccount2,omitempty"`
	CreditAccount1 *accountResponse `json:"creditAccount1,omitempty"`
	CreditAccount2 *accountResponse `json:"creditAccount2,omitempty"`

	DebitAmount1  *string `json:"debitAmount1,omitempty"`
	DebitAmount2  *string `json:"debitAmount2,omitempty"`
	CreditAmount1 *string `json:"creditAmount1,omitempty"`
	CreditAmount2 *string `json:"creditAmount2,omitempty"`

	LocalCurrencyDebitAmount1  *string `json:"localCurrencyDebitAmount1,omitempty"`
	LocalCurrencyDebitAmount2  *string `json:"localCurrencyDebitAmount2,omitempty"`
	LocalCurrencyCreditAmount1 *string `json:"localCurrencyCreditAmount1,omitempty"`
	LocalCurrencyCreditAmount2 *string `json:"localCurrencyCreditAmount2,omitempty"`
}

// resultResponse is the union consumed by the boundary: records on success,
// a common error otherwise.
type resultResponse struct {
	Kind     string           `json:"kind"`
	ChargeID string           `json:"chargeId"`
	Records  []recordResponse `json:"records,omitempty"`
	Error    *errorResponse   `json:"error,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func toResultResponse(res ledger.Result) resultResponse {
	if res.Err != nil {
		return resultResponse{
			Kind:     "error",
			ChargeID: res.ChargeID.String(),
			Error:    &errorResponse{Message: res.Err.Message},
		}
	}

	records := make([]recordResponse, len(res.Records))
	for i, rec := range res.Records {
		records[i] = toRecordResponse(rec)
	}

	return resultResponse{
		Kind:     "records",
		ChargeID: res.ChargeID.String(),
		Records:  records,
	}
}

func toRecordResponse(rec *ledger.Record) recordResponse {
	return recordResponse{
		ID:          rec.ID.String(),
		ChargeID:    rec.ChargeID.String(),
		InvoiceDate: rec.InvoiceDate.Format(time.DateOnly),
		ValueDate:   rec.ValueDate.Format(time.DateOnly),
		Description: rec.Description,
		Reference1:  rec.Reference1,
		Currency:    string(rec.Currency),

		DebitAccount1:  toAccountResponse(rec.DebitAccount1),
		DebitAccount2:  toAccountResponse(rec.DebitAccount2),
		CreditAccount1: toAccountResponse(rec.CreditAccount1),
		CreditAccount2: toAccountResponse(rec.CreditAccount2),

		DebitAmount1:  amountFor(rec.DebitAccount1, rec.DebitAmount1),
		DebitAmount2:  amountFor(rec.DebitAccount2, rec.DebitAmount2),
		CreditAmount1: amountFor(rec.CreditAccount1, rec.CreditAmount1),
		CreditAmount2: amountFor(rec.CreditAccount2, rec.CreditAmount2),

		LocalCurrencyDebitAmount1:  amountFor(rec.DebitAccount1, rec.LocalCurrencyDebitAmount1),
		LocalCurrencyDebitAmount2:  amountFor(rec.DebitAccount2, rec.LocalCurrencyDebitAmount2),
		LocalCurrencyCreditAmount1: amountFor(rec.CreditAccount1, rec.LocalCurrencyCreditAmount1),
		LocalCurrencyCreditAmount2: amountFor(rec.CreditAccount2, rec.LocalCurrencyCreditAmount2),
	}
}

func toAccountResponse(cp *ledger.Counterparty) *accountResponse {
	if cp == nil {
		return nil
	}

	return &accountResponse{
		Type: string(cp.Kind),
		ID:   cp.ID.String(),
		Name: cp.Name,
	}
}

// amountFor renders the amount only when its slot has an account; empty
// slots stay out of the payload entirely.
func amountFor(cp *ledger.Counterparty, amount decimal.Decimal) *string {
	if cp == nil {
		return nil
	}

	s := amount.StringFixed(2)

	return &s
}
