package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-ledger/internal/charge"
)

// Store implements the batched charge-side providers over Postgres.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// inClause renders "$1, $2, ..." for n arguments starting at offset 1.
func inClause(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}

	return strings.Join(ps, ", ")
}

func idArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return args
}

func scanCharge(s scanner) (*charge.Charge, error) {
	var c charge.Charge

	var taxCategoryID *uuid.UUID

	if err := s.Scan(
		&c.ID, &c.OwnerID, &taxCategoryID, &c.IsConversion,
		&c.TransactionsCount, &c.DocumentsCount, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.TaxCategoryID = taxCategoryID

	return &c, nil
}

func (s *Store) GetChargesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*charge.Charge, error) {
	query := `
		SELECT c.id, c.owner_id, c.tax_category_id, c.is_conversion,
			(SELECT COUNT(*) FROM transactions t WHERE t.charge_id = c.id),
			(SELECT COUNT(*) FROM documents d WHERE d.charge_id = c.id),
			c.created_at, c.updated_at
		FROM charges c
		WHERE c.id IN (` + inClause(len(ids)) + `)`

	rows, err := s.db.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("querying charges: %w", err)
	}
	defer rows.Close()

	charges := make(map[uuid.UUID]*charge.Charge, len(ids))

	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning charge: %w", err)
		}

		charges[c.ID] = c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating charge rows: %w", err)
	}

	return charges, nil
}

func scanTransaction(s scanner) (*charge.Transaction, error) {
	var tx charge.Transaction

	var amount string

	var currency string

	var debitDate sql.NullTime

	var businessID *uuid.UUID

	var sourceRef sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.ChargeID, &amount, &currency, &tx.EventDate,
		&debitDate, &businessID, &sourceRef,
	); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	tx.Amount = d
	tx.Currency = charge.Currency(currency)
	tx.BusinessID = businessID
	tx.SourceRef = sourceRef.String

	if debitDate.Valid {
		t := debitDate.Time
		tx.DebitDate = &t
	}

	return &tx, nil
}

func (s *Store) GetTransactionsByChargeIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*charge.Transaction, error) {
	query := `
		SELECT t.id, t.charge_id, t.amount, t.currency, t.event_date,
			t.debit_date, t.business_id, t.source_reference
		FROM transactions t
		WHERE t.charge_id IN (` + inClause(len(ids)) + `)
		ORDER BY t.event_date ASC`

	rows, err := s.db.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	// Requested charges with no rows still get an entry, so the loader can
	// tell "no transactions" apart from "unknown charge".
	txs := make(map[uuid.UUID][]*charge.Transaction, len(ids))
	for _, id := range ids {
		txs[id] = nil
	}

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs[tx.ChargeID] = append(txs[tx.ChargeID], tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func scanDocument(s scanner) (*charge.Document, error) {
	var doc charge.Document

	var docType, amount, vat, currency string

	var creditorID, debtorID *uuid.UUID

	var serial sql.NullString

	if err := s.Scan(
		&doc.ID, &doc.ChargeID, &docType, &amount, &vat, &currency,
		&doc.Date, &creditorID, &debtorID, &serial,
	); err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	vatAmount, err := decimal.NewFromString(vat)
	if err != nil {
		return nil, fmt.Errorf("parsing vat amount %q: %w", vat, err)
	}

	doc.Type = charge.DocumentType(docType)
	doc.Amount = total
	doc.VATAmount = vatAmount
	doc.Currency = charge.Currency(currency)
	doc.CreditorID = creditorID
	doc.DebtorID = debtorID
	doc.Serial = serial.String

	return &doc, nil
}

func (s *Store) GetDocumentsByChargeIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*charge.Document, error) {
	query := `
		SELECT d.id, d.charge_id, d.type, d.total_amount, COALESCE(d.vat_amount, 0), d.currency,
			d.date, d.creditor_id, d.debtor_id, d.serial_number
		FROM documents d
		WHERE d.charge_id IN (` + inClause(len(ids)) + `)
		ORDER BY d.date ASC`

	rows, err := s.db.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := make(map[uuid.UUID][]*charge.Document, len(ids))
	for _, id := range ids {
		docs[id] = nil
	}

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		docs[doc.ChargeID] = append(docs[doc.ChargeID], doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating document rows: %w", err)
	}

	return docs, nil
}

func scanTaxCategory(s scanner) (*charge.TaxCategory, error) {
	var tc charge.TaxCategory

	var hashCode sql.NullString

	var sortCode sql.NullInt64

	if err := s.Scan(&tc.ID, &tc.Name, &hashCode, &sortCode); err != nil {
		return nil, err
	}

	tc.HashCode = hashCode.String
	tc.SortCode = int(sortCode.Int64)

	return &tc, nil
}

func (s *Store) GetTaxCategoriesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*charge.TaxCategory, error) {
	query := `
		SELECT tc.id, tc.name, tc.hashavshevet_name, tc.sort_code
		FROM tax_categories tc
		WHERE tc.id IN (` + inClause(len(ids)) + `)`

	rows, err := s.db.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("querying tax categories: %w", err)
	}
	defer rows.Close()

	categories := make(map[uuid.UUID]*charge.TaxCategory, len(ids))

	for rows.Next() {
		tc, err := scanTaxCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tax category: %w", err)
		}

		categories[tc.ID] = tc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tax category rows: %w", err)
	}

	return categories, nil
}

func (s *Store) GetTaxCategoriesByBusinessAndOwner(ctx context.Context, keys []charge.TaxCategoryKey) (map[charge.TaxCategoryKey]*charge.TaxCategory, error) {
	// Pairwise match: (owner, business) tuples arrive as parallel arrays.
	query := `
		SELECT m.owner_id, m.business_id, tc.id, tc.name, tc.hashavshevet_name, tc.sort_code
		FROM business_tax_category_matches m
		JOIN tax_categories tc ON tc.id = m.tax_category_id
		WHERE (m.owner_id, m.business_id) IN (`

	args := make([]any, 0, len(keys)*2)
	tuples := make([]string, len(keys))

	for i, key := range keys {
		tuples[i] = fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)

		args = append(args, key.OwnerID, key.BusinessID)
	}

	query += strings.Join(tuples, ", ") + ")"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tax category matches: %w", err)
	}
	defer rows.Close()

	matches := make(map[charge.TaxCategoryKey]*charge.TaxCategory, len(keys))

	for rows.Next() {
		var key charge.TaxCategoryKey

		var tc charge.TaxCategory

		var hashCode sql.NullString

		var sortCode sql.NullInt64

		if err := rows.Scan(&key.OwnerID, &key.BusinessID, &tc.ID, &tc.Name, &hashCode, &sortCode); err != nil {
			return nil, fmt.Errorf("scanning tax category match: %w", err)
		}

		tc.HashCode = hashCode.String
		tc.SortCode = int(sortCode.Int64)
		matches[key] = &tc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tax category match rows: %w", err)
	}

	return matches, nil
}

func (s *Store) GetFinancialEntitiesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*charge.FinancialEntity, error) {
	query := `
		SELECT fe.id, fe.name, COALESCE(fe.country, ''), COALESCE(fe.no_invoices_required, FALSE)
		FROM financial_entities fe
		WHERE fe.id IN (` + inClause(len(ids)) + `)`

	rows, err := s.db.QueryContext(ctx, query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("querying financial entities: %w", err)
	}
	defer rows.Close()

	entities := make(map[uuid.UUID]*charge.FinancialEntity, len(ids))

	for rows.Next() {
		var fe charge.FinancialEntity

		if err := rows.Scan(&fe.ID, &fe.Name, &fe.Country, &fe.NoInvoicesRequired); err != nil {
			return nil, fmt.Errorf("scanning financial entity: %w", err)
		}

		entities[fe.ID] = &fe
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating financial entity rows: %w", err)
	}

	return entities, nil
}
