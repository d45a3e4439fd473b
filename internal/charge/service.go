package charge

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Urigo/accounter-ledger/internal/batch"
)

// TaxCategoryKey addresses the tax category assigned to a counterparty
// business within one owner's books.
type TaxCategoryKey struct {
	OwnerID    uuid.UUID
	BusinessID uuid.UUID
}

//go:generate mockgen -source=service.go -destination=providers_mock.go -package=charge
type ChargesProvider interface {
	GetChargesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Charge, error)
}

type TransactionsProvider interface {
	GetTransactionsByChargeIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*Transaction, error)
}

type DocumentsProvider interface {
	GetDocumentsByChargeIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*Document, error)
}

type TaxCategoriesProvider interface {
	GetTaxCategoriesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*TaxCategory, error)
	GetTaxCategoriesByBusinessAndOwner(ctx context.Context, keys []TaxCategoryKey) (map[TaxCategoryKey]*TaxCategory, error)
}

type FinancialEntitiesProvider interface {
	GetFinancialEntitiesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*FinancialEntity, error)
}

// Providers bundles every data source the aggregator reads from.
type Providers struct {
	Charges           ChargesProvider
	Transactions      TransactionsProvider
	Documents         DocumentsProvider
	TaxCategories     TaxCategoriesProvider
	FinancialEntities FinancialEntitiesProvider
}

// Bundle is one charge together with everything the ledger builder needs:
// its transactions and documents in chronological order, the owning entity,
// the counterparty business (nil when the transactions carry no business
// reference), and the tax category classifying the charge.
type Bundle struct {
	Charge       *Charge
	Transactions []*Transaction
	Documents    []*Document
	Owner        *FinancialEntity
	Counterparty *FinancialEntity
	TaxCategory  *TaxCategory
}

// Scope holds the batch caches for one top-level request. Concurrent loads
// for different charges coalesce into one fetch per source; nothing in a
// scope outlives the request that created it.
type Scope struct {
	charges       *batch.Loader[uuid.UUID, *Charge]
	transactions  *batch.Loader[uuid.UUID, []*Transaction]
	documents     *batch.Loader[uuid.UUID, []*Document]
	taxCategories *batch.Loader[uuid.UUID, *TaxCategory]
	taxByBusiness *batch.Loader[TaxCategoryKey, *TaxCategory]
	entities      *batch.Loader[uuid.UUID, *FinancialEntity]
}

// Service aggregates charges from the batched providers.
type Service struct {
	providers Providers
}

func NewService(providers Providers) *Service {
	return &Service{providers: providers}
}

// NewScope creates the per-request batch caches. Fetches run on ctx, which
// should span the whole top-level request rather than any single charge
// computation.
func (s *Service) NewScope(ctx context.Context) *Scope {
	return &Scope{
		charges:       batch.NewLoader(ctx, s.providers.Charges.GetChargesByIDs),
		transactions:  batch.NewLoader(ctx, s.providers.Transactions.GetTransactionsByChargeIDs),
		documents:     batch.NewLoader(ctx, s.providers.Documents.GetDocumentsByChargeIDs),
		taxCategories: batch.NewLoader(ctx, s.providers.TaxCategories.GetTaxCategoriesByIDs),
		taxByBusiness: batch.NewLoader(ctx, s.providers.TaxCategories.GetTaxCategoriesByBusinessAndOwner),
		entities:      batch.NewLoader(ctx, s.providers.FinancialEntities.GetFinancialEntitiesByIDs),
	}
}

// Load assembles the bundle for one charge id.
func (s *Service) Load(ctx context.Context, scope *Scope, id uuid.UUID) (*Bundle, error) {
	c, err := scope.charges.Load(ctx, id)
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, fmt.Errorf("charge %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("loading charge %s: %w", id, err)
	}

	txs, err := loadList(ctx, scope.transactions, id)
	if err != nil {
		return nil, fmt.Errorf("loading transactions for charge %s: %w", id, err)
	}

	if len(txs) == 0 {
		return nil, fmt.Errorf("charge %s: %w", id, ErrNoTransactions)
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].EventDate.Before(txs[j].EventDate)
	})

	docs, err := loadList(ctx, scope.documents, id)
	if err != nil {
		return nil, fmt.Errorf("loading documents for charge %s: %w", id, err)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Date.Before(docs[j].Date)
	})

	owner, err := scope.entities.Load(ctx, c.OwnerID)
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, fmt.Errorf("owner entity %s: %w", c.OwnerID, ErrNotFound)
		}

		return nil, fmt.Errorf("loading owner entity %s: %w", c.OwnerID, err)
	}

	bundle := &Bundle{
		Charge:       c,
		Transactions: txs,
		Documents:    docs,
		Owner:        owner,
	}

	businessID := mainBusinessID(txs)
	if businessID != nil {
		counterparty, err := scope.entities.Load(ctx, *businessID)
		if err != nil {
			if errors.Is(err, batch.ErrNotFound) {
				return nil, fmt.Errorf("counterparty entity %s: %w", *businessID, ErrNotFound)
			}

			return nil, fmt.Errorf("loading counterparty entity %s: %w", *businessID, err)
		}

		bundle.Counterparty = counterparty
	}

	taxCategory, err := s.loadTaxCategory(ctx, scope, c, businessID)
	if err != nil {
		return nil, err
	}

	bundle.TaxCategory = taxCategory

	return bundle, nil
}

// loadTaxCategory resolves the charge's classification: an explicit
// override on the charge wins, otherwise the (owner, business) assignment
// applies. Conversion charges carry no classification.
func (s *Service) loadTaxCategory(ctx context.Context, scope *Scope, c *Charge, businessID *uuid.UUID) (*TaxCategory, error) {
	if c.TaxCategoryID != nil {
		tc, err := scope.taxCategories.Load(ctx, *c.TaxCategoryID)
		if err != nil {
			if errors.Is(err, batch.ErrNotFound) {
				return nil, fmt.Errorf("tax category %s: %w", *c.TaxCategoryID, ErrNotFound)
			}

			return nil, fmt.Errorf("loading tax category %s: %w", *c.TaxCategoryID, err)
		}

		return tc, nil
	}

	if c.IsConversion || businessID == nil {
		return nil, nil
	}

	key := TaxCategoryKey{OwnerID: c.OwnerID, BusinessID: *businessID}

	tc, err := scope.taxByBusiness.Load(ctx, key)
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, fmt.Errorf("tax category for business %s: %w", *businessID, ErrNotFound)
		}

		return nil, fmt.Errorf("loading tax category for business %s: %w", *businessID, err)
	}

	return tc, nil
}

// loadList treats a key the source never mentioned as an empty list; only
// real fetch failures propagate.
func loadList[V any](ctx context.Context, l *batch.Loader[uuid.UUID, []V], id uuid.UUID) ([]V, error) {
	list, err := l.Load(ctx, id)
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return list, nil
}

// mainBusinessID picks the counterparty business the charge is against:
// the first transaction that references one.
func mainBusinessID(txs []*Transaction) *uuid.UUID {
	for _, tx := range txs {
		if tx.BusinessID != nil {
			return tx.BusinessID
		}
	}

	return nil
}
