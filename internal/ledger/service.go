package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Urigo/accounter-ledger/internal/charge"
	"github.com/Urigo/accounter-ledger/internal/exchange"
)

//go:generate mockgen -source=service.go -destination=aggregator_mock.go -package=ledger
type Aggregator interface {
	NewScope(ctx context.Context) *charge.Scope
	Load(ctx context.Context, scope *charge.Scope, id uuid.UUID) (*charge.Bundle, error)
}

// RateSource opens a per-request rate resolution scope; the api binary
// binds it to exchange.Service.NewScope.
type RateSource func(ctx context.Context) RateResolver

// Service is the engine boundary: it aggregates charges through a
// per-request scope, runs the builder, and wraps each outcome so that no
// error ever escapes as anything but a Result.
type Service struct {
	aggregator Aggregator
	rates      RateSource
	builder    *Builder
}

func NewService(aggregator Aggregator, rates RateSource, builder *Builder) *Service {
	return &Service{aggregator: aggregator, rates: rates, builder: builder}
}

// ComputeLedger derives the ledger records for a single charge.
func (s *Service) ComputeLedger(ctx context.Context, chargeID uuid.UUID) Result {
	return s.ComputeLedgerMany(ctx, []uuid.UUID{chargeID})[0]
}

// maxConcurrentCharges bounds the fan-out of one batch request.
const maxConcurrentCharges = 10

// ComputeLedgerMany derives ledger records for each charge id, preserving
// input order. Charges compute in parallel over one shared batch scope; a
// failing charge yields an error Result without touching its siblings.
func (s *Service) ComputeLedgerMany(ctx context.Context, chargeIDs []uuid.UUID) []Result {
	scope := s.aggregator.NewScope(ctx)
	builder := s.builder.WithRates(s.rates(ctx))

	results := make([]Result, len(chargeIDs))

	var g errgroup.Group

	g.SetLimit(maxConcurrentCharges)

	for i, id := range chargeIDs {
		g.Go(func() error {
			results[i] = s.computeOne(ctx, builder, scope, id)
			return nil
		})
	}

	// Workers never return errors; failures live in the per-charge results.
	_ = g.Wait()

	return results
}

func (s *Service) computeOne(ctx context.Context, builder *Builder, scope *charge.Scope, id uuid.UUID) Result {
	bundle, err := s.aggregator.Load(ctx, scope, id)
	if err != nil {
		slog.Warn("charge aggregation failed", "charge_id", id, "error", err)

		return Result{ChargeID: id, Err: asCommonError(err)}
	}

	records, err := builder.Build(ctx, bundle)
	if err != nil {
		slog.Warn("ledger generation failed", "charge_id", id, "error", err)

		return Result{ChargeID: id, Err: asCommonError(err)}
	}

	return Result{ChargeID: id, Records: records}
}

// dataAccessMessage is the fixed boundary message for infrastructure
// failures; the detailed cause stays in the logs.
const dataAccessMessage = "failed to load charge data"

// asCommonError translates an internal failure into the boundary error
// shape. Domain failures keep their message; anything else is flattened to
// a fixed message so driver and connection detail never crosses out.
func asCommonError(err error) *CommonError {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce
	}

	var rateErr *exchange.RateError
	if errors.As(err, &rateErr) {
		return &CommonError{Message: rateErr.Error()}
	}

	if errors.Is(err, charge.ErrNotFound) || errors.Is(err, charge.ErrNoTransactions) {
		return &CommonError{Message: err.Error()}
	}

	return &CommonError{Message: dataAccessMessage}
}
