package queries

import (
	"context"

	"puntoenvio-gateway/internal/domain/pricing"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"
)

type QuoteQueries interface {
	ComputeQuote(ctx context.Context, req pricing.QuoteRequest) (*pricing.Quote, error)
}

type quoteQueriesImpl struct {
	engine *pricing.Engine
}

func NewQuoteQueries(engine *pricing.Engine) QuoteQueries {
	return &quoteQueriesImpl{engine: engine}
}

func (q *quoteQueriesImpl) ComputeQuote(ctx context.Context, req pricing.QuoteRequest) (*pricing.Quote, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, errs.Mark(&usecase.ValidationError{Missing: missing}, errs.ErrValidation)
	}

	quote, err := q.engine.Quote(ctx, req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return quote, nil
}
