package usecase

import (
	"context"

	"puntoenvio-gateway/internal/domain/apikey"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/errs"
)

// KeyValidator provides bearer key validation for middleware.
type KeyValidator interface {
	ValidateKey(ctx context.Context, rawKey string, required apikey.Permission) (*apikey.Key, error)
}

type APIKeyRepository interface {
	FindByHash(ctx context.Context, hash string) (*apikey.Key, error)
}

type keyValidatorImpl struct {
	keys  APIKeyRepository
	clock clock.Clock
}

func NewKeyValidator(keys APIKeyRepository, clk clock.Clock) KeyValidator {
	return &keyValidatorImpl{
		keys:  keys,
		clock: clk,
	}
}

// ValidateKey resolves the raw bearer value to a stored key and checks that it
// is active, unexpired and scoped for the required permission. Any failure
// collapses into ErrInvalidAPIKey: callers must not be able to distinguish an
// unknown key from a revoked one.
func (v *keyValidatorImpl) ValidateKey(ctx context.Context, rawKey string, required apikey.Permission) (*apikey.Key, error) {
	key, err := v.keys.FindByHash(ctx, apikey.HashKey(rawKey))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAPIKey)
	}

	if err := key.Authorize(required, v.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAPIKey)
	}

	return key, nil
}
