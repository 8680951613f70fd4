package commands

import (
	"context"
	"strings"
	"time"

	"puntoenvio-gateway/internal/domain/webhook"
	"puntoenvio-gateway/internal/pkg/clock"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"
	"puntoenvio-gateway/internal/usecase/queries"

	"github.com/google/uuid"
)

type WebhookConfigRepository interface {
	Create(ctx context.Context, cfg *webhook.Config, now time.Time) error
	Update(ctx context.Context, cfg *webhook.Config) (int64, error)
	Delete(ctx context.Context, id, keyID uuid.UUID) (int64, error)
}

// WebhookParams is the full desired state of a configuration; updates are
// whole-record replacements.
type WebhookParams struct {
	URL               string
	Secret            string
	Events            []string
	Active            bool
	MaxRetries        int
	RetryDelaySeconds int
}

type WebhookCommands interface {
	Register(ctx context.Context, keyID uuid.UUID, params WebhookParams) (*queries.WebhookConfigView, error)
	Update(ctx context.Context, id, keyID uuid.UUID, params WebhookParams) (*queries.WebhookConfigView, error)
	Unregister(ctx context.Context, id, keyID uuid.UUID) error
}

type webhookUseCaseImpl struct {
	webhookRepo WebhookConfigRepository
	clock       clock.Clock
}

func NewWebhookUseCase(webhookRepo WebhookConfigRepository, clock clock.Clock) WebhookCommands {
	return &webhookUseCaseImpl{
		webhookRepo: webhookRepo,
		clock:       clock,
	}
}

func (w *webhookUseCaseImpl) Register(ctx context.Context, keyID uuid.UUID, params WebhookParams) (*queries.WebhookConfigView, error) {
	cfg, err := buildConfig(uuid.New(), keyID, params)
	if err != nil {
		return nil, err
	}

	now := w.clock.Now()
	if err := w.webhookRepo.Create(ctx, cfg, now); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return configView(cfg, now), nil
}

// Update affects zero rows when the id exists but belongs to another key;
// that case is indistinguishable from an unknown id on purpose.
func (w *webhookUseCaseImpl) Update(ctx context.Context, id, keyID uuid.UUID, params WebhookParams) (*queries.WebhookConfigView, error) {
	cfg, err := buildConfig(id, keyID, params)
	if err != nil {
		return nil, err
	}

	affected, err := w.webhookRepo.Update(ctx, cfg)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, errs.ErrWebhookConfigNotFound
	}
	// CreatedAt is left zero: updates do not re-read the row.
	return configView(cfg, time.Time{}), nil
}

func (w *webhookUseCaseImpl) Unregister(ctx context.Context, id, keyID uuid.UUID) error {
	affected, err := w.webhookRepo.Delete(ctx, id, keyID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return errs.ErrWebhookConfigNotFound
	}
	return nil
}

func buildConfig(id, keyID uuid.UUID, params WebhookParams) (*webhook.Config, error) {
	var missing []string
	if strings.TrimSpace(params.URL) == "" {
		missing = append(missing, "url")
	}
	if strings.TrimSpace(params.Secret) == "" {
		missing = append(missing, "secret")
	}
	if len(params.Events) == 0 {
		missing = append(missing, "events")
	}
	if len(missing) > 0 {
		return nil, errs.Mark(&usecase.ValidationError{Missing: missing}, errs.ErrValidation)
	}

	if err := webhook.ValidateURL(params.URL); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if invalid := webhook.InvalidEvents(params.Events); len(invalid) > 0 {
		return nil, errs.Mark(&usecase.InvalidEventsError{
			Invalid: invalid,
			Valid:   webhook.ValidEventNames(),
		}, errs.ErrValidation)
	}

	events := make([]webhook.EventType, len(params.Events))
	for i, name := range params.Events {
		events[i] = webhook.EventType(name)
	}

	return &webhook.Config{
		ID:         id,
		APIKeyID:   keyID,
		URL:        params.URL,
		Secret:     params.Secret,
		Events:     events,
		Active:     params.Active,
		MaxRetries: params.MaxRetries,
		RetryDelay: time.Duration(params.RetryDelaySeconds) * time.Second,
	}, nil
}

// configView projects a configuration for responses, omitting the secret.
func configView(cfg *webhook.Config, createdAt time.Time) *queries.WebhookConfigView {
	names := make([]string, len(cfg.Events))
	for i, e := range cfg.Events {
		names[i] = string(e)
	}
	return &queries.WebhookConfigView{
		ID:                cfg.ID,
		URL:               cfg.URL,
		Events:            names,
		Active:            cfg.Active,
		MaxRetries:        cfg.MaxRetries,
		RetryDelaySeconds: int(cfg.RetryDelay / time.Second),
		CreatedAt:         createdAt,
	}
}
