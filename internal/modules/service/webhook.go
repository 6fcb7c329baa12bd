package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cafeanalog/coffeecard-api/internal/gateway/mobilepay"
	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// gatewayEvents are the payment events every registration subscribes to.
var gatewayEvents = []string{
	"epayments.payment.captured.v1",
	"epayments.payment.cancelled.v1",
	"epayments.payment.refunded.v1",
}

type WebhookService interface {
	// Register stores a configuration and mirrors it at the gateway. The
	// gateway-issued secret becomes the configuration's signature key.
	Register(ctx context.Context, url string) (*model.WebhookConfiguration, error)
	Disable(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.WebhookConfiguration, error)
	// SyncGateway reports the registrations the gateway currently holds.
	SyncGateway(ctx context.Context) ([]mobilepay.Webhook, error)
}

type webhookService struct {
	configs repo.WebhookConfigurationRepo
	gateway mobilepay.WebhooksClient
	log     *zap.Logger
}

func NewWebhookService(configs repo.WebhookConfigurationRepo, gateway mobilepay.WebhooksClient, log *zap.Logger) WebhookService {
	return &webhookService{configs: configs, gateway: gateway, log: log}
}

func (s *webhookService) Register(ctx context.Context, url string) (*model.WebhookConfiguration, error) {
	resp, err := s.gateway.CreateWebhook(ctx, mobilepay.RegisterRequest{URL: url, Events: gatewayEvents})
	if err != nil {
		return nil, fmt.Errorf("register gateway webhook: %w", err)
	}

	cfg := &model.WebhookConfiguration{
		ID:           uuid.New(),
		URL:          url,
		SignatureKey: resp.Secret,
		Status:       model.WebhookStatusActive,
		LastUpdated:  time.Now().UTC(),
		Events:       datatypes.NewJSONSlice(gatewayEvents),
	}
	if err := s.configs.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *webhookService) Disable(ctx context.Context, id uuid.UUID) error {
	cfg, err := s.configs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWebhookNotFound
		}
		return err
	}
	cfg.Status = model.WebhookStatusDisabled
	cfg.LastUpdated = time.Now().UTC()
	return s.configs.Update(ctx, cfg)
}

func (s *webhookService) List(ctx context.Context) ([]model.WebhookConfiguration, error) {
	return s.configs.List(ctx)
}

func (s *webhookService) SyncGateway(ctx context.Context) ([]mobilepay.Webhook, error) {
	resp, err := s.gateway.GetAllWebhooks(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Webhooks, nil
}
