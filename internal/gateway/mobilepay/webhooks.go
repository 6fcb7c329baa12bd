package mobilepay

import (
	"context"
	"net/http"

	"github.com/cafeanalog/coffeecard-api/internal/config"
	"go.uber.org/zap"
)

// WebhooksClient manages webhook registrations at the gateway.
type WebhooksClient interface {
	CreateWebhook(ctx context.Context, request RegisterRequest) (*RegisterResponse, error)
	GetAllWebhooks(ctx context.Context) (*QueryResponse, error)
}

type webhooksClient struct {
	client
}

func NewWebhooksClient(cfg *config.Config, log *zap.Logger) WebhooksClient {
	return &webhooksClient{client: newClient(cfg, log)}
}

func (c *webhooksClient) CreateWebhook(ctx context.Context, request RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/webhooks/v1/webhooks", nil, request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *webhooksClient) GetAllWebhooks(ctx context.Context) (*QueryResponse, error) {
	var out QueryResponse
	if err := c.do(ctx, http.MethodGet, "/webhooks/v1/webhooks", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
