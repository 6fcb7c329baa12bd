package service

import (
	"context"
	"testing"

	"github.com/cafeanalog/coffeecard-api/internal/gateway/mobilepay"
	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestWebhookService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the gateway secret as signature key", func(t *testing.T) {
		configs := new(MockWebhookConfigurationRepo)
		gateway := new(MockWebhooksClient)
		svc := NewWebhookService(configs, gateway, zap.NewNop())

		gateway.On("CreateWebhook", ctx, mock.MatchedBy(func(req mobilepay.RegisterRequest) bool {
			return req.URL == "https://example.test/hook" && len(req.Events) == 3
		})).Return(&mobilepay.RegisterResponse{ID: "wh-1", Secret: "whsec_x"}, nil)
		configs.On("Create", ctx, mock.MatchedBy(func(w *model.WebhookConfiguration) bool {
			return w.SignatureKey == "whsec_x" && w.Status == model.WebhookStatusActive
		})).Return(nil)

		cfg, err := svc.Register(ctx, "https://example.test/hook")
		require.NoError(t, err)
		assert.Equal(t, "whsec_x", cfg.SignatureKey)
		configs.AssertExpectations(t)
	})

	t.Run("gateway failure stores nothing", func(t *testing.T) {
		configs := new(MockWebhookConfigurationRepo)
		gateway := new(MockWebhooksClient)
		svc := NewWebhookService(configs, gateway, zap.NewNop())

		gateway.On("CreateWebhook", ctx, mock.Anything).Return(nil, assert.AnError)

		_, err := svc.Register(ctx, "https://example.test/hook")
		require.Error(t, err)
		configs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestWebhookService_Disable(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("disables an active configuration", func(t *testing.T) {
		configs := new(MockWebhookConfigurationRepo)
		svc := NewWebhookService(configs, new(MockWebhooksClient), zap.NewNop())

		configs.On("Get", ctx, id).Return(&model.WebhookConfiguration{
			ID: id, Status: model.WebhookStatusActive,
		}, nil)
		configs.On("Update", ctx, mock.MatchedBy(func(w *model.WebhookConfiguration) bool {
			return w.Status == model.WebhookStatusDisabled
		})).Return(nil)

		require.NoError(t, svc.Disable(ctx, id))
		configs.AssertExpectations(t)
	})

	t.Run("unknown configuration", func(t *testing.T) {
		configs := new(MockWebhookConfigurationRepo)
		svc := NewWebhookService(configs, new(MockWebhooksClient), zap.NewNop())
		configs.On("Get", ctx, id).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.Disable(ctx, id), ErrWebhookNotFound)
	})
}
