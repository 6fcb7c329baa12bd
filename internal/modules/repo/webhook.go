package repo

import (
	"context"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebhookConfigurationRepo interface {
	Create(ctx context.Context, w *model.WebhookConfiguration) error
	Update(ctx context.Context, w *model.WebhookConfiguration) error
	Get(ctx context.Context, id uuid.UUID) (*model.WebhookConfiguration, error)
	ListActive(ctx context.Context) ([]model.WebhookConfiguration, error)
	List(ctx context.Context) ([]model.WebhookConfiguration, error)
}

type webhookConfigurationRepo struct{ db *gorm.DB }

func NewWebhookConfigurationRepo(db *gorm.DB) WebhookConfigurationRepo {
	return &webhookConfigurationRepo{db: db}
}

func (r *webhookConfigurationRepo) Create(ctx context.Context, w *model.WebhookConfiguration) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *webhookConfigurationRepo) Update(ctx context.Context, w *model.WebhookConfiguration) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *webhookConfigurationRepo) Get(ctx context.Context, id uuid.UUID) (*model.WebhookConfiguration, error) {
	var w model.WebhookConfiguration
	return &w, r.db.WithContext(ctx).Where("id = ?", id).First(&w).Error
}

func (r *webhookConfigurationRepo) ListActive(ctx context.Context) ([]model.WebhookConfiguration, error) {
	var configs []model.WebhookConfiguration
	return configs, r.db.WithContext(ctx).
		Where("status = ?", model.WebhookStatusActive).
		Find(&configs).Error
}

func (r *webhookConfigurationRepo) List(ctx context.Context) ([]model.WebhookConfiguration, error) {
	var configs []model.WebhookConfiguration
	return configs, r.db.WithContext(ctx).Order("last_updated DESC").Find(&configs).Error
}
