package repo

import (
	"context"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Get(ctx context.Context, id int) (*model.Product, error)
	// ListVisibleForGroup returns the visible products purchasable by the
	// given user group, eligibility preloaded.
	ListVisibleForGroup(ctx context.Context, group model.UserGroup) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

func (r *productRepo) Get(ctx context.Context, id int) (*model.Product, error) {
	var p model.Product
	return &p, r.db.WithContext(ctx).
		Preload("ProductUserGroups").
		First(&p, id).Error
}

func (r *productRepo) ListVisibleForGroup(ctx context.Context, group model.UserGroup) ([]model.Product, error) {
	var products []model.Product
	return products, r.db.WithContext(ctx).
		Preload("ProductUserGroups").
		Preload("EligibleMenuItems").
		Joins("JOIN product_user_groups pug ON pug.product_id = products.id").
		Where("products.visible = ?", true).
		Where("pug.user_group = ?", group).
		Order("products.id").
		Find(&products).Error
}

func (r *productRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	return products, r.db.WithContext(ctx).
		Preload("ProductUserGroups").
		Order("products.id").
		Find(&products).Error
}

func (r *productRepo) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	return items, r.db.WithContext(ctx).Preload("AssociatedProducts").Order("id").Find(&items).Error
}
