package repo

import (
	"context"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"gorm.io/gorm"
)

type VoucherRepo interface {
	Create(ctx context.Context, v *model.Voucher) error
	Update(ctx context.Context, v *model.Voucher) error
	GetByCode(ctx context.Context, code string) (*model.Voucher, error)
}

type voucherRepo struct{ db *gorm.DB }

func NewVoucherRepo(db *gorm.DB) VoucherRepo {
	return &voucherRepo{db: db}
}

func (r *voucherRepo) Create(ctx context.Context, v *model.Voucher) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *voucherRepo) Update(ctx context.Context, v *model.Voucher) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *voucherRepo) GetByCode(ctx context.Context, code string) (*model.Voucher, error) {
	var v model.Voucher
	return &v, r.db.WithContext(ctx).Preload("Product").Where("code = ?", code).First(&v).Error
}
