package repo

import (
	"context"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"gorm.io/gorm"
)

type PurchaseRepo interface {
	Create(ctx context.Context, p *model.Purchase) error
	Update(ctx context.Context, p *model.Purchase) error
	Get(ctx context.Context, id int) (*model.Purchase, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.Purchase, error)
	ListByUser(ctx context.Context, userID int) ([]model.Purchase, error)
	// Complete flips the purchase to Completed and issues its tickets in
	// one transaction. A purchase observed in any other state than
	// PendingPayment is left untouched and reported via the bool.
	Complete(ctx context.Context, p *model.Purchase, tickets []model.Ticket) (bool, error)
	// Refund marks the purchase Refunded and moves its Used tickets to
	// Refunded in one transaction. Unused tickets keep their state; the
	// purchase status alone makes them unredeemable.
	Refund(ctx context.Context, p *model.Purchase) error
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepo(db *gorm.DB) PurchaseRepo {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) Update(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *purchaseRepo) Get(ctx context.Context, id int) (*model.Purchase, error) {
	var p model.Purchase
	return &p, r.db.WithContext(ctx).Preload("Tickets").First(&p, id).Error
}

func (r *purchaseRepo) GetByOrderID(ctx context.Context, orderID string) (*model.Purchase, error) {
	var p model.Purchase
	return &p, r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error
}

func (r *purchaseRepo) ListByUser(ctx context.Context, userID int) ([]model.Purchase, error) {
	var purchases []model.Purchase
	return purchases, r.db.WithContext(ctx).
		Where("purchased_by_id = ?", userID).
		Order("date_created DESC").
		Find(&purchases).Error
}

func (r *purchaseRepo) Complete(ctx context.Context, p *model.Purchase, tickets []model.Ticket) (bool, error) {
	completed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Purchase
		if err := tx.First(&current, p.ID).Error; err != nil {
			return err
		}
		if current.Status != model.PurchaseStatusPendingPayment {
			return nil
		}
		current.Status = model.PurchaseStatusCompleted
		current.ExternalTransactionID = p.ExternalTransactionID
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		if len(tickets) > 0 {
			if err := tx.Create(&tickets).Error; err != nil {
				return err
			}
		}
		*p = current
		completed = true
		return nil
	})
	return completed, err
}

func (r *purchaseRepo) Refund(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.Status = model.PurchaseStatusRefunded
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return tx.Model(&model.Ticket{}).
			Where("purchase_id = ? AND status = ?", p.ID, model.TicketStatusUsed).
			Update("status", model.TicketStatusRefunded).Error
	})
}
