package repo

import (
	"context"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(ctx context.Context, t *model.Ticket) error
	Update(ctx context.Context, t *model.Ticket) error
	Get(ctx context.Context, id int) (*model.Ticket, error)
	// GetForUpdate loads the ticket together with its purchase so callers
	// can judge redeemability before a state transition.
	GetForUpdate(ctx context.Context, id int) (*model.Ticket, error)
	ListUnusedByOwner(ctx context.Context, ownerID int) ([]model.Ticket, error)
	CountUnusedByOwnerAndProduct(ctx context.Context, ownerID, productID int) (int64, error)
}

type ticketRepo struct{ db *gorm.DB }

func NewTicketRepo(db *gorm.DB) TicketRepo {
	return &ticketRepo{db: db}
}

func (r *ticketRepo) Create(ctx context.Context, t *model.Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ticketRepo) Update(ctx context.Context, t *model.Ticket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *ticketRepo) Get(ctx context.Context, id int) (*model.Ticket, error) {
	var t model.Ticket
	return &t, r.db.WithContext(ctx).First(&t, id).Error
}

func (r *ticketRepo) GetForUpdate(ctx context.Context, id int) (*model.Ticket, error) {
	var t model.Ticket
	return &t, r.db.WithContext(ctx).Preload("Purchase").First(&t, id).Error
}

func (r *ticketRepo) ListUnusedByOwner(ctx context.Context, ownerID int) ([]model.Ticket, error) {
	var tickets []model.Ticket
	return tickets, r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, model.TicketStatusUnused).
		Order("date_created").
		Find(&tickets).Error
}

func (r *ticketRepo) CountUnusedByOwnerAndProduct(ctx context.Context, ownerID, productID int) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("owner_id = ? AND product_id = ? AND status = ?", ownerID, productID, model.TicketStatusUnused).
		Count(&n).Error
}
