package service

import (
	"context"
	"errors"
	"time"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TicketService interface {
	// Redeem swipes an unused ticket against a menu item. The ticket's
	// purchase must be Completed; status is the source of truth, so
	// tickets from refunded or pending purchases are rejected even while
	// still Unused.
	Redeem(ctx context.Context, ticketID int, menuItemID *int) (*model.Ticket, error)
	ListUnused(ctx context.Context, ownerID int) ([]model.Ticket, error)
}

type ticketService struct {
	tickets   repo.TicketRepo
	publisher EventPublisher
	log       *zap.Logger
}

func NewTicketService(tickets repo.TicketRepo, publisher EventPublisher, log *zap.Logger) TicketService {
	return &ticketService{tickets: tickets, publisher: publisher, log: log}
}

func (s *ticketService) Redeem(ctx context.Context, ticketID int, menuItemID *int) (*model.Ticket, error) {
	ticket, err := s.tickets.GetForUpdate(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if ticket.Purchase == nil || !ticket.Purchase.Redeemable() {
		return nil, ErrTicketNotRedeemable
	}

	now := time.Now().UTC()
	if err := ticket.Use(now, menuItemID); err != nil {
		return nil, err
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishJSON(ctx, EventTicketUsed, TicketEvent{
		TicketID:   ticket.ID,
		OwnerID:    ticket.OwnerID,
		ProductID:  ticket.ProductID,
		MenuItemID: menuItemID,
		Timestamp:  now,
	}); err != nil {
		s.log.Error("publish ticket.used", zap.Error(err))
	}
	return ticket, nil
}

func (s *ticketService) ListUnused(ctx context.Context, ownerID int) ([]model.Ticket, error) {
	return s.tickets.ListUnusedByOwner(ctx, ownerID)
}
