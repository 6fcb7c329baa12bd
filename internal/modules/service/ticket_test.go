package service

import (
	"context"
	"testing"
	"time"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestTicketService_Redeem(t *testing.T) {
	ctx := context.Background()
	menuItem := 2

	t.Run("redeems unused ticket from completed purchase", func(t *testing.T) {
		tickets := new(MockTicketRepo)
		publisher := new(MockPublisher)
		svc := NewTicketService(tickets, publisher, zap.NewNop())

		ticket := &model.Ticket{
			ID: 1, Status: model.TicketStatusUnused, OwnerID: 1, ProductID: 1,
			Purchase: &model.Purchase{ID: 7, Status: model.PurchaseStatusCompleted},
		}
		tickets.On("GetForUpdate", ctx, 1).Return(ticket, nil)
		tickets.On("Update", ctx, mock.MatchedBy(func(tk *model.Ticket) bool {
			return tk.Status == model.TicketStatusUsed && tk.DateUsed != nil && *tk.UsedOnMenuItemID == menuItem
		})).Return(nil)
		publisher.On("PublishJSON", ctx, EventTicketUsed, mock.MatchedBy(func(ev TicketEvent) bool {
			return ev.TicketID == 1 && *ev.MenuItemID == menuItem
		})).Return(nil)

		got, err := svc.Redeem(ctx, 1, &menuItem)
		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusUsed, got.Status)
		publisher.AssertExpectations(t)
	})

	t.Run("refunded purchase blocks redemption", func(t *testing.T) {
		tickets := new(MockTicketRepo)
		publisher := new(MockPublisher)
		svc := NewTicketService(tickets, publisher, zap.NewNop())

		tickets.On("GetForUpdate", ctx, 2).Return(&model.Ticket{
			ID: 2, Status: model.TicketStatusUnused,
			Purchase: &model.Purchase{ID: 8, Status: model.PurchaseStatusRefunded},
		}, nil)

		_, err := svc.Redeem(ctx, 2, nil)
		assert.ErrorIs(t, err, ErrTicketNotRedeemable)
		publisher.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("used ticket cannot be swiped twice", func(t *testing.T) {
		tickets := new(MockTicketRepo)
		svc := NewTicketService(tickets, new(MockPublisher), zap.NewNop())

		used := time.Now().UTC()
		tickets.On("GetForUpdate", ctx, 3).Return(&model.Ticket{
			ID: 3, Status: model.TicketStatusUsed, DateUsed: &used,
			Purchase: &model.Purchase{ID: 9, Status: model.PurchaseStatusCompleted},
		}, nil)

		_, err := svc.Redeem(ctx, 3, nil)
		assert.ErrorIs(t, err, model.ErrTicketNotUnused)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		tickets := new(MockTicketRepo)
		svc := NewTicketService(tickets, new(MockPublisher), zap.NewNop())
		tickets.On("GetForUpdate", ctx, 99).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Redeem(ctx, 99, nil)
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}
