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
	"gorm.io/gorm"
)

type PurchaseService interface {
	// Initiate creates a PendingPayment purchase and a matching payment at
	// the gateway. The returned purchase carries the gateway redirect URL
	// via InitiateResult.
	Initiate(ctx context.Context, userID, productID int) (*InitiateResult, error)
	// Complete is driven by the gateway's capture confirmation. It flips
	// the purchase to Completed, issues its tickets, and publishes the
	// completion event. Idempotent on already-completed purchases.
	Complete(ctx context.Context, orderID, externalTransactionID string) (*model.Purchase, error)
	Cancel(ctx context.Context, orderID string) error
	// Refund refunds a completed purchase at the gateway and marks it
	// Refunded locally.
	Refund(ctx context.Context, purchaseID int) error
	GetByUser(ctx context.Context, userID int) ([]model.Purchase, error)
}

type InitiateResult struct {
	Purchase    *model.Purchase `json:"purchase"`
	RedirectURL string          `json:"redirect_url"`
}

type purchaseService struct {
	purchases repo.PurchaseRepo
	products  repo.ProductRepo
	users     repo.UserRepo
	epayment  mobilepay.EPaymentClient
	publisher EventPublisher
	log       *zap.Logger
}

func NewPurchaseService(
	purchases repo.PurchaseRepo,
	products repo.ProductRepo,
	users repo.UserRepo,
	epayment mobilepay.EPaymentClient,
	publisher EventPublisher,
	log *zap.Logger,
) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		products:  products,
		users:     users,
		epayment:  epayment,
		publisher: publisher,
		log:       log,
	}
}

func (s *purchaseService) Initiate(ctx context.Context, userID, productID int) (*InitiateResult, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product %d: %w", productID, err)
	}
	if !product.AvailableTo(user.UserGroup) {
		return nil, ErrProductNotAvailable
	}

	now := time.Now().UTC()
	purchase := &model.Purchase{
		ProductName:     product.Name,
		ProductID:       product.ID,
		Price:           product.Price,
		NumberOfTickets: product.NumberOfTickets,
		DateCreated:     now,
		OrderID:         uuid.NewString(),
		Status:          model.PurchaseStatusPendingPayment,
		PurchasedByID:   user.ID,
		Type:            model.PurchaseTypeMobilePayV2,
	}

	// Free products settle immediately and never touch the gateway.
	if product.Price == 0 {
		purchase.Type = model.PurchaseTypeFree
		if err := s.purchases.Create(ctx, purchase); err != nil {
			return nil, fmt.Errorf("create purchase: %w", err)
		}
		if _, err := s.purchases.Complete(ctx, purchase, issueTickets(purchase, now)); err != nil {
			return nil, fmt.Errorf("settle free purchase: %w", err)
		}
		if err := s.publisher.PublishJSON(ctx, EventPurchaseCompleted, PurchaseEvent{
			PurchaseID: purchase.ID,
			OrderID:    purchase.OrderID,
			UserID:     purchase.PurchasedByID,
			ProductID:  purchase.ProductID,
			Timestamp:  now,
		}); err != nil {
			s.log.Error("publish purchase.completed", zap.Error(err))
		}
		return &InitiateResult{Purchase: purchase}, nil
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	resp, err := s.epayment.CreatePayment(ctx, mobilepay.CreatePaymentRequest{
		Amount:             mobilepay.Amount{Currency: "DKK", Value: int64(product.Price) * 100},
		Reference:          purchase.OrderID,
		PaymentDescription: product.Name,
		UserFlow:           "WEB_REDIRECT",
	})
	if err != nil {
		s.log.Error("gateway payment creation failed",
			zap.String("order_id", purchase.OrderID),
			zap.Error(err))
		purchase.Status = model.PurchaseStatusCancelled
		if uerr := s.purchases.Update(ctx, purchase); uerr != nil {
			s.log.Error("cancel after gateway failure", zap.Error(uerr))
		}
		return nil, fmt.Errorf("create gateway payment: %w", err)
	}

	return &InitiateResult{Purchase: purchase, RedirectURL: resp.RedirectURL}, nil
}

func (s *purchaseService) Complete(ctx context.Context, orderID, externalTransactionID string) (*model.Purchase, error) {
	purchase, err := s.purchases.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	purchase.ExternalTransactionID = externalTransactionID
	completed, err := s.purchases.Complete(ctx, purchase, issueTickets(purchase, now))
	if err != nil {
		return nil, fmt.Errorf("complete purchase %s: %w", orderID, err)
	}
	if !completed {
		// Duplicate confirmation. Nothing published, nothing issued.
		s.log.Info("purchase already settled", zap.String("order_id", orderID))
		return purchase, nil
	}

	if err := s.publisher.PublishJSON(ctx, EventPurchaseCompleted, PurchaseEvent{
		PurchaseID: purchase.ID,
		OrderID:    purchase.OrderID,
		UserID:     purchase.PurchasedByID,
		ProductID:  purchase.ProductID,
		Timestamp:  now,
	}); err != nil {
		// The purchase is settled either way; delivery is at-most-once here.
		s.log.Error("publish purchase.completed", zap.Error(err))
	}
	return purchase, nil
}

func (s *purchaseService) Cancel(ctx context.Context, orderID string) error {
	purchase, err := s.purchases.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPurchaseNotFound
		}
		return err
	}
	if purchase.Status != model.PurchaseStatusPendingPayment {
		return ErrPurchaseNotPending
	}

	if _, err := s.epayment.CancelPayment(ctx, orderID, mobilepay.CancelModificationRequest{}); err != nil {
		return fmt.Errorf("cancel gateway payment: %w", err)
	}
	purchase.Status = model.PurchaseStatusCancelled
	return s.purchases.Update(ctx, purchase)
}

func (s *purchaseService) Refund(ctx context.Context, purchaseID int) error {
	purchase, err := s.purchases.Get(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPurchaseNotFound
		}
		return err
	}
	if purchase.Status != model.PurchaseStatusCompleted {
		return ErrPurchaseNotRefundable
	}

	if _, err := s.epayment.RefundPayment(ctx, purchase.OrderID, mobilepay.RefundModificationRequest{
		ModificationAmount: mobilepay.Amount{Currency: "DKK", Value: int64(purchase.Price) * 100},
	}); err != nil {
		return fmt.Errorf("refund gateway payment: %w", err)
	}

	if err := s.purchases.Refund(ctx, purchase); err != nil {
		return err
	}

	if err := s.publisher.PublishJSON(ctx, EventPurchaseRefunded, PurchaseEvent{
		PurchaseID: purchase.ID,
		OrderID:    purchase.OrderID,
		UserID:     purchase.PurchasedByID,
		ProductID:  purchase.ProductID,
		Timestamp:  time.Now().UTC(),
	}); err != nil {
		s.log.Error("publish purchase.refunded", zap.Error(err))
	}
	return nil
}

func (s *purchaseService) GetByUser(ctx context.Context, userID int) ([]model.Purchase, error) {
	return s.purchases.ListByUser(ctx, userID)
}

func issueTickets(p *model.Purchase, now time.Time) []model.Ticket {
	tickets := make([]model.Ticket, p.NumberOfTickets)
	for i := range tickets {
		tickets[i] = model.Ticket{
			DateCreated: now,
			ProductID:   p.ProductID,
			Status:      model.TicketStatusUnused,
			OwnerID:     p.PurchasedByID,
			PurchaseID:  p.ID,
		}
	}
	return tickets
}
