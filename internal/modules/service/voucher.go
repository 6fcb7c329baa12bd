package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VoucherService interface {
	// Redeem spends a voucher code for the user: a zero-price Voucher
	// purchase is settled and the code's tickets are issued. A code can
	// be spent exactly once.
	Redeem(ctx context.Context, userID int, code string) (*model.Purchase, error)
}

type voucherService struct {
	vouchers  repo.VoucherRepo
	purchases repo.PurchaseRepo
	publisher EventPublisher
	log       *zap.Logger
}

func NewVoucherService(vouchers repo.VoucherRepo, purchases repo.PurchaseRepo, publisher EventPublisher, log *zap.Logger) VoucherService {
	return &voucherService{vouchers: vouchers, purchases: purchases, publisher: publisher, log: log}
}

func (s *voucherService) Redeem(ctx context.Context, userID int, code string) (*model.Purchase, error) {
	voucher, err := s.vouchers.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	if voucher.Redeemed() {
		return nil, ErrVoucherRedeemed
	}
	if voucher.Product == nil {
		return nil, fmt.Errorf("voucher %d has no product", voucher.ID)
	}

	now := time.Now().UTC()
	purchase := &model.Purchase{
		ProductName:     voucher.Product.Name,
		ProductID:       voucher.ProductID,
		Price:           0,
		NumberOfTickets: voucher.Product.NumberOfTickets,
		DateCreated:     now,
		OrderID:         uuid.NewString(),
		Status:          model.PurchaseStatusPendingPayment,
		PurchasedByID:   userID,
		Type:            model.PurchaseTypeVoucher,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("create voucher purchase: %w", err)
	}
	if _, err := s.purchases.Complete(ctx, purchase, issueTickets(purchase, now)); err != nil {
		return nil, fmt.Errorf("settle voucher purchase: %w", err)
	}

	voucher.DateUsed = &now
	voucher.UserID = &userID
	voucher.PurchaseID = &purchase.ID
	if err := s.vouchers.Update(ctx, voucher); err != nil {
		return nil, fmt.Errorf("mark voucher used: %w", err)
	}

	if err := s.publisher.PublishJSON(ctx, EventPurchaseCompleted, PurchaseEvent{
		PurchaseID: purchase.ID,
		OrderID:    purchase.OrderID,
		UserID:     userID,
		ProductID:  purchase.ProductID,
		Timestamp:  now,
	}); err != nil {
		s.log.Error("publish purchase.completed", zap.Error(err))
	}
	return purchase, nil
}
