package mobilepay

import (
	"context"
	"net/http"

	"github.com/cafeanalog/coffeecard-api/internal/config"
	"go.uber.org/zap"
)

// EPaymentClient drives the payment lifecycle at the gateway. Every
// operation past creation addresses the payment by its opaque reference.
type EPaymentClient interface {
	CreatePayment(ctx context.Context, request CreatePaymentRequest) (*CreatePaymentResponse, error)
	GetPayment(ctx context.Context, reference string) (*GetPaymentResponse, error)
	CapturePayment(ctx context.Context, reference string, request CaptureModificationRequest) (*ModificationResponse, error)
	CancelPayment(ctx context.Context, reference string, request CancelModificationRequest) (*ModificationResponse, error)
	RefundPayment(ctx context.Context, reference string, request RefundModificationRequest) (*ModificationResponse, error)
}

type ePaymentClient struct {
	client
}

func NewEPaymentClient(cfg *config.Config, log *zap.Logger) EPaymentClient {
	return &ePaymentClient{client: newClient(cfg, log)}
}

func (c *ePaymentClient) CreatePayment(ctx context.Context, request CreatePaymentRequest) (*CreatePaymentResponse, error) {
	var out CreatePaymentResponse
	if err := c.do(ctx, http.MethodPost, "/epayment/v1/payments", nil, request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ePaymentClient) GetPayment(ctx context.Context, reference string) (*GetPaymentResponse, error) {
	var out GetPaymentResponse
	if err := c.do(ctx, http.MethodGet, "/epayment/v1/payments/"+reference, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ePaymentClient) CapturePayment(ctx context.Context, reference string, request CaptureModificationRequest) (*ModificationResponse, error) {
	var out ModificationResponse
	if err := c.do(ctx, http.MethodPost, "/epayment/v1/payments/"+reference+"/capture", nil, request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ePaymentClient) CancelPayment(ctx context.Context, reference string, request CancelModificationRequest) (*ModificationResponse, error) {
	var out ModificationResponse
	if err := c.do(ctx, http.MethodPost, "/epayment/v1/payments/"+reference+"/cancel", nil, request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ePaymentClient) RefundPayment(ctx context.Context, reference string, request RefundModificationRequest) (*ModificationResponse, error) {
	var out ModificationResponse
	if err := c.do(ctx, http.MethodPost, "/epayment/v1/payments/"+reference+"/refund", nil, request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
