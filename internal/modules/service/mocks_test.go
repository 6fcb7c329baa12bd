package service

import (
	"context"

	"github.com/cafeanalog/coffeecard-api/internal/gateway/mobilepay"
	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseRepo is a mock implementation of repo.PurchaseRepo
type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepo) Update(ctx context.Context, p *model.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepo) Get(ctx context.Context, id int) (*model.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) GetByOrderID(ctx context.Context, orderID string) (*model.Purchase, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) ListByUser(ctx context.Context, userID int) ([]model.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) Complete(ctx context.Context, p *model.Purchase, tickets []model.Ticket) (bool, error) {
	args := m.Called(ctx, p, tickets)
	return args.Bool(0), args.Error(1)
}

func (m *MockPurchaseRepo) Refund(ctx context.Context, p *model.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockProductRepo is a mock implementation of repo.ProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Get(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepo) ListVisibleForGroup(ctx context.Context, group model.UserGroup) ([]model.Product, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepo) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

// MockUserRepo is a mock implementation of repo.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Get(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTicketRepo is a mock implementation of repo.TicketRepo
type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepo) Update(ctx context.Context, t *model.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepo) Get(ctx context.Context, id int) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepo) GetForUpdate(ctx context.Context, id int) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepo) ListUnusedByOwner(ctx context.Context, ownerID int) ([]model.Ticket, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func (m *MockTicketRepo) CountUnusedByOwnerAndProduct(ctx context.Context, ownerID, productID int) (int64, error) {
	args := m.Called(ctx, ownerID, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockVoucherRepo is a mock implementation of repo.VoucherRepo
type MockVoucherRepo struct {
	mock.Mock
}

func (m *MockVoucherRepo) Create(ctx context.Context, v *model.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepo) Update(ctx context.Context, v *model.Voucher) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoucherRepo) GetByCode(ctx context.Context, code string) (*model.Voucher, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Voucher), args.Error(1)
}

// MockWebhookConfigurationRepo is a mock implementation of repo.WebhookConfigurationRepo
type MockWebhookConfigurationRepo struct {
	mock.Mock
}

func (m *MockWebhookConfigurationRepo) Create(ctx context.Context, w *model.WebhookConfiguration) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWebhookConfigurationRepo) Update(ctx context.Context, w *model.WebhookConfiguration) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWebhookConfigurationRepo) Get(ctx context.Context, id uuid.UUID) (*model.WebhookConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WebhookConfiguration), args.Error(1)
}

func (m *MockWebhookConfigurationRepo) ListActive(ctx context.Context) ([]model.WebhookConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WebhookConfiguration), args.Error(1)
}

func (m *MockWebhookConfigurationRepo) List(ctx context.Context) ([]model.WebhookConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WebhookConfiguration), args.Error(1)
}

// MockEPaymentClient is a mock implementation of mobilepay.EPaymentClient
type MockEPaymentClient struct {
	mock.Mock
}

func (m *MockEPaymentClient) CreatePayment(ctx context.Context, request mobilepay.CreatePaymentRequest) (*mobilepay.CreatePaymentResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mobilepay.CreatePaymentResponse), args.Error(1)
}

func (m *MockEPaymentClient) GetPayment(ctx context.Context, reference string) (*mobilepay.GetPaymentResponse, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mobilepay.GetPaymentResponse), args.Error(1)
}

func (m *MockEPaymentClient) CapturePayment(ctx context.Context, reference string, request mobilepay.CaptureModificationRequest) (*mobilepay.ModificationResponse, error) {
	args := m.Called(ctx, reference, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mobilepay.ModificationResponse), args.Error(1)
}

func (m *MockEPaymentClient) CancelPayment(ctx context.Context, reference string, request mobilepay.CancelModificationRequest) (*mobilepay.ModificationResponse, error) {
	args := m.Called(ctx, reference, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mobilepay.ModificationResponse), args.Error(1)
}

func (m *MockEPaymentClient) RefundPayment(ctx context.Context, reference string, request mobilepay.RefundModificationRequest) (*mobilepay.ModificationResponse, error) {
	args := m.Called(ctx, reference, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mobilepay.ModificationResponse), args.Error(1)
}

// MockWebhooksClient is a mock implementation of mobilepay.WebhooksClient
type MockWebhooksClient struct {
	mock.Mock
}

func (m *MockWebhooksClient) CreateWebhook(ctx context.Context, request mobilepay.RegisterRequest) (*mobilepay.RegisterResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mobilepay.RegisterResponse), args.Error(1)
}

func (m *MockWebhooksClient) GetAllWebhooks(ctx context.Context) (*mobilepay.QueryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mobilepay.QueryResponse), args.Error(1)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, body any) error {
	args := m.Called(ctx, routingKey, body)
	return args.Error(0)
}
