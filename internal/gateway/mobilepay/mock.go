package mobilepay

import "context"

// Deterministic gateway clients for local development and tests. Every
// call returns an empty default response synchronously, performs no I/O,
// and never fails; unlimited concurrent invocation is safe.

type accessTokenMock struct{}

func NewAccessTokenMock() AccessTokenClient { return accessTokenMock{} }

func (accessTokenMock) GetToken(ctx context.Context, clientID, clientSecret string) (*AuthorizationTokenResponse, error) {
	return &AuthorizationTokenResponse{}, nil
}

type webhooksMock struct{}

func NewWebhooksMock() WebhooksClient { return webhooksMock{} }

func (webhooksMock) CreateWebhook(ctx context.Context, request RegisterRequest) (*RegisterResponse, error) {
	return &RegisterResponse{}, nil
}

func (webhooksMock) GetAllWebhooks(ctx context.Context) (*QueryResponse, error) {
	return &QueryResponse{}, nil
}

type ePaymentMock struct{}

func NewEPaymentMock() EPaymentClient { return ePaymentMock{} }

func (ePaymentMock) CreatePayment(ctx context.Context, request CreatePaymentRequest) (*CreatePaymentResponse, error) {
	return &CreatePaymentResponse{}, nil
}

func (ePaymentMock) GetPayment(ctx context.Context, reference string) (*GetPaymentResponse, error) {
	return &GetPaymentResponse{}, nil
}

func (ePaymentMock) CapturePayment(ctx context.Context, reference string, request CaptureModificationRequest) (*ModificationResponse, error) {
	return &ModificationResponse{}, nil
}

func (ePaymentMock) CancelPayment(ctx context.Context, reference string, request CancelModificationRequest) (*ModificationResponse, error) {
	return &ModificationResponse{}, nil
}

func (ePaymentMock) RefundPayment(ctx context.Context, reference string, request RefundModificationRequest) (*ModificationResponse, error) {
	return &ModificationResponse{}, nil
}
