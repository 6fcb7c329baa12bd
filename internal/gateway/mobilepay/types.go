package mobilepay

import "time"

// Wire payloads owned by the MobilePay gateway protocol. Fields mirror
// the gateway's JSON contract; zero values are what the mock clients
// return.

type AuthorizationTokenResponse struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   string `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

type RegisterRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

type RegisterResponse struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

type Webhook struct {
	ID     string   `json:"id"`
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

type QueryResponse struct {
	Webhooks []Webhook `json:"webhooks"`
}

type Amount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

type CreatePaymentRequest struct {
	Amount             Amount `json:"amount"`
	Reference          string `json:"reference"`
	PaymentDescription string `json:"paymentDescription"`
	ReturnURL          string `json:"returnUrl"`
	UserFlow           string `json:"userFlow"`
}

type CreatePaymentResponse struct {
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirectUrl"`
}

type PaymentAggregate struct {
	AuthorizedAmount Amount `json:"authorizedAmount"`
	CapturedAmount   Amount `json:"capturedAmount"`
	RefundedAmount   Amount `json:"refundedAmount"`
	CancelledAmount  Amount `json:"cancelledAmount"`
}

type GetPaymentResponse struct {
	Reference  string           `json:"reference"`
	State      string           `json:"state"`
	Amount     Amount           `json:"amount"`
	Aggregate  PaymentAggregate `json:"aggregate"`
	PspRef     string           `json:"pspReference"`
	CreatedAt  time.Time        `json:"createdAt"`
	ModifiedAt time.Time        `json:"modifiedAt"`
}

type CaptureModificationRequest struct {
	ModificationAmount Amount `json:"modificationAmount"`
}

type CancelModificationRequest struct {
	CancelTransactionOnly bool `json:"cancelTransactionOnly"`
}

type RefundModificationRequest struct {
	ModificationAmount Amount `json:"modificationAmount"`
}

type ModificationResponse struct {
	Reference string           `json:"reference"`
	State     string           `json:"state"`
	Aggregate PaymentAggregate `json:"aggregate"`
	PspRef    string           `json:"pspReference"`
}
