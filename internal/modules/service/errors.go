package service

import "errors"

// Service layer errors for better error handling
var (
	// Purchase lifecycle errors
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNotAvailable  = errors.New("product is not available to this user group")
	ErrPurchaseNotFound     = errors.New("purchase not found")
	ErrPurchaseNotPending   = errors.New("purchase is not pending payment")
	ErrPurchaseNotRefundable = errors.New("purchase cannot be refunded")

	// Ticket errors
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketNotRedeemable = errors.New("ticket belongs to a non-completed purchase")

	// Voucher errors
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrVoucherRedeemed = errors.New("voucher already redeemed")

	// Webhook errors
	ErrWebhookNotFound = errors.New("webhook configuration not found")
)
