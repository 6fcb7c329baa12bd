package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketUse(t *testing.T) {
	now := time.Date(2024, 2, 13, 17, 59, 0, 0, time.UTC)
	menuItem := 4

	tk := Ticket{ID: 1, Status: TicketStatusUnused}
	require.NoError(t, tk.Use(now, &menuItem))
	assert.Equal(t, TicketStatusUsed, tk.Status)
	require.NotNil(t, tk.DateUsed)
	assert.Equal(t, now, *tk.DateUsed)
	require.NotNil(t, tk.UsedOnMenuItemID)
	assert.Equal(t, menuItem, *tk.UsedOnMenuItemID)
	assert.NoError(t, tk.CheckDateInvariant())

	// Double swipe is rejected and leaves the ticket untouched.
	err := tk.Use(now.Add(time.Minute), nil)
	assert.ErrorIs(t, err, ErrTicketNotUnused)
	assert.Equal(t, now, *tk.DateUsed)
}

func TestTicketRefund(t *testing.T) {
	now := time.Now()

	tk := Ticket{ID: 2, Status: TicketStatusUnused}
	assert.ErrorIs(t, tk.Refund(), ErrTicketNotUsed)

	require.NoError(t, tk.Use(now, nil))
	require.NoError(t, tk.Refund())
	assert.Equal(t, TicketStatusRefunded, tk.Status)

	// Refunded is terminal.
	assert.ErrorIs(t, tk.Refund(), ErrTicketNotUsed)
	assert.ErrorIs(t, tk.Use(now, nil), ErrTicketNotUnused)
}

func TestTicketDateInvariant(t *testing.T) {
	now := time.Now()

	unused := Ticket{Status: TicketStatusUnused}
	assert.NoError(t, unused.CheckDateInvariant())

	unused.DateUsed = &now
	assert.ErrorIs(t, unused.CheckDateInvariant(), ErrTicketDateSet)

	used := Ticket{Status: TicketStatusUsed}
	assert.ErrorIs(t, used.CheckDateInvariant(), ErrTicketDateUnset)

	used.DateUsed = &now
	assert.NoError(t, used.CheckDateInvariant())
}

func TestPurchaseRedeemable(t *testing.T) {
	p := Purchase{Status: PurchaseStatusPendingPayment}
	assert.False(t, p.Redeemable())

	p.Status = PurchaseStatusCompleted
	assert.True(t, p.Redeemable())

	for _, s := range []PurchaseStatus{PurchaseStatusCancelled, PurchaseStatusExpired, PurchaseStatusRefunded} {
		p.Status = s
		assert.False(t, p.Redeemable(), s.String())
	}
}
