package model

import (
	"errors"
	"time"
)

var (
	ErrTicketNotUnused  = errors.New("ticket is not unused")
	ErrTicketNotUsed    = errors.New("ticket is not used")
	ErrTicketDateUnset  = errors.New("used ticket is missing its use date")
	ErrTicketDateSet    = errors.New("unused ticket carries a use date")
)

type Ticket struct {
	ID          int          `gorm:"primaryKey" json:"id"`
	DateCreated time.Time    `gorm:"not null" json:"date_created"`
	DateUsed    *time.Time   `json:"date_used,omitempty"`
	ProductID   int          `gorm:"not null" json:"product_id"`
	Status      TicketStatus `gorm:"type:smallint;not null;default:0" json:"status"`
	OwnerID     int          `gorm:"not null" json:"owner_id"`
	PurchaseID  int          `gorm:"not null" json:"purchase_id"`

	// Optional: set when the ticket was redeemed against a menu item.
	UsedOnMenuItemID *int `json:"used_on_menu_item_id,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`

	// Ticket <-> User. Non-cascading on owner deletion; see User.Tickets.
	Owner *User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:NO ACTION" json:"-"`

	Purchase       *Purchase `gorm:"foreignKey:PurchaseID;references:ID" json:"-"`
	UsedOnMenuItem *MenuItem `gorm:"foreignKey:UsedOnMenuItemID;references:ID" json:"-"`
}

func (Ticket) TableName() string { return "tickets" }

// Use redeems the ticket against a menu item. Only Unused tickets can be
// used; DateUsed is set together with the transition so the "DateUsed set
// iff status != Unused" invariant holds.
func (t *Ticket) Use(now time.Time, menuItemID *int) error {
	if t.Status != TicketStatusUnused {
		return ErrTicketNotUnused
	}
	t.Status = TicketStatusUsed
	t.DateUsed = &now
	t.UsedOnMenuItemID = menuItemID
	return nil
}

// Refund moves a used ticket to Refunded. Unused tickets are refunded by
// refunding their purchase, not ticket by ticket.
func (t *Ticket) Refund() error {
	if t.Status != TicketStatusUsed {
		return ErrTicketNotUsed
	}
	t.Status = TicketStatusRefunded
	return nil
}

// CheckDateInvariant validates that DateUsed is present exactly when the
// ticket has left the Unused state.
func (t *Ticket) CheckDateInvariant() error {
	if t.Status == TicketStatusUnused {
		if t.DateUsed != nil {
			return ErrTicketDateSet
		}
		return nil
	}
	if t.DateUsed == nil {
		return ErrTicketDateUnset
	}
	return nil
}
