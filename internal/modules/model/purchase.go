package model

import "time"

type Purchase struct {
	ID int `gorm:"primaryKey" json:"id"`

	// Snapshot of the product name at purchase time; later product
	// renames must not rewrite purchase history.
	ProductName string `gorm:"type:text;not null" json:"product_name"`

	ProductID       int       `gorm:"not null" json:"product_id"`
	Price           int       `gorm:"not null;check:price >= 0" json:"price"`
	NumberOfTickets int       `gorm:"not null" json:"number_of_tickets"`
	DateCreated     time.Time `gorm:"not null" json:"date_created"`

	OrderID               string `gorm:"type:text;not null" json:"order_id"`
	ExternalTransactionID string `gorm:"type:text" json:"external_transaction_id"`

	Status        PurchaseStatus `gorm:"type:text;not null" json:"status"`
	PurchasedByID int            `gorm:"not null" json:"purchased_by_id"`
	Type          PurchaseType   `gorm:"type:text;not null" json:"type"`

	Product     *Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`
	PurchasedBy *User    `gorm:"foreignKey:PurchasedByID;references:ID" json:"-"`

	// Purchase <-> Ticket
	Tickets []Ticket `gorm:"foreignKey:PurchaseID" json:"-"`

	// Present only for point-of-sale purchases.
	PosPurchase *PosPurchase `gorm:"foreignKey:PurchaseID" json:"-"`
}

func (Purchase) TableName() string { return "purchases" }

// Redeemable reports whether tickets belonging to this purchase may be
// swiped. Purchase status, not ticket state, is the source of truth here.
func (p *Purchase) Redeemable() bool {
	return p.Status == PurchaseStatusCompleted
}

// PosPurchase extends a Purchase made at the counter. One-to-one with its
// purchase via the shared primary key.
type PosPurchase struct {
	PurchaseID      int    `gorm:"primaryKey;autoIncrement:false" json:"purchase_id"`
	BaristaInitials string `gorm:"type:text;not null" json:"barista_initials"`

	Purchase *Purchase `gorm:"foreignKey:PurchaseID;references:ID" json:"-"`
}

func (PosPurchase) TableName() string { return "pos_purchases" }
