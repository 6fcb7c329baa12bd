package model

import "time"

type Voucher struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	Code        string     `gorm:"type:text;not null;uniqueIndex:idx_vouchers_code" json:"code"`
	DateCreated time.Time  `gorm:"not null" json:"date_created"`
	DateUsed    *time.Time `json:"date_used,omitempty"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Requester   *string    `gorm:"type:text" json:"requester,omitempty"`
	ProductID   int        `gorm:"not null" json:"product_id"`

	// Set once the voucher is redeemed.
	UserID     *int `json:"user_id,omitempty"`
	PurchaseID *int `json:"purchase_id,omitempty"`

	Product  *Product  `gorm:"foreignKey:ProductID;references:ID" json:"-"`
	User     *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Purchase *Purchase `gorm:"foreignKey:PurchaseID;references:ID" json:"-"`
}

func (Voucher) TableName() string { return "vouchers" }

// Redeemed reports whether the voucher has been spent. DateUsed is set
// exactly when the voucher is redeemed.
func (v *Voucher) Redeemed() bool {
	return v.DateUsed != nil
}
