package model

import "time"

type Token struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"type:text;not null" json:"-"`
	Type      TokenType `gorm:"type:text;not null" json:"type"`
	Expires   time.Time `gorm:"not null" json:"expires"`

	// Optional owner. Non-cascading on user deletion; see User.Tokens.
	UserID *int  `json:"user_id,omitempty"`
	User   *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:NO ACTION" json:"-"`
}

func (Token) TableName() string { return "tokens" }

// Expired is the derived predicate over the token's expiry, evaluated
// against the given clock.
func (t *Token) Expired(now time.Time) bool {
	return !t.Expires.After(now)
}
