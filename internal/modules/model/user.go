package model

import (
	"errors"
	"time"
)

var ErrUserStateTransition = errors.New("invalid user state transition")

type User struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"type:text;not null;uniqueIndex:idx_users_email" json:"email"`
	Name             string    `gorm:"type:text;not null" json:"name"`
	Password         string    `gorm:"type:text;not null" json:"-"`
	Salt             string    `gorm:"type:text;not null" json:"-"`
	Experience       int       `gorm:"not null;default:0" json:"experience"`
	DateCreated      time.Time `gorm:"not null" json:"date_created"`
	DateUpdated      time.Time `gorm:"not null" json:"date_updated"`
	IsVerified       bool      `gorm:"not null;default:false" json:"is_verified"`
	PrivacyActivated bool      `gorm:"not null;default:false" json:"privacy_activated"`
	UserGroup        UserGroup `gorm:"type:smallint;not null;default:0" json:"user_group"`
	UserState        UserState `gorm:"type:text;not null" json:"user_state"`
	ProgrammeID      int       `gorm:"not null" json:"programme_id"`

	// User <-> Programme
	Programme *Programme `gorm:"foreignKey:ProgrammeID;references:ID" json:"-"`

	// User <-> Ticket. Deleting a user keeps their tickets: the owner
	// relationship is deliberately non-cascading for audit retention.
	Tickets []Ticket `gorm:"foreignKey:OwnerID;constraint:OnDelete:NO ACTION" json:"-"`

	// User <-> Token. Same retention policy as tickets.
	Tokens []Token `gorm:"foreignKey:UserID;constraint:OnDelete:NO ACTION" json:"-"`
}

func (User) TableName() string { return "users" }

// Verify marks the account's email as confirmed. It is the only
// transition away from the Deleted direction: a pending account becomes
// Active, and a soft-deleted account is reactivated.
func (u *User) Verify(now time.Time) {
	u.IsVerified = true
	if u.UserState == UserStatePendingActivation || u.UserState == UserStateDeleted {
		u.UserState = UserStateActive
	}
	u.DateUpdated = now
}

// MarkDeleted moves the account toward the Deleted terminal state.
func (u *User) MarkDeleted(now time.Time) error {
	if u.UserState == UserStateDeleted {
		return ErrUserStateTransition
	}
	u.UserState = UserStateDeleted
	u.DateUpdated = now
	return nil
}
