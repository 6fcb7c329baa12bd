package model

import "time"

type Statistic struct {
	ID         int             `gorm:"primaryKey" json:"id"`
	Preset     StatisticPreset `gorm:"type:smallint;not null" json:"preset"`
	SwipeCount int             `gorm:"not null;default:0" json:"swipe_count"`
	LastSwipe  time.Time       `gorm:"not null" json:"last_swipe"`
	ExpiryDate time.Time       `gorm:"not null" json:"expiry_date"`
	UserID     int             `gorm:"not null" json:"user_id"`

	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Statistic) TableName() string { return "statistics" }
