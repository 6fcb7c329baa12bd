package model

type Programme struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	ShortName    string `gorm:"type:text;not null" json:"short_name"`
	FullName     string `gorm:"type:text;not null" json:"full_name"`
	SortPriority int    `gorm:"not null;default:0" json:"sort_priority"`

	// Programme <-> User
	Users []User `gorm:"foreignKey:ProgrammeID" json:"-"`
}

func (Programme) TableName() string { return "programmes" }
