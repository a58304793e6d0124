package model

import "ticket-desk.com/ticket-desk/internal/constants"

type User struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Email    string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string         `gorm:"type:varchar(255);not null" json:"-"`
	Role     constants.Role `gorm:"type:varchar(50);not null" json:"role"`
}

func (User) TableName() string { return "Users" }
