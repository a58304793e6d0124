package model

import (
	"time"

	"ticket-desk.com/ticket-desk/internal/constants"
)

type Ticket struct {
	ID             uint                   `gorm:"primaryKey" json:"id"`
	Subject        string                 `gorm:"type:varchar(255);not null" json:"subject"`
	InitialMessage string                 `gorm:"type:text" json:"initial_message"`
	Status         constants.TicketStatus `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
}

func (Ticket) TableName() string { return "Tickets" }
