package models

import "carlink/src/types"

// ClientNotification rows are created only by the dispatcher as a side
// effect of lifecycle transitions, and mutated only by mark-read.
type ClientNotification struct {
	ID        uint   `gorm:"primarykey;column:m_id" json:"m_id"`
	UserID    uint   `json:"user_id"`
	BookingID uint   `json:"booking_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`

	types.Timestamps
}

func (ClientNotification) TableName() string { return "notifications_client" }

type AdminNotification struct {
	ID        uint   `gorm:"primarykey;column:m_id" json:"m_id"`
	UserID    uint   `json:"user_id"`
	BookingID uint   `json:"booking_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`

	types.Timestamps
}

func (AdminNotification) TableName() string { return "notifications_admin" }
