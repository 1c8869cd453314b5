package models

import "carlink/src/types"

// One row per (user, car); the unique index turns duplicate submissions
// into a store-level conflict instead of a second row.
type Feedback struct {
	ID          uint   `gorm:"primarykey;column:f_id" json:"f_id"`
	UserID      uint   `gorm:"uniqueIndex:idx_feedback_user_car" json:"user_id"`
	CarID       uint   `gorm:"uniqueIndex:idx_feedback_user_car" json:"car_id"`
	BookingID   uint   `json:"booking_id"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`

	types.Timestamps
}

func (Feedback) TableName() string { return "feedback" }
