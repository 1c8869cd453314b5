package models

import (
	"time"

	"carlink/src/types"
)

type User struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	Name             string     `json:"name,omitempty"`
	Email            string     `json:"email,omitempty"`
	Password         string     `json:"-"`
	PhoneNumber      string     `gorm:"column:phonenumber" json:"phonenumber,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	UsersPfp         []byte     `gorm:"column:userspfp" json:"-"`
	ResetToken       *string    `gorm:"column:reset_token" json:"-"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry" json:"-"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`

	types.Timestamps
}
