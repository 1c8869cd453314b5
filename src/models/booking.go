package models

import (
	"time"

	"carlink/src/types"
)

// Booking lifecycle: Pending → Confirmed (admin pricing) → Cancelled or
// fulfilled. PriceAccepted is a flag distinct from Status and only flips
// true once a price has been quoted. CancelFee is only set on Cancelled
// rows.
type Booking struct {
	ID                uint       `gorm:"primarykey;column:booking_id" json:"booking_id"`
	UserID            uint       `json:"user_id"`
	CarID             uint       `json:"car_id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	PickupLocation    string     `json:"pickup_location"`
	ReturnLocation    string     `json:"return_location"`
	PickupDate        time.Time  `gorm:"type:date" json:"pickup_date"`
	ReturnDate        time.Time  `gorm:"type:date" json:"return_date"`
	PickupTime        string     `json:"pickup_time"`
	ReturnTime        string     `json:"return_time"`
	RentalType        string     `gorm:"column:rental_type" json:"rental_type"`
	AdditionalRequest string     `gorm:"column:additionalrequest" json:"additionalrequest"`
	Status            string     `gorm:"default:Pending" json:"status"`
	PriceAccepted     bool       `gorm:"column:priceaccepted" json:"priceaccepted"`
	Price             float64    `json:"price"`
	Receipt           []byte     `json:"-"`
	CancelReason      *string    `gorm:"column:cancel_reason" json:"cancel_reason,omitempty"`
	CancelDate        *time.Time `gorm:"column:cancel_date;type:date" json:"cancel_date,omitempty"`
	CancelFee         *float64   `gorm:"column:cancel_fee" json:"cancel_fee,omitempty"`

	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Car  *Car  `gorm:"foreignKey:car_id" json:"car,omitempty"`

	types.Timestamps
}

const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)
