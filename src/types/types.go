package types

import (
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
}

type CreateBookingRequestBody struct {
	PickupLocation    string `json:"pickupLocation" binding:"required"`
	ReturnLocation    string `json:"returnLocation" binding:"required"`
	PickupDate        string `json:"pickupDate" binding:"required"`
	ReturnDate        string `json:"returnDate" binding:"required"`
	PickupTime        string `json:"pickupTime" binding:"required"`
	ReturnTime        string `json:"returnTime" binding:"required"`
	UserID            uint   `json:"user_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required"`
	Phone             string `json:"phone" binding:"required"`
	RentalType        string `json:"rentalType" binding:"required"`
	CarID             uint   `json:"carId" binding:"required"`
	AdditionalRequest string `json:"additionalrequest" binding:"required"`
}

type UpdateBookingRequestBody struct {
	CarID             uint   `json:"car_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	PickupLocation    string `json:"pickup_location"`
	PickupDate        string `json:"pickup_date"`
	PickupTime        string `json:"pickup_time"`
	ReturnLocation    string `json:"return_location"`
	ReturnDate        string `json:"return_date"`
	ReturnTime        string `json:"return_time"`
	RentalType        string `json:"rental_type"`
	AdditionalRequest string `json:"additionalrequest"`
	UserID            uint   `json:"user_id"`
}

type CancelBookingRequestBody struct {
	CancelReason string `json:"cancel_reason"`
	UserID       uint   `json:"user_id"`
	ClientEmail  string `json:"clientEmail"`
}

type ConfirmPriceRequestBody struct {
	BookingID   uint   `json:"booking_id"`
	UserID      uint   `json:"user_id"`
	ClientEmail string `json:"clientEmail"`
}

type SignUpRequestBody struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	MobileNumber string `json:"mobileNumber"`
}

type SignInRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequestBody struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ResetPasswordRequestBody struct {
	Token       string `json:"token"`
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

type SubmitFeedbackRequestBody struct {
	UserID      uint   `json:"user_id"`
	CarID       uint   `json:"car_id"`
	BookingID   uint   `json:"booking_id"`
	Rating      *int   `json:"rating"`
	Description string `json:"description"`
}

type SendInquiryRequestBody struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Inquiry         string `json:"inquiry"`
	CaptchaSolution string `json:"captchaSolution"`
}

type OccupiedDateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
