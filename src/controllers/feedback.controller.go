package controllers

import (
	"errors"
	"fmt"
	"strings"

	"carlink/src/db"
	"carlink/src/models"
	"carlink/src/types"
	"carlink/src/utils"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// SubmitFeedback records a rating for a completed booking. The store's
// unique (user, car) index makes a duplicate submission a conflict.
func SubmitFeedback(params *types.SubmitFeedbackRequestBody) (uint, error) {
	if params.UserID == 0 {
		return 0, &types.ValidationError{Message: "User ID is required."}
	}
	if params.CarID == 0 {
		return 0, &types.ValidationError{Message: "Car ID is required."}
	}
	if params.Rating == nil {
		return 0, &types.ValidationError{Message: "Rating is required."}
	}
	if *params.Rating < 1 || *params.Rating > 5 {
		return 0, &types.ValidationError{Message: "Rating must be between 1 and 5."}
	}
	if strings.TrimSpace(params.Description) == "" {
		return 0, &types.ValidationError{Message: "Description is required."}
	}

	feedback := models.Feedback{
		UserID:      params.UserID,
		CarID:       params.CarID,
		BookingID:   params.BookingID,
		Rating:      *params.Rating,
		Description: params.Description,
	}
	if err := db.GetDb().Create(&feedback).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, &types.ConflictError{Message: "Feedback already submitted for this user and car."}
		}
		return 0, err
	}

	bookingRef := utils.FormatID(params.BookingID)
	NotifyAdmin(params.UserID, params.BookingID, "Feedback Received.",
		fmt.Sprintf("Booking:%s left a feedback.", bookingRef))
	NotifyClient(params.UserID, params.BookingID, "Feedback Submitted.",
		fmt.Sprintf("Your feedback for Booking:%s has been received, thanks again for choosing us!", bookingRef))

	return feedback.ID, nil
}

// HasFeedback reports whether a booking already has feedback.
func HasFeedback(bookingID uint) (bool, error) {
	var count int64
	err := db.GetDb().
		Model(&models.Feedback{}).
		Where("booking_id = ?", bookingID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
