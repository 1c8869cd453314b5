package controllers

import (
	"errors"
	"fmt"
	"time"

	"carlink/src/config"
	"carlink/src/db"
	"carlink/src/lib/mailer"
	"carlink/src/models"
	"carlink/src/types"
	"carlink/src/utils"

	"gorm.io/gorm"
)

// CreateBooking persists a new Pending booking and dispatches the
// creation notifications. Dispatch is fire-and-forget: it runs after the
// insert committed and its failures never surface to the caller.
func CreateBooking(params *types.CreateBookingRequestBody) (uint, error) {
	pickupDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.PickupDate)
	if err != nil {
		return 0, &types.ValidationError{Message: "Invalid pickup date"}
	}
	returnDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.ReturnDate)
	if err != nil {
		return 0, &types.ValidationError{Message: "Invalid return date"}
	}

	booking := models.Booking{
		UserID:            params.UserID,
		CarID:             params.CarID,
		Name:              params.Name,
		Email:             params.Email,
		Phone:             params.Phone,
		PickupLocation:    params.PickupLocation,
		ReturnLocation:    params.ReturnLocation,
		PickupDate:        pickupDate,
		ReturnDate:        returnDate,
		PickupTime:        params.PickupTime,
		ReturnTime:        params.ReturnTime,
		RentalType:        params.RentalType,
		AdditionalRequest: params.AdditionalRequest,
		Status:            models.BookingStatusPending,
	}
	if err := db.GetDb().Create(&booking).Error; err != nil {
		return 0, err
	}

	bookingRef := utils.FormatID(booking.ID)
	userRef := utils.FormatID(params.UserID)
	NotifyClient(params.UserID, booking.ID, "Booking Created.",
		fmt.Sprintf("Your Booking:%s has been created and is now Pending. Please wait for the price to be finalized.", bookingRef))
	NotifyAdmin(params.UserID, booking.ID, "Client Made Booking",
		fmt.Sprintf("User:%s named %s has made Booking:%s.", userRef, params.Name, bookingRef))
	mailer.SendNotif("Booking Confirmation: Pending Approval",
		fmt.Sprintf("Hello,\n\nThank you for booking with CarLink Rentals!\n\nYour booking (ID: %s) has been successfully created. It is currently marked as Pending while we finalize the pricing details.\n\nPlease stay tuned for an update once the process is complete. If you have any questions in the meantime, don't hesitate to reach out to us.\n\nBest regards,\nThe CarLink Rentals Team", bookingRef),
		params.Email)

	return booking.ID, nil
}

// ConfirmPrice flags the booking's quoted price as accepted.
func ConfirmPrice(bookingID uint, userID uint, clientEmail string) error {
	res := db.GetDb().
		Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		Update("priceaccepted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &types.NotFoundError{Message: "Booking not found"}
	}

	bookingRef := utils.FormatID(bookingID)
	NotifyClient(userID, bookingID, "Payment Method.",
		fmt.Sprintf("Reminder: Your Booking:%s will be declined if not paid within 24 hours.", bookingRef))
	NotifyAdmin(userID, bookingID, "Price Accepted.",
		fmt.Sprintf("Booking:%s has its price accepted.", bookingRef))
	mailer.SendNotif("Price Accepted: Payment Required",
		fmt.Sprintf("Hello,\n\nYou have successfully accepted the designated price for your booking (ID: %s). Please note that the booking will be automatically declined if payment is not made within 24 hours.\n\nTo complete your booking, please proceed to the website and settle the payment at your earliest convenience.\n\nBest regards,\nThe CarLink Rentals Team", bookingRef),
		clientEmail)
	return nil
}

// CancelBooking moves a booking to the terminal Cancelled state and
// records the cancellation fee derived from the days left until pickup.
func CancelBooking(bookingID uint, cancelReason string, userID uint, clientEmail string) (*models.Booking, error) {
	if cancelReason == "" {
		return nil, &types.ValidationError{Message: "Cancellation reason is required."}
	}

	conn := db.GetDb()
	var booking models.Booking
	err := conn.
		Model(&models.Booking{}).
		Select("pickup_date", "price").
		Where("booking_id = ?", bookingID).
		First(&booking).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Message: "Booking not found."}
		}
		return nil, err
	}

	now := time.Now()
	fee := utils.CancellationFee(booking.Price, utils.DaysBeforePickup(booking.PickupDate, now))
	cancelDate := now.Truncate(24 * time.Hour)
	res := conn.
		Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]any{
			"status":        models.BookingStatusCancelled,
			"cancel_reason": cancelReason,
			"cancel_date":   cancelDate,
			"cancel_fee":    fee,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	booking.ID = bookingID
	booking.Status = models.BookingStatusCancelled
	booking.CancelReason = &cancelReason
	booking.CancelDate = &cancelDate
	booking.CancelFee = &fee

	bookingRef := utils.FormatID(bookingID)
	NotifyAdmin(userID, bookingID, "Client Cancelled Booking.",
		fmt.Sprintf("Booking:%s has been cancelled by a client.", bookingRef))
	NotifyClient(userID, bookingID, "Successfully Cancelled Booking.",
		fmt.Sprintf("You have successfully cancelled Booking:%s.", bookingRef))
	mailer.SendNotif("Booking Cancellation Confirmation",
		fmt.Sprintf("Hello,\n\nWe're writing to confirm that your booking (ID: %s) has been successfully cancelled as per your request.\n\nIf this cancellation was made in error or if you have any further questions, please don't hesitate to contact us.\n\nThank you for considering CarLink Rentals, and we hope to serve you again in the future.\n\nBest regards,\nThe CarLink Rentals Team", bookingRef),
		clientEmail)

	return &booking, nil
}

// UpdateBooking overwrites the mutable fields of a booking in one pass.
func UpdateBooking(bookingID uint, params *types.UpdateBookingRequestBody) (*models.Booking, error) {
	pickupDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.PickupDate)
	if err != nil {
		return nil, &types.ValidationError{Message: "Invalid pickup date"}
	}
	returnDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.ReturnDate)
	if err != nil {
		return nil, &types.ValidationError{Message: "Invalid return date"}
	}

	conn := db.GetDb()
	res := conn.
		Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]any{
			"car_id":            params.CarID,
			"name":              params.Name,
			"email":             params.Email,
			"phone":             params.Phone,
			"pickup_location":   params.PickupLocation,
			"pickup_date":       pickupDate,
			"pickup_time":       params.PickupTime,
			"return_location":   params.ReturnLocation,
			"return_date":       returnDate,
			"return_time":       params.ReturnTime,
			"rental_type":       params.RentalType,
			"additionalrequest": params.AdditionalRequest,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &types.NotFoundError{Message: "Booking not found"}
	}

	var updated models.Booking
	if err := conn.
		Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		First(&updated).
		Error; err != nil {
		return nil, err
	}

	bookingRef := utils.FormatID(bookingID)
	NotifyClient(params.UserID, bookingID, "Booking Updated.",
		fmt.Sprintf("Booking:%s has been updated successfully. Please wait for response.", bookingRef))
	NotifyAdmin(params.UserID, bookingID, "Client Updated Booking.",
		fmt.Sprintf("Booking:%s has its details updated by its user, please review it.", bookingRef))
	mailer.SendNotif("Booking Update Confirmation",
		fmt.Sprintf("Hello,\n\nWe're writing to let you know that your booking (ID: %s) has been successfully updated.\n\nOur team is currently reviewing the changes, and we will notify you once the evaluation is complete. If you have any questions or need further assistance, please feel free to reach out.\n\nBest regards,\nThe CarLink Rentals Team", bookingRef),
		params.Email)

	return &updated, nil
}

// UploadReceipt stores the proof-of-payment bytes verbatim.
func UploadReceipt(bookingID uint, fileBytes []byte, userID uint, clientEmail string) error {
	if len(fileBytes) == 0 {
		return &types.ValidationError{Message: "No file uploaded"}
	}
	if !utils.IsJPEG(fileBytes) {
		return &types.ValidationError{Message: "Only JPEG and JPG files are allowed!"}
	}
	res := db.GetDb().
		Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		Update("receipt", fileBytes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &types.NotFoundError{Message: "Booking not found"}
	}

	bookingRef := utils.FormatID(bookingID)
	NotifyClient(userID, bookingID, "Proof of Payment Submitted.",
		fmt.Sprintf("Success: Your Proof of Payment for Booking:%s has been successfully submitted. Please wait for further notice.", bookingRef))
	NotifyAdmin(userID, bookingID, "Proof of Payment Received",
		fmt.Sprintf("Booking:%s has its Proof of Payment submitted.", bookingRef))
	mailer.SendNotif("Proof of Payment Submitted",
		fmt.Sprintf("Hello,\n\nThank you for submitting your proof of payment for Booking ID: %s.\n\nYour submission has been received successfully. Please allow some time for verification. We will notify you once the payment has been confirmed.\n\nBest regards,\nThe CarLink Rentals Team", bookingRef),
		clientEmail)
	return nil
}

// GetOccupiedDates lists the date ranges of Confirmed bookings for a
// car. Pending and Cancelled bookings do not block the calendar.
func GetOccupiedDates(carID uint) ([]types.OccupiedDateRange, error) {
	var bookings []models.Booking
	err := db.GetDb().
		Model(&models.Booking{}).
		Select("pickup_date", "return_date").
		Where("car_id = ? AND status = ?", carID, models.BookingStatusConfirmed).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	occupied := make([]types.OccupiedDateRange, 0, len(bookings))
	for _, b := range bookings {
		occupied = append(occupied, types.OccupiedDateRange{StartDate: b.PickupDate, EndDate: b.ReturnDate})
	}
	return occupied, nil
}

// GetBooking fetches a single booking row.
func GetBooking(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := db.GetDb().
		Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		First(&booking).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Message: "Booking not found"}
		}
		return nil, err
	}
	return &booking, nil
}

// GetUserBookings lists a user's bookings newest first, with the car
// preloaded for brand/model display.
func GetUserBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.GetDb().
		Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Preload("Car").
		Order("created_at DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
