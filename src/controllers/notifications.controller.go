package controllers

import (
	"fmt"
	"html/template"
	"log"

	"carlink/src/db"
	"carlink/src/lib"
	"carlink/src/lib/mailer"
	"carlink/src/models"
	"carlink/src/types"

	"github.com/google/uuid"
)

// The dispatcher is best-effort by contract: a failed insert, push or
// email must never alter the outcome of the lifecycle operation that
// triggered it. Every error stops at this boundary.

// NotifyClient writes a durable client notification and then pushes the
// fresh record to any live session in the user's room. The durable
// insert is wrapped in the transient-fault retry policy.
func NotifyClient(userID uint, bookingID uint, title string, message string) {
	notif := models.ClientNotification{
		UserID:    userID,
		BookingID: bookingID,
		Title:     title,
		Message:   message,
	}
	err := db.Retry(func() error {
		return db.GetDb().Create(&notif).Error
	})
	if err != nil {
		log.Printf("Error sending client notification: %s\n", err.Error())
		return
	}
	lib.PushToUser(userID, "notification", &notif)
}

// NotifyAdmin writes a durable admin notification.
func NotifyAdmin(userID uint, bookingID uint, title string, message string) {
	notif := models.AdminNotification{
		UserID:    userID,
		BookingID: bookingID,
		Title:     title,
		Message:   message,
	}
	if err := db.GetDb().Create(&notif).Error; err != nil {
		log.Printf("Error sending admin notification: %s\n", err.Error())
	}
}

// CreateClientNotification services the direct message-confirm surface.
func CreateClientNotification(userID uint, bookingID uint, title string, message string) (*models.ClientNotification, error) {
	if userID == 0 || title == "" || message == "" {
		return nil, &types.ValidationError{Message: "Missing required fields"}
	}
	notif := models.ClientNotification{
		UserID:    userID,
		BookingID: bookingID,
		Title:     title,
		Message:   message,
	}
	if err := db.GetDb().Create(&notif).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

func CreateAdminNotification(userID uint, title string, message string) (*models.AdminNotification, error) {
	if userID == 0 || title == "" || message == "" {
		return nil, &types.ValidationError{Message: "Missing required fields"}
	}
	notif := models.AdminNotification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := db.GetDb().Create(&notif).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

// SendInquiry validates the captcha with the external verifier before
// any send attempt, then emails the inquiry to the operator and a
// confirmation to the submitter.
func SendInquiry(params *types.SendInquiryRequestBody) (string, error) {
	if params.CaptchaSolution == "" {
		return "", &types.ValidationError{Message: "Captcha solution is required"}
	}
	verification := lib.VerifyCaptcha(params.CaptchaSolution)
	if !verification.Success {
		return "", &types.CaptchaError{Message: "Captcha verification failed", Details: verification.Errors}
	}

	reference := uuid.NewString()
	name := template.HTMLEscapeString(params.Name)
	inquiryBody, err := mailer.RenderNotification(
		fmt.Sprintf("New Inquiry from %s", name),
		fmt.Sprintf("<p>You have a new inquiry from:</p><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p><strong>Inquiry:</strong> %s</p><p><strong>Reference:</strong> %s</p>",
			name, template.HTMLEscapeString(params.Email), template.HTMLEscapeString(params.Phone), template.HTMLEscapeString(params.Inquiry), reference),
	)
	if err != nil {
		return "", err
	}
	if err := mailer.SendHTML(fmt.Sprintf("New Inquiry from %s", name), inquiryBody, lib.SMTPSender()); err != nil {
		return "", err
	}

	confirmationBody, err := mailer.RenderNotification(
		"Inquiry Received",
		fmt.Sprintf("<p>Dear %s,</p><p>Your inquiry has been received by CarLink Rentals. We appreciate your interest and will review your message promptly.</p><p>Your reference number is %s. We aim to respond to all inquiries within 24-48 hours.</p><p>Thank you for choosing CarLink Rentals.</p>", name, reference),
	)
	if err != nil {
		return "", err
	}
	if err := mailer.SendHTML("Inquiry Received - CarLink Rentals", confirmationBody, params.Email); err != nil {
		return "", err
	}
	return reference, nil
}
