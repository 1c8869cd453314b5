package controllers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"carlink/src/config"
	"carlink/src/db"
	"carlink/src/lib"
	"carlink/src/lib/mailer"
	"carlink/src/models"
	"carlink/src/types"
	"carlink/src/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultProfileImagePath = "pfp/users/DefaultProfile.jpg"

// RequestOtp generates a 6-digit code for an unregistered email, stores
// it in the volatile OTP store and emails it. A process restart loses
// pending codes; the client simply requests a new one.
func RequestOtp(email string) error {
	if email == "" {
		return &types.ValidationError{Message: "Email is required"}
	}
	var count int64
	if err := db.GetDb().
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).
		Error; err != nil {
		return err
	}
	if count > 0 {
		return &types.ConflictError{Message: "Email is already registered."}
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	lib.GetOTPStore().Put(email, otp)
	mailer.SendPlain("Your OTP Code",
		fmt.Sprintf("Your OTP is: %s. Please use this OTP to proceed with your action.", otp),
		email)
	return nil
}

// ValidateOtp consumes a pending code. Single use: the stored code is
// deleted on a successful match.
func ValidateOtp(email string, otp string) error {
	if email == "" || otp == "" {
		return &types.ValidationError{Message: "Email and OTP are required"}
	}
	stored, ok := lib.GetOTPStore().Get(email)
	if !ok {
		return &types.ValidationError{Message: "No OTP found for this email. Please request a new OTP."}
	}
	if stored != otp {
		return &types.ValidationError{Message: "Invalid OTP"}
	}
	lib.GetOTPStore().Delete(email)
	return nil
}

// Register creates a user with a bcrypt-hashed password after the
// uniqueness and complexity checks pass. The default profile image is
// attached when readable; registration proceeds without one otherwise.
func Register(params *types.SignUpRequestBody) (uint, error) {
	if params.Name == "" || params.Email == "" || params.Password == "" || params.MobileNumber == "" {
		return 0, &types.ValidationError{Message: "All fields are required"}
	}
	if !utils.ValidatePassword(params.Password) {
		return 0, &types.ValidationError{Message: utils.PasswordPolicyMessage()}
	}

	conn := db.GetDb()
	var count int64
	if err := conn.
		Model(&models.User{}).
		Where("email = ?", params.Email).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, &types.ConflictError{Message: "Email already exists"}
	}
	if err := conn.
		Model(&models.User{}).
		Where("phonenumber = ?", params.MobileNumber).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, &types.ConflictError{Message: "Mobile number already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), 10)
	if err != nil {
		return 0, err
	}

	pfp, err := os.ReadFile(defaultProfileImagePath)
	if err != nil {
		log.Printf("Default profile image unavailable: %s\n", err.Error())
		pfp = nil
	}

	user := models.User{
		Name:        params.Name,
		Email:       params.Email,
		Password:    string(hashed),
		PhoneNumber: params.MobileNumber,
		Gender:      "Not Set",
		UsersPfp:    pfp,
	}
	if err := conn.Create(&user).Error; err != nil {
		return 0, err
	}

	mailer.SendNotif("Welcome to CarLink Rentals!",
		fmt.Sprintf("Hello %s,\n\nWelcome to CarLink Rentals! We're thrilled to have you on board.\n\nStart exploring our platform to find reliable car rental options tailored to your needs. If you have any questions, feel free to reach out.\n\nBest regards,\nThe CarLink Rentals Team", params.Name),
		params.Email)

	return user.ID, nil
}

// SignIn verifies the credentials and returns the user (password never
// serialized) together with a session token.
func SignIn(email string, password string) (*models.User, string, error) {
	var user models.User
	err := db.GetDb().
		Model(&models.User{}).
		Where("email = ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", &types.NotFoundError{Message: "User not found"}
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", &types.AuthError{Message: "Invalid password"}
	}
	token, err := utils.GenerateJWT(user.Email, user.ID)
	if err != nil {
		return nil, "", err
	}
	user.Password = ""
	return &user, token, nil
}

// ChangePassword re-authenticates with the current password before
// overwriting the stored hash.
func ChangePassword(userID uint, currentPassword string, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return &types.ValidationError{Message: "Current password and new password are required."}
	}
	if !utils.ValidatePassword(newPassword) {
		return &types.ValidationError{Message: utils.PasswordPolicyMessage()}
	}

	conn := db.GetDb()
	var user models.User
	err := conn.
		Model(&models.User{}).
		Select("id", "password").
		Where("id = ?", userID).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Message: "User not found."}
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return &types.AuthError{Message: "Current password is incorrect."}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), 10)
	if err != nil {
		return err
	}
	return conn.
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", string(hashed)).
		Error
}

// RequestPasswordReset stores a high-entropy single-use token with a
// one-hour expiry on the user row and emails the reset link.
func RequestPasswordReset(email string) error {
	conn := db.GetDb()
	var user models.User
	err := conn.
		Model(&models.User{}).
		Select("id").
		Where("email = ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Message: "No user found with this email"}
		}
		return err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(time.Hour)
	if err := conn.
		Model(&models.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		}).
		Error; err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.FrontendBaseURL(), token)
	mailer.SendRich("Password Reset Request",
		fmt.Sprintf(`<p>You have requested to reset your password.</p><p>Please click the link below to reset your password:</p><p><a href="%s" style="padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px;">Reset Password</a></p><p>This link will expire in 1 hour.</p><p>If you didn't request this reset, please ignore this email.</p>`, resetLink),
		email)
	return nil
}

// ResetPassword redeems a reset token. Token value and expiry are
// checked together; the token fields are cleared on success.
func ResetPassword(token string, newPassword string) error {
	if token == "" || newPassword == "" {
		return &types.ValidationError{Message: "Reset token and new password are required"}
	}
	if !utils.ValidatePassword(newPassword) {
		return &types.ValidationError{Message: utils.PasswordPolicyMessage()}
	}

	conn := db.GetDb()
	var user models.User
	err := conn.
		Model(&models.User{}).
		Select("id").
		Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.ValidationError{Message: "Invalid or expired reset token"}
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), 10)
	if err != nil {
		return err
	}
	return conn.
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password":           string(hashed),
			"reset_token":        nil,
			"reset_token_expiry": nil,
		}).
		Error
}
