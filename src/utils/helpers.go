package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"time"
	"unicode"

	"carlink/src/config"
	"carlink/src/types"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// CancellationFee computes the fee owed for cancelling a booking with
// the given quoted price, daysBeforePickup days ahead of the pickup
// date. Negative days means the pickup already passed.
func CancellationFee(price float64, daysBeforePickup float64) float64 {
	switch {
	case daysBeforePickup < 0:
		return price
	case daysBeforePickup < 1:
		return price * 0.50
	case daysBeforePickup < 7:
		return price * 0.20
	default:
		return 0
	}
}

// DaysBeforePickup is the fractional number of days between now and the
// pickup date.
func DaysBeforePickup(pickupDate time.Time, now time.Time) float64 {
	return pickupDate.Sub(now).Hours() / 24
}

// IsJPEG reports whether data carries the JPEG SOI marker. Uploaded
// images are sniffed rather than trusting the client's content type.
func IsJPEG(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF
}

// ValidatePassword applies the configured complexity policy.
func ValidatePassword(password string) bool {
	return ValidatePasswordWithPolicy(password, config.PasswordPolicy())
}

func ValidatePasswordWithPolicy(password string, policy string) bool {
	if policy == "basic" {
		return len(password) >= 5
	}
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

func PasswordPolicyMessage() string {
	if config.PasswordPolicy() == "basic" {
		return "Password must be at least 5 characters long."
	}
	return "Password must contain at least one uppercase letter, one lowercase letter, one number, and be at least 8 characters long."
}

// GenerateOTP returns a 6-digit numeric code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// GenerateResetToken returns a 32-byte random value as hex.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// FormatID zero-pads an identifier to 11 characters for display in
// notification and email copy.
func FormatID(id uint) string {
	return fmt.Sprintf("%011d", id)
}

func GenerateJWT(email string, userId uint) (string, error) {
	claims := types.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userId),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(jwtKey)
}
