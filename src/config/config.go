package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const DATE_PARSE_FORMAT = "2006-01-02"

// PasswordPolicy selects the complexity rules applied at registration,
// password change and reset. "strict" requires upper+lower+digit and a
// minimum of 8 characters; "basic" only requires 5 characters.
func PasswordPolicy() string {
	policy := os.Getenv("PASSWORD_POLICY")
	if policy == "" {
		return "strict"
	}
	return policy
}

func FrontendBaseURL() string {
	if url := os.Getenv("CLIENT_APP_URL"); url != "" {
		return url
	}
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}

func CaptchaVerifyURL() string {
	if url := os.Getenv("CAPTCHA_VERIFY_URL"); url != "" {
		return url
	}
	return "https://api.friendlycaptcha.com/api/v1/siteverify"
}
