package utils

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancellationFeeSchedule(t *testing.T) {
	cases := []struct {
		days float64
		fee  float64
	}{
		{-1, 100},
		{-0.01, 100},
		{0, 50},
		{0.5, 50},
		{0.99, 50},
		{1, 20},
		{3, 20},
		{6.99, 20},
		{7, 0},
		{10, 0},
	}
	for _, c := range cases {
		assert.Equalf(t, c.fee, CancellationFee(100, c.days), "days=%v", c.days)
	}
}

func TestCancellationFeeScalesWithPrice(t *testing.T) {
	assert.Equal(t, 250.0, CancellationFee(500, 0.5))
	assert.Equal(t, 100.0, CancellationFee(500, 3))
}

func TestDaysBeforePickup(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pickup := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 3.0, DaysBeforePickup(pickup, now))
	assert.Equal(t, -3.0, DaysBeforePickup(now, pickup))
}

func TestValidatePasswordStrict(t *testing.T) {
	assert.True(t, ValidatePasswordWithPolicy("Abcdefg1", "strict"))
	assert.False(t, ValidatePasswordWithPolicy("abcdefg1", "strict"))
	assert.False(t, ValidatePasswordWithPolicy("ABCDEFG1", "strict"))
	assert.False(t, ValidatePasswordWithPolicy("Abcdefgh", "strict"))
	assert.False(t, ValidatePasswordWithPolicy("Abcdef1", "strict"))
}

func TestValidatePasswordBasic(t *testing.T) {
	assert.True(t, ValidatePasswordWithPolicy("abcde", "basic"))
	assert.False(t, ValidatePasswordWithPolicy("abcd", "basic"))
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		assert.NoError(t, err)
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.Len(t, token, 64)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)

	other, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "00000000042", FormatID(42))
	assert.Equal(t, "00000012345", FormatID(12345))
}

func TestIsJPEG(t *testing.T) {
	assert.True(t, IsJPEG([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}))
	assert.False(t, IsJPEG([]byte("\x89PNG\r\n\x1a\n")))
	assert.False(t, IsJPEG([]byte("GIF89a")))
	assert.False(t, IsJPEG([]byte{0xFF, 0xD8}))
	assert.False(t, IsJPEG(nil))
}
