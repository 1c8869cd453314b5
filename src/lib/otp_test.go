package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTPStoreRoundTrip(t *testing.T) {
	store := NewMemoryOTPStore()
	store.Put("someone@example.com", "123456")

	code, ok := store.Get("someone@example.com")
	assert.True(t, ok)
	assert.Equal(t, "123456", code)

	store.Delete("someone@example.com")
	_, ok = store.Get("someone@example.com")
	assert.False(t, ok)
}

func TestOTPStoreLastWriteWins(t *testing.T) {
	store := NewMemoryOTPStore()
	store.Put("someone@example.com", "111111")
	store.Put("someone@example.com", "222222")

	code, ok := store.Get("someone@example.com")
	assert.True(t, ok)
	assert.Equal(t, "222222", code)
}

func TestOTPStoreUnknownEmail(t *testing.T) {
	store := NewMemoryOTPStore()
	_, ok := store.Get("nobody@example.com")
	assert.False(t, ok)
}
