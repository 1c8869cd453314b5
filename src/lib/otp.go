package lib

import "sync"

// OTPStore holds pending email-verification codes. The contract is
// deliberately tiny so a later deployment can back it with an external
// cache without touching the auth workflows. The default implementation
// is process memory: pending codes are lost on restart, and concurrent
// requests for the same email overwrite each other (last write wins).
type OTPStore interface {
	Put(email string, code string)
	Get(email string) (string, bool)
	Delete(email string)
}

type memoryOTPStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func NewMemoryOTPStore() OTPStore {
	return &memoryOTPStore{codes: make(map[string]string)}
}

func (s *memoryOTPStore) Put(email string, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = code
}

func (s *memoryOTPStore) Get(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[email]
	return code, ok
}

func (s *memoryOTPStore) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
}

var otpStore OTPStore = NewMemoryOTPStore()

func GetOTPStore() OTPStore {
	return otpStore
}

// NewOTPStore replaces the process-wide store, for custom backends.
func NewOTPStore(s OTPStore) OTPStore {
	otpStore = s
	return otpStore
}
