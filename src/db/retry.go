package db

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"carlink/src/types"

	"github.com/jackc/pgx/v5/pgconn"
)

// Retry policy for transient connection faults. Only the live client
// notification path wraps its writes in Retry; plain queries elsewhere
// propagate errors unretried.

const (
	retryMaxAttempts = 2
	retryBaseDelay   = 200 * time.Millisecond
)

// Connection and administrative-shutdown SQLSTATE codes worth a retry.
var retryableCodes = map[string]bool{
	"08000": true, // connection_exception
	"08001": true, // sqlclient_unable_to_establish_sqlconnection
	"08003": true, // connection_does_not_exist
	"08004": true, // sqlserver_rejected_establishment_of_sqlconnection
	"08006": true, // connection_failure
	"57P01": true, // admin_shutdown
	"57P02": true, // crash_shutdown
	"57P03": true, // cannot_connect_now
}

var retryableMessages = []string{
	"connection reset",
	"connection refused",
	"broken pipe",
	"unexpected eof",
	"terminating connection",
}

func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && retryableCodes[pgErr.Code] {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, sub := range retryableMessages {
		if strings.Contains(msg, sub) {
			return true
		}
	}
	return false
}

// Retry runs op, retrying up to retryMaxAttempts additional times on
// retryable errors with linearly increasing delay. Non-retryable errors
// propagate immediately.
func Retry(op func() error) error {
	return retryWithDelay(op, retryBaseDelay)
}

func retryWithDelay(op func() error, delay time.Duration) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		if attempt >= retryMaxAttempts {
			break
		}
		wait := delay * time.Duration(attempt+1)
		log.Printf("[retry] transient store error (attempt %d): %s\n", attempt+1, err.Error())
		time.Sleep(wait)
	}
	return &types.TransientStoreError{
		Message: fmt.Sprintf("store unavailable after %d attempts: %s", retryMaxAttempts+1, err.Error()),
		Err:     err,
	}
}
