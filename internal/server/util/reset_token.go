package util

import (
	"errors"
	"time"

	"github.com/emerginginv/traceaid/internal/db"
)

var (
	ErrResetExpired  = errors.New("reset request expired")
	ErrResetConsumed = errors.New("reset request already used")
)

// ValidateResetRequest checks that a password reset request is still usable.
// A request is single-use and hard-expires at its deadline.
func ValidateResetRequest(req db.PasswordResetRequest, now time.Time) error {
	if req.ConsumedAt != nil {
		return ErrResetConsumed
	}
	if !now.Before(req.ExpiresAt) {
		return ErrResetExpired
	}
	return nil
}
