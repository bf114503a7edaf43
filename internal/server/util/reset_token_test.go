package util

import (
	"testing"
	"time"

	"github.com/emerginginv/traceaid/internal/db"
)

func TestValidateResetRequest(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	used := now.Add(-time.Hour)

	cases := []struct {
		name string
		req  db.PasswordResetRequest
		want error
	}{
		{
			name: "valid",
			req:  db.PasswordResetRequest{ExpiresAt: now.Add(time.Hour)},
			want: nil,
		},
		{
			name: "expired",
			req:  db.PasswordResetRequest{ExpiresAt: now.Add(-time.Minute)},
			want: ErrResetExpired,
		},
		{
			name: "expires exactly now",
			req:  db.PasswordResetRequest{ExpiresAt: now},
			want: ErrResetExpired,
		},
		{
			name: "consumed",
			req:  db.PasswordResetRequest{ExpiresAt: now.Add(time.Hour), ConsumedAt: &used},
			want: ErrResetConsumed,
		},
		{
			name: "consumed and expired reports consumed",
			req:  db.PasswordResetRequest{ExpiresAt: now.Add(-time.Hour), ConsumedAt: &used},
			want: ErrResetConsumed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateResetRequest(tc.req, now); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
