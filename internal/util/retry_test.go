package util

import (
	"errors"
	"testing"
)

func TestRetryErr(t *testing.T) {
	t.Parallel()

	t.Run("succeeds_after_failures", func(t *testing.T) {
		calls := 0
		err := RetryErr(3, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Fatalf("got %d calls, want 3", calls)
		}
	})

	t.Run("returns_last_error_when_exhausted", func(t *testing.T) {
		wantErr := errors.New("still broken")
		err := RetryErr(2, func() error {
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("got %v, want %v", err, wantErr)
		}
	})

	t.Run("zero_tries_defaults_to_one", func(t *testing.T) {
		calls := 0
		_ = RetryErr(0, func() error {
			calls++
			return errors.New("nope")
		})
		if calls != 1 {
			t.Fatalf("got %d calls, want 1", calls)
		}
	})
}
