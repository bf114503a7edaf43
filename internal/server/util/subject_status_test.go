package util

import "testing"

func TestCanArchive(t *testing.T) {
	t.Parallel()

	if err := CanArchive("active"); err != nil {
		t.Fatalf("active subject should be archivable, got %v", err)
	}
	if err := CanArchive("archived"); err != ErrAlreadyArchived {
		t.Fatalf("got %v, want ErrAlreadyArchived", err)
	}
}

func TestCanUnarchive(t *testing.T) {
	t.Parallel()

	if err := CanUnarchive("archived"); err != nil {
		t.Fatalf("archived subject should be restorable, got %v", err)
	}
	if err := CanUnarchive("active"); err != ErrNotArchived {
		t.Fatalf("got %v, want ErrNotArchived", err)
	}
}
