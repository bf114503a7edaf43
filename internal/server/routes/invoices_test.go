package routes

import (
	"slices"
	"testing"
)

func TestInvoiceTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{"draft", "sent", true},
		{"draft", "void", true},
		{"draft", "paid", false},
		{"sent", "paid", true},
		{"sent", "void", true},
		{"sent", "draft", false},
		{"paid", "void", false},
		{"paid", "sent", false},
		{"void", "sent", false},
		{"void", "paid", false},
	}

	for _, tt := range tests {
		got := slices.Contains(invoiceTransitions[tt.from], tt.to)
		if got != tt.allowed {
			t.Errorf("transition %s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestInvoiceTransitionsTerminalStates(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"paid", "void"} {
		if len(invoiceTransitions[status]) != 0 {
			t.Errorf("%s should be terminal, allows %v", status, invoiceTransitions[status])
		}
	}
}
