package linkgraph

import "testing"

func TestLinkTypesForDeclaredPairs(t *testing.T) {
	t.Parallel()

	for pair, want := range vocabulary {
		got := LinkTypesFor(pair.source, pair.target)
		if len(got) == 0 {
			t.Errorf("LinkTypesFor(%s, %s) returned empty list", pair.source, pair.target)
			continue
		}
		if got[0] != want[0] {
			t.Errorf("default for (%s, %s) = %q, want %q", pair.source, pair.target, got[0], want[0])
		}
		if DefaultLinkType(pair.source, pair.target) != got[0] {
			t.Errorf("DefaultLinkType(%s, %s) disagrees with first element", pair.source, pair.target)
		}
	}
}

func TestLinkTypesForFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source Category
		target Category
	}{
		{name: "undeclared_same_category_pair", source: Vehicle, target: Vehicle},
		{name: "unknown_category", source: Category("drone"), target: Person},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := LinkTypesFor(tc.source, tc.target)
			if len(got) != 1 || got[0] != "Associated" {
				t.Fatalf(`LinkTypesFor(%s, %s) = %v, want ["Associated"]`, tc.source, tc.target, got)
			}
		})
	}
}

func TestLinkTypesForReturnsCopy(t *testing.T) {
	t.Parallel()

	got := LinkTypesFor(Person, Vehicle)
	got[0] = "mutated"
	again := LinkTypesFor(Person, Vehicle)
	if again[0] == "mutated" {
		t.Fatal("LinkTypesFor exposes internal vocabulary slice")
	}
}
