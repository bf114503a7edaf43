package util

import (
	"encoding/json"
	"testing"

	"github.com/emerginginv/traceaid/pkg/linkgraph"
)

func TestNormalizeSubjectDetailsStripsBlanks(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"phone":"555-0101","email":"","notes":""}`)
	out, err := NormalizeSubjectDetails(linkgraph.Person, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if m["phone"] != "555-0101" {
		t.Fatalf("phone = %v, want 555-0101", m["phone"])
	}
	if _, ok := m["email"]; ok {
		t.Fatalf("blank email should be stripped, got %v", m["email"])
	}
	if _, ok := m["notes"]; ok {
		t.Fatalf("blank notes should be stripped")
	}
}

func TestNormalizeSubjectDetailsEmpty(t *testing.T) {
	t.Parallel()

	out, err := NormalizeSubjectDetails(linkgraph.Vehicle, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "{}" {
		t.Fatalf("got %q, want %q", string(out), "{}")
	}
}

func TestNormalizeSubjectDetailsRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		category linkgraph.Category
		raw      string
	}{
		{"person with plate", linkgraph.Person, `{"license_plate":"ABC123"}`},
		{"vehicle with dob", linkgraph.Vehicle, `{"date_of_birth":"1990-01-01"}`},
		{"location with vin", linkgraph.Location, `{"vin":"1HGBH41JXMN109186"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NormalizeSubjectDetails(tc.category, json.RawMessage(tc.raw))
			if err == nil {
				t.Fatalf("expected error for %s", tc.raw)
			}
		})
	}
}

func TestNormalizeSubjectDetailsUnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := NormalizeSubjectDetails(linkgraph.Category("alien"), json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestNormalizeSubjectDetailsRoundTrip(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"make":"Toyota","model":"Camry","year":2018,"license_plate":"XYZ789"}`)
	out, err := NormalizeSubjectDetails(linkgraph.Vehicle, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var details VehicleDetails
	if err := json.Unmarshal(out, &details); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Make != "Toyota" || details.Model != "Camry" || details.Year != 2018 {
		t.Fatalf("round trip lost fields: %+v", details)
	}
	if details.LicensePlate != "XYZ789" {
		t.Fatalf("license plate = %q, want XYZ789", details.LicensePlate)
	}
}
