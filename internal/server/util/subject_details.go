package util

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/emerginginv/traceaid/pkg/linkgraph"
)

// Per-category detail payloads. Blank optional fields are stripped on
// normalization so stored details only carry what was actually entered.

type PersonDetails struct {
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Employer    string `json:"employer,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type VehicleDetails struct {
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	Color        string `json:"color,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
	VIN          string `json:"vin,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type LocationDetails struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type ItemDetails struct {
	SerialNumber string `json:"serial_number,omitempty"`
	Description  string `json:"description,omitempty"`
	Value        int64  `json:"value_cents,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// NormalizeSubjectDetails validates raw details against the category's typed
// payload and re-encodes them, dropping blank fields. Unknown keys are
// rejected rather than silently stored.
func NormalizeSubjectDetails(category linkgraph.Category, raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return json.RawMessage(`{}`), nil
	}

	var target any
	switch category {
	case linkgraph.Person:
		target = &PersonDetails{}
	case linkgraph.Vehicle:
		target = &VehicleDetails{}
	case linkgraph.Location:
		target = &LocationDetails{}
	case linkgraph.Item:
		target = &ItemDetails{}
	default:
		return nil, fmt.Errorf("unknown subject type: %s", category)
	}

	if err := unmarshalStrict(raw, target); err != nil {
		return nil, err
	}

	out, err := json.Marshal(target)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func unmarshalStrict(raw json.RawMessage, target any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
