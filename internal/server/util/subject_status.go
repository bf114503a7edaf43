package util

import "errors"

var (
	ErrAlreadyArchived = errors.New("subject is already archived")
	ErrNotArchived     = errors.New("subject is not archived")
)

// CanArchive reports whether a subject in the given status may be archived.
func CanArchive(status string) error {
	if status == "archived" {
		return ErrAlreadyArchived
	}
	return nil
}

// CanUnarchive reports whether a subject in the given status may be restored.
func CanUnarchive(status string) error {
	if status != "archived" {
		return ErrNotArchived
	}
	return nil
}
