package service

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced entity id does not resolve to
// an existing row.
var ErrNotFound = errors.New("not found")

// notFoundOr maps a missing-record lookup error to ErrNotFound and passes
// everything else through.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
