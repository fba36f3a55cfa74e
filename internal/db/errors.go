package db

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no quest row matches the requested id.
var ErrNotFound = errors.New("quest not found")

// ErrConstraint is returned when an insert or update violates a table
// constraint, e.g. a chain_id that references no existing quest.
var ErrConstraint = errors.New("constraint violation")

// InvalidEncodingError reports a stored status or tier integer outside its
// defined range. It indicates the database is inconsistent.
type InvalidEncodingError struct {
	Field string
	Value int64
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid %s encoding %d: database is inconsistent", e.Field, e.Value)
}

// constraintErr maps driver-level constraint failures onto ErrConstraint.
func constraintErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "constraint failed") || strings.Contains(msg, "FOREIGN KEY") {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
