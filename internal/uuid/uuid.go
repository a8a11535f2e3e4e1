// Package uuid wraps google/uuid so that ids can be bound from path and
// query parameters by gin.
package uuid

import (
	"errors"
	"fmt"

	google_uuid "github.com/google/uuid"
)

var ErrInvalidUUID = errors.New("not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements gin's BindUnmarshaler. An empty parameter
// binds to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalidUUID, p)
	}

	*u = UUID{parsed}
	return nil
}

// Ptr returns a pointer to the id, or nil for Nil. Absent parameters
// therefore do not restrict filters.
func (u UUID) Ptr() *google_uuid.UUID {
	if u == Nil {
		return nil
	}

	id := u.UUID
	return &id
}
