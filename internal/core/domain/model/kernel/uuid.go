package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is an immutable random (version 4) identifier. Package IDs minted by the
// generator are UUIDs; the rest of the system treats them as opaque tokens.
//
// The zero value is invalid and fails Validate.
//
// Example:
//
//	id := kernel.NewUUID()
//	fmt.Println(id) // e.g. "550e8400-e29b-41d4-a716-446655440000"
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn and hyphen-less forms
// accepted by github.com/google/uuid.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// MarshalText encodes the UUID in canonical form, so it serializes as a JSON string.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
