package domain

import (
	"github.com/google/uuid"

	dErrors "markethub/pkg/domain-errors"
)

// Typed UUID identifiers. Distinct named types keep aggregate IDs from being
// swapped for one another at compile time.
type (
	UserID    uuid.UUID
	RequestID uuid.UUID
	OrderID   uuid.UUID
	ReviewID  uuid.UUID
	AddressID uuid.UUID
	ShopID    uuid.UUID
	SessionID uuid.UUID
	ReturnID  uuid.UUID
)

func parseUUID(raw string, kind string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" ID must not be empty")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" ID must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" ID must not be the nil UUID")
	}
	return parsed, nil
}

// ParseUserID validates and converts a raw string into a UserID.
func ParseUserID(raw string) (UserID, error) {
	parsed, err := parseUUID(raw, "user")
	if err != nil {
		return UserID{}, err
	}
	return UserID(parsed), nil
}

// ParseRequestID validates and converts a raw string into a RequestID.
func ParseRequestID(raw string) (RequestID, error) {
	parsed, err := parseUUID(raw, "request")
	if err != nil {
		return RequestID{}, err
	}
	return RequestID(parsed), nil
}

// ParseSessionID validates and converts a raw string into a SessionID.
func ParseSessionID(raw string) (SessionID, error) {
	parsed, err := parseUUID(raw, "session")
	if err != nil {
		return SessionID{}, err
	}
	return SessionID(parsed), nil
}

// ParseShopID validates and converts a raw string into a ShopID.
func ParseShopID(raw string) (ShopID, error) {
	parsed, err := parseUUID(raw, "shop")
	if err != nil {
		return ShopID{}, err
	}
	return ShopID(parsed), nil
}

func (id UserID) String() string    { return uuid.UUID(id).String() }
func (id RequestID) String() string { return uuid.UUID(id).String() }
func (id OrderID) String() string   { return uuid.UUID(id).String() }
func (id ReviewID) String() string  { return uuid.UUID(id).String() }
func (id AddressID) String() string { return uuid.UUID(id).String() }
func (id ShopID) String() string    { return uuid.UUID(id).String() }
func (id SessionID) String() string { return uuid.UUID(id).String() }
func (id ReturnID) String() string  { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id RequestID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id OrderID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id ReviewID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id AddressID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ShopID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ReturnID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders IDs as canonical UUID strings in JSON and text
// encodings; named types do not inherit uuid.UUID's methods.
func (id UserID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id RequestID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id OrderID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id ReviewID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id AddressID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id ShopID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id SessionID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id ReturnID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }

func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = UserID(parsed)
	return nil
}

func (id *RequestID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = RequestID(parsed)
	return nil
}

func (id *SessionID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return err
	}
	*id = SessionID(parsed)
	return nil
}

// NewUserID allocates a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewRequestID allocates a fresh random RequestID.
func NewRequestID() RequestID { return RequestID(uuid.New()) }

// NewSessionID allocates a fresh random SessionID.
func NewSessionID() SessionID { return SessionID(uuid.New()) }
