package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	id "markethub/pkg/domain"
)

// Role classifies what a user can do on the marketplace.
type Role string

const (
	RoleBuyer      Role = "buyer"
	RoleSeller     Role = "seller"
	RoleAdmin      Role = "admin"
	RoleSupport    Role = "support"
	RoleCompliance Role = "compliance"
)

// Status is the account lifecycle state.
type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusVerified            Status = "verified"
	StatusSuspended           Status = "suspended"
	StatusDeleted             Status = "deleted"
)

// User is the primary identity aggregate. Persistence lives behind the
// UserStore interface consumed by services.
type User struct {
	ID           id.UserID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
	Status       Status
	Anonymized   bool
	AnonymizedAt *time.Time
	CreatedAt    time.Time
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword reports whether plain matches the stored hash.
func (u *User) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// ApplyAnonymization irreversibly scrubs personally identifying fields using
// the deterministic suffix derived from the user ID. Running it on an already
// anonymized user changes nothing, so retried deletions stay safe.
func (u *User) ApplyAnonymization(suffix string, now time.Time) {
	if u.Anonymized {
		return
	}
	u.Email = "deleted-" + suffix + "@anonymized.invalid"
	u.FirstName = "Deleted"
	u.LastName = "User " + suffix
	u.PasswordHash = ""
	u.Status = StatusDeleted
	u.Anonymized = true
	u.AnonymizedAt = &now
}
