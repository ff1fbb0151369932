package model

import "time"

// User represents a registered Fantamatto player.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	TotalPoints  int64
	IsActive     bool
	CreatedAt    time.Time
}

// UserUpdate carries a partial set of user fields to change.
// Nil fields are left untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	TotalPoints  *int64
	IsActive     *bool
}

// IsEmpty reports whether the update contains no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.PasswordHash == nil && u.TotalPoints == nil && u.IsActive == nil
}

// UserChanges carries a partial user mutation with the password still in
// plaintext; the directory service hashes it before touching storage.
type UserChanges struct {
	Username    *string
	Password    *string
	TotalPoints *int64
	IsActive    *bool
}
