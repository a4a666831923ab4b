// Package user contains the account aggregate: the user identity with its
// staff flag and the profile attached to every account.
package user

import (
	"fmt"
	"net/mail"
	"time"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 150
	minPasswordLength = 8
)

type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	isStaff      bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash string) (*User, error) {
	if len(username) < minUsernameLength {
		return nil, fmt.Errorf("username must be at least %d characters", minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return nil, fmt.Errorf("username exceeds maximum length of %d characters", maxUsernameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	email string,
	passwordHash string,
	isStaff bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsStaff() bool        { return u.isStaff }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangePasswordHash replaces the stored hash. Verification of the old
// password happens in the use case, against the hasher.
func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// ValidatePasswordLength checks the plaintext policy before hashing.
func ValidatePasswordLength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
