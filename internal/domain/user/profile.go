package user

import (
	"fmt"
	"time"
)

// Profile holds the optional public data attached to every account. A
// profile row is created together with the user, inside the registration
// transaction, so it always exists.
type Profile struct {
	id        uint
	userID    uint
	phone     string
	bio       string
	avatarURL string
	createdAt time.Time
	updatedAt time.Time
}

func NewProfile(userID uint) (*Profile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now().UTC()
	return &Profile{
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(
	id uint,
	userID uint,
	phone, bio, avatarURL string,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Profile{
		id:        id,
		userID:    userID,
		phone:     phone,
		bio:       bio,
		avatarURL: avatarURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Profile) ID() uint             { return p.id }
func (p *Profile) UserID() uint         { return p.userID }
func (p *Profile) Phone() string        { return p.phone }
func (p *Profile) Bio() string          { return p.bio }
func (p *Profile) AvatarURL() string    { return p.avatarURL }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Profile) Update(phone, bio, avatarURL string) {
	p.phone = phone
	p.bio = bio
	p.avatarURL = avatarURL
	p.updatedAt = time.Now().UTC()
}
