package dto

import (
	"time"

	"zarya/internal/domain/user"
)

type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

type ProfileDTO struct {
	UserID    uint             `json:"user_id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Bio       string           `json:"bio"`
	AvatarURL string           `json:"avatar_url"`
	JoinedAt  time.Time        `json:"joined_at"`
	Stats     map[string]int64 `json:"stats"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		IsStaff:  u.IsStaff(),
	}
}
