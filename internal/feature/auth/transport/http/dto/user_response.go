package dto

import (
	"time"

	"loomspace_backend/internal/feature/auth/domain/entity"
)

// UserRes is the public view of a user. The password hash is never serialized.
type UserRes struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthRes is returned by login and register.
type AuthRes struct {
	Token string  `json:"token"`
	User  UserRes `json:"user"`
}

// MessageRes is a plain acknowledgement.
type MessageRes struct {
	Message string `json:"message"`
}

// NewUserRes converts a user entity to its response form.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// NewUserListRes converts users to their response form, keeping order.
func NewUserListRes(users []entity.User) []UserRes {
	res := make([]UserRes, 0, len(users))
	for i := range users {
		res = append(res, NewUserRes(&users[i]))
	}
	return res
}
