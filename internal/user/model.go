package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID          int
	Email       string
	Password    string
	Role        Role
	BonusPoints int
	PhoneNumber *string
	Address     *string
	CreatedAt   time.Time
}

// OrderSummary is the slice of a user's order history shown on the
// profile and "current user" endpoints.
type OrderSummary struct {
	ID          int       `json:"id"`
	Status      string    `json:"status"`
	FinalAmount float64   `json:"finalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Profile struct {
	ID          int            `json:"id"`
	Email       string         `json:"email"`
	Role        Role           `json:"role"`
	BonusPoints int            `json:"bonusPoints"`
	PhoneNumber *string        `json:"phoneNumber,omitempty"`
	Address     *string        `json:"address,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Orders      []OrderSummary `json:"orders"`
}

type UpdateUserParams struct {
	UserID      int
	Email       *string
	PhoneNumber *string
	Address     *string
	Password    *string
}
