package model

import "time"

const (
	RoleBuyer   = "BUYER"
	RoleRealtor = "REALTOR"
	RoleAdmin   = "ADMIN"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleRealtor || role == RoleAdmin
}

// User represents a registered buyer, realtor or admin.
// The role is fixed at signup; no operation changes it afterwards.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// RealtorContact is the contact projection of a home's owner returned to
// clients. It carries no password hash.
type RealtorContact struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BuyerContact is the projection of a message sender shown to the owning realtor.
type BuyerContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
