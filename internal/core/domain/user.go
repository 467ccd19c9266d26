package domain

import "time"

// RoleNotDefined is the role name reported for users whose role reference
// cannot be resolved.
const RoleNotDefined = "role not defined"

// User is a person record referencing exactly one Role by id.
type User struct {
	ID             string    `json:"id"`
	FirstNames     string    `json:"firstNames"`
	LastNames      string    `json:"lastNames"`
	Identification string    `json:"identification"`
	Email          string    `json:"email"`
	RoleID         string    `json:"roleId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName joins first and last names with a single space.
func (u *User) FullName() string {
	return u.FirstNames + " " + u.LastNames
}

// UserWithRole is the display projection of a user joined with its role name.
type UserWithRole struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	RoleName string `json:"roleName"`
}
