package entity

import (
	"gorm.io/gorm"
)

// Role is a closed enum; anything outside the two variants is rejected at
// token verification time.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	gorm.Model
	Username    string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password    string `json:"-"` // bcrypt hash
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `gorm:"size:20;not null;default:customer" json:"role"`

	Orders        []Order        `json:"-"`
	Notifications []Notification `json:"-"`
	Ratings       []Rating       `json:"-"`
}
