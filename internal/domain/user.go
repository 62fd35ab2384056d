package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleSeller   UserRole = "seller"
	RoleAdmin    UserRole = "admin"
)

func ValidUserRole(r UserRole) bool {
	return r == RoleCustomer || r == RoleSeller || r == RoleAdmin
}

type User struct {
	ID         uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName  string   `json:"firstName" gorm:"not null;size:100"`
	LastName   string   `json:"lastName" gorm:"not null;size:100"`
	Email      string   `json:"email" gorm:"not null;uniqueIndex;size:255"`
	Phone      string   `json:"phone,omitempty" gorm:"size:32"`
	Role       UserRole `json:"role" gorm:"type:enum('customer','seller','admin');default:'customer'"`
	Address    string   `json:"address,omitempty" gorm:"size:255"`
	City       string   `json:"city,omitempty" gorm:"size:100"`
	PostalCode string   `json:"postalCode,omitempty" gorm:"size:16"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
