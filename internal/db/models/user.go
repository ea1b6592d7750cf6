package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleUser      UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) CapitalizedString() string {
	return cases.Title(language.English).String(r.String())
}

type User struct {
	ID        int       `json:"id" pg:",pk"`
	Username  string    `json:"username" pg:",notnull,unique"`
	Email     string    `json:"email"`
	Password  string    `json:"-" pg:",notnull"`
	Telegram  *string   `json:"telegram"`
	Role      UserRole  `json:"role" pg:",notnull,default:'user'"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt time.Time `json:"updated_at" pg:"default:now()"`
}
