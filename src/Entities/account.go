package Entities

import (
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type LoginAccount struct {
	Id        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"` // bcrypt hash, never serialized
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// ShortUser is the minimal identity used in presence listings.
type ShortUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
}

// AuthUser is the public projection of a LoginAccount carried in the
// session token and returned to the client.
type AuthUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (a *LoginAccount) AuthUser() AuthUser {
	return AuthUser{
		Id:       a.Id,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

func (a *LoginAccount) HashPassword(password string) error {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return err
	}
	a.Password = string(bytes)
	return nil
}

func (a *LoginAccount) CheckPassword(providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(providedPassword))
}
