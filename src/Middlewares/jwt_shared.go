package Middlewares

import (
	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/golang-jwt/jwt/v5"
)

// JwtKey is the secret key for signing JWT tokens. Overridden from
// config at startup.
var JwtKey = []byte("your_secret_key")

// Claims carries the full AuthUser projection so the token doubles as
// the persisted session blob: decoding it restores who is logged in
// without another lookup.
type Claims struct {
	UserID   string        `json:"user_id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Role     Entities.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) AuthUser() Entities.AuthUser {
	return Entities.AuthUser{
		Id:       c.UserID,
		Username: c.Username,
		Email:    c.Email,
		Role:     c.Role,
	}
}
