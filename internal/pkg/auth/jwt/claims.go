package jwt

import "github.com/golang-jwt/jwt"

// UserTypeAdmin marks a token issued through the admin console login.
const UserTypeAdmin = "admin"

// Payload defines the JWT claims carried by an admin session token.
type Payload struct {
	jwt.StandardClaims `json:"standard_claims"`

	// Username is the configured admin account name the token was issued for.
	Username string `json:"username"`

	// UserType is the role carried by the token. Only "admin" is issued today;
	// the field exists so future roles do not require a token format change.
	UserType string `json:"user_type"`
}

// IsAdmin reports whether the payload represents an admin session.
func (p *Payload) IsAdmin() bool {
	return p != nil && p.UserType == UserTypeAdmin
}
