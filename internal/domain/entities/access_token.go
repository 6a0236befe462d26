package entities

import "time"

// AccessToken is the bearer credential issued by a successful login.
//
// ID is the JWT "jti" claim used for revocation.
type AccessToken struct {
	ID        string
	Subject   string
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenClaims is the verified content of a presented bearer token.
type TokenClaims struct {
	ID        string
	Subject   string
	ExpiresAt time.Time
}
