package model

import "github.com/golang-jwt/jwt/v5"

// TokenType discriminates the two kinds of tokens the service issues.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// AppClaims is the JWT payload for both access and refresh tokens.
// Subject carries the username; the jti (RegisteredClaims.ID) identifies
// a single refresh token for rotation tracking.
type AppClaims struct {
	TokenType TokenType `json:"type"`
	jwt.RegisteredClaims
}
