// file: service/token_service.go

package service

import (
	"errors"
	"fmt"
	"time"

	"go-auth-api/logger"
	"go-auth-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

// TokenService signs and verifies the JWTs used as access and refresh
// tokens. The signing key is set once at construction and never changes
// for the process lifetime. Whether a token's type fits the operation is
// the caller's check, so one codec serves both kinds.
type TokenService struct {
	secretKey []byte
}

// NewTokenService creates a TokenService with the given signing key.
func NewTokenService(secretKey []byte) *TokenService {
	return &TokenService{secretKey: secretKey}
}

// Issue signs a token asserting the subject for the given duration. Each
// token carries a unique jti so refresh tokens can be tracked after use.
func (s *TokenService) Issue(subject string, tokenType model.TokenType, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &model.AppClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		logger.Log.WithError(err).WithField("subject", subject).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature, expiry, and structure of a token string and
// returns its claims. Failures are reported as ErrTokenExpired,
// ErrTokenSignatureInvalid, or ErrTokenMalformed for anything else.
func (s *TokenService) Verify(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrTokenSignatureInvalid
	default:
		return nil, ErrTokenMalformed
	}
}
