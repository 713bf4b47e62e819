package service

import (
	"errors"
	"time"

	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so a failed login never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveAccount    = errors.New("inactive user")
	ErrInvalidToken       = errors.New("invalid refresh token")
	ErrAccountNotFound    = errors.New("user not found")
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrIncorrectPassword  = errors.New("incorrect current password")
)

// AuthService orchestrates registration, login, token refresh, profile
// retrieval, and password changes over the user store and token codec.
type AuthService struct {
	users           repository.IUserRepository
	tokens          *TokenService
	denylist        repository.ITokenDenylist
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewAuthService wires an AuthService from its dependencies and the two
// configured token lifetimes.
func NewAuthService(users repository.IUserRepository, tokens *TokenService, denylist repository.ITokenDenylist, accessTokenTTL, refreshTokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:           users,
		tokens:          tokens,
		denylist:        denylist,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// Register creates a new account. The password is hashed before the store
// lock is taken, so the expensive bcrypt work never serializes other
// store operations.
func (s *AuthService) Register(req *model.RegisterRequest) (*model.User, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
		IsActive: true,
	}

	if err := s.users.Insert(user); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")

	return user, nil
}

// Login verifies a credential and issues a fresh access/refresh pair.
func (s *AuthService) Login(username, password string) (*model.TokenResponse, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, user.Password) {
		logger.Log.WithField("username", username).Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return s.issueTokenPair(user.Username)
}

// Refresh exchanges a valid refresh token for a new pair. The presented
// token's jti is consumed atomically, so of any number of concurrent
// calls with the same refresh token exactly one succeeds and the rest
// fail as replays.
func (s *AuthService) Refresh(refreshToken string) (*model.TokenResponse, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != model.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByUsername(claims.Subject)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if !s.denylist.Consume(claims.ID, claims.ExpiresAt.Time) {
		logger.Log.WithField("subject", claims.Subject).Warn("Replay of a consumed refresh token")
		return nil, ErrInvalidToken
	}

	return s.issueTokenPair(user.Username)
}

// GetProfile resolves an access token to the account it asserts.
func (s *AuthService) GetProfile(accessToken string) (*model.User, error) {
	return s.authenticate(accessToken)
}

// ChangePassword verifies the current password and replaces the stored
// hash. The new hash is computed before the store is touched, and the
// swap only lands if the stored hash is still the one the current
// password was verified against.
func (s *AuthService) ChangePassword(accessToken, currentPassword, newPassword string) error {
	user, err := s.authenticate(accessToken)
	if err != nil {
		return err
	}

	if !CheckPasswordHash(currentPassword, user.Password) {
		return ErrIncorrectPassword
	}

	newHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(user.Username, user.Password, newHash); err != nil {
		if errors.Is(err, repository.ErrPasswordConflict) {
			return ErrIncorrectPassword
		}
		return ErrUnauthenticated
	}

	logger.Log.WithField("username", user.Username).Info("Password updated")
	return nil
}

// Logout acknowledges the request. Tokens are not invalidated
// server-side; access tokens simply age out on their short TTL.
func (s *AuthService) Logout() error {
	return nil
}

// authenticate verifies an access token and loads its subject. Every
// failure collapses into ErrUnauthenticated.
func (s *AuthService) authenticate(accessToken string) (*model.User, error) {
	claims, err := s.tokens.Verify(accessToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if claims.TokenType != model.TokenTypeAccess {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.FindByUsername(claims.Subject)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

func (s *AuthService) issueTokenPair(username string) (*model.TokenResponse, error) {
	accessToken, err := s.tokens.Issue(username, model.TokenTypeAccess, s.accessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.Issue(username, model.TokenTypeRefresh, s.refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}
