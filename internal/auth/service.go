package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/platform/crypto"
	"bookshelf/internal/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

const DefaultTokenTTL = 24 * time.Hour

// Token is what a client receives after signing up or in.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

type Service struct {
	secret      string
	ttl         time.Duration
	userService *user.Service
}

func NewService(secret string, ttl time.Duration, userService *user.Service) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{
		secret:      secret,
		ttl:         ttl,
		userService: userService,
	}
}

// Register creates the account and signs the new user in straight away.
func (s *Service) Register(ctx context.Context, username, password string) (user.User, Token, error) {
	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return user.User{}, Token{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.userService.Register(ctx, username, hashed)
	if err != nil {
		return user.User{}, Token{}, err
	}

	tok, err := s.issue(u.ID)
	if err != nil {
		return user.User{}, Token{}, err
	}
	return u, tok, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	u, err := s.userService.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Token{}, ErrUnauthorized
		}
		return Token{}, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return Token{}, ErrUnauthorized
	}
	return s.issue(u.ID)
}

func (s *Service) issue(userID string) (Token, error) {
	access, err := crypto.GenerateToken(s.secret, userID, s.ttl)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.ttl.Seconds()),
	}, nil
}
