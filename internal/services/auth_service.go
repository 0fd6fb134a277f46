package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"moving_ops/internal/models"
	"moving_ops/internal/redis"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Authenticate(ctx context.Context, token string) (string, *redis.SessionData, error)
	Logout(ctx context.Context, sessionID string) error
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

type authService struct {
	userService UserService
	redis       *redis.Client
	secret      []byte
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewAuthService(userService UserService, redis *redis.Client, secret string, sessionTTL time.Duration) AuthService {
	return &authService{
		userService: userService,
		redis:       redis,
		secret:      []byte(secret),
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// Login checks the credentials, opens a session and returns a token that
// names it. The token is only honoured while the session exists.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !s.userService.CheckPassword(user, password) {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	sessionID := uuid.NewString()
	session := &redis.SessionData{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.redis.SetSession(ctx, sessionID, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	expiresAt := now.Add(s.sessionTTL)
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Printf("[AUTH] %s logged in", user.Username)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Username: user.Username}, nil
}

// Authenticate resolves a token to its live session.
func (s *authService) Authenticate(ctx context.Context, token string) (string, *redis.SessionData, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.ID == "" {
		return "", nil, ErrInvalidToken
	}

	session, err := s.redis.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return "", nil, ErrInvalidToken
		}
		return "", nil, err
	}
	return claims.ID, session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.redis.DeleteSession(ctx, sessionID)
}
