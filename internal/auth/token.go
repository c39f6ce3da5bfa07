package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/ident"
	"rentbaaz/internal/usecase"
)

const (
	AccessTokenTTL  = 3 * time.Hour
	RefreshTokenTTL = 15 * 24 * time.Hour

	refreshTokenLength = 36
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrSessionExpired = errors.New("session expired")
)

type Claims struct {
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service mints and verifies access tokens and manages the refresh-token
// session lifecycle. It never touches storage directly beyond the
// SessionRepository contract.
type Service struct {
	secret   []byte
	sessions usecase.SessionRepository
}

func NewService(secret string, sessions usecase.SessionRepository) *Service {
	return &Service{secret: []byte(secret), sessions: sessions}
}

// IssueAccessToken signs a stateless HS256 token carrying the user ID.
// Verification needs no storage round-trip.
func (s *Service) IssueAccessToken(userID string) (string, error) {
	now := time.Now()
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken returns the user ID embedded in a valid token.
func (s *Service) VerifyAccessToken(token string) (string, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// NewRefreshToken returns an opaque url-safe value with no embedded
// structure. It is only ever looked up, never decoded.
func (s *Service) NewRefreshToken() (string, error) {
	return ident.Random(refreshTokenLength, ident.URLSafe)
}

// Login replaces any prior session for the user with a fresh refresh token
// and mints an access token. The session row is durably written before the
// pair is returned, so a client never holds a refresh token the server does
// not know about.
func (s *Service) Login(ctx context.Context, userID string) (TokenPair, error) {
	refreshToken, err := s.NewRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}

	sess := entity.Session{
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(RefreshTokenTTL),
	}
	if err := s.sessions.Put(ctx, &sess); err != nil {
		return TokenPair{}, fmt.Errorf("store session: %w", err)
	}

	accessToken, err := s.IssueAccessToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh trades a live refresh token for a new access token and pushes the
// session expiry out another window. An unknown token is ErrInvalidToken; a
// known but expired one is ErrSessionExpired and the client must log in again.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	sess, err := s.sessions.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("lookup session: %w", err)
	}

	if sess.Expired(time.Now()) {
		return "", ErrSessionExpired
	}

	accessToken, err := s.IssueAccessToken(sess.UserID)
	if err != nil {
		return "", err
	}

	if err := s.sessions.ExtendExpiry(ctx, refreshToken, time.Now().Add(RefreshTokenTTL)); err != nil {
		return "", fmt.Errorf("extend session: %w", err)
	}
	return accessToken, nil
}

// Logout drops the user's session. Logging out twice is fine: a missing row
// is not an error.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.sessions.Delete(ctx, userID); err != nil && !errors.Is(err, usecase.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
