package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// TokenService issues and verifies HS256 bearer tokens. Every token carries a
// unique jti claim so a single token can be revoked on logout without
// touching any other session of the same user.
type TokenService struct {
	secret     []byte
	tokenTTL   time.Duration
	revocation ports.RevocationStore
}

func NewTokenService(secret string, tokenTTL time.Duration, revocation ports.RevocationStore) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL, revocation: revocation}
}

// Issue creates a signed token embedding the user's identity and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and the revocation list, in that order,
// and resolves the token to a Principal.
func (s *TokenService) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	jti, _ := claims["jti"].(string)
	rawRole, _ := claims["role"].(string)
	if sub == "" || jti == "" {
		return nil, domain.ErrTokenInvalid
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	revoked, err := s.revocation.IsRevoked(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	return &domain.Principal{UserID: sub, Role: role}, nil
}

// Invalidate marks the token's jti as revoked for its remaining lifetime.
// Invalidating a token that no longer verifies is a no-op, not an error.
func (s *TokenService) Invalidate(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}

	ttl := s.tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return s.revocation.Revoke(ctx, jti, ttl)
}

func (s *TokenService) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
