package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

const (
	// AccessTokenTTL is the default lifetime of an access token.
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL is the default lifetime of a refresh token.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the deterministic payload carried by both token kinds.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the two token kinds. Access and refresh
// tokens are signed with independent secrets so a leaked access secret cannot
// mint refresh tokens, and vice versa.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = AccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = RefreshTokenTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// AccessTTL returns the configured access token lifetime.
func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// IssueAccessToken signs a short-lived token for the given identity.
func (s *TokenService) IssueAccessToken(email, role string) (string, error) {
	return sign(email, role, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken signs a long-lived token for the given identity.
func (s *TokenService) IssueRefreshToken(email, role string) (string, error) {
	return sign(email, role, s.refreshSecret, s.refreshTTL)
}

// VerifyAccessToken validates signature and expiry against the access secret.
func (s *TokenService) VerifyAccessToken(token string) (*Claims, error) {
	return verify(token, s.accessSecret)
}

// VerifyRefreshToken validates signature and expiry against the refresh secret.
func (s *TokenService) VerifyRefreshToken(token string) (*Claims, error) {
	return verify(token, s.refreshSecret)
}

func sign(email, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// verify collapses every failure mode (bad signature, expired, malformed,
// wrong algorithm) into domain.ErrInvalidToken so callers cannot branch on
// the failure subtype when making access control decisions.
func verify(token string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
