package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the fixed lifetime of an access token
const DefaultTokenTTL = time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID string `json:"id"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// JWTOption customizes a JWTUtil
type JWTOption func(*JWTUtil)

// WithClock overrides the time source used for issuing and validating tokens
func WithClock(now func() time.Time) JWTOption {
	return func(ju *JWTUtil) {
		ju.now = now
	}
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, ttl time.Duration, opts ...JWTOption) *JWTUtil {
	ju := &JWTUtil{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(ju)
	}
	return ju
}

// Now returns the current time according to the util's clock
func (ju *JWTUtil) Now() time.Time {
	return ju.now()
}

// GenerateToken generates a new signed token for the given identity
func (ju *JWTUtil) GenerateToken(userID, role, name string) (string, error) {
	now := ju.now()
	claims := &JWTClaims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ju.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ju.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the token signature and expiry.
// Expired tokens yield ErrTokenExpired, every other failure ErrTokenInvalid.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ju.secretKey, nil
	}, jwt.WithTimeFunc(ju.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
