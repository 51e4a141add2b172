package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"healthtrack-be/internal/apperrors"
)

// Claims is the JWT payload: the authenticated user's identity plus the
// standard issued-at/expiry claims.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Principal is the verified identity extracted from a valid token. It lives
// for a single request and is never persisted.
type Principal struct {
	UserID int64
	Email  string
}

// JWTService issues and verifies HS256-signed session tokens. The signing
// secret is loaded once at startup and read-only afterwards, so the service
// is safe for concurrent use.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// timeFunc supplies the clock for issuing and verifying tokens. Tests swap
// it to pin expiry boundaries.
var timeFunc = time.Now

// NewJWTService creates a new JWT service with the given signing secret and
// token time-to-live.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken issues a signed token asserting the given identity, valid
// from now until now+ttl.
func (s *JWTService) GenerateToken(userID int64, email string) (string, error) {
	now := timeFunc()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature and expiry of a token and returns the
// principal it asserts. Expired tokens return apperrors.ErrTokenExpired;
// every other failure (bad signature, tampered payload, malformed string,
// wrong algorithm) collapses to apperrors.ErrTokenInvalid so callers cannot
// distinguish why verification failed.
func (s *JWTService) ValidateToken(tokenString string) (*Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(timeFunc))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return &Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
