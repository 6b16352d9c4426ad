package service

//go:generate mockgen -destination=../../mocks/mock_session_issuer.go -package=mocks github.com/guptaji1008/book-hotel/internal/auth/service SessionIssuer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guptaji1008/book-hotel/internal/auth/domain"
	"github.com/guptaji1008/book-hotel/internal/auth/dto"
	apperrors "github.com/guptaji1008/book-hotel/internal/errors"
)

type SessionIssuer interface {
	Mint(account *domain.Account) (string, time.Time, error)
	Reconstruct(tokenString string) (*dto.SessionView, error)
	Expiry() time.Duration
}

// TokenService issues and reconstructs stateless session tokens. The signing
// secret is process-wide configuration loaded once at startup; there is no
// server-side session store and no revocation list.
type TokenService struct {
	Secret        string
	SessionExpiry time.Duration
}

// SessionClaims embeds the account snapshot taken at mint time. The snapshot
// stays fixed for the token's validity window even if the account is edited
// afterward.
type SessionClaims struct {
	jwt.RegisteredClaims
	User dto.SessionView `json:"user"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:        secret,
		SessionExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Mint wraps a verified account into a signed token. The password hash is
// excluded structurally: SessionView has no field that could carry it.
func (ts *TokenService) Mint(account *domain.Account) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.SessionExpiry)

	claims := SessionClaims{
		User: dto.NewSessionView(account),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Reconstruct verifies signature and expiry and returns the embedded account
// snapshot. An elapsed validity window maps to ErrSessionExpired; any other
// defect (bad signature, malformed token, wrong algorithm) maps to
// ErrSessionInvalid.
func (ts *TokenService) Reconstruct(tokenString string) (*dto.SessionView, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}

	if !token.Valid {
		return nil, apperrors.ErrSessionInvalid
	}

	return &claims.User, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.SessionExpiry
}
