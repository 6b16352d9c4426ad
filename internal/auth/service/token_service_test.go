package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guptaji1008/book-hotel/internal/auth/domain"
	apperrors "github.com/guptaji1008/book-hotel/internal/errors"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:           "acc-123",
		Name:         "Guest",
		Email:        "guest@example.com",
		PasswordHash: "$2a$10$secrethash",
		Role:         "user",
	}
}

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)

	assert.NotNil(t, ts)
	assert.Equal(t, "signing-secret", ts.Secret)
	assert.Equal(t, time.Hour, ts.SessionExpiry)
}

func TestTokenService_MintAndReconstruct(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)
	account := testAccount()

	token, expiresAt, err := ts.Mint(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	view, err := ts.Reconstruct(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, view.ID)
	assert.Equal(t, account.Name, view.Name)
	assert.Equal(t, account.Email, view.Email)
	assert.Equal(t, account.Role, view.Role)
}

// The claims payload must never carry the password hash, in any field and
// under any name.
func TestTokenService_MintExcludesPasswordHash(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)
	account := testAccount()

	token, _, err := ts.Mint(account)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.NotContains(t, string(payload), account.PasswordHash)
	assert.NotContains(t, string(payload), "password")
}

func TestTokenService_ReconstructExpired(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)
	ts.SessionExpiry = -time.Minute

	token, _, err := ts.Mint(testAccount())
	require.NoError(t, err)

	view, err := ts.Reconstruct(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
	assert.Nil(t, view)
}

func TestTokenService_ReconstructWrongSecret(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)

	token, _, err := ts.Mint(testAccount())
	require.NoError(t, err)

	other := NewTokenService("different-secret", 60)
	view, err := other.Reconstruct(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	assert.Nil(t, view)
}

func TestTokenService_ReconstructTampered(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)

	token, _, err := ts.Mint(testAccount())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	view, err := ts.Reconstruct(tampered)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	assert.Nil(t, view)
}

func TestTokenService_ReconstructMalformed(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		view, err := ts.Reconstruct(token)
		assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
		assert.Nil(t, view)
	}
}

// A token signed with "none" must not pass verification even though it
// decodes cleanly.
func TestTokenService_ReconstructRejectsUnsignedAlg(t *testing.T) {
	ts := NewTokenService("signing-secret", 60)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	view, err := ts.Reconstruct(unsigned)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
	assert.Nil(t, view)
}
