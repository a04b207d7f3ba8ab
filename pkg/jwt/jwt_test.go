package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_RoundTrip(t *testing.T) {
	signer, err := NewSigner("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := signer.GenerateToken("warehouse-bot")
	require.NoError(t, err)

	claims, err := signer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "warehouse-bot", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestSigner_Rejects(t *testing.T) {
	signer, err := NewSigner("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewSigner("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.GenerateToken("intruder")
	require.NoError(t, err)
	_, err = signer.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = signer.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = signer.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_Expired(t *testing.T) {
	signer, err := NewSigner("test-secret", time.Minute)
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	signer.now = func() time.Time { return issued }
	token, err := signer.GenerateToken("ops")
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewSigner_RequiresSecret(t *testing.T) {
	_, err := NewSigner("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingKey)
}
