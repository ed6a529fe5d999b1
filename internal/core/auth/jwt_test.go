package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "mall-test", TTL: ttl}
}

func TestJWTer_RoundTrip(t *testing.T) {
	t.Parallel()

	j := newTestJWTer(time.Hour)
	tok, err := j.Issue(42, "alice", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "mall-test", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTer_ZeroTTLExpiresImmediately(t *testing.T) {
	t.Parallel()

	j := newTestJWTer(0)
	tok, err := j.Issue(1, "bob", "user")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = j.Parse(tok)
	require.Error(t, err)
}

func TestJWTer_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	j := newTestJWTer(time.Hour)
	tok, err := j.Issue(1, "bob", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("another-secret"), Issuer: "mall-test", TTL: time.Hour}
	_, err = other.Parse(tok)
	require.Error(t, err)
}

func TestJWTer_RejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	j := newTestJWTer(time.Hour)
	tok, err := j.Issue(1, "bob", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	_, err = other.Parse(tok)
	require.Error(t, err)
}

func TestJWTer_RejectsGarbage(t *testing.T) {
	t.Parallel()

	j := newTestJWTer(time.Hour)
	_, err := j.Parse("not.a.token")
	require.Error(t, err)
}
