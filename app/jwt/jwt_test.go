package jwtutil

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testSigner() *Signer {
	return &Signer{Secret: []byte("test-secret"), Issuer: "authd-test", TTL: time.Hour}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	s := testSigner()
	token, exp, err := s.Issue(42, "alice", "user")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "user", claims.Role)
	require.Equal(t, "authd-test", claims.Issuer)
	require.NotEmpty(t, claims.ID)
	require.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestTokensNeverRepeat(t *testing.T) {
	t.Parallel()

	s := testSigner()
	t1, _, err := s.Issue(1, "alice", "user")
	require.NoError(t, err)
	t2, _, err := s.Issue(1, "alice", "user")
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	_, err = s.Verify(t1)
	require.NoError(t, err)
	_, err = s.Verify(t2)
	require.NoError(t, err)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("test-secret"), Issuer: "authd-test", TTL: -time.Minute}
	token, _, err := s.Issue(1, "alice", "user")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
	require.Nil(t, claims)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	s := testSigner()
	token, _, err := s.Issue(1, "alice", "user")
	require.NoError(t, err)

	other := &Signer{Secret: []byte("another-secret"), Issuer: "authd-test", TTL: time.Hour}
	claims, err := other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSignature)
	require.Nil(t, claims)
}

func TestVerifyTamperedPayload(t *testing.T) {
	t.Parallel()

	s := testSigner()
	token, _, err := s.Issue(1, "alice", "user")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	forged := strings.Replace(string(payload), `"role":"user"`, `"role":"admin"`, 1)
	require.NotEqual(t, string(payload), forged)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	claims, err := s.Verify(strings.Join(parts, "."))
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	s := testSigner()
	for _, token := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		claims, err := s.Verify(token)
		require.ErrorIs(t, err, ErrMalformed, "token %q", token)
		require.Nil(t, claims)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	s := testSigner()
	claims := Claims{
		UserID: 1, Username: "alice", Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	got, err := s.Verify(unsigned)
	require.Error(t, err)
	require.Nil(t, got)
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	s := testSigner()
	token, _, err := s.Issue(7, "bob", "admin")
	require.NoError(t, err)
	claims, err := s.Verify(token)
	require.NoError(t, err)

	refreshed, exp, err := s.Refresh(claims)
	require.NoError(t, err)
	require.NotEqual(t, token, refreshed)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := s.Verify(refreshed)
	require.NoError(t, err)
	require.Equal(t, claims.UserID, got.UserID)
	require.Equal(t, claims.Username, got.Username)
	require.Equal(t, claims.Role, got.Role)
	require.NotEqual(t, claims.ID, got.ID)
}
