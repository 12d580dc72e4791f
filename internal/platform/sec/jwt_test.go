// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ductran/syllabase/internal/platform/sec"
)

const testSecret = "unit-test-secret-not-for-production"

func newTestService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "syllabase.app", time.Hour)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_Validation verifies constructor guards: the signing
secret must come from configuration and must not be empty, and the TTL
must be positive.
*/
func TestNewTokenService_Validation(t *testing.T) {
	_, err := sec.NewTokenService("", "syllabase.app", time.Hour)
	assert.Error(t, err)

	_, err = sec.NewTokenService(testSecret, "syllabase.app", 0)
	assert.Error(t, err)

	_, err = sec.NewTokenService(testSecret, "syllabase.app", -time.Minute)
	assert.Error(t, err)
}

/*
TestTokenService_RoundTrip verifies that an issued token verifies with the
same service and carries the expected claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.IssueToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Compact JWT wire format: three dot-separated segments.
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "syllabase.app", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

/*
TestTokenService_TamperedSignature verifies that flipping a single
character of the signature invalidates the token.
*/
func TestTokenService_TamperedSignature(t *testing.T) {
	service := newTestService(t)

	token, err := service.IssueToken("user-123")
	require.NoError(t, err)

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	claims, err := service.VerifyToken(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_WrongSecret verifies that a token signed with one secret
is rejected by a verifier holding a different secret.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuer := newTestService(t)
	verifier, err := sec.NewTokenService("a-completely-different-secret", "syllabase.app", time.Hour)
	require.NoError(t, err)

	token, err := issuer.IssueToken("user-123")
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_AlgorithmPinning verifies that the "alg" header in the
token is never trusted: an unsigned ("none") token is rejected even when
its payload is otherwise well formed.
*/
func TestTokenService_AlgorithmPinning(t *testing.T) {
	service := newTestService(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-123",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Expired verifies that a token past its expiry is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "syllabase.app", time.Millisecond)
	require.NoError(t, err)

	token, err := service.IssueToken("user-123")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := service.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Malformed verifies that structurally broken inputs fail
as plain error returns, never panics.
*/
func TestTokenService_Malformed(t *testing.T) {
	service := newTestService(t)

	for _, input := range []string{"", "not-a-jwt", "a.b", "a.b.c.d", "ey.ey."} {
		claims, err := service.VerifyToken(input)
		assert.Error(t, err, "input %q", input)
		assert.Nil(t, claims)
	}
}
