// Copyright (c) 2026 Syllabase. All rights reserved.
// Author: duc.tran.canh@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ductran/syllabase/internal/platform/sec"
)

/*
TestHashPassword verifies that hashing produces a bcrypt digest distinct
from the plaintext, and that the same plaintext hashes to different
digests (random salt).
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	again, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

/*
TestCheckPasswordHash covers verification against correct, wrong, and
empty candidate passwords.
*/
func TestCheckPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("s3cret", hash))
	assert.False(t, sec.CheckPasswordHash("S3cret", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
	assert.False(t, sec.CheckPasswordHash("s3cret", "not-a-bcrypt-hash"))
}

/*
TestCheckPasswordHash_OtherUsersHash verifies a password never validates
against a digest that belongs to a different credential.
*/
func TestCheckPasswordHash_OtherUsersHash(t *testing.T) {
	aliceHash, err := sec.HashPassword("alice-password")
	require.NoError(t, err)
	bobHash, err := sec.HashPassword("bob-password")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("alice-password", aliceHash))
	assert.False(t, sec.CheckPasswordHash("alice-password", bobHash))
}
