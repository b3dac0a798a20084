package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonRoundTrip(t *testing.T) {
	a := New()

	encoded, err := a.GenerateFromPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$")

	ok, err := a.VerifyPasswd("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswd_MalformedHash(t *testing.T) {
	a := New()

	_, err := a.VerifyPasswd("whatever", "not-a-phc-hash")
	assert.Error(t, err)
}

func TestGenerateFromPassword_UniqueSalts(t *testing.T) {
	a := New()

	h1, err := a.GenerateFromPassword("pw")
	require.NoError(t, err)
	h2, err := a.GenerateFromPassword("pw")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
