package accounts

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	s := NewStore(t.TempDir(), zerolog.New(io.Discard))

	require.NoError(t, s.Register("alice", "alice@example.com", "s3cret"))
	assert.True(t, s.Exists("alice"))

	assert.NoError(t, s.Authenticate("alice", "s3cret"))
	assert.ErrorIs(t, s.Authenticate("alice", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, s.Authenticate("nobody", "s3cret"), ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	s := NewStore(t.TempDir(), zerolog.New(io.Discard))

	require.NoError(t, s.Register("alice", "", "s3cret"))
	assert.Error(t, s.Register("alice", "", "another"))
}

func TestRegisterValidation(t *testing.T) {
	s := NewStore(t.TempDir(), zerolog.New(io.Discard))
	assert.Error(t, s.Register("", "", "pw"))
	assert.Error(t, s.Register("   ", "", "pw"))
	assert.Error(t, s.Register("alice", "", ""))
}

func TestPasswordStoredAsUnsaltedSHA256(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, zerolog.New(io.Discard))
	require.NoError(t, s.Register("alice", "alice@example.com", "password"))

	data, err := os.ReadFile(filepath.Join(dir, usersFileName))
	require.NoError(t, err)

	var users map[string]record
	require.NoError(t, json.Unmarshal(data, &users))

	// Existing user files carry exactly this digest format.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		users["alice"].Password)
	assert.Equal(t, "alice@example.com", users["alice"].Email)
	assert.NotEmpty(t, users["alice"].JoinedDate)
}

func TestStoreRecoversFromNullFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, usersFileName), []byte("null"), 0o644))

	s := NewStore(dir, zerolog.New(io.Discard))
	assert.Empty(t, s.Usernames())
	require.NoError(t, s.Register("alice", "", "pw"))
	assert.True(t, s.Exists("alice"))
}

func TestStorePersistsAcrossReloads(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.New(io.Discard)

	s := NewStore(dir, logger)
	require.NoError(t, s.Register("alice", "", "pw"))
	require.NoError(t, s.Register("bob", "", "pw"))

	reloaded := NewStore(dir, logger)
	assert.Equal(t, []string{"alice", "bob"}, reloaded.Usernames())
	assert.NoError(t, reloaded.Authenticate("bob", "pw"))
}
