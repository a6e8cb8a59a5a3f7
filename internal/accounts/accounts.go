// Package accounts manages local user registration backed by users.json.
package accounts

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const usersFileName = "users.json"

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match.
var ErrInvalidCredentials = errors.New("invalid username or password")

// record is the persisted per-user entry. The password field holds the hex
// SHA-256 digest of the plaintext, unsalted. Existing user files carry
// exactly this digest, so the scheme must not change.
type record struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	JoinedDate string `json:"joined_date"`
}

// Store holds the registered users, persisted to users.json in the data
// directory.
type Store struct {
	path   string
	logger zerolog.Logger

	mu    sync.Mutex
	users map[string]record
}

func NewStore(dataDir string, logger zerolog.Logger) *Store {
	s := &Store{
		path:   filepath.Join(dataDir, usersFileName),
		logger: logger.With().Str("component", "accounts").Logger(),
		users:  map[string]record{},
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Msg("cannot read user registry, starting empty")
		}
		return
	}
	if err := json.Unmarshal(data, &s.users); err != nil {
		s.logger.Error().Err(err).Msg("corrupt user registry, resetting")
		s.users = map[string]record{}
	}
	// A file holding JSON null decodes into a nil map without an error.
	if s.users == nil {
		s.users = map[string]record{}
	}
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(s.users, "", "    ")
	if err != nil {
		return fmt.Errorf("encode user registry: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save user registry: %w", err)
	}
	return nil
}

func hashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user. Usernames are unique (exact match, matching
// the existing file format) and passwords must be non-empty.
func (s *Store) Register(username, email, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username must not be empty")
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return fmt.Errorf("username %q is already taken", username)
	}
	s.users[username] = record{
		Email:      strings.TrimSpace(email),
		Password:   hashPassword(password),
		JoinedDate: time.Now().Format("2006-01-02"),
	}
	if err := s.save(); err != nil {
		delete(s.users, username)
		return err
	}
	s.logger.Info().Str("user", username).Msg("registered user")
	return nil
}

// Authenticate checks the username/password pair against the registry.
func (s *Store) Authenticate(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, exists := s.users[username]
	if !exists || user.Password != hashPassword(password) {
		return ErrInvalidCredentials
	}
	return nil
}

// Exists reports whether the username is registered.
func (s *Store) Exists(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[username]
	return ok
}

// Usernames returns the registered usernames in sorted order.
func (s *Store) Usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
