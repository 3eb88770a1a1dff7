package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserEntry is one account in the users file. Either Password (plain text,
// hashed at load time) or PasswordHash (bcrypt) must be set.
type UserEntry struct {
	Username     string   `yaml:"username"`
	Password     string   `yaml:"password"`
	PasswordHash string   `yaml:"password_hash"`
	Roles        []string `yaml:"roles"`
}

type usersFile struct {
	Users []UserEntry `yaml:"users"`
}

type account struct {
	hash  []byte
	roles []domain.Role
}

// UserStore is a read-only, in-memory credential store.
type UserStore struct {
	accounts map[string]account
	// checked for unknown usernames too
	dummyHash []byte
}

var _ ports.Authenticator = (*UserStore)(nil)

// DefaultUsers are provisioned when no users file is configured.
func DefaultUsers() []UserEntry {
	return []UserEntry{
		{Username: "user", Password: "u1pass", Roles: []string{"USER"}},
		{Username: "userTwo", Password: "u2pass", Roles: []string{"USER"}},
		{Username: "admin", Password: "admin", Roles: []string{"USER", "ADMIN"}},
	}
}

func NewUserStore(entries []UserEntry) (*UserStore, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	store := &UserStore{
		accounts:  make(map[string]account, len(entries)),
		dummyHash: dummy,
	}

	for _, entry := range entries {
		username := strings.TrimSpace(entry.Username)
		if username == "" {
			return nil, errors.New("user entry without username")
		}
		if _, exists := store.accounts[username]; exists {
			return nil, fmt.Errorf("duplicate user %q", username)
		}

		hash, err := entryHash(entry)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", username, err)
		}

		roles, err := parseRoles(entry.Roles)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", username, err)
		}

		store.accounts[username] = account{hash: hash, roles: roles}
	}

	return store, nil
}

// LoadUserStore reads the YAML users file at path, or falls back to
// DefaultUsers when path is empty.
func LoadUserStore(path string) (*UserStore, error) {
	if path == "" {
		zap.L().Warn("no users file configured, provisioning default accounts")
		return NewUserStore(DefaultUsers())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var file usersFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}

	return NewUserStore(file.Users)
}

func (s *UserStore) Authenticate(_ context.Context, username, password string) (domain.Principal, error) {
	acc, ok := s.accounts[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return domain.Principal{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return domain.Principal{}, ErrInvalidCredentials
	}

	roles := make([]domain.Role, len(acc.roles))
	copy(roles, acc.roles)

	return domain.Principal{Username: username, Roles: roles}, nil
}

func entryHash(entry UserEntry) ([]byte, error) {
	switch {
	case entry.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(entry.PasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid password_hash: %w", err)
		}
		return []byte(entry.PasswordHash), nil
	case entry.Password != "":
		return bcrypt.GenerateFromPassword([]byte(entry.Password), bcrypt.DefaultCost)
	default:
		return nil, errors.New("password or password_hash is required")
	}
}

func parseRoles(values []string) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(values)+1)
	hasUser := false
	for _, value := range values {
		role := domain.Role(strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(value), "ROLE_")))
		switch role {
		case domain.RoleUser:
			hasUser = true
		case domain.RoleAdmin:
		default:
			return nil, fmt.Errorf("unknown role %q", value)
		}
		roles = append(roles, role)
	}
	if !hasUser {
		roles = append([]domain.Role{domain.RoleUser}, roles...)
	}
	return roles, nil
}
