package accounts

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mcnijman/go-emailaddress"

	"github.com/deva-sh/keepnotes/internal/auth"
	"github.com/deva-sh/keepnotes/internal/models"
	"github.com/deva-sh/keepnotes/internal/repositories"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrEmailTaken also covers a taken username; signup rejects both the
	// same way.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so a caller cannot probe which part was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")
)

// Demo account seeded when SEED_DEMO_USER is set.
const (
	DemoUsername = "deva"
	DemoEmail    = "deva@example.com"
	DemoPassword = "password123"
)

// Manager owns registration, login and token resolution.
type Manager struct {
	users  *repositories.UserStore
	issuer *auth.TokenIssuer
}

func NewManager(users *repositories.UserStore, issuer *auth.TokenIssuer) *Manager {
	return &Manager{users: users, issuer: issuer}
}

// Register creates a user with a hashed password. The plaintext is never
// stored or returned.
func (m *Manager) Register(username, email, password string) (*models.User, error) {
	if _, err := emailaddress.Parse(strings.TrimSpace(email)); err != nil {
		return nil, ErrInvalidEmail
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := m.users.Insert(user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks email+password and returns a bearer token bound to
// the user's email.
func (m *Manager) Authenticate(email, password string) (string, error) {
	user, err := m.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.VerifyPassword(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return m.issuer.Issue(user.Email)
}

// ResolveToken maps a bearer token back to its user. The returned error
// always matches ErrUnauthenticated; expiry additionally matches
// auth.ErrTokenExpired.
func (m *Manager) ResolveToken(token string) (*models.User, error) {
	email, err := m.issuer.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	user, err := m.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// EnsureDemoUser seeds the demo account if it does not exist yet. Safe to
// run on every startup.
func (m *Manager) EnsureDemoUser() error {
	_, err := m.users.FindByEmail(DemoEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if _, err := m.Register(DemoUsername, DemoEmail, DemoPassword); err != nil {
		// A concurrent seed losing the race is still a successful seed.
		if errors.Is(err, ErrEmailTaken) {
			return nil
		}
		return err
	}
	log.Printf("Seeded demo user %s", DemoEmail)
	return nil
}
