package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deva-sh/keepnotes/internal/auth"
	"github.com/deva-sh/keepnotes/internal/repositories"
)

func newTestManager(t *testing.T) (*Manager, *repositories.UserStore, *auth.TokenIssuer) {
	t.Helper()

	db, err := repositories.Connect(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repositories.Migrate(db))

	users := repositories.NewUserStore(db)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewManager(users, issuer), users, issuer
}

func TestRegister(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	user, err := mgr.Register("deva", "deva@example.com", "password123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "deva", user.Username)
	assert.Equal(t, "deva@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, auth.VerifyPassword("password123", user.Password))
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	for _, email := range []string{"notanemail", "@example.com", "deva@", ""} {
		_, err := mgr.Register("deva", email, "password123")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	mgr, users, _ := newTestManager(t)

	first, err := mgr.Register("deva", "deva@example.com", "password123")
	require.NoError(t, err)

	_, err = mgr.Register("someone", "deva@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Taken username fails the same way.
	_, err = mgr.Register("deva", "fresh@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// First registration unaffected.
	found, err := users.FindByEmail("deva@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestAuthenticate(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	registered, err := mgr.Register("deva", "deva@example.com", "password123")
	require.NoError(t, err)

	token, err := mgr.Authenticate("deva@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := mgr.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	_, err := mgr.Register("deva", "deva@example.com", "password123")
	require.NoError(t, err)

	wrongPassword, err1 := mgr.Authenticate("deva@example.com", "wrongpass")
	unknownEmail, err2 := mgr.Authenticate("nobody@example.com", "password123")

	assert.ErrorIs(t, err1, ErrInvalidCredentials)
	assert.ErrorIs(t, err2, ErrInvalidCredentials)
	assert.Equal(t, err1.Error(), err2.Error())
	assert.Empty(t, wrongPassword)
	assert.Empty(t, unknownEmail)
}

func TestResolveTokenExpired(t *testing.T) {
	mgr, _, issuer := newTestManager(t)

	_, err := mgr.Register("deva", "deva@example.com", "password123")
	require.NoError(t, err)

	token, err := issuer.IssueWithTTL("deva@example.com", 0)
	require.NoError(t, err)

	_, err = mgr.ResolveToken(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestResolveTokenInvalid(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	_, err := mgr.ResolveToken("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveTokenDeletedUser(t *testing.T) {
	mgr, users, _ := newTestManager(t)

	user, err := mgr.Register("deva", "deva@example.com", "password123")
	require.NoError(t, err)

	token, err := mgr.Authenticate("deva@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, users.Delete(user.ID))

	_, err = mgr.ResolveToken(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestEnsureDemoUserIdempotent(t *testing.T) {
	mgr, users, _ := newTestManager(t)

	require.NoError(t, mgr.EnsureDemoUser())
	first, err := users.FindByEmail(DemoEmail)
	require.NoError(t, err)

	require.NoError(t, mgr.EnsureDemoUser())
	second, err := users.FindByEmail(DemoEmail)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = mgr.Authenticate(DemoEmail, DemoPassword)
	require.NoError(t, err)
}
