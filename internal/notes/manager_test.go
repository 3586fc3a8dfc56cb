package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deva-sh/keepnotes/internal/models"
	"github.com/deva-sh/keepnotes/internal/repositories"
)

func newTestManager(t *testing.T) (*Manager, uint, uint) {
	t.Helper()

	db, err := repositories.Connect(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repositories.Migrate(db))

	users := repositories.NewUserStore(db)
	alice := &models.User{Username: "alice", Email: "alice@example.com", Password: "hashed"}
	bob := &models.User{Username: "bob", Email: "bob@example.com", Password: "hashed"}
	require.NoError(t, users.Insert(alice))
	require.NoError(t, users.Insert(bob))

	return NewManager(repositories.NewNoteStore(db)), alice.ID, bob.ID
}

func TestCreateSetsTimestamps(t *testing.T) {
	mgr, alice, _ := newTestManager(t)

	before := time.Now().UTC()
	note, err := mgr.Create(alice, "Groceries", "Milk, eggs")
	require.NoError(t, err)
	after := time.Now().UTC()

	assert.NotZero(t, note.ID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "Milk, eggs", note.Content)
	assert.Equal(t, alice, note.OwnerID)
	assert.Equal(t, note.CreatedOn, note.LastUpdate)
	assert.False(t, note.CreatedOn.Before(before))
	assert.False(t, note.CreatedOn.After(after))
}

func TestListOnlyOwnNotes(t *testing.T) {
	mgr, alice, bob := newTestManager(t)

	a1, err := mgr.Create(alice, "a1", "c")
	require.NoError(t, err)
	_, err = mgr.Create(bob, "b1", "c")
	require.NoError(t, err)
	a2, err := mgr.Create(alice, "a2", "c")
	require.NoError(t, err)

	list, err := mgr.List(alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Equal(t, a2.ID, list[1].ID)
}

func TestListEmpty(t *testing.T) {
	mgr, alice, _ := newTestManager(t)

	list, err := mgr.List(alice)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateRoundTrip(t *testing.T) {
	mgr, alice, _ := newTestManager(t)

	note, err := mgr.Create(alice, "T", "C")
	require.NoError(t, err)

	updated, err := mgr.Update(alice, note.ID, "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, note.ID, updated.ID)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
	assert.Equal(t, note.CreatedOn.UnixMilli(), updated.CreatedOn.UnixMilli())
	assert.False(t, updated.LastUpdate.Before(note.LastUpdate))

	list, err := mgr.List(alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T2", list[0].Title)
	assert.Equal(t, "C2", list[0].Content)
}

func TestCrossUserAccessLooksLikeNotFound(t *testing.T) {
	mgr, alice, bob := newTestManager(t)

	note, err := mgr.Create(alice, "secret", "do not leak")
	require.NoError(t, err)

	list, err := mgr.List(bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = mgr.Update(bob, note.ID, "stolen", "stolen")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, mgr.Delete(bob, note.ID), ErrNotFound)

	// The note is untouched.
	list, err = mgr.List(alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "secret", list[0].Title)
}

func TestDelete(t *testing.T) {
	mgr, alice, _ := newTestManager(t)

	note, err := mgr.Create(alice, "T", "C")
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(alice, note.ID))

	list, err := mgr.List(alice)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, mgr.Delete(alice, note.ID), ErrNotFound)
	assert.ErrorIs(t, mgr.Delete(alice, 9999), ErrNotFound)
}
