package notes

import (
	"errors"
	"time"

	"github.com/deva-sh/keepnotes/internal/models"
	"github.com/deva-sh/keepnotes/internal/repositories"
)

// ErrNotFound covers both a nonexistent note id and a note owned by a
// different user; callers cannot tell the two apart.
var ErrNotFound = errors.New("note not found")

// Manager performs note CRUD scoped to the authenticated owner.
type Manager struct {
	store *repositories.NoteStore
}

func NewManager(store *repositories.NoteStore) *Manager {
	return &Manager{store: store}
}

// Create stores a new note for ownerID with both timestamps set to now.
func (m *Manager) Create(ownerID uint, title, content string) (*models.Note, error) {
	now := time.Now().UTC()
	note := &models.Note{
		Title:      title,
		Content:    content,
		CreatedOn:  now,
		LastUpdate: now,
		OwnerID:    ownerID,
	}
	if err := m.store.Insert(note); err != nil {
		return nil, err
	}
	return note, nil
}

// List returns all notes owned by ownerID, ordered by id ascending.
func (m *Manager) List(ownerID uint) ([]models.Note, error) {
	return m.store.ForOwner(ownerID)
}

// Update replaces title and content of an owned note. created_on is
// immutable; last_update is refreshed.
func (m *Manager) Update(ownerID, noteID uint, title, content string) (*models.Note, error) {
	note, err := m.store.Update(noteID, ownerID, title, content)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return note, nil
}

// Delete removes an owned note.
func (m *Manager) Delete(ownerID, noteID uint) error {
	err := m.store.Delete(noteID, ownerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
