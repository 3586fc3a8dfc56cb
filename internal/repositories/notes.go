package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/deva-sh/keepnotes/internal/models"
)

type NoteStore struct {
	db *gorm.DB
}

func NewNoteStore(db *gorm.DB) *NoteStore {
	return &NoteStore{db: db}
}

func (s *NoteStore) Insert(note *models.Note) error {
	return s.db.Omit("Owner").Create(note).Error
}

// ForOwner returns the owner's notes ordered by id ascending.
func (s *NoteStore) ForOwner(ownerID uint) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.Where("owner_id = ?", ownerID).Order("id asc").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update rewrites title and content of the note matching both id and owner,
// refreshing last_update. ErrNotFound when no such row exists; whether the
// id is unknown or owned by someone else is not revealed.
func (s *NoteStore) Update(noteID, ownerID uint, title, content string) (*models.Note, error) {
	res := s.db.Model(&models.Note{}).
		Where("id = ? AND owner_id = ?", noteID, ownerID).
		Updates(map[string]any{
			"title":       title,
			"content":     content,
			"last_update": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var note models.Note
	err := s.db.Where("id = ? AND owner_id = ?", noteID, ownerID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete removes the note matching both id and owner. ErrNotFound under the
// same condition as Update.
func (s *NoteStore) Delete(noteID, ownerID uint) error {
	res := s.db.Where("id = ? AND owner_id = ?", noteID, ownerID).Delete(&models.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
