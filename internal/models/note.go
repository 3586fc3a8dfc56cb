package models

import "time"

type Note struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	CreatedOn  time.Time `json:"created_on" gorm:"column:created_on;not null"`
	LastUpdate time.Time `json:"last_update" gorm:"column:last_update;not null"`
	OwnerID    uint      `json:"userId" gorm:"index;not null"` // foreign key

	// Declared so migration creates the FK with ON DELETE CASCADE.
	// All queries go through OwnerID; this field is never loaded.
	Owner User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
