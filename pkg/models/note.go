// Package models defines the Note entity shared by every store backend and
// the HTTP layer.
package models

import "gorm.io/gorm"

// Note is the persisted entity behind the notes resource. CreatedAt and
// CreatedBy are client-supplied strings, part of the wire contract rather
// than server-managed timestamps.
type Note struct {
	ID          NoteID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	CreatedBy   string `json:"created_by"`
	Priority    int    `json:"priority"`
}

// BeforeCreate hook to generate ID if not set
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID.IsZero() {
		n.ID = NewNoteID()
	}
	return nil
}

// Property exposes the note's fields by wire name for rendering.
func (n *Note) Property(name string) (any, bool) {
	switch name {
	case "id":
		return n.ID.String(), true
	case "title":
		return n.Title, true
	case "description":
		return n.Description, true
	case "created_at":
		return n.CreatedAt, true
	case "created_by":
		return n.CreatedBy, true
	case "priority":
		return n.Priority, true
	default:
		return nil, false
	}
}
