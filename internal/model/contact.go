package model

import "time"

// Contact is a visitor message. It has read-tracking on top of the usual audit
// fields and no update stamps (messages are never edited).
type Contact struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Message    string     `json:"message"`
	IsRead     bool       `json:"isRead"`
	ReadBy     *Ref[User] `json:"readBy,omitempty"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedBy  *Ref[User] `json:"deletedBy,omitempty"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	RestoredBy *Ref[User] `json:"restoredBy,omitempty"`
	RestoredAt *time.Time `json:"restoredAt,omitempty"`
	IsDeleted  bool       `json:"isDeleted"`
}

func (c Contact) EntityID() string { return c.ID }
