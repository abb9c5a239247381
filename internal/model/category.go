package model

import "time"

type Category struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	CreatedBy     *Ref[User]    `json:"createdBy,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedBy     *Ref[User]    `json:"updatedBy,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	DeletedBy     *Ref[User]    `json:"deletedBy,omitempty"`
	DeletedAt     *time.Time    `json:"deletedAt,omitempty"`
	RestoredBy    *Ref[User]    `json:"restoredBy,omitempty"`
	RestoredAt    *time.Time    `json:"restoredAt,omitempty"`
	IsDeleted     bool          `json:"isDeleted"`
}

func (c Category) EntityID() string { return c.ID }

type Subcategory struct {
	ID         string        `json:"_id"`
	Name       string        `json:"name"`
	Category   Ref[Category] `json:"category"`
	CreatedBy  *Ref[User]    `json:"createdBy,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedBy  *Ref[User]    `json:"updatedBy,omitempty"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	DeletedBy  *Ref[User]    `json:"deletedBy,omitempty"`
	DeletedAt  *time.Time    `json:"deletedAt,omitempty"`
	RestoredBy *Ref[User]    `json:"restoredBy,omitempty"`
	RestoredAt *time.Time    `json:"restoredAt,omitempty"`
	IsDeleted  bool          `json:"isDeleted"`
}

func (s Subcategory) EntityID() string { return s.ID }
