package model

import "time"

type Ingredient struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	CreatedBy  *Ref[User] `json:"createdBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedBy  *Ref[User] `json:"updatedBy,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedBy  *Ref[User] `json:"deletedBy,omitempty"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	RestoredBy *Ref[User] `json:"restoredBy,omitempty"`
	RestoredAt *time.Time `json:"restoredAt,omitempty"`
	IsDeleted  bool       `json:"isDeleted"`
}

func (i Ingredient) EntityID() string { return i.ID }

type Allergen struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	CreatedBy  *Ref[User] `json:"createdBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedBy  *Ref[User] `json:"updatedBy,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedBy  *Ref[User] `json:"deletedBy,omitempty"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	RestoredBy *Ref[User] `json:"restoredBy,omitempty"`
	RestoredAt *time.Time `json:"restoredAt,omitempty"`
	IsDeleted  bool       `json:"isDeleted"`
}

func (a Allergen) EntityID() string { return a.ID }
