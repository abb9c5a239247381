package model

import "time"

// Dish references one category, optionally one subcategory, and sets of
// ingredients and allergens. All references arrive as ids unless the list
// request set includeRelations.
type Dish struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Image       string            `json:"image"`
	Category    Ref[Category]     `json:"category"`
	Subcategory *Ref[Subcategory] `json:"subcategory,omitempty"`
	Ingredients []Ref[Ingredient] `json:"ingredients"`
	Allergens   []Ref[Allergen]   `json:"allergens"`
	CreatedBy   *Ref[User]        `json:"createdBy,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedBy   *Ref[User]        `json:"updatedBy,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	DeletedBy   *Ref[User]        `json:"deletedBy,omitempty"`
	DeletedAt   *time.Time        `json:"deletedAt,omitempty"`
	RestoredBy  *Ref[User]        `json:"restoredBy,omitempty"`
	RestoredAt  *time.Time        `json:"restoredAt,omitempty"`
	IsDeleted   bool              `json:"isDeleted"`
}

func (d Dish) EntityID() string { return d.ID }
