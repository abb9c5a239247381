package model

// Counts is the per-entity-kind dashboard tuple, recomputed server-side on
// every fetch.
type Counts struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Deleted int `json:"deleted"`
}

// ContactCounts adds read tracking to the standard tuple.
type ContactCounts struct {
	Counts
	Read   int `json:"read"`
	Unread int `json:"unread"`
}

type DashboardStats struct {
	Dishes        Counts        `json:"dishes"`
	Categories    Counts        `json:"categories"`
	Subcategories Counts        `json:"subcategories"`
	Ingredients   Counts        `json:"ingredients"`
	Allergens     Counts        `json:"allergens"`
	Users         Counts        `json:"users"`
	Contacts      ContactCounts `json:"contacts"`
}
