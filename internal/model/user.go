package model

import "time"

// Role is the closed set of back-office roles.
type Role string

const RoleAdmin Role = "admin"

// User is the authenticated-actor entity. Unlike the other records its update
// stamps are named modifiedBy/modifiedAt by the backend.
type User struct {
	ID         string     `json:"_id"`
	Username   string     `json:"username"`
	Password   string     `json:"password,omitempty"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Phone      string     `json:"phone,omitempty"`
	Role       Role       `json:"role"`
	CreatedBy  *Ref[User] `json:"createdBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedBy *Ref[User] `json:"modifiedBy,omitempty"`
	ModifiedAt time.Time  `json:"modifiedAt"`
	DeletedBy  *Ref[User] `json:"deletedBy,omitempty"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	IsDeleted  bool       `json:"isDeleted"`
}

func (u User) EntityID() string { return u.ID }
