package model

// Entity is any server-owned record with a Mongo-style id.
type Entity interface {
	EntityID() string
}

// Page is the client-side shape of every paginated list response. The server
// names the item and total fields per entity (categories/totalCategories,
// dishes/totalDishes, ...); the services normalize them into this envelope.
type Page[T Entity] struct {
	Items       []T
	Total       int
	TotalUnread int // contacts only
	TotalPages  int
	CurrentPage int
	HasNextPage bool
	HasPrevPage bool
}

// Index returns the position of the record with the given id, or -1.
func (p *Page[T]) Index(id string) int {
	if p == nil {
		return -1
	}
	for i := range p.Items {
		if p.Items[i].EntityID() == id {
			return i
		}
	}
	return -1
}
