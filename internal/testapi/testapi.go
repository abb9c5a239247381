// Package testapi runs an in-memory rendition of the restaurant backend for
// tests. It speaks the same envelopes, list keys and status phrases as the
// real thing, backed by plain slices.
package testapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"BodegonAdmin/internal/model"
)

const (
	// Token is the bearer value Login hands out and the middleware accepts.
	Token = "test-session-token"

	Username = "admin"
	Password = "admin123"
)

type Server struct {
	mu sync.Mutex

	Categories    []model.Category
	Subcategories []model.Subcategory
	Ingredients   []model.Ingredient
	Allergens     []model.Allergen
	Dishes        []model.Dish
	Users         []model.User
	Contacts      []model.Contact

	// CurrentUserID is whose record GET users/current returns.
	CurrentUserID string

	// ExpireSessions makes every authenticated route answer 401 with the
	// invalid-token phrase, simulating a token that died server-side.
	ExpireSessions bool

	router chi.Router
}

func New() *Server {
	s := &Server{}
	admin := model.User{
		ID:        uuid.NewString(),
		Username:  Username,
		FirstName: "Ana",
		LastName:  "García",
		Role:      model.RoleAdmin,
		CreatedAt: time.Now(),
	}
	s.Users = append(s.Users, admin)
	s.CurrentUserID = admin.ID

	r := chi.NewRouter()
	r.Post("/api/auth/login", s.handleLogin)
	r.Group(func(r chi.Router) {
		r.Use(s.requireToken)
		s.mountCategories(r)
		s.mountSubcategories(r)
		s.mountIngredients(r)
		s.mountAllergens(r)
		s.mountDishes(r)
		s.mountUsers(r)
		s.mountContacts(r)
		r.Get("/api/dashboard/stats", s.handleDashboard)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SeedCategory and friends insert fixture records with fresh ids.
func (s *Server) SeedCategory(name string) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Category{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	s.Categories = append(s.Categories, c)
	return c
}

func (s *Server) SeedIngredient(name string) model.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := model.Ingredient{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	s.Ingredients = append(s.Ingredients, i)
	return i
}

func (s *Server) SeedAllergen(name string) model.Allergen {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := model.Allergen{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	s.Allergens = append(s.Allergens, a)
	return a
}

func (s *Server) SeedContact(name, message string, read bool) model.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.ToLower(name) + "@example.com",
		Message:   message,
		IsRead:    read,
		CreatedAt: time.Now(),
	}
	s.Contacts = append(s.Contacts, c)
	return c
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		expired := s.ExpireSessions
		s.mu.Unlock()
		auth := r.Header.Get("Authorization")
		if expired || auth != "Bearer "+Token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "El token es inválido o ha expirado",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Petición inválida"})
		return
	}
	if creds.Username != Username || creds.Password != Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Credenciales inválidas"})
		return
	}
	s.mu.Lock()
	id := s.CurrentUserID
	s.mu.Unlock()
	writeResult(w, "Inicio de sesión exitoso", map[string]any{
		"id":       id,
		"username": creds.Username,
		"role":     string(model.RoleAdmin),
		"token":    Token,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := model.DashboardStats{
		Dishes:        countOf(s.Dishes, func(d model.Dish) bool { return d.IsDeleted }),
		Categories:    countOf(s.Categories, func(c model.Category) bool { return c.IsDeleted }),
		Subcategories: countOf(s.Subcategories, func(c model.Subcategory) bool { return c.IsDeleted }),
		Ingredients:   countOf(s.Ingredients, func(i model.Ingredient) bool { return i.IsDeleted }),
		Allergens:     countOf(s.Allergens, func(a model.Allergen) bool { return a.IsDeleted }),
		Users:         countOf(s.Users, func(u model.User) bool { return u.IsDeleted }),
	}
	stats.Contacts.Counts = countOf(s.Contacts, func(c model.Contact) bool { return c.IsDeleted })
	for _, c := range s.Contacts {
		if c.IsDeleted {
			continue
		}
		if c.IsRead {
			stats.Contacts.Read++
		} else {
			stats.Contacts.Unread++
		}
	}
	writeResult(w, "Estadísticas obtenidas", stats)
}

func countOf[T any](items []T, deleted func(T) bool) model.Counts {
	c := model.Counts{Total: len(items)}
	for _, it := range items {
		if deleted(it) {
			c.Deleted++
		} else {
			c.Active++
		}
	}
	return c
}

// listQuery is the pagination/filter triple every collection endpoint honors.
type listQuery struct {
	page           int
	limit          int
	search         string
	includeDeleted bool
}

func parseListQuery(r *http.Request) listQuery {
	q := listQuery{page: 1, limit: 10}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		q.page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		q.limit = v
	}
	q.search = strings.ToLower(r.URL.Query().Get("search"))
	q.includeDeleted = r.URL.Query().Get("includeDeleted") == "true"
	return q
}

// selectPage filters with keep and slices out the requested page. The page
// meta mirrors what mongoose-paginate reports.
func selectPage[T any](items []T, q listQuery, keep func(T) bool) ([]T, int, map[string]any) {
	var filtered []T
	for _, it := range items {
		if keep(it) {
			filtered = append(filtered, it)
		}
	}
	total := len(filtered)
	totalPages := (total + q.limit - 1) / q.limit
	if totalPages == 0 {
		totalPages = 1
	}
	start := (q.page - 1) * q.limit
	if start > total {
		start = total
	}
	end := start + q.limit
	if end > total {
		end = total
	}
	page := filtered[start:end]
	if page == nil {
		page = []T{}
	}
	meta := map[string]any{
		"totalPages":  totalPages,
		"currentPage": q.page,
		"hasNextPage": q.page < totalPages,
		"hasPrevPage": q.page > 1,
	}
	return page, total, meta
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeResult(w http.ResponseWriter, message string, result any) {
	writeJSON(w, http.StatusOK, map[string]any{"message": message, "result": result})
}

func writeList(w http.ResponseWriter, message string, meta map[string]any, kv ...any) {
	result := map[string]any{}
	for k, v := range meta {
		result[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		result[kv[i].(string)] = kv[i+1]
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": message, "result": result})
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": what + " no encontrado"})
}
