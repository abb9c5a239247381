package testapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"BodegonAdmin/internal/model"
)

// namedCRUD wires the standard list/create/update/delete/restore routes for
// the flat name-only entities. Methods cannot take type parameters, so the
// mount helpers live as free functions.
type namedCRUD[T model.Entity] struct {
	path     string
	listKey  string
	totalKey string
	items    *[]T

	name    func(*T) string
	setName func(*T, string)
	make    func(name string) T
	deleted func(*T) bool
	remove  func(*T, time.Time)
	restore func(*T, time.Time)
}

func mountNamed[T model.Entity](s *Server, r chi.Router, c namedCRUD[T]) {
	base := "/api/" + c.path

	r.Get(base, func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		q := parseListQuery(req)
		page, total, meta := selectPage(*c.items, q, func(it T) bool {
			if !q.includeDeleted && c.deleted(&it) {
				return false
			}
			return q.search == "" || strings.Contains(strings.ToLower(c.name(&it)), q.search)
		})
		writeList(w, "Listado obtenido", meta, c.listKey, page, c.totalKey, total)
	})

	r.Post(base, func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil || payload.Name == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "El nombre es obligatorio"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		it := c.make(payload.Name)
		*c.items = append(*c.items, it)
		writeResult(w, "Recurso creado", it)
	})

	r.Put(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			Name *string `json:"name"`
		}
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Petición inválida"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		it := findByID(*c.items, chi.URLParam(req, "id"))
		if it == nil {
			notFound(w, "Recurso")
			return
		}
		if payload.Name != nil {
			c.setName(it, *payload.Name)
		}
		writeResult(w, "Recurso actualizado", *it)
	})

	r.Delete(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		it := findByID(*c.items, chi.URLParam(req, "id"))
		if it == nil {
			notFound(w, "Recurso")
			return
		}
		c.remove(it, time.Now())
		writeResult(w, "Recurso eliminado", *it)
	})

	r.Patch(base+"/{id}/restore", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		it := findByID(*c.items, chi.URLParam(req, "id"))
		if it == nil {
			notFound(w, "Recurso")
			return
		}
		c.restore(it, time.Now())
		writeResult(w, "Recurso restaurado", *it)
	})

	r.Get(base+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		it := findByID(*c.items, chi.URLParam(req, "id"))
		if it == nil {
			notFound(w, "Recurso")
			return
		}
		writeResult(w, "Recurso obtenido", *it)
	})
}

func findByID[T model.Entity](items []T, id string) *T {
	for i := range items {
		if items[i].EntityID() == id {
			return &items[i]
		}
	}
	return nil
}

func (s *Server) mountCategories(r chi.Router) {
	mountNamed(s, r, namedCRUD[model.Category]{
		path:     "categories",
		listKey:  "categories",
		totalKey: "totalCategories",
		items:    &s.Categories,
		name:     func(c *model.Category) string { return c.Name },
		setName:  func(c *model.Category, n string) { c.Name = n; c.UpdatedAt = time.Now() },
		make: func(n string) model.Category {
			return model.Category{ID: uuid.NewString(), Name: n, CreatedAt: time.Now()}
		},
		deleted: func(c *model.Category) bool { return c.IsDeleted },
		remove:  func(c *model.Category, t time.Time) { c.IsDeleted = true; c.DeletedAt = &t },
		restore: func(c *model.Category, t time.Time) { c.IsDeleted = false; c.RestoredAt = &t },
	})
}

func (s *Server) mountIngredients(r chi.Router) {
	mountNamed(s, r, namedCRUD[model.Ingredient]{
		path:     "ingredients",
		listKey:  "ingredients",
		totalKey: "totalIngredients",
		items:    &s.Ingredients,
		name:     func(i *model.Ingredient) string { return i.Name },
		setName:  func(i *model.Ingredient, n string) { i.Name = n; i.UpdatedAt = time.Now() },
		make: func(n string) model.Ingredient {
			return model.Ingredient{ID: uuid.NewString(), Name: n, CreatedAt: time.Now()}
		},
		deleted: func(i *model.Ingredient) bool { return i.IsDeleted },
		remove:  func(i *model.Ingredient, t time.Time) { i.IsDeleted = true; i.DeletedAt = &t },
		restore: func(i *model.Ingredient, t time.Time) { i.IsDeleted = false; i.RestoredAt = &t },
	})
}

func (s *Server) mountAllergens(r chi.Router) {
	mountNamed(s, r, namedCRUD[model.Allergen]{
		path:     "allergens",
		listKey:  "allergens",
		totalKey: "totalAllergens",
		items:    &s.Allergens,
		name:     func(a *model.Allergen) string { return a.Name },
		setName:  func(a *model.Allergen, n string) { a.Name = n; a.UpdatedAt = time.Now() },
		make: func(n string) model.Allergen {
			return model.Allergen{ID: uuid.NewString(), Name: n, CreatedAt: time.Now()}
		},
		deleted: func(a *model.Allergen) bool { return a.IsDeleted },
		remove:  func(a *model.Allergen, t time.Time) { a.IsDeleted = true; a.DeletedAt = &t },
		restore: func(a *model.Allergen, t time.Time) { a.IsDeleted = false; a.RestoredAt = &t },
	})
}

func (s *Server) mountSubcategories(r chi.Router) {
	r.Get("/api/subcategories", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		q := parseListQuery(req)
		catID := req.URL.Query().Get("categoryId")
		page, total, meta := selectPage(s.Subcategories, q, func(sc model.Subcategory) bool {
			if !q.includeDeleted && sc.IsDeleted {
				return false
			}
			if catID != "" && sc.Category.ID != catID {
				return false
			}
			return q.search == "" || strings.Contains(strings.ToLower(sc.Name), q.search)
		})
		writeList(w, "Listado obtenido", meta, "subcategories", page, "totalSubcategories", total)
	})

	r.Post("/api/subcategories", func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			Name       string `json:"name"`
			CategoryID string `json:"categoryId"`
		}
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil || payload.Name == "" || payload.CategoryID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Nombre y categoría son obligatorios"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if findByID(s.Categories, payload.CategoryID) == nil {
			notFound(w, "Categoría")
			return
		}
		sc := model.Subcategory{
			ID:        uuid.NewString(),
			Name:      payload.Name,
			Category:  model.Ref[model.Category]{ID: payload.CategoryID},
			CreatedAt: time.Now(),
		}
		s.Subcategories = append(s.Subcategories, sc)
		writeResult(w, "Subcategoría creada", sc)
	})

	r.Put("/api/subcategories/{id}", func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			Name       *string `json:"name"`
			CategoryID *string `json:"categoryId"`
		}
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Petición inválida"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		sc := findByID(s.Subcategories, chi.URLParam(req, "id"))
		if sc == nil {
			notFound(w, "Subcategoría")
			return
		}
		if payload.Name != nil {
			sc.Name = *payload.Name
		}
		if payload.CategoryID != nil {
			sc.Category = model.Ref[model.Category]{ID: *payload.CategoryID}
		}
		sc.UpdatedAt = time.Now()
		writeResult(w, "Subcategoría actualizada", *sc)
	})

	r.Delete("/api/subcategories/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		sc := findByID(s.Subcategories, chi.URLParam(req, "id"))
		if sc == nil {
			notFound(w, "Subcategoría")
			return
		}
		now := time.Now()
		sc.IsDeleted = true
		sc.DeletedAt = &now
		writeResult(w, "Subcategoría eliminada", *sc)
	})

	r.Patch("/api/subcategories/{id}/restore", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		sc := findByID(s.Subcategories, chi.URLParam(req, "id"))
		if sc == nil {
			notFound(w, "Subcategoría")
			return
		}
		now := time.Now()
		sc.IsDeleted = false
		sc.RestoredAt = &now
		writeResult(w, "Subcategoría restaurada", *sc)
	})

	r.Get("/api/subcategories/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		sc := findByID(s.Subcategories, chi.URLParam(req, "id"))
		if sc == nil {
			notFound(w, "Subcategoría")
			return
		}
		writeResult(w, "Subcategoría obtenida", *sc)
	})
}

func (s *Server) mountDishes(r chi.Router) {
	r.Get("/api/dishes", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		q := parseListQuery(req)
		catID := req.URL.Query().Get("categoryId")
		page, total, meta := selectPage(s.Dishes, q, func(d model.Dish) bool {
			if !q.includeDeleted && d.IsDeleted {
				return false
			}
			if catID != "" && d.Category.ID != catID {
				return false
			}
			return q.search == "" || strings.Contains(strings.ToLower(d.Name), q.search)
		})
		writeList(w, "Listado obtenido", meta, "dishes", page, "totalDishes", total)
	})

	r.Post("/api/dishes", func(w http.ResponseWriter, req *http.Request) {
		d, errMsg := s.dishFromForm(req, nil)
		if errMsg != "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.Dishes = append(s.Dishes, *d)
		writeResult(w, "Plato creado", *d)
	})

	r.Put("/api/dishes/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		existing := findByID(s.Dishes, chi.URLParam(req, "id"))
		s.mu.Unlock()
		if existing == nil {
			notFound(w, "Plato")
			return
		}
		d, errMsg := s.dishFromForm(req, existing)
		if errMsg != "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		s.mu.Lock()
		*existing = *d
		existing.UpdatedAt = time.Now()
		out := *existing
		s.mu.Unlock()
		writeResult(w, "Plato actualizado", out)
	})

	r.Delete("/api/dishes/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		d := findByID(s.Dishes, chi.URLParam(req, "id"))
		if d == nil {
			notFound(w, "Plato")
			return
		}
		now := time.Now()
		d.IsDeleted = true
		d.DeletedAt = &now
		writeResult(w, "Plato eliminado", *d)
	})

	r.Patch("/api/dishes/{id}/restore", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		d := findByID(s.Dishes, chi.URLParam(req, "id"))
		if d == nil {
			notFound(w, "Plato")
			return
		}
		now := time.Now()
		d.IsDeleted = false
		d.RestoredAt = &now
		writeResult(w, "Plato restaurado", *d)
	})

	r.Get("/api/dishes/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		d := findByID(s.Dishes, chi.URLParam(req, "id"))
		if d == nil {
			notFound(w, "Plato")
			return
		}
		writeResult(w, "Plato obtenido", *d)
	})
}

// dishFromForm builds a dish from a multipart payload. With base set (update)
// absent fields keep their previous value; without it (create) name, price and
// category are required.
func (s *Server) dishFromForm(req *http.Request, base *model.Dish) (*model.Dish, string) {
	if err := req.ParseMultipartForm(8 << 20); err != nil {
		return nil, "Formato de petición inválido"
	}
	var d model.Dish
	if base != nil {
		d = *base
	} else {
		d.ID = uuid.NewString()
		d.CreatedAt = time.Now()
		d.Ingredients = []model.Ref[model.Ingredient]{}
		d.Allergens = []model.Ref[model.Allergen]{}
	}

	has := func(k string) bool { _, ok := req.MultipartForm.Value[k]; return ok }
	val := func(k string) string { return req.FormValue(k) }

	if has("name") {
		d.Name = val("name")
	}
	if has("description") {
		d.Description = val("description")
	}
	if has("price") {
		p, err := strconv.ParseFloat(val("price"), 64)
		if err != nil {
			return nil, "Precio inválido"
		}
		d.Price = p
	}
	if has("categoryId") {
		d.Category = model.Ref[model.Category]{ID: val("categoryId")}
	}
	if has("subcategoryId") {
		d.Subcategory = &model.Ref[model.Subcategory]{ID: val("subcategoryId")}
	}
	if has("ingredientIds") {
		var ids []string
		if err := json.Unmarshal([]byte(val("ingredientIds")), &ids); err != nil {
			return nil, "Ingredientes inválidos"
		}
		d.Ingredients = make([]model.Ref[model.Ingredient], 0, len(ids))
		for _, id := range ids {
			d.Ingredients = append(d.Ingredients, model.Ref[model.Ingredient]{ID: id})
		}
	}
	if has("allergenIds") {
		var ids []string
		if err := json.Unmarshal([]byte(val("allergenIds")), &ids); err != nil {
			return nil, "Alérgenos inválidos"
		}
		d.Allergens = make([]model.Ref[model.Allergen], 0, len(ids))
		for _, id := range ids {
			d.Allergens = append(d.Allergens, model.Ref[model.Allergen]{ID: id})
		}
	}
	if file, header, err := req.FormFile("image"); err == nil {
		file.Close()
		d.Image = "/uploads/" + header.Filename
	}

	if base == nil && (d.Name == "" || d.Price <= 0 || d.Category.ID == "") {
		return nil, "Datos del plato incompletos"
	}
	return &d, ""
}

func (s *Server) mountUsers(r chi.Router) {
	r.Get("/api/users/current", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		u := findByID(s.Users, s.CurrentUserID)
		if u == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Usuario no encontrado"})
			return
		}
		writeResult(w, "Usuario obtenido", *u)
	})

	r.Get("/api/users", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		q := parseListQuery(req)
		page, total, meta := selectPage(s.Users, q, func(u model.User) bool {
			if !q.includeDeleted && u.IsDeleted {
				return false
			}
			return q.search == "" || strings.Contains(strings.ToLower(u.Username), q.search)
		})
		writeList(w, "Listado obtenido", meta, "users", page, "totalUsers", total)
	})

	r.Post("/api/users", func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			Username  string `json:"username"`
			Password  string `json:"password"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Phone     string `json:"phone"`
			Role      string `json:"role"`
		}
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil || payload.Username == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Datos de usuario incompletos"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		u := model.User{
			ID:        uuid.NewString(),
			Username:  payload.Username,
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Phone:     payload.Phone,
			Role:      model.Role(payload.Role),
			CreatedAt: time.Now(),
		}
		s.Users = append(s.Users, u)
		writeResult(w, "Usuario creado", u)
	})

	update := func(w http.ResponseWriter, req *http.Request, allowRole bool) {
		var payload struct {
			Username  *string `json:"username"`
			FirstName *string `json:"firstName"`
			LastName  *string `json:"lastName"`
			Phone     *string `json:"phone"`
			Role      *string `json:"role"`
		}
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Petición inválida"})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		u := findByID(s.Users, chi.URLParam(req, "id"))
		if u == nil {
			notFound(w, "Usuario")
			return
		}
		if payload.Username != nil {
			u.Username = *payload.Username
		}
		if payload.FirstName != nil {
			u.FirstName = *payload.FirstName
		}
		if payload.LastName != nil {
			u.LastName = *payload.LastName
		}
		if payload.Phone != nil {
			u.Phone = *payload.Phone
		}
		if allowRole && payload.Role != nil {
			u.Role = model.Role(*payload.Role)
		}
		u.ModifiedAt = time.Now()
		writeResult(w, "Usuario actualizado", *u)
	}

	r.Put("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		update(w, req, true)
	})
	r.Put("/api/users/profile/{id}", func(w http.ResponseWriter, req *http.Request) {
		update(w, req, false)
	})

	r.Delete("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		u := findByID(s.Users, chi.URLParam(req, "id"))
		if u == nil {
			notFound(w, "Usuario")
			return
		}
		now := time.Now()
		u.IsDeleted = true
		u.DeletedAt = &now
		writeResult(w, "Usuario eliminado", *u)
	})

	r.Patch("/api/users/{id}/restore", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		u := findByID(s.Users, chi.URLParam(req, "id"))
		if u == nil {
			notFound(w, "Usuario")
			return
		}
		u.IsDeleted = false
		writeResult(w, "Usuario restaurado", *u)
	})

	r.Get("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		u := findByID(s.Users, chi.URLParam(req, "id"))
		if u == nil {
			notFound(w, "Usuario")
			return
		}
		writeResult(w, "Usuario obtenido", *u)
	})
}

func (s *Server) mountContacts(r chi.Router) {
	r.Get("/api/contacts", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		q := parseListQuery(req)
		isRead := req.URL.Query().Get("isRead")
		page, total, meta := selectPage(s.Contacts, q, func(c model.Contact) bool {
			if !q.includeDeleted && c.IsDeleted {
				return false
			}
			if isRead == "true" && !c.IsRead {
				return false
			}
			if isRead == "false" && c.IsRead {
				return false
			}
			return q.search == "" || strings.Contains(strings.ToLower(c.Name), q.search)
		})
		unread := 0
		for _, c := range s.Contacts {
			if !c.IsDeleted && !c.IsRead {
				unread++
			}
		}
		writeList(w, "Listado obtenido", meta,
			"contacts", page, "totalContacts", total, "totalUnread", unread)
	})

	r.Patch("/api/contacts/{id}/mark-as-read", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c := findByID(s.Contacts, chi.URLParam(req, "id"))
		if c == nil {
			notFound(w, "Mensaje")
			return
		}
		now := time.Now()
		c.IsRead = true
		c.ReadAt = &now
		c.ReadBy = &model.Ref[model.User]{ID: s.CurrentUserID}
		writeResult(w, "Mensaje marcado como leído", *c)
	})

	r.Delete("/api/contacts/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c := findByID(s.Contacts, chi.URLParam(req, "id"))
		if c == nil {
			notFound(w, "Mensaje")
			return
		}
		now := time.Now()
		c.IsDeleted = true
		c.DeletedAt = &now
		writeResult(w, "Mensaje eliminado", *c)
	})

	r.Patch("/api/contacts/{id}/restore", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c := findByID(s.Contacts, chi.URLParam(req, "id"))
		if c == nil {
			notFound(w, "Mensaje")
			return
		}
		now := time.Now()
		c.IsDeleted = false
		c.RestoredAt = &now
		writeResult(w, "Mensaje restaurado", *c)
	})

	r.Get("/api/contacts/{id}", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c := findByID(s.Contacts, chi.URLParam(req, "id"))
		if c == nil {
			notFound(w, "Mensaje")
			return
		}
		writeResult(w, "Mensaje obtenido", *c)
	})
}
