package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"BodegonAdmin/internal/model"
)

// listOpts are the staged filters a list command collects from its flags.
type listOpts struct {
	page        int
	search      string
	deleted     bool
	category    string
	subcategory string
	read        string
}

// resource binds a collection name to the page controller operations the
// generic commands (list, show, delete, restore) run.
type resource struct {
	name    string
	list    func(ctx context.Context, app *App, o listOpts) error
	show    func(ctx context.Context, app *App, id string) error
	remove  func(ctx context.Context, app *App, id string) error
	restore func(ctx context.Context, app *App, id string) error
}

var resourceAliases = map[string]string{
	"category":    "categories",
	"subcategory": "subcategories",
	"dish":        "dishes",
	"ingredient":  "ingredients",
	"allergen":    "allergens",
	"user":        "users",
	"contact":     "contacts",
}

func resolveResource(name string) (*resource, bool) {
	if canonical, ok := resourceAliases[name]; ok {
		name = canonical
	}
	r, ok := resourceTable[name]
	return r, ok
}

var resourceTable = map[string]*resource{
	"categories": {
		name: "categories",
		list: func(ctx context.Context, app *App, o listOpts) error {
			app.Categories.Configure(o.page, o.search, o.deleted)
			if err := app.Categories.Refetch(ctx); err != nil {
				return err
			}
			snap := app.Categories.Snapshot()
			w := newTable()
			fmt.Fprintln(w, "ID\tNOMBRE\tSUBCATEGORÍAS\tESTADO")
			for _, c := range snap.Data.Items {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.ID, c.Name, len(c.Subcategories), status(c.IsDeleted))
			}
			w.Flush()
			footer(snap.Data.CurrentPage, snap.Data.TotalPages, snap.Data.Total)
			return nil
		},
		show: func(ctx context.Context, app *App, id string) error {
			if err := app.Categories.View(ctx, id); err != nil {
				return err
			}
			c := app.Categories.Snapshot().Selected
			fmt.Fprintf(Out, "Categoría %s\n  Nombre: %s\n  Estado: %s\n", c.ID, c.Name, status(c.IsDeleted))
			for _, sc := range c.Subcategories {
				fmt.Fprintf(Out, "  Subcategoría: %s (%s)\n", sc.Name, sc.ID)
			}
			stamp("Creado", c.CreatedAt, c.CreatedBy)
			stamp("Actualizado", c.UpdatedAt, c.UpdatedBy)
			optStamp("Eliminado", c.DeletedAt, c.DeletedBy)
			optStamp("Restaurado", c.RestoredAt, c.RestoredBy)
			app.Categories.CloseModal()
			return nil
		},
		remove:  func(ctx context.Context, app *App, id string) error { return app.Categories.Delete(ctx, id) },
		restore: func(ctx context.Context, app *App, id string) error { return app.Categories.Restore(ctx, id) },
	},

	"subcategories": {
		name: "subcategories",
		list: func(ctx context.Context, app *App, o listOpts) error {
			app.Subcategories.Configure(o.page, o.search, o.deleted)
			app.Subcategories.FilterByCategory(o.category)
			if err := app.Subcategories.Refetch(ctx); err != nil {
				return err
			}
			snap := app.Subcategories.Snapshot()
			w := newTable()
			fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tESTADO")
			for _, sc := range snap.Data.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sc.ID, sc.Name, categoryLabel(sc.Category), status(sc.IsDeleted))
			}
			w.Flush()
			footer(snap.Data.CurrentPage, snap.Data.TotalPages, snap.Data.Total)
			return nil
		},
		show: func(ctx context.Context, app *App, id string) error {
			if err := app.Subcategories.View(ctx, id); err != nil {
				return err
			}
			sc := app.Subcategories.Snapshot().Selected
			fmt.Fprintf(Out, "Subcategoría %s\n  Nombre: %s\n  Categoría: %s\n  Estado: %s\n",
				sc.ID, sc.Name, categoryLabel(sc.Category), status(sc.IsDeleted))
			stamp("Creado", sc.CreatedAt, sc.CreatedBy)
			stamp("Actualizado", sc.UpdatedAt, sc.UpdatedBy)
			optStamp("Eliminado", sc.DeletedAt, sc.DeletedBy)
			optStamp("Restaurado", sc.RestoredAt, sc.RestoredBy)
			app.Subcategories.CloseModal()
			return nil
		},
		remove:  func(ctx context.Context, app *App, id string) error { return app.Subcategories.Delete(ctx, id) },
		restore: func(ctx context.Context, app *App, id string) error { return app.Subcategories.Restore(ctx, id) },
	},

	"dishes": {
		name: "dishes",
		list: func(ctx context.Context, app *App, o listOpts) error {
			app.Dishes.Configure(o.page, o.search, o.deleted)
			app.Dishes.FilterBy(o.category, o.subcategory)
			if err := app.Dishes.Refetch(ctx); err != nil {
				return err
			}
			snap := app.Dishes.Snapshot()
			w := newTable()
			fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tCATEGORÍA\tESTADO")
			for _, d := range snap.Data.Items {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", d.ID, d.Name, d.Price, categoryLabel(d.Category), status(d.IsDeleted))
			}
			w.Flush()
			footer(snap.Data.CurrentPage, snap.Data.TotalPages, snap.Data.Total)
			return nil
		},
		show: func(ctx context.Context, app *App, id string) error {
			if err := app.Dishes.View(ctx, id); err != nil {
				return err
			}
			d := app.Dishes.Snapshot().Selected
			fmt.Fprintf(Out, "Plato %s\n  Nombre: %s\n  Descripción: %s\n  Precio: %.2f\n  Categoría: %s\n",
				d.ID, d.Name, d.Description, d.Price, categoryLabel(d.Category))
			if d.Subcategory != nil {
				fmt.Fprintf(Out, "  Subcategoría: %s\n", subcategoryLabel(*d.Subcategory))
			}
			for _, ref := range d.Ingredients {
				fmt.Fprintf(Out, "  Ingrediente: %s\n", ingredientLabel(ref))
			}
			for _, ref := range d.Allergens {
				fmt.Fprintf(Out, "  Alérgeno: %s\n", allergenLabel(ref))
			}
			if d.Image != "" {
				fmt.Fprintf(Out, "  Imagen: %s\n", d.Image)
			}
			fmt.Fprintf(Out, "  Estado: %s\n", status(d.IsDeleted))
			stamp("Creado", d.CreatedAt, d.CreatedBy)
			stamp("Actualizado", d.UpdatedAt, d.UpdatedBy)
			optStamp("Eliminado", d.DeletedAt, d.DeletedBy)
			optStamp("Restaurado", d.RestoredAt, d.RestoredBy)
			app.Dishes.CloseModal()
			return nil
		},
		remove:  func(ctx context.Context, app *App, id string) error { return app.Dishes.Delete(ctx, id) },
		restore: func(ctx context.Context, app *App, id string) error { return app.Dishes.Restore(ctx, id) },
	},

	"ingredients": {
		name: "ingredients",
		list: func(ctx context.Context, app *App, o listOpts) error {
			app.Ingredients.Configure(o.page, o.search, o.deleted)
			if err := app.Ingredients.Refetch(ctx); err != nil {
				return err
			}
			snap := app.Ingredients.Snapshot()
			w := newTable()
			fmt.Fprintln(w, "ID\tNOMBRE\tESTADO")
			for _, i := range snap.Data.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", i.ID, i.Name, status(i.IsDeleted))
			}
			w.Flush()
			footer(snap.Data.CurrentPage, snap.Data.TotalPages, snap.Data.Total)
			return nil
		},
		show: func(ctx context.Context, app *App, id string) error {
			if err := app.Ingredients.View(ctx, id); err != nil {
				return err
			}
			i := app.Ingredients.Snapshot().Selected
			fmt.Fprintf(Out, "Ingrediente %s\n  Nombre: %s\n  Estado: %s\n", i.ID, i.Name, status(i.IsDeleted))
			stamp("Creado", i.CreatedAt, i.CreatedBy)
			stamp("Actualizado", i.UpdatedAt, i.UpdatedBy)
			optStamp("Eliminado", i.DeletedAt, i.DeletedBy)
			optStamp("Restaurado", i.RestoredAt, i.RestoredBy)
			app.Ingredients.CloseModal()
			return nil
		},
		remove:  func(ctx context.Context, app *App, id string) error { return app.Ingredients.Delete(ctx, id) },
		restore: func(ctx context.Context, app *App, id string) error { return app.Ingredients.Restore(ctx, id) },
	},

	"allergens": {
		name: "allergens",
		list: func(ctx context.Context, app *App, o listOpts) error {
			app.Allergens.Configure(o.page, o.search, o.deleted)
			if err := app.Allergens.Refetch(ctx); err != nil {
				return err
			}
			snap := app.Allergens.Snapshot()
			w := newTable()
			fmt.Fprintln(w, "ID\tNOMBRE\tESTADO")
			for _, a := range snap.Data.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.Name, status(a.IsDeleted))
			}
			w.Flush()
			footer(snap.Data.CurrentPage, snap.Data.TotalPages, snap.Data.Total)
			return nil
		},
		show: func(ctx context.Context, app *App, id string) error {
			if err := app.Allergens.View(ctx, id); err != nil {
				return err
			}
			a := app.Allergens.Snapshot().Selected
			fmt.Fprintf(Out, "Alérgeno %s\n  Nombre: %s\n  Estado: %s\n", a.ID, a.Name, status(a.IsDeleted))
			stamp("Creado", a.CreatedAt, a.CreatedBy)
			stamp("Actualizado", a.UpdatedAt, a.UpdatedBy)
			optStamp("Eliminado", a.DeletedAt, a.DeletedBy)
			optStamp("Restaurado", a.RestoredAt, a.RestoredBy)
			app.Allergens.CloseModal()
			return nil
		},
		remove:  func(ctx context.Context, app *App, id string) error { return app.Allergens.Delete(ctx, id) },
		restore: func(ctx context.Context, app *App, id string) error { return app.Allergens.Restore(ctx, id) },
	},

	"users": {
		name: "users",
		list: func(ctx context.Context, app *App, o listOpts) error {
			app.Users.Configure(o.page, o.search, o.deleted)
			if err := app.Users.Refetch(ctx); err != nil {
				return err
			}
			snap := app.Users.Snapshot()
			w := newTable()
			fmt.Fprintln(w, "ID\tUSUARIO\tNOMBRE\tROL\tESTADO")
			for _, u := range snap.Data.Items {
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n", u.ID, u.Username, u.FirstName, u.LastName, u.Role, status(u.IsDeleted))
			}
			w.Flush()
			footer(snap.Data.CurrentPage, snap.Data.TotalPages, snap.Data.Total)
			return nil
		},
		show: func(ctx context.Context, app *App, id string) error {
			if err := app.Users.View(ctx, id); err != nil {
				return err
			}
			u := app.Users.Snapshot().Selected
			fmt.Fprintf(Out, "Usuario %s\n  Usuario: %s\n  Nombre: %s %s\n  Teléfono: %s\n  Rol: %s\n  Estado: %s\n",
				u.ID, u.Username, u.FirstName, u.LastName, u.Phone, u.Role, status(u.IsDeleted))
			stamp("Creado", u.CreatedAt, u.CreatedBy)
			stamp("Modificado", u.ModifiedAt, u.ModifiedBy)
			optStamp("Eliminado", u.DeletedAt, u.DeletedBy)
			app.Users.CloseModal()
			return nil
		},
		remove:  func(ctx context.Context, app *App, id string) error { return app.Users.Delete(ctx, id) },
		restore: func(ctx context.Context, app *App, id string) error { return app.Users.Restore(ctx, id) },
	},

	"contacts": {
		name: "contacts",
		list: func(ctx context.Context, app *App, o listOpts) error {
			app.Contacts.Configure(o.page, o.search, o.deleted)
			app.Contacts.FilterByRead(o.read)
			if err := app.Contacts.Refetch(ctx); err != nil {
				return err
			}
			snap := app.Contacts.Snapshot()
			w := newTable()
			fmt.Fprintln(w, "ID\tDE\tEMAIL\tLEÍDO\tESTADO")
			for _, c := range snap.Data.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, boolLabel(c.IsRead), status(c.IsDeleted))
			}
			w.Flush()
			footer(snap.Data.CurrentPage, snap.Data.TotalPages, snap.Data.Total)
			fmt.Fprintf(Out, "Sin leer: %d\n", snap.Data.TotalUnread)
			return nil
		},
		show: func(ctx context.Context, app *App, id string) error {
			return showContact(ctx, app, id)
		},
		remove:  func(ctx context.Context, app *App, id string) error { return app.Contacts.Delete(ctx, id) },
		restore: func(ctx context.Context, app *App, id string) error { return app.Contacts.Restore(ctx, id) },
	},
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(Out, 2, 4, 2, ' ', 0)
}

func footer(page, totalPages, total int) {
	fmt.Fprintf(Out, "Página %d de %d (%d en total)\n", page, totalPages, total)
}

func status(deleted bool) string {
	if deleted {
		return "eliminado"
	}
	return "activo"
}

func boolLabel(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

// stamp prints one audit line, "Creado: 2026-01-15 10:30 por admin" style.
func stamp(label string, at time.Time, by *model.Ref[model.User]) {
	if at.IsZero() {
		return
	}
	fmt.Fprintf(Out, "  %s: %s%s\n", label, at.Format("2006-01-02 15:04"), actor(by))
}

func optStamp(label string, at *time.Time, by *model.Ref[model.User]) {
	if at != nil {
		stamp(label, *at, by)
	}
}

func actor(by *model.Ref[model.User]) string {
	if by == nil {
		return ""
	}
	if by.Populated() {
		return " por " + by.Record.Username
	}
	return " por " + by.ID
}

func categoryLabel(r model.Ref[model.Category]) string {
	if r.Populated() {
		return r.Record.Name
	}
	return r.ID
}

func subcategoryLabel(r model.Ref[model.Subcategory]) string {
	if r.Populated() {
		return r.Record.Name
	}
	return r.ID
}

func ingredientLabel(r model.Ref[model.Ingredient]) string {
	if r.Populated() {
		return r.Record.Name
	}
	return r.ID
}

func allergenLabel(r model.Ref[model.Allergen]) string {
	if r.Populated() {
		return r.Record.Name
	}
	return r.ID
}
