package commands

import (
	"context"
	"fmt"
)

type dashboardCmd struct{}

func (dashboardCmd) Name() string        { return "dashboard" }
func (dashboardCmd) Description() string { return "Resumen de totales por colección" }
func (dashboardCmd) Usage() string       { return "dashboard" }

func (dashboardCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	stats, err := app.Dashboard.Load(ctx)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "COLECCIÓN\tTOTAL\tACTIVOS\tELIMINADOS")
	fmt.Fprintf(w, "Platos\t%d\t%d\t%d\n", stats.Dishes.Total, stats.Dishes.Active, stats.Dishes.Deleted)
	fmt.Fprintf(w, "Categorías\t%d\t%d\t%d\n", stats.Categories.Total, stats.Categories.Active, stats.Categories.Deleted)
	fmt.Fprintf(w, "Subcategorías\t%d\t%d\t%d\n", stats.Subcategories.Total, stats.Subcategories.Active, stats.Subcategories.Deleted)
	fmt.Fprintf(w, "Ingredientes\t%d\t%d\t%d\n", stats.Ingredients.Total, stats.Ingredients.Active, stats.Ingredients.Deleted)
	fmt.Fprintf(w, "Alérgenos\t%d\t%d\t%d\n", stats.Allergens.Total, stats.Allergens.Active, stats.Allergens.Deleted)
	fmt.Fprintf(w, "Usuarios\t%d\t%d\t%d\n", stats.Users.Total, stats.Users.Active, stats.Users.Deleted)
	fmt.Fprintf(w, "Mensajes\t%d\t%d\t%d\n", stats.Contacts.Total, stats.Contacts.Active, stats.Contacts.Deleted)
	w.Flush()
	fmt.Fprintf(Out, "Mensajes sin leer: %d\n", stats.Contacts.Unread)
	return nil
}

func init() { RegisterCmd(dashboardCmd{}) }
