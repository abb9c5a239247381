package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"BodegonAdmin/internal/controller"
	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Crear un registro nuevo" }
func (addCmd) Usage() string {
	return "add <recurso> -name N [recurso-specific flags, see 'help add']"
}

func (addCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	res, ok := resolveResource(args[0])
	if !ok {
		return ErrUsage
	}

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(Out)
	name := fs.String("name", "", "nombre")
	desc := fs.String("desc", "", "descripción (platos)")
	price := fs.Float64("price", 0, "precio (platos)")
	category := fs.String("category", "", "id de categoría")
	subcategory := fs.String("subcategory", "", "id de subcategoría (platos)")
	ingredients := fs.String("ingredients", "", "ids de ingredientes separados por coma (platos)")
	allergens := fs.String("allergens", "", "ids de alérgenos separados por coma (platos)")
	image := fs.String("image", "", "ruta de la imagen (platos)")
	username := fs.String("username", "", "usuario (usuarios)")
	password := fs.String("password", "", "contraseña (usuarios)")
	first := fs.String("first", "", "nombre de pila (usuarios)")
	last := fs.String("last", "", "apellido (usuarios)")
	phone := fs.String("phone", "", "teléfono (usuarios)")
	role := fs.String("role", "admin", "rol (usuarios)")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	switch res.name {
	case "categories":
		return app.Categories.Create(ctx, *name)
	case "ingredients":
		return app.Ingredients.Create(ctx, *name)
	case "allergens":
		return app.Allergens.Create(ctx, *name)
	case "subcategories":
		if err := app.Subcategories.PreloadReferences(ctx); err != nil {
			return err
		}
		return app.Subcategories.Create(ctx, *name, *category)
	case "users":
		return app.Users.Create(ctx, service.CreateUser{
			Username:  *username,
			Password:  *password,
			FirstName: *first,
			LastName:  *last,
			Phone:     *phone,
			Role:      *role,
		})
	case "dishes":
		if err := app.Dishes.PreloadReferences(ctx); err != nil {
			return err
		}
		img, err := loadImage(*image)
		if err != nil {
			return err
		}
		for _, id := range splitIDs(*ingredients) {
			app.Dishes.Ingredients.Select(model.Ingredient{ID: id})
		}
		for _, id := range splitIDs(*allergens) {
			app.Dishes.Allergens.Select(model.Allergen{ID: id})
		}
		return app.Dishes.Create(ctx, controller.DishForm{
			Name:          *name,
			Description:   *desc,
			Price:         *price,
			CategoryID:    *category,
			SubcategoryID: *subcategory,
			Image:         img,
		})
	default:
		return fmt.Errorf("no se puede crear %s desde la CLI", res.name)
	}
}

func loadImage(path string) (*service.ImageFile, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leyendo imagen: %w", err)
	}
	return &service.ImageFile{Name: filepath.Base(path), Content: content}, nil
}

func splitIDs(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() { RegisterCmd(addCmd{}) }
