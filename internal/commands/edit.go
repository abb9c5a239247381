package commands

import (
	"context"
	"flag"
	"fmt"

	"BodegonAdmin/internal/service"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Modificar campos de un registro" }
func (editCmd) Usage() string {
	return "edit <recurso> <id> [-name N] [recurso-specific flags, see 'help edit']"
}

// Run sends only the flags the operator actually typed. An omitted flag never
// reaches the payload, so the backend leaves that field untouched.
func (editCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	res, ok := resolveResource(args[0])
	if !ok {
		return ErrUsage
	}
	id := args[1]

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(Out)
	name := fs.String("name", "", "nombre")
	desc := fs.String("desc", "", "descripción (platos)")
	price := fs.Float64("price", 0, "precio (platos)")
	category := fs.String("category", "", "id de categoría")
	subcategory := fs.String("subcategory", "", "id de subcategoría (platos)")
	ingredients := fs.String("ingredients", "", "ids de ingredientes separados por coma, vacío para quitar todos (platos)")
	allergens := fs.String("allergens", "", "ids de alérgenos separados por coma, vacío para quitar todos (platos)")
	image := fs.String("image", "", "ruta de la imagen (platos)")
	username := fs.String("username", "", "usuario (usuarios)")
	password := fs.String("password", "", "contraseña (usuarios)")
	first := fs.String("first", "", "nombre de pila (usuarios)")
	last := fs.String("last", "", "apellido (usuarios)")
	phone := fs.String("phone", "", "teléfono (usuarios)")
	role := fs.String("role", "", "rol (usuarios)")
	if err := fs.Parse(args[2:]); err != nil {
		return ErrUsage
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	strPtr := func(flagName string, v *string) *string {
		if set[flagName] {
			return v
		}
		return nil
	}

	switch res.name {
	case "categories":
		if !set["name"] {
			return ErrUsage
		}
		return app.Categories.Rename(ctx, id, *name)
	case "ingredients":
		if !set["name"] {
			return ErrUsage
		}
		return app.Ingredients.Rename(ctx, id, *name)
	case "allergens":
		if !set["name"] {
			return ErrUsage
		}
		return app.Allergens.Rename(ctx, id, *name)
	case "subcategories":
		if !set["name"] && !set["category"] {
			return ErrUsage
		}
		return app.Subcategories.Update(ctx, id, strPtr("name", name), strPtr("category", category))
	case "users":
		payload := service.UpdateUser{
			Username:  strPtr("username", username),
			Password:  strPtr("password", password),
			FirstName: strPtr("first", first),
			LastName:  strPtr("last", last),
			Phone:     strPtr("phone", phone),
			Role:      strPtr("role", role),
		}
		return app.Users.Update(ctx, id, payload)
	case "dishes":
		if err := app.Dishes.PreloadReferences(ctx); err != nil {
			return err
		}
		payload := service.UpdateDish{
			Name:          strPtr("name", name),
			Description:   strPtr("desc", desc),
			CategoryID:    strPtr("category", category),
			SubcategoryID: strPtr("subcategory", subcategory),
		}
		if set["price"] {
			payload.Price = price
		}
		if set["ingredients"] {
			ids := splitIDs(*ingredients)
			if ids == nil {
				ids = []string{}
			}
			payload.IngredientIDs = &ids
		}
		if set["allergens"] {
			ids := splitIDs(*allergens)
			if ids == nil {
				ids = []string{}
			}
			payload.AllergenIDs = &ids
		}
		if set["image"] {
			img, err := loadImage(*image)
			if err != nil {
				return err
			}
			payload.Image = img
		}
		return app.Dishes.Update(ctx, id, payload)
	default:
		return fmt.Errorf("no se puede editar %s desde la CLI", res.name)
	}
}

func init() { RegisterCmd(editCmd{}) }
