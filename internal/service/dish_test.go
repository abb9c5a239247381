package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDishCreateMultipart(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Principales")
	tomato := env.backend.SeedIngredient("Tomate")
	gluten := env.backend.SeedAllergen("Gluten")

	svc := NewDishService(env.client, env.toasts)
	dish, err := svc.Create(context.Background(), CreateDish{
		Name:          "Milanesa napolitana",
		Description:   "Con papas fritas",
		Price:         12.5,
		CategoryID:    cat.ID,
		IngredientIDs: []string{tomato.ID},
		AllergenIDs:   []string{gluten.ID},
		Image:         &ImageFile{Name: "milanesa.jpg", Content: []byte("jpegdata")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Plato creado exitosamente", env.toasts.Last())

	assert.Equal(t, cat.ID, dish.Category.ID)
	require.Len(t, dish.Ingredients, 1)
	assert.Equal(t, tomato.ID, dish.Ingredients[0].ID)
	require.Len(t, dish.Allergens, 1)
	assert.Equal(t, gluten.ID, dish.Allergens[0].ID)
	assert.Contains(t, dish.Image, "milanesa.jpg")
}

func TestDishCreateWithoutOptionalFields(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Postres")

	svc := NewDishService(env.client, env.toasts)
	dish, err := svc.Create(context.Background(), CreateDish{
		Name:        "Flan casero",
		Description: "Con dulce de leche",
		Price:       4,
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, dish.Subcategory)
	assert.Empty(t, dish.Ingredients)
	assert.Empty(t, dish.Image)
}

func TestDishCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDishService(env.client, env.toasts)

	_, err := svc.Create(context.Background(), CreateDish{Name: "Sin precio"})
	require.Error(t, err)
	assert.NotEmpty(t, env.toasts.Errors)
	assert.Len(t, env.backend.Dishes, 0)
}

func TestDishUpdateOmitsUnsetFields(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Principales")
	svc := NewDishService(env.client, env.toasts)

	dish, err := svc.Create(context.Background(), CreateDish{
		Name:        "Asado",
		Description: "De tira",
		Price:       20,
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)

	price := 22.5
	updated, err := svc.Update(context.Background(), dish.ID, UpdateDish{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Plato actualizado exitosamente", env.toasts.Last())

	// fields not present in the payload keep their stored values
	assert.Equal(t, 22.5, updated.Price)
	assert.Equal(t, "Asado", updated.Name)
	assert.Equal(t, "De tira", updated.Description)
	assert.Equal(t, cat.ID, updated.Category.ID)
}

func TestDishUpdateCanClearIngredientList(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Principales")
	tomato := env.backend.SeedIngredient("Tomate")
	svc := NewDishService(env.client, env.toasts)

	dish, err := svc.Create(context.Background(), CreateDish{
		Name:          "Ensalada",
		Description:   "Mixta",
		Price:         6,
		CategoryID:    cat.ID,
		IngredientIDs: []string{tomato.ID},
	})
	require.NoError(t, err)

	// an explicitly empty list is sent and clears, a nil one is omitted
	empty := []string{}
	updated, err := svc.Update(context.Background(), dish.ID, UpdateDish{IngredientIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Ingredients)

	name := "Ensalada completa"
	updated, err = svc.Update(context.Background(), dish.ID, UpdateDish{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, updated.Ingredients, "omitted list must not be resent")
	assert.Equal(t, name, updated.Name)
}
