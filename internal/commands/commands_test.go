package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/testapi"
)

func TestLoginThenStatus(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	var code int
	out := capture(t, func() {
		code = Dispatch(ctx, app, []string{"login", "-remember", testapi.Username, testapi.Password})
	})
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Sesión iniciada como admin")

	token, err := app.Creds.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, testapi.Token, token)

	out = capture(t, func() {
		code = Dispatch(ctx, app, []string{"status"})
	})
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Sesión guardada.")
	assert.Contains(t, out, "Usuario recordado: admin")
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"login", testapi.Username, "nope"})
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "error")

	// bad credentials are not a dead session
	assert.False(t, app.Session.Expired())

	_, err := app.Creds.LoadToken()
	assert.Error(t, err)
}

func TestListCategories(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	backend.SeedCategory("Entradas")
	backend.SeedCategory("Postres")

	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"list", "categories"})
	})
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Entradas")
	assert.Contains(t, out, "Postres")
	assert.Contains(t, out, "Página 1 de 1 (2 en total)")
}

func TestAddEditDeleteRestoreCategory(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	ctx := context.Background()

	var code int
	capture(t, func() {
		code = Dispatch(ctx, app, []string{"add", "category", "-name", "Entradas"})
	})
	require.Equal(t, 0, code)
	require.Len(t, backend.Categories, 1)
	id := backend.Categories[0].ID

	capture(t, func() {
		code = Dispatch(ctx, app, []string{"edit", "category", id, "-name", "Entradas frías"})
	})
	require.Equal(t, 0, code)
	assert.Equal(t, "Entradas frías", backend.Categories[0].Name)

	capture(t, func() {
		code = Dispatch(ctx, app, []string{"delete", "category", id})
	})
	require.Equal(t, 0, code)
	assert.True(t, backend.Categories[0].IsDeleted)

	capture(t, func() {
		code = Dispatch(ctx, app, []string{"restore", "category", id})
	})
	require.Equal(t, 0, code)
	assert.False(t, backend.Categories[0].IsDeleted)
}

func TestAddDishWithReferences(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	cat := backend.SeedCategory("Parrilla")
	tomato := backend.SeedIngredient("Tomate")

	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{
			"add", "dish",
			"-name", "Asado",
			"-desc", "De tira",
			"-price", "20.5",
			"-category", cat.ID,
			"-ingredients", tomato.ID,
		})
	})
	require.Equal(t, 0, code, out)
	require.Len(t, backend.Dishes, 1)
	assert.Equal(t, 20.5, backend.Dishes[0].Price)
	require.Len(t, backend.Dishes[0].Ingredients, 1)
	assert.Equal(t, tomato.ID, backend.Dishes[0].Ingredients[0].ID)
}

func TestReadMarksContact(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	msg := backend.SeedContact("Carlos", "Reserva para el sábado", false)

	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"read", msg.ID})
	})
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Reserva para el sábado")
	assert.True(t, backend.Contacts[0].IsRead)
}

func TestShowDish(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	cat := backend.SeedCategory("Parrilla")

	var code int
	capture(t, func() {
		code = Dispatch(context.Background(), app, []string{
			"add", "dish", "-name", "Asado", "-desc", "De tira", "-price", "20", "-category", cat.ID,
		})
	})
	require.Equal(t, 0, code)

	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"show", "dish", backend.Dishes[0].ID})
	})
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Asado")
	assert.Contains(t, out, "20.00")
}

func TestProfileShowAndSave(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	ctx := context.Background()

	var code int
	out := capture(t, func() {
		code = Dispatch(ctx, app, []string{"profile"})
	})
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, testapi.Username)

	out = capture(t, func() {
		code = Dispatch(ctx, app, []string{"profile", "-first", "Anita"})
	})
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Anita")
	assert.Equal(t, "Anita", backend.Users[0].FirstName)
}

func TestDashboardCommand(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	backend.SeedCategory("Entradas")
	backend.SeedContact("Carlos", "Hola", false)

	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"dashboard"})
	})
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Categorías")
	assert.Contains(t, out, "Mensajes sin leer: 1")
}
