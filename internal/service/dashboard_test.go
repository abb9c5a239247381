package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardFetch(t *testing.T) {
	env := newTestEnv(t)
	env.backend.SeedCategory("Entradas")
	env.backend.SeedCategory("Postres")
	env.backend.SeedContact("Carlos", "Reserva", false)
	env.backend.SeedContact("Martín", "Gracias", true)

	svc := NewDashboardService(env.client)
	stats, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Categories.Total)
	assert.Equal(t, 2, stats.Categories.Active)
	assert.Equal(t, 1, stats.Contacts.Unread)
	assert.Equal(t, 1, stats.Contacts.Read)

	assert.False(t, svc.Loading())
	require.NotNil(t, svc.Stats())
	assert.Equal(t, 2, svc.Stats().Categories.Total)
}

func TestDashboardFetchError(t *testing.T) {
	env := newTestEnv(t)
	env.backend.ExpireSessions = true

	svc := NewDashboardService(env.client)
	_, err := svc.Fetch(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, svc.Err())
	assert.Nil(t, svc.Stats())
}
