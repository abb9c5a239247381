package controller

import (
	"context"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

// Dashboard is the landing page, a single stats fetch with no list state.
type Dashboard struct {
	svc *service.DashboardService
}

func NewDashboard(svc *service.DashboardService) *Dashboard {
	return &Dashboard{svc: svc}
}

func (c *Dashboard) Load(ctx context.Context) (*model.DashboardStats, error) {
	return c.svc.Fetch(ctx)
}

func (c *Dashboard) Stats() *model.DashboardStats { return c.svc.Stats() }

func (c *Dashboard) Loading() bool { return c.svc.Loading() }

func (c *Dashboard) Err() string { return c.svc.Err() }
