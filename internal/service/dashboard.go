package service

import (
	"context"
	"sync"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/model"
)

// DashboardService holds the latest stats snapshot. It does not need the full
// collection store, there is no pagination or selection here.
type DashboardService struct {
	api *api.Client

	mu      sync.RWMutex
	stats   *model.DashboardStats
	loading bool
	err     string
}

func NewDashboardService(c *api.Client) *DashboardService {
	return &DashboardService{api: c}
}

type dashboardResponse struct {
	Message string               `json:"message"`
	Result  model.DashboardStats `json:"result"`
}

func (s *DashboardService) Fetch(ctx context.Context) (*model.DashboardStats, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	var resp dashboardResponse
	if err := s.api.Get(ctx, "dashboard/stats", nil, &resp); err != nil {
		s.mu.Lock()
		s.loading = false
		s.err = api.ErrorMessage(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.loading = false
	s.stats = &resp.Result
	s.mu.Unlock()
	return &resp.Result, nil
}

func (s *DashboardService) Stats() *model.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

func (s *DashboardService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *DashboardService) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
