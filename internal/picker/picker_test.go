package picker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/model"
)

type searchSpy struct {
	mu    sync.Mutex
	terms []string
	out   []model.Ingredient
	block chan struct{}
}

func (s *searchSpy) fn(_ context.Context, term string) ([]model.Ingredient, error) {
	s.mu.Lock()
	s.terms = append(s.terms, term)
	block := s.block
	out := s.out
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return out, nil
}

func (s *searchSpy) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.terms...)
}

func ing(id, name string) model.Ingredient {
	return model.Ingredient{ID: id, Name: name}
}

func TestPickerDebouncesKeystrokes(t *testing.T) {
	spy := &searchSpy{out: []model.Ingredient{ing("1", "Tomate")}}
	p := New(spy.fn, 30*time.Millisecond)
	ctx := context.Background()

	p.SetTerm(ctx, "t")
	p.SetTerm(ctx, "to")
	p.SetTerm(ctx, "tom")

	require.Eventually(t, func() bool { return !p.Loading() },
		time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"tom"}, spy.calls(), "only the final term may fire")
	assert.Len(t, p.Options(), 1)
}

func TestPickerEmptyTermClearsWithoutSearch(t *testing.T) {
	spy := &searchSpy{out: []model.Ingredient{ing("1", "Tomate")}}
	p := New(spy.fn, 10*time.Millisecond)
	ctx := context.Background()

	p.SetTerm(ctx, "tom")
	require.Eventually(t, func() bool { return len(p.Options()) == 1 },
		time.Second, 5*time.Millisecond)

	p.SetTerm(ctx, "")
	assert.Empty(t, p.Options())
	assert.False(t, p.Loading())

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, []string{"tom"}, spy.calls())
}

func TestPickerStaleResultDropped(t *testing.T) {
	spy := &searchSpy{out: []model.Ingredient{ing("1", "Tomate")}, block: make(chan struct{})}
	p := New(spy.fn, 5*time.Millisecond)
	ctx := context.Background()

	p.SetTerm(ctx, "tom")
	require.Eventually(t, func() bool { return len(spy.calls()) == 1 },
		time.Second, time.Millisecond)

	// a newer term arrives while the first search is still in flight
	p.SetTerm(ctx, "ceb")
	spy.mu.Lock()
	spy.out = []model.Ingredient{ing("2", "Cebolla")}
	spy.mu.Unlock()
	close(spy.block)

	require.Eventually(t, func() bool { return len(spy.calls()) == 2 },
		time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return !p.Loading() },
		time.Second, time.Millisecond)

	opts := p.Options()
	require.Len(t, opts, 1)
	assert.Equal(t, "Cebolla", opts[0].Name)
}

func TestPickerOptionsExcludeSelected(t *testing.T) {
	spy := &searchSpy{out: []model.Ingredient{ing("1", "Tomate"), ing("2", "Cebolla")}}
	p := New(spy.fn, time.Millisecond)
	ctx := context.Background()

	p.SetTerm(ctx, "e")
	require.Eventually(t, func() bool { return len(p.Options()) == 2 },
		time.Second, time.Millisecond)

	p.Select(ing("1", "Tomate"))
	opts := p.Options()
	require.Len(t, opts, 1)
	assert.Equal(t, "Cebolla", opts[0].Name)
	assert.Equal(t, []string{"1"}, p.SelectedIDs())

	// selecting twice is a no-op
	p.Select(ing("1", "Tomate"))
	assert.Len(t, p.Selected(), 1)

	p.Deselect("1")
	assert.Empty(t, p.Selected())
	assert.Len(t, p.Options(), 2)
}

func TestPickerStopCancelsPending(t *testing.T) {
	spy := &searchSpy{}
	p := New(spy.fn, 20*time.Millisecond)

	p.SetTerm(context.Background(), "tom")
	p.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, spy.calls())
	assert.False(t, p.Loading())
}
