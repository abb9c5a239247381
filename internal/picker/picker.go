// Package picker backs the ingredient and allergen selectors of the dish
// form. Keystrokes are debounced before hitting the backend and results that
// arrive late lose against whatever the operator typed afterwards.
package picker

import (
	"context"
	"strconv"
	"sync"
	"time"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

const (
	// DefaultDelay is how long typing must pause before a search fires.
	DefaultDelay = 300 * time.Millisecond

	// searchLimit caps the option list; the picker is a typeahead, not a
	// browser.
	searchLimit = 20
)

// SearchFunc performs one backend search for the given term.
type SearchFunc[T model.Entity] func(ctx context.Context, term string) ([]T, error)

type Picker[T model.Entity] struct {
	search SearchFunc[T]
	delay  time.Duration

	mu       sync.Mutex
	seq      uint64
	timer    *time.Timer
	term     string
	options  []T
	selected []T
	loading  bool
	err      string
}

// New builds a picker around search. A zero delay means DefaultDelay.
func New[T model.Entity](search SearchFunc[T], delay time.Duration) *Picker[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Picker[T]{search: search, delay: delay}
}

// SetTerm registers a keystroke. The pending search, if any, is rescheduled;
// an empty term clears the options without a request.
func (p *Picker[T]) SetTerm(ctx context.Context, term string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.term = term
	p.seq++
	if p.timer != nil {
		p.timer.Stop()
	}
	if term == "" {
		p.options = nil
		p.loading = false
		p.err = ""
		return
	}
	fence := p.seq
	p.loading = true
	p.timer = time.AfterFunc(p.delay, func() { p.run(ctx, fence, term) })
}

func (p *Picker[T]) run(ctx context.Context, fence uint64, term string) {
	items, err := p.search(ctx, term)

	p.mu.Lock()
	defer p.mu.Unlock()
	if fence != p.seq {
		// superseded by later typing
		return
	}
	p.loading = false
	if err != nil {
		p.err = api.ErrorMessage(err)
		return
	}
	p.err = ""
	p.options = items
}

// Stop cancels any pending search. Safe to call more than once.
func (p *Picker[T]) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	if p.timer != nil {
		p.timer.Stop()
	}
	p.loading = false
}

// Options returns the current matches minus anything already selected.
func (p *Picker[T]) Options() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	chosen := make(map[string]struct{}, len(p.selected))
	for _, s := range p.selected {
		chosen[s.EntityID()] = struct{}{}
	}
	out := make([]T, 0, len(p.options))
	for _, o := range p.options {
		if _, ok := chosen[o.EntityID()]; ok {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (p *Picker[T]) Select(item T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.selected {
		if s.EntityID() == item.EntityID() {
			return
		}
	}
	p.selected = append(p.selected, item)
}

func (p *Picker[T]) Deselect(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, s := range p.selected {
		if s.EntityID() == id {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			return
		}
	}
}

func (p *Picker[T]) Selected() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.selected))
	copy(out, p.selected)
	return out
}

// SelectedIDs is what the dish form submits.
func (p *Picker[T]) SelectedIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.selected))
	for _, s := range p.selected {
		ids = append(ids, s.EntityID())
	}
	return ids
}

func (p *Picker[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Picker[T]) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// ForIngredients adapts the ingredient service to the picker contract. Deleted
// records never show up as options.
func ForIngredients(svc *service.IngredientService) SearchFunc[model.Ingredient] {
	return func(ctx context.Context, term string) ([]model.Ingredient, error) {
		page, err := svc.List(ctx, service.IngredientQuery{
			Page:           "1",
			Limit:          strconv.Itoa(searchLimit),
			Search:         term,
			IncludeDeleted: "false",
		})
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	}
}

func ForAllergens(svc *service.AllergenService) SearchFunc[model.Allergen] {
	return func(ctx context.Context, term string) ([]model.Allergen, error) {
		page, err := svc.List(ctx, service.AllergenQuery{
			Page:           "1",
			Limit:          strconv.Itoa(searchLimit),
			Search:         term,
			IncludeDeleted: "false",
		})
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	}
}
