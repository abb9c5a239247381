package controller

import (
	"context"
	"sync"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/picker"
	"BodegonAdmin/internal/service"
)

// Dishes is the busiest page: category and subcategory filters over the
// table, plus the two typeahead pickers feeding the dish form.
type Dishes struct {
	pageController[model.Dish]
	svc           *service.DishService
	categories    *service.CategoryService
	subcategories *service.SubcategoryService
	limit         int

	Ingredients *picker.Picker[model.Ingredient]
	Allergens   *picker.Picker[model.Allergen]

	mu            sync.Mutex
	categoryID    string
	subcategoryID string
}

func NewDishes(
	svc *service.DishService,
	categories *service.CategoryService,
	subcategories *service.SubcategoryService,
	ingredients *service.IngredientService,
	allergens *service.AllergenService,
	limit int,
) *Dishes {
	c := &Dishes{
		svc:           svc,
		categories:    categories,
		subcategories: subcategories,
		limit:         limit,
		Ingredients:   picker.New(picker.ForIngredients(ingredients), 0),
		Allergens:     picker.New(picker.ForAllergens(allergens), 0),
	}
	c.pageController = newPageController(svc.Store(), c.load)
	return c
}

func (c *Dishes) load(ctx context.Context, page int, search string, includeDeleted bool) error {
	catID, subID := c.filters()
	_, err := c.svc.List(ctx, service.DishQuery{
		Page:             itoa(page),
		Limit:            itoa(c.limit),
		Search:           search,
		CategoryID:       catID,
		SubcategoryID:    subID,
		IncludeDeleted:   boolStr(includeDeleted),
		IncludeRelations: "true",
	})
	return err
}

// PreloadReferences loads the category and subcategory lists backing the form
// selects.
func (c *Dishes) PreloadReferences(ctx context.Context) error {
	if _, err := c.categories.List(ctx, service.CategoryQuery{Page: "1", Limit: "100"}); err != nil {
		return err
	}
	_, err := c.subcategories.List(ctx, service.SubcategoryQuery{Page: "1", Limit: "100"})
	return err
}

func (c *Dishes) filters() (categoryID, subcategoryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categoryID, c.subcategoryID
}

// FilterBy stages both filters without fetching.
func (c *Dishes) FilterBy(categoryID, subcategoryID string) {
	c.mu.Lock()
	c.categoryID = categoryID
	c.subcategoryID = subcategoryID
	c.mu.Unlock()
}

// SetCategoryFilter also drops the subcategory filter: a subcategory belongs
// to exactly one category, so the old pick cannot apply under the new one.
func (c *Dishes) SetCategoryFilter(ctx context.Context, categoryID string) error {
	c.mu.Lock()
	c.categoryID = categoryID
	c.subcategoryID = ""
	c.mu.Unlock()
	return c.SetPage(ctx, 1)
}

func (c *Dishes) SetSubcategoryFilter(ctx context.Context, subcategoryID string) error {
	c.mu.Lock()
	c.subcategoryID = subcategoryID
	c.mu.Unlock()
	return c.SetPage(ctx, 1)
}

func (c *Dishes) CategoryFilter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categoryID
}

func (c *Dishes) SubcategoryFilter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subcategoryID
}

// DishForm is what the create dialog collects. Picker selections are merged
// in at submit time.
type DishForm struct {
	Name          string
	Description   string
	Price         float64
	CategoryID    string
	SubcategoryID string
	Image         *service.ImageFile
}

func (c *Dishes) Create(ctx context.Context, form DishForm) error {
	if c.Busy() {
		return ErrBusy
	}
	_, err := c.svc.Create(ctx, service.CreateDish{
		Name:          form.Name,
		Description:   form.Description,
		Price:         form.Price,
		CategoryID:    form.CategoryID,
		SubcategoryID: form.SubcategoryID,
		IngredientIDs: c.Ingredients.SelectedIDs(),
		AllergenIDs:   c.Allergens.SelectedIDs(),
		Image:         form.Image,
	})
	if err != nil {
		return err
	}
	c.resetPickers()
	return c.finishMutation(ctx)
}

func (c *Dishes) Update(ctx context.Context, id string, payload service.UpdateDish) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Update(ctx, id, payload); err != nil {
		return err
	}
	c.resetPickers()
	return c.finishMutation(ctx)
}

func (c *Dishes) Delete(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Dishes) Restore(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Restore(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

// View loads a dish with populated references into the selected slot.
func (c *Dishes) View(ctx context.Context, id string) error {
	if !c.OpenModal(ModalView, id) {
		return ErrBusy
	}
	_, err := c.svc.GetByID(ctx, id)
	return err
}

// EditSelections preloads the pickers with a dish's current references so the
// edit form starts from the saved state.
func (c *Dishes) EditSelections(dish *model.Dish) {
	c.resetPickers()
	for _, ref := range dish.Ingredients {
		if ref.Populated() {
			c.Ingredients.Select(*ref.Record)
		} else {
			c.Ingredients.Select(model.Ingredient{ID: ref.ID})
		}
	}
	for _, ref := range dish.Allergens {
		if ref.Populated() {
			c.Allergens.Select(*ref.Record)
		} else {
			c.Allergens.Select(model.Allergen{ID: ref.ID})
		}
	}
}

func (c *Dishes) resetPickers() {
	c.Ingredients.Stop()
	c.Allergens.Stop()
	for _, it := range c.Ingredients.Selected() {
		c.Ingredients.Deselect(it.ID)
	}
	for _, it := range c.Allergens.Selected() {
		c.Allergens.Deselect(it.ID)
	}
}
