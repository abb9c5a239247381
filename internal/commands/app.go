package commands

import (
	"sync/atomic"

	"go.uber.org/zap"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/config"
	"BodegonAdmin/internal/controller"
	"BodegonAdmin/internal/notify"
	"BodegonAdmin/internal/repo"
	"BodegonAdmin/internal/repo/fs"
	"BodegonAdmin/internal/service"
	"BodegonAdmin/internal/session"
)

// App is the wired object graph every command runs against: configuration,
// credential store, session watcher and one controller per page.
type App struct {
	Cfg     *config.Config
	Creds   repo.CredentialStore
	Session *session.Watcher

	Auth          *service.AuthService
	Dashboard     *controller.Dashboard
	Categories    *controller.Categories
	Subcategories *controller.Subcategories
	Dishes        *controller.Dishes
	Ingredients   *controller.Ingredients
	Allergens     *controller.Allergens
	Users         *controller.Users
	Contacts      *controller.Contacts
	Profile       *controller.Profile

	loginActive atomic.Bool
}

// BeginLoginView and EndLoginView bracket the login command. A 401 during the
// login attempt itself is just wrong credentials, not a dead session, so the
// expiry hook stays quiet while the view is active.
func (a *App) BeginLoginView() { a.loginActive.Store(true) }

func (a *App) EndLoginView() { a.loginActive.Store(false) }

func (a *App) LoginViewActive() bool { return a.loginActive.Load() }

// NewApp wires the full client. The expiry hook is the only writer of the
// session watcher; commands read it through the dispatcher.
func NewApp(cfg *config.Config, log *zap.SugaredLogger) *App {
	creds := fs.CredsFSStore{Dir: cfg.CredsDir}
	watcher := session.NewWatcher()
	toasts := notify.NewZapNotifier(log)

	app := &App{Cfg: cfg, Creds: creds, Session: watcher}

	client := api.New(cfg.APIURL, creds,
		api.WithLogger(log),
		api.WithExpiryHook(watcher.Expire),
		api.WithLoginViewCheck(app.LoginViewActive),
	)

	categories := service.NewCategoryService(client, toasts)
	subcategories := service.NewSubcategoryService(client, toasts)
	ingredients := service.NewIngredientService(client, toasts)
	allergens := service.NewAllergenService(client, toasts)
	dishes := service.NewDishService(client, toasts)
	users := service.NewUserService(client, toasts)
	contacts := service.NewContactService(client, toasts)

	limit := cfg.PageLimit

	app.Auth = service.NewAuthService(client, creds, toasts)
	app.Dashboard = controller.NewDashboard(service.NewDashboardService(client))
	app.Categories = controller.NewCategories(categories, limit)
	app.Subcategories = controller.NewSubcategories(subcategories, categories, limit)
	app.Dishes = controller.NewDishes(dishes, categories, subcategories, ingredients, allergens, limit)
	app.Ingredients = controller.NewIngredients(ingredients, limit)
	app.Allergens = controller.NewAllergens(allergens, limit)
	app.Users = controller.NewUsers(users, limit)
	app.Contacts = controller.NewContacts(contacts, limit)
	app.Profile = controller.NewProfile(users)
	return app
}
