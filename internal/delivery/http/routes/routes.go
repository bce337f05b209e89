package routes

import (
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/jwt"
	ucauth "jobmatch/internal/usecase/auth"
	"jobmatch/internal/usecase/marketplace"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	AppName     string
	Tokens      jwt.Service
	Auth        ucauth.AuthUsecase
	Marketplace *marketplace.Service
	Uploads     *handler.Uploads
}

type Registry struct {
	health     *handler.HealthHandler
	uploads    *handler.Uploads
	auth       *handler.AuthHandler
	companies  *handler.CompanyHandler
	jobs       *handler.JobsHandler
	applicants *handler.ApplicantsHandler
	messages   *handler.MessageHandler
	authMw     *middleware.AuthMiddleware
}

func NewRegistry(d Deps) *Registry {
	return &Registry{
		health:     handler.NewHealthHandler(d.AppName),
		uploads:    d.Uploads,
		auth:       handler.NewAuthHandler(d.Auth, d.Tokens, d.Uploads),
		companies:  handler.NewCompanyHandler(d.Marketplace, d.Uploads),
		jobs:       handler.NewJobsHandler(d.Marketplace),
		applicants: handler.NewApplicantsHandler(d.Marketplace),
		messages:   handler.NewMessageHandler(d.Marketplace),
		authMw:     middleware.NewAuthMiddleware(d.Tokens),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.uploads.RegisterRoutes(app)
	r.registerAPI(app)
}

// registerAPI mounts every endpoint below /api. Paths are matched with or
// without a trailing slash. Public routes must be registered before the
// auth middleware is mounted on the group.
func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	r.auth.RegisterPublicRoutes(api)

	protected := api.Group("", r.authMw.Middleware())
	r.auth.RegisterRoutes(protected)
	r.companies.RegisterRoutes(protected)
	r.jobs.RegisterRoutes(protected)
	r.applicants.RegisterRoutes(protected)
	r.messages.RegisterRoutes(protected)
}
