package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine              *gin.Engine
	Config              config.Config
	Logger              *middleware.Logger
	AuthHandler         *api.AuthHandler
	CatalogHandler      *api.CatalogHandler
	AvailabilityHandler *api.AvailabilityHandler
	ReservationHandler  *api.ReservationHandler
	HealthHandler       *api.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         gin.HandlerFunc `name:"rateLimiter"`
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, authMw := p.Engine, p.AuthMiddleware

	engine.GET("/health", p.HealthHandler.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login, Mw: []gin.HandlerFunc{p.RateLimiter}},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: p.CatalogHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:id", Handler: p.CatalogHandler.GetHotel},
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: p.CatalogHandler.ListRooms},
				{
					Method:  http.MethodGet,
					Path:    "/:id/reservations",
					Handler: p.ReservationHandler.ListByHotel,
					Mw:      []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleHotelManager)},
				},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMw.OptionalAuth(), p.RateLimiter)
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/search", Handler: p.CatalogHandler.SearchRooms},
				{Method: http.MethodGet, Path: "/availability", Handler: p.AvailabilityHandler.Check},
				{Method: http.MethodGet, Path: "/alternatives", Handler: p.AvailabilityHandler.Alternatives},
				{Method: http.MethodGet, Path: "/:id", Handler: p.CatalogHandler.GetRoom},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMw.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.Create, Mw: []gin.HandlerFunc{p.RateLimiter}},
				{
					Method:  http.MethodGet,
					Path:    "",
					Handler: p.ReservationHandler.ListAll,
					Mw:      []gin.HandlerFunc{authMw.RequireRoleAtLeast(user.RoleAdmin)},
				},
				{Method: http.MethodGet, Path: "/my", Handler: p.ReservationHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ReservationHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: p.ReservationHandler.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.ReservationHandler.Delete},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs middleware inline; each one's c.Next() is a no-op here
// because the chain has a single registered handler.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
