package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"moveit-backend/internal/domain/user"
	"moveit-backend/internal/handler/api"
	"moveit-backend/internal/handler/middleware"
	"moveit-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	carHandler *api.CarHandler,
	brandHandler *api.BrandHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, paymentHandler, carHandler, brandHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	carHandler *api.CarHandler,
	brandHandler *api.BrandHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		cars := apiGroup.Group("/cars")
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "", Handler: carHandler.ListCars},
				{Method: http.MethodGet, Path: "/:id", Handler: carHandler.GetCar},
			})

			carsAdmin := cars.Group("")
			carsAdmin.Use(authMiddleware.RequireAuth())
			addRoutes(carsAdmin, []route{
				{Method: http.MethodPost, Path: "/create", Handler: carHandler.CreateCar, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/update/:id", Handler: carHandler.UpdateCar, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/delete/:id", Handler: carHandler.DeleteCar, Mw: adminOnly},
			})
		}

		brands := apiGroup.Group("/brands")
		{
			addRoutes(brands, []route{
				{Method: http.MethodGet, Path: "", Handler: brandHandler.ListBrands},
				{Method: http.MethodGet, Path: "/:id", Handler: brandHandler.GetBrand},
			})

			brandsAdmin := brands.Group("")
			brandsAdmin.Use(authMiddleware.RequireAuth())
			addRoutes(brandsAdmin, []route{
				{Method: http.MethodPost, Path: "/create", Handler: brandHandler.CreateBrand, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/update/:id", Handler: brandHandler.UpdateBrand, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/delete/:id", Handler: brandHandler.DeleteBrand, Mw: adminOnly},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/initialize", Handler: paymentHandler.InitializePayment},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/create", Handler: bookingHandler.CreateBooking},
			{Method: http.MethodPut, Path: "/cancel/:id", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/user/:userId", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings, Mw: adminOnly},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
