package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/braider-booking/internal/config"
	"github.com/BruksfildServices01/braider-booking/internal/domain/availability"
	"github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/events"
	"github.com/BruksfildServices01/braider-booking/internal/handlers"
	"github.com/BruksfildServices01/braider-booking/internal/middleware"
	"github.com/BruksfildServices01/braider-booking/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/braider-booking/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/braider-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/braider-booking/internal/usecase/catalog"
)

// Deps são as dependências já montadas pelo main.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Catalog  catalog.Repository
	Slots    availability.Repository
	Bookings booking.Store
	Events   events.Publisher
	Cache    ucBooking.CacheInvalidator
	Clock    timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.AllowedOrigins()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	reserveUC := ucBooking.NewReserve(d.Bookings, d.Catalog, d.Events, d.Cache, d.Clock)
	transitionUC := ucBooking.NewTransition(d.Bookings, d.Events, d.Cache, d.Clock)
	listServicesUC := ucCatalog.NewListServices(d.Catalog)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		ucCatalog.NewGetProvider(d.Catalog),
		listServicesUC,
		ucAvailability.NewListFreeSlots(d.Slots, d.Catalog, d.Clock),
		reserveUC,
		transitionUC,
	)

	slotHandler := handlers.NewSlotHandler(
		ucAvailability.NewCreateSlot(d.Slots),
		ucAvailability.NewListSlots(d.Slots, d.Clock),
		ucAvailability.NewDeleteSlot(d.Slots),
	)

	serviceHandler := handlers.NewServiceHandler(
		ucCatalog.NewCreateService(d.Catalog),
		listServicesUC,
		ucCatalog.NewUpdateService(d.Catalog),
		ucCatalog.NewRemoveService(d.Catalog),
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewListBookings(d.Bookings),
		ucBooking.NewGetBooking(d.Bookings),
		transitionUC,
	)

	adminHandler := handlers.NewAdminHandler(
		ucCatalog.NewRegisterProvider(d.Catalog),
		ucCatalog.NewReviewProvider(d.Catalog),
		ucCatalog.NewDeactivateProvider(d.Catalog),
	)

	rateLimiter := middleware.NewRateLimiter(d.Config.RateLimitPerMinute, d.Log)

	api := r.Group("/api")

	// ======================================================
	// 🌐 PUBLIC
	// ======================================================
	public := api.Group("/public")
	{
		public.GET("/providers/:providerID", publicHandler.Provider)
		public.GET("/providers/:providerID/services", publicHandler.ListServices)
		public.GET("/providers/:providerID/availability", publicHandler.Availability)

		public.POST("/bookings", rateLimiter.Middleware(), publicHandler.Reserve)
		public.POST("/bookings/:id/cancel", rateLimiter.Middleware(), publicHandler.CancelByClient)
	}

	auth := middleware.AuthMiddleware(d.Config.JWTSecret)

	// ======================================================
	// 💇 PROVIDER
	// ======================================================
	me := api.Group("/me", auth, middleware.RequireRole(middleware.RoleProvider))
	{
		me.GET("/slots", slotHandler.List)
		me.POST("/slots", slotHandler.Create)
		me.DELETE("/slots/:id", slotHandler.Delete)

		me.GET("/services", serviceHandler.List)
		me.POST("/services", serviceHandler.Create)
		me.PATCH("/services/:id", serviceHandler.Update)
		me.DELETE("/services/:id", serviceHandler.Remove)

		me.GET("/bookings", bookingHandler.List)
		me.GET("/bookings/:id", bookingHandler.Get)
		me.POST("/bookings/:id/transition", bookingHandler.Transition)
	}

	// ======================================================
	// 🛡️ ADMIN
	// ======================================================
	admin := api.Group("/admin", auth, middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.POST("/providers", adminHandler.Register)
		admin.POST("/providers/:id/review", adminHandler.Review)
		admin.POST("/providers/:id/deactivate", adminHandler.Deactivate)
	}
}
