package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"

	intconfig "barbershop/internal/config"
	h "barbershop/internal/http/handlers"
	"barbershop/internal/http/middleware"
	"barbershop/internal/repositories"
	"barbershop/internal/scheduling"
	"barbershop/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	serviceRepo := repositories.ServiceRepository{}
	barberRepo := repositories.BarberRepository{}
	apptRepo := repositories.AppointmentRepository{}
	userRepo := repositories.UserRepository{}

	provider := services.ScheduleProvider{
		BarberRepo:      barberRepo,
		AppointmentRepo: apptRepo,
		Timezone:        env.Timezone,
	}
	availability := services.AvailabilityService{
		ServiceRepo: serviceRepo,
		Searcher:    &scheduling.Searcher{Provider: provider},
		Timezone:    env.Timezone,
	}
	booking := services.BookingService{
		AppointmentRepo: apptRepo,
		ServiceRepo:     serviceRepo,
		BarberRepo:      barberRepo,
		Timezone:        env.Timezone,
	}
	settlements := services.SettlementService{
		BarberRepo:      barberRepo,
		AppointmentRepo: apptRepo,
	}

	authH := h.AuthHandler{Users: userRepo, JWTSecret: []byte(env.JWTSecret)}
	serviceH := h.ServiceHandler{Repo: serviceRepo}
	barberH := h.BarberHandler{Repo: barberRepo}
	availH := h.AvailabilityHandler{Availability: availability}
	bookingH := h.BookingHandler{Booking: booking, Repo: apptRepo}
	walkinH := h.WalkInHandler{WalkIns: services.WalkInService{
		Booking:  booking,
		Provider: provider,
		Timezone: env.Timezone,
	}}
	clientH := h.ClientHandler{Clients: services.ClientService{
		AppointmentRepo: apptRepo,
		Timezone:        env.Timezone,
	}}
	settlementH := h.SettlementHandler{
		Settlements: settlements,
		Docs:        services.DocsService{Settlements: settlements},
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.Authenticate([]byte(env.JWTSecret))
	adminOnly := middleware.RequireRoles("admin")
	staff := middleware.RequireRoles("admin", "barber")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.POST("/auth/login", authH.Login)

		// Public booking flow
		api.GET("/services", serviceH.List)
		api.GET("/barbers", barberH.List)
		api.GET("/availability", availH.Search)
		api.POST("/bookings", bookingH.Create)
		api.GET("/bookings/client/:phone", bookingH.ListByClient)
		api.PUT("/bookings/:id/cancel", bookingH.Cancel)

		// Catalog administration
		admin := api.Group("", auth, adminOnly)
		admin.POST("/services", serviceH.Create)
		admin.PUT("/services/:id", serviceH.Update)
		admin.DELETE("/services/:id", serviceH.Delete)
		admin.POST("/barbers", barberH.Create)
		admin.PUT("/barbers/:id", barberH.Update)
		admin.DELETE("/barbers/:id", barberH.Delete)
		admin.PUT("/barbers/:id/schedule", barberH.PutSchedule)
		admin.PUT("/bookings/:id/confirm", bookingH.Confirm)
		admin.POST("/walkins", walkinH.Register)
		admin.GET("/clients", clientH.List)
		admin.GET("/settlements", settlementH.Get)
		admin.GET("/settlements/pdf", settlementH.GetPDF)

		// Shared admin/barber panel
		panel := api.Group("", auth, staff)
		panel.GET("/barbers/:id/schedule", barberH.GetSchedule)
		panel.GET("/bookings", bookingH.List)
		panel.PUT("/bookings/:id/complete", bookingH.Complete)
	}

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins := []string{}
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept"}
	cfg.ExposeHeaders = []string{"Content-Length", "Content-Disposition", "X-Request-ID"}
	cfg.AllowCredentials = true
	return cfg
}
