package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"

	"ticket-storefront/config"
	"ticket-storefront/handlers"
	"ticket-storefront/monitoring"
	"ticket-storefront/security"
	"ticket-storefront/services"
	"ticket-storefront/store"
	"ticket-storefront/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	// Seed the in-memory store
	entityStore := store.New(cfg)
	log.Printf("Store seeded: %d users, %d events, %d orders",
		len(entityStore.GetAllUsers()), len(entityStore.GetAllEvents()), len(entityStore.GetAllOrders()))

	// Initialize PubNub notifications; fall back to a no-op publisher when
	// keys are not configured.
	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.PubNubPublishKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey
		notifier = services.NewPubNubNotifier(pubnub.NewPubNub(pnConfig))
	}

	// Initialize services
	authService := services.NewAuthService(redisClient, entityStore, cfg.SessionTTL)
	orderService := services.NewOrderService(entityStore, notifier)
	ticketService := services.NewTicketService(entityStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(entityStore, authService)
	orderHandler := handlers.NewOrderHandler(entityStore, orderService, authService)
	ticketHandler := handlers.NewTicketHandler(entityStore, ticketService, authService)
	adminHandler := handlers.NewAdminHandler(entityStore, orderService, authService)

	rateLimiter := security.NewRateLimiter(redisClient)

	if cfg.EnableMetrics {
		monitoring.NewMonitor(entityStore)
	}

	e := echo.New()
	e.Use(rateLimiter.AntiBotMiddleware())

	// Auth endpoints
	e.POST("/api/auth/login", authHandler.Login, rateLimiter.PerMinuteLimit("login", cfg.LoginRateLimit))
	e.POST("/api/auth/register", authHandler.Register, rateLimiter.PerMinuteLimit("login", cfg.LoginRateLimit))
	e.GET("/api/auth/me", authHandler.Me)
	e.POST("/api/auth/logout", authHandler.Logout)

	// Storefront endpoints
	e.GET("/api/events", eventHandler.ListEvents)
	e.GET("/api/events/:eventId", eventHandler.GetEvent)
	e.GET("/api/organizer/events", eventHandler.ListOrganizerEvents)
	e.POST("/api/organizer/events", eventHandler.CreateEvent)

	// Order endpoints
	e.POST("/api/orders", orderHandler.Checkout, rateLimiter.PerMinuteLimit("checkout", cfg.CheckoutRateLimit))
	e.GET("/api/orders", orderHandler.GetOrderHistory)
	e.GET("/api/orders/:orderId/tickets", orderHandler.GetOrderTickets)
	e.POST("/api/refunds", orderHandler.RequestRefund)

	// Ticket endpoints
	e.GET("/api/tickets", ticketHandler.MyTickets)
	e.GET("/api/tickets/:ticketId/qr", ticketHandler.TicketQRCode)
	e.POST("/api/tickets/check-in", ticketHandler.CheckIn)

	// Admin endpoints
	e.GET("/api/admin/dashboard", adminHandler.GetDashboard)
	e.GET("/api/admin/users", adminHandler.ListUsers)
	e.GET("/api/admin/organizers", adminHandler.ListOrganizers)
	e.POST("/api/admin/users/:userId/status", adminHandler.UpdateUserStatus)
	e.POST("/api/admin/users/:userId/role", adminHandler.UpdateUserRole)
	e.POST("/api/admin/organizers/:organizerId/verification", adminHandler.UpdateOrganizerVerification)
	e.POST("/api/admin/events/:eventId/status", adminHandler.UpdateEventStatus)
	e.GET("/api/admin/refunds", adminHandler.ListRefunds)
	e.POST("/api/admin/refunds/:refundId/status", adminHandler.ProcessRefund)
	e.POST("/api/admin/reset", adminHandler.ResetStore)

	// Metrics and health
	if cfg.EnableMetrics {
		e.GET("/metrics", func(c echo.Context) error {
			promhttp.Handler().ServeHTTP(c.Response(), c.Request())
			return nil
		})
	}
	e.GET("/health", func(c echo.Context) error {
		if err := utils.RedisHealthCheck(redisClient); err != nil {
			return c.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(200, map[string]string{"status": "healthy"})
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	// Setup graceful shutdown
	go handleShutdown(server)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// handleShutdown handles graceful shutdown
func handleShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
