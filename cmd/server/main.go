package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"clinic_agenda/internal/config"
	"clinic_agenda/internal/handler"
	"clinic_agenda/internal/middleware"
	"clinic_agenda/internal/repository"
	"clinic_agenda/internal/service"
	"clinic_agenda/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil || jwtExpHours <= 0 {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24")
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	clientRepo := repository.NewClientRepository(dbPool)
	typologyRepo := repository.NewTypologyRepository(dbPool)
	paymentMethodRepo := repository.NewPaymentMethodRepository(dbPool)
	appointmentRepo := repository.NewAppointmentRepository(dbPool)

	if err := config.SeedAdmin(userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, time.Duration(jwtExpHours)*time.Hour)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo)
	typologyService := service.NewTypologyService(typologyRepo)
	paymentMethodService := service.NewPaymentMethodService(paymentMethodRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	typologyHandler := handler.NewTypologyHandler(typologyService)
	paymentMethodHandler := handler.NewPaymentMethodHandler(paymentMethodService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	// For production, configure specific origins, methods, headers
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, txtSearch, clientId, paymentId, tipologiaId")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
	router.Use(middleware.RequestID())

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	rateLimiter := middleware.NewRateLimiter(5, 10)
	defer rateLimiter.Stop()
	rateLimitMW := middleware.RateLimit(rateLimiter)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW, rateLimitMW)
	userHandler.RegisterUserRoutes(apiGroup, jwtAuthMW)
	clientHandler.RegisterClientRoutes(apiGroup, jwtAuthMW)
	typologyHandler.RegisterTypologyRoutes(apiGroup, jwtAuthMW)
	paymentMethodHandler.RegisterPaymentMethodRoutes(apiGroup, jwtAuthMW)
	appointmentHandler.RegisterAppointmentRoutes(apiGroup, jwtAuthMW)

	// Service banner
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "clinic agenda API",
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// Uniform JSON 404 for unknown routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
		})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
