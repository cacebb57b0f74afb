package main

import (
	"context"
	"time"

	"adey-market-backend/configs"
	"adey-market-backend/internal/cart"
	"adey-market-backend/internal/handlers"
	"adey-market-backend/internal/middleware"
	"adey-market-backend/internal/models"
	"adey-market-backend/internal/repositories"
	"adey-market-backend/internal/services"
	"adey-market-backend/pkg/auth"
	"adey-market-backend/pkg/cache"
	"adey-market-backend/pkg/database"
	"adey-market-backend/pkg/email"
	"adey-market-backend/pkg/messaging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment")
	}

	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize database connections
	db, err := database.NewDatabase(config.Database.PostgresURL, config.Database.MongoURL, config.Database.MongoDBName)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to databases")
	}
	defer db.Close()

	// Auto-migrate PostgreSQL tables
	if err := autoMigratePostgres(db); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache == nil {
		logrus.Fatal("Failed to connect to Redis")
	}
	defer redisCache.Close()

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours, 30)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.Postgres)
	customerRepo := repositories.NewCustomerRepository(db.Postgres)
	orderRepo := repositories.NewOrderRepository(db.Postgres)
	orderItemRepo := repositories.NewOrderItemRepository(db.Postgres)
	paymentRepo := repositories.NewPaymentRepository(db.Postgres)
	auditRepo := repositories.NewAuditLogRepository(db.Postgres)

	// MongoDB repositories
	productRepo := repositories.NewProductRepository(db.MongoDB)
	categoryRepo := repositories.NewProductCategoryRepository(db.MongoDB)

	// External providers
	emailService := email.NewEmailService(config.Email.APIKey, config.Email.FromAddress, config.Email.BaseURL)
	stripeService := services.NewStripeService(config.Stripe.SecretKey, config.Stripe.BaseURL)

	// Initialize services
	authService := services.NewAuthService(userRepo, customerRepo, jwtManager, redisCache)
	approvalService := services.NewApprovalService(customerRepo, auditRepo, redisCache, emailService, kafkaProducer, config.Kafka.Brokers)
	productService := services.NewProductService(productRepo, categoryRepo, redisCache, kafkaProducer, config.Kafka.Brokers)
	orderService := services.NewOrderService(orderRepo)

	snapshotStore := cart.NewRedisSnapshotStore(redisCache, 0)
	cartService := services.NewCartService(snapshotStore, productRepo, orderRepo, orderItemRepo, paymentRepo, kafkaProducer, config.Kafka.Brokers)

	// Seed the launch catalog on first boot
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := productService.EnsureCatalogSeeded(seedCtx); err != nil {
		logrus.WithError(err).Warn("Catalog seeding failed")
	}
	cancel()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, approvalService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(approvalService)
	paymentHandler := handlers.NewPaymentHandler(stripeService)
	emailHandler := handlers.NewEmailHandler(emailService)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "adey-market-backend",
		})
	})

	// The storefront calls the payment and email endpoints at the server root
	root := router.Group("")
	paymentHandler.RegisterRoutes(root)
	emailHandler.RegisterRoutes(root)

	// API routes
	api := router.Group("/api/v1")

	// Register routes
	authHandler.RegisterRoutes(api, authMiddleware)
	productHandler.RegisterRoutes(api, authMiddleware)
	cartHandler.RegisterRoutes(api, authMiddleware)
	orderHandler.RegisterRoutes(api, authMiddleware)
	adminHandler.RegisterRoutes(api, authMiddleware)

	logrus.WithField("port", config.Server.Port).Info("Server starting")
	if err := router.Run(":" + config.Server.Port); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}

func autoMigratePostgres(db *database.Database) error {
	return db.Postgres.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.AuditLog{},
	)
}
