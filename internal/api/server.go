package api

import (
	"log"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/policyvault/policy-service/config"
	"github.com/policyvault/policy-service/infra/queue"
	"github.com/policyvault/policy-service/internal/api/rest/handlers"
	"github.com/policyvault/policy-service/internal/api/rest/middleware"
	"github.com/policyvault/policy-service/internal/domain"
	"github.com/policyvault/policy-service/internal/helper"
	"github.com/policyvault/policy-service/internal/interfaces"
	"github.com/policyvault/policy-service/internal/repository"
	"github.com/policyvault/policy-service/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewApp wires middleware, services, and routes onto a fiber app. Kept apart
// from StartServer so tests can drive the full route stack with in-memory
// repositories.
func NewApp(
	cfg config.Config,
	userRepo repository.UserRepository,
	policyRepo repository.PolicyRepository,
	nomineeRepo repository.NomineeRepository,
	producer interfaces.ProducerHandler,
) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, producer, authHelper)
	policySvc := services.NewPolicyService(policyRepo, nomineeRepo)
	nomineeSvc := services.NewNomineeService(nomineeRepo, policyRepo, producer)
	analyticsSvc := services.NewAnalyticsService(policyRepo, nomineeRepo)

	// ---------- Handlers ----------
	authHandler := handlers.NewAuthHandler(userSvc)
	policyHandler := handlers.NewPolicyHandler(policySvc)
	nomineeHandler := handlers.NewNomineeHandler(nomineeSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc)

	// ---------- Public routes ----------
	authHandler.SetupRoutes(app)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Server is running"})
	})

	// ---------- Protected routes ----------
	app.Use(middleware.AuthMiddleware(authHelper))
	authHandler.SetupProtectedRoutes(app)
	policyHandler.SetupRoutes(app)
	nomineeHandler.SetupRoutes(app)
	analyticsHandler.SetupRoutes(app)

	return app
}

func StartServer(cfg config.Config) {
	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Policy{},
		&domain.Nominee{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	defer producer.Close()

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	nomineeRepo := repository.NewNomineeRepository(db)

	app := NewApp(cfg, userRepo, policyRepo, nomineeRepo, producer)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt)
		<-quit
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Println("listening on", cfg.ServerPort)
	if err := app.Listen(cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
