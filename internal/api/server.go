package api

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/revtext/backend/config"
	"github.com/revtext/backend/infra/queue"
	"github.com/revtext/backend/internal/api/rest/handlers"
	"github.com/revtext/backend/internal/api/rest/middleware"
	"github.com/revtext/backend/internal/clients/geocode"
	"github.com/revtext/backend/internal/clients/oauth"
	"github.com/revtext/backend/internal/helper"
	"github.com/revtext/backend/internal/repository"
	"github.com/revtext/backend/internal/services"
	"github.com/revtext/backend/pkg/cloudinary"
)

func StartServer(cfg config.Config) {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	// ---------- CORS ----------
	allowOrigins := cfg.BaseURL
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connection error: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo ping error: %v", err)
	}
	log.Println("mongo connected")
	db := client.Database(cfg.MongoDB)

	// ---------- Repositories ----------
	reviewRepo := repository.NewReviewRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	userRepo := repository.NewUserRepository(db)

	for _, ensure := range []func(context.Context) error{
		reviewRepo.EnsureIndexes,
		messageRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatalf("index creation error: %v", err)
		}
	}
	log.Println("indexes ensured")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
	if kafkaProducer == nil {
		log.Println("kafka not configured, audit events disabled")
	}

	cld, err := cloudinary.New(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	geocoder := geocode.New(cfg.NominatimURL)
	googleVerifier := oauth.NewGoogleVerifier(cfg.GoogleClientID)
	githubClient := oauth.NewGitHubClient(cfg.GitHubClientID, cfg.GitHubClientSecret)

	authHelper := helper.SetupAuth(cfg.JWTSecret)

	// ---------- Services ----------
	ingestSvc := services.NewIngestService(reviewRepo, messageRepo, authHelper, geocoder, up, kafkaProducer)
	querySvc := services.NewQueryService(reviewRepo, messageRepo, authHelper)
	authSvc := services.NewAuthService(userRepo, authHelper, googleVerifier, githubClient)
	userSvc := services.NewUserService(userRepo)

	// ---------- Routes ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	handlers.NewAuthHandler(authSvc, authHelper).SetupRoutes(api)

	api.Use(middleware.AuthMiddleware(authHelper))
	handlers.NewUserHandler(userSvc).SetupRoutes(api)
	handlers.NewReviewHandler(ingestSvc, querySvc).SetupRoutes(api)
	handlers.NewMessageHandler(ingestSvc, querySvc).SetupRoutes(api)

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
