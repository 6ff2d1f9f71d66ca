package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ciaan_backend/bootstrap"
	"ciaan_backend/configs"
	"ciaan_backend/database"
	_ "ciaan_backend/docs"
	"ciaan_backend/internal/cache"
	"ciaan_backend/internal/handlers"
	"ciaan_backend/internal/middleware"
	"ciaan_backend/internal/repository"
	"ciaan_backend/internal/routes"
	"ciaan_backend/internal/storage"
	"ciaan_backend/services"
)

// @title        Ciaan Social API
// @version      1.0
// @description  Posts, likes, comments and profiles.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := configs.Load()

	// --- MongoDB ---
	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Media store: S3-compatible bucket when configured, local disk otherwise ---
	var media storage.MediaStore
	if cfg.S3Endpoint != "" {
		minioStore, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			Bucket:    cfg.S3Bucket,
		})
		if err != nil {
			log.Fatalf("minio: %v", err)
		}
		if err := minioStore.EnsureBucket(context.Background()); err != nil {
			log.Fatalf("minio ensure bucket: %v", err)
		}
		media = minioStore
	} else {
		media = storage.NewDiskStore(".")
	}

	// --- Wiring ---
	postRepo := repository.NewMongoPostRepo(db)
	userRepo := repository.NewMongoUserRepo(db)
	identities := cache.NewIdentityCache(cfg.MemcachedAddr)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	postSvc := services.NewPostService(postRepo)
	engagementSvc := services.NewEngagementService(postRepo)
	feedSvc := services.NewFeedService(postRepo, userRepo, identities)

	// --- Fiber App Setup ---
	app := fiber.New()

	app.Use(cors.New())
	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.Register(app, routes.Deps{
		Auth:    &handlers.AuthHandler{Auth: authSvc},
		Post:    &handlers.PostHandler{Posts: postSvc, Media: media},
		Feed:    &handlers.FeedHandler{Feed: feedSvc},
		Like:    &handlers.LikeHandler{Engagement: engagementSvc},
		Comment: &handlers.CommentHandler{Engagement: engagementSvc, Feed: feedSvc},
		Profile: &handlers.ProfileHandler{Users: userRepo, Posts: postSvc, Media: media},
	})

	// Uploaded media is served straight from disk when the disk store is
	// active; behind MinIO the references point into the bucket instead.
	if cfg.S3Endpoint == "" {
		app.Static("/uploads", cfg.UploadDir)
	}

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
