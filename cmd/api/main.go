package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"creatorhub/internal/config"
	"creatorhub/internal/database"
	"creatorhub/internal/middleware"
	"creatorhub/internal/modules/auth"
	"creatorhub/internal/modules/deletion"
	"creatorhub/internal/modules/enrollment"
	"creatorhub/internal/modules/library"
	"creatorhub/internal/modules/media"
	"creatorhub/internal/modules/notify"
	"creatorhub/internal/modules/publication"
	jwtsvc "creatorhub/internal/pkg/jwt"
	"creatorhub/internal/pkg/storage"
	"creatorhub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("level=warn msg=no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	paymentRepo := repository.NewGatewayPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notify.NewHub()
	defer hub.Close()
	notifier := notify.NewService(hub, log.Printf)
	notifyHandler := notify.NewHandler(hub)

	scheduler := deletion.NewScheduler(nil)

	deletionService := deletion.NewService(contentRepo, likeRepo, scheduler, notifier, log.Printf)
	deletionHandler := deletion.NewHandler(deletionService)

	publicationService := publication.NewService(contentRepo, scheduler, notifier, log.Printf)
	publicationHandler := publication.NewHandler(publicationService)

	libraryService := library.NewService(contentRepo, likeRepo, scheduler)
	libraryHandler := library.NewHandler(libraryService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	blobs, err := storage.New(context.Background(), storage.Config{
		Endpoint:      cfg.StorageEndpoint,
		AccessKey:     cfg.StorageAccessKey,
		SecretKey:     cfg.StorageSecretKey,
		Bucket:        cfg.StorageBucket,
		PublicBaseURL: cfg.StoragePublicURL,
	})
	if err != nil {
		log.Fatal(err)
	}

	var transcoder media.Transcoder
	if cfg.TranscoderURL != "" {
		transcoder = media.NewHTTPTranscoder(cfg.TranscoderURL)
	}
	mediaService := media.NewService(contentRepo, blobs, transcoder, log.Printf)
	mediaHandler := media.NewHandler(mediaService)

	var gateways []enrollment.Gateway
	if cfg.PrimaryGatewayURL != "" {
		gateways = append(gateways, enrollment.NewHTTPGateway(cfg.PrimaryGatewayName, cfg.PrimaryGatewayURL, cfg.PrimaryGatewayKey))
	}
	if cfg.FallbackGatewayURL != "" {
		gateways = append(gateways, enrollment.NewHTTPGateway(cfg.FallbackGatewayName, cfg.FallbackGatewayURL, cfg.FallbackGatewayKey))
	}
	enrollmentService := enrollment.NewService(contentRepo, enrollmentRepo, paymentRepo, gateways, log.Printf)
	enrollmentHandler := enrollment.NewHandler(enrollmentService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		libraryHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			libraryHandler.RegisterRoutes(protected)
			enrollmentHandler.RegisterRoutes(protected)
			notifyHandler.RegisterRoutes(protected)

			// content mutations are creator-only
			creator := protected.Group("/")
			creator.Use(middleware.CreatorOnly())
			{
				publicationHandler.RegisterRoutes(creator)
				deletionHandler.RegisterRoutes(creator)
				mediaHandler.RegisterRoutes(creator)
			}
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
