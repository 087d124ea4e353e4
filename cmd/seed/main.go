package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"creatorhub/internal/database"
	"creatorhub/internal/domain"
	"creatorhub/internal/repository"
)

// Seeds a local database with a demo creator and a few content items in
// different lifecycle states.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("level=warn msg=no .env file loaded")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	paymentRepo := repository.NewGatewayPaymentRepository(db)

	for _, m := range []interface{ AutoMigrate() error }{contentRepo, userRepo, likeRepo, enrollmentRepo, paymentRepo} {
		if err := m.AutoMigrate(); err != nil {
			log.Fatalf("migrate failed: %v", err)
		}
	}

	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	creator := &domain.User{
		Email:        "demo@creatorhub.local",
		PasswordHash: string(hash),
		Role:         domain.RoleCreator,
		Name:         "Demo Creator",
	}
	if err := userRepo.Create(ctx, creator); err != nil {
		log.Fatalf("seed user failed: %v", err)
	}

	now := time.Now().UTC()
	expired := now.Add(-4 * 24 * time.Hour)
	autoDelete := expired.Add(domain.DeletionGracePeriod)

	items := []*domain.ContentItem{
		{
			ID:          uuid.New().String(),
			OwnerID:     creator.ID,
			Kind:        domain.KindMedia,
			Title:       "Golden hour timelapse",
			Status:                 domain.ContentPublished,
			PublishedTo:            domain.DestinationSet{domain.DestinationMedia, domain.DestinationPortfolio},
			PublicationDestination: domain.DestinationPortfolio,
		},
		{
			ID:          uuid.New().String(),
			OwnerID:     creator.ID,
			Kind:        domain.KindPortfolio,
			Title:       "Retouching before/after",
			Status:      domain.ContentDraft,
			PublishedTo: domain.DestinationSet{},
		},
		{
			ID:           uuid.New().String(),
			OwnerID:      creator.ID,
			Kind:         domain.KindMedia,
			Title:        "Old livestream recording",
			Status:       domain.ContentPendingDeletion,
			PublishedTo:  domain.DestinationSet{},
			DeletedAt:        &expired,
			AutoDeleteAt:     &autoDelete,
			IsDeletedPending: true,
		},
		{
			ID:          uuid.New().String(),
			OwnerID:     creator.ID,
			Kind:        domain.KindMasterclass,
			Title:       "Lighting fundamentals",
			PriceCents:  4900,
			Currency:    "USD",
			Status:                 domain.ContentPublished,
			PublishedTo:            domain.DestinationSet{domain.DestinationMasterclass},
			PublicationDestination: domain.DestinationMasterclass,
		},
	}
	for _, item := range items {
		if err := contentRepo.Create(ctx, item); err != nil {
			log.Fatalf("seed content failed: %v", err)
		}
	}

	log.Printf("seed completed: user=%s content_items=%d", creator.Email, len(items))
}
