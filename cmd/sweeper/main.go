package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron"

	"creatorhub/internal/database"
	"creatorhub/internal/modules/deletion"
	"creatorhub/internal/repository"
)

// The sweeper finalizes expired pending-deletion content: anything past its
// grace period and not saved flips to permanently_deleted. Run it one-shot
// from an external scheduler, or pass -schedule for a built-in cron loop.
func main() {
	schedule := flag.String("schedule", "", "cron spec for periodic mode (e.g. \"@hourly\"); empty runs once and exits")
	flag.Parse()

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
	likeRepo := repository.NewLikeRepository(db)
	svc := deletion.NewService(contentRepo, likeRepo, deletion.NewScheduler(nil), nil, log.Printf)

	if *schedule == "" {
		runOnce(svc)
		return
	}

	c := cron.New()
	if err := c.AddFunc(*schedule, func() { runOnce(svc) }); err != nil {
		log.Fatalf("invalid schedule %q: %v", *schedule, err)
	}
	c.Start()
	defer c.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info msg=sweeper stopping")
}

func runOnce(svc *deletion.Service) {
	swept, err := svc.SweepExpired(context.Background())
	if err != nil {
		log.Printf("level=error msg=sweep failed swept=%d err=%v", swept, err)
		return
	}
	log.Printf("level=info msg=sweep completed swept=%d", swept)
}
