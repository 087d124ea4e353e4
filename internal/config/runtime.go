package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr = ":8080"
	defaultJWTTTL     = "24h"
)

type RuntimeConfig struct {
	AppEnv      string
	ListenAddr  string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StoragePublicURL string

	TranscoderURL string

	// Static gateway table: the primary is tried first, the fallback only
	// when the primary fails.
	PrimaryGatewayName  string
	PrimaryGatewayURL   string
	PrimaryGatewayKey   string
	FallbackGatewayName string
	FallbackGatewayURL  string
	FallbackGatewayKey  string
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{
		AppEnv:      envOrDefault("APP_ENV", "dev"),
		ListenAddr:  envOrDefault("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    envOrDefault("STORAGE_BUCKET", "creatorhub-media"),
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),

		TranscoderURL: os.Getenv("TRANSCODER_URL"),

		PrimaryGatewayName:  envOrDefault("PAYMENT_PRIMARY_NAME", "stripeish"),
		PrimaryGatewayURL:   os.Getenv("PAYMENT_PRIMARY_URL"),
		PrimaryGatewayKey:   os.Getenv("PAYMENT_PRIMARY_KEY"),
		FallbackGatewayName: envOrDefault("PAYMENT_FALLBACK_NAME", "paddleish"),
		FallbackGatewayURL:  os.Getenv("PAYMENT_FALLBACK_URL"),
		FallbackGatewayKey:  os.Getenv("PAYMENT_FALLBACK_KEY"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(envOrDefault("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cfg.AppEnv = strings.ToLower(cfg.AppEnv)
	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
