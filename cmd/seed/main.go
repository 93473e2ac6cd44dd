package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/srikanthravipati27/environment-hub/config"
	"github.com/srikanthravipati27/environment-hub/internal/application"
	mongoinfra "github.com/srikanthravipati27/environment-hub/internal/infrastructure/mongo"
	"github.com/srikanthravipati27/environment-hub/internal/seed"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	if cfg.UseMemoryStore() {
		logger.Fatal("seeding needs DOC_STORE=mongo; the memory store loads sample content on startup")
	}

	ctx := context.Background()
	client, err := mongoinfra.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		logger.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = mongoinfra.Disconnect(client) }()
	db := client.Database(cfg.MongoDB)

	email := "demo@environment-hub.local"
	password := "password123"
	userName := "demoUser"
	svc := application.NewService(mongoinfra.NewUserRepository(db), nil, logger, 1)
	_, err = svc.Register(ctx, application.RegisterInput{FirstName: "Demo", UserName: userName, Email: email, Password: password})
	switch {
	case err == nil:
		fmt.Printf("seeded user: email=%s userName=%s password=%s\n", email, userName, password)
	case errors.Is(err, application.ErrEmailTaken), errors.Is(err, application.ErrUsernameTaken):
		fmt.Println("demo user already present")
	default:
		logger.Fatalf("failed to seed user: %v", err)
	}

	// Images go to GCS only when a bucket is configured
	var upload seed.ImageUploader
	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcs.Close() }()
		assets := &helpers.AssetUploader{Client: gcs, Bucket: cfg.GCSBucket, Prefix: "seed"}
		upload = func(ctx context.Context, name string, data []byte) (string, error) {
			url, err := assets.Upload(ctx, name, data)
			if err != nil {
				helpers.LogError(logger, "asset upload failed", err, map[string]any{"asset": name})
			}
			return url, err
		}
	}

	n, err := seed.Load(ctx, mongoinfra.NewContentRepository(db), upload)
	if err != nil {
		logger.Fatalf("failed to seed content: %v", err)
	}
	fmt.Printf("seeded %d content documents\n", n)
}
