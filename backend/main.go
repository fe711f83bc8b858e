package main

import (
	"context"
	"log"
	"os"

	"github.com/factorymaster/mission-control/backend/catalog"
	"github.com/factorymaster/mission-control/backend/cli"
	"github.com/factorymaster/mission-control/backend/config"
	"github.com/factorymaster/mission-control/backend/gateway"
	"github.com/factorymaster/mission-control/backend/llm"
	"github.com/factorymaster/mission-control/backend/progress"
	"github.com/factorymaster/mission-control/backend/resources"
	"github.com/factorymaster/mission-control/backend/storage"
	"github.com/factorymaster/mission-control/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: cfg.LogColors,
	})

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	curriculum, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Error loading curriculum: %v", err)
	}

	kv := storage.NewGormKV(db)
	progressStore := progress.NewStore(kv, logger)
	progressStore.Load(context.Background())

	client := llm.NewGeminiClient(llm.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
		Timeout:  cfg.GeminiTimeout,
	}, llm.NewLogObserver(logger))

	app := &cli.App{
		Cfg:       cfg,
		Logger:    logger,
		Catalog:   curriculum,
		Progress:  progressStore,
		Resources: resources.NewStore(kv, logger),
		Gateway:   gateway.New(client, cfg.AIConfigured(), logger),
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
}
