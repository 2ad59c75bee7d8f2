package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hoanghai1803/loquat/internal/api"
	"github.com/hoanghai1803/loquat/internal/catalog"
	"github.com/hoanghai1803/loquat/internal/config"
	"github.com/hoanghai1803/loquat/internal/embeddings"
	"github.com/hoanghai1803/loquat/internal/recommend"
	"github.com/hoanghai1803/loquat/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Embedding provider.
	provider, err := embeddings.NewProvider(embeddings.ProviderConfig{
		Provider: cfg.Embeddings.Provider,
		BaseURL:  cfg.Embeddings.BaseURL,
		APIKey:   cfg.Embeddings.APIKey,
		Model:    cfg.Embeddings.Model,
	})
	if err != nil {
		slog.Error("failed to create embeddings provider", "error", err)
		os.Exit(1)
	}
	slog.Info("embeddings provider configured",
		"provider", cfg.Embeddings.Provider,
		"model", cfg.Embeddings.Model,
	)

	// Optional persistent embedding cache.
	var embeddingStore recommend.EmbeddingStore
	if cfg.Recommend.CacheDBPath != "" {
		db, err := storage.OpenDatabase(cfg.Recommend.CacheDBPath)
		if err != nil {
			slog.Error("failed to open cache database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := storage.RunMigrations(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		ttl := time.Duration(cfg.Recommend.CacheTTLHours) * time.Hour
		embeddingStore = storage.NewEmbeddingStore(
			storage.NewStore(db, cfg.Embeddings.Model), ttl)
	}

	// Wire the recommendation pipeline.
	engine := recommend.NewEngine(provider, embeddingStore, cfg.Recommend.CacheSize)
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey)
	collector := recommend.NewCollector(catalogClient, recommend.NewFeedEnricher())
	svc := recommend.NewService(engine, collector, cfg.Recommend.MaxRecommendations)

	router := api.NewRouter(svc, catalogClient)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
