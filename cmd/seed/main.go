package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"rag-mecanico/internal/repository"
	"rag-mecanico/internal/service"
	"rag-mecanico/pkg/auth"
	"rag-mecanico/pkg/config"
	"rag-mecanico/pkg/logger"
	"rag-mecanico/pkg/postgres"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed knowledge.json
var defaultCatalogue []byte

// Passage is one entry of a seed catalogue.
type Passage struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

func main() {
	file := flag.String("file", "", "JSON catalogue to load instead of the built-in one")
	token := flag.Bool("token", false, "print a knowledge:write token and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *token {
		if err := printToken(&cfg.Auth); err != nil {
			logger.Fatal("Failed to issue token", zap.Error(err))
		}
		return
	}

	passages, err := loadCatalogue(*file)
	if err != nil {
		logger.Fatal("Failed to load catalogue", zap.Error(err))
	}

	if !cfg.Database.Configured() {
		logger.Fatal("DB_HOST is required to seed the knowledge index")
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, logger.Get())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer db.Close()

	loader, modelName, err := service.NewModelLoader(&cfg.Embedding, cfg.Database.Dimension)
	if err != nil {
		logger.Fatal("Invalid embedding configuration", zap.Error(err))
	}
	embedder := service.NewEmbeddingService(loader, modelName, cfg.Database.Dimension, logger.Named("embedding"))
	defer embedder.Close()

	index := repository.NewKnowledgeRepository(db, cfg.Database.IndexName, logger.Named("repository"))
	rag := service.NewRAGService(embedder, index, &cfg.RAG, cfg.Database.IndexName, cfg.Agent.Name, logger.Named("rag"))

	color.Cyan("Seeding %d passages into %s (%s)", len(passages), cfg.Database.IndexName, modelName)

	added, failed := seed(ctx, rag, passages)

	logger.Info("Seeding finished", zap.Int("added", added), zap.Int("failed", failed))

	fmt.Println()
	color.Green("✓ %d added", added)
	if failed > 0 {
		color.Red("✗ %d failed", failed)
		os.Exit(1)
	}
}

// seed writes every passage and reports how many succeeded.
func seed(ctx context.Context, rag *service.RAGService, passages []Passage) (added, failed int) {
	for i, p := range passages {
		prefix := fmt.Sprintf("[%d/%d] %s", i+1, len(passages), p.ID)

		opCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		_, err := rag.AddKnowledge(opCtx, p.ID, p.Text, p.Metadata)
		cancel()

		if err != nil {
			color.Red("%s: %v", prefix, err)
			logger.Error("Failed to add passage", zap.String("id", p.ID), zap.Error(err))
			failed++
			continue
		}
		color.Green("%s", prefix)
		added++
	}
	return added, failed
}

// loadCatalogue reads passages from path, or the embedded catalogue when path
// is empty. Passages without an id get a stable one derived from their text.
func loadCatalogue(path string) ([]Passage, error) {
	data := defaultCatalogue
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalogue: %w", err)
		}
		data = raw
	}

	var passages []Passage
	if err := json.Unmarshal(data, &passages); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	for i := range passages {
		if strings.TrimSpace(passages[i].ID) == "" {
			passages[i].ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(passages[i].Text)).String()
		}
	}
	return passages, nil
}

func printToken(cfg *config.AuthConfig) error {
	if !cfg.Enabled() {
		return fmt.Errorf("KNOWLEDGE_JWT_SECRET is not set")
	}
	token, err := auth.NewJWTManager(cfg.SecretKey, cfg.Expiration).GenerateToken("seed", auth.ScopeKnowledgeWrite)
	if err != nil {
		return err
	}
	color.Yellow("Bearer token (valid %s):", cfg.Expiration)
	fmt.Println(token)
	return nil
}
