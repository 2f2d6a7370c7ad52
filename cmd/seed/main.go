package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/yourusername/devoyage-api/internal/config"
	pgRepo "github.com/yourusername/devoyage-api/internal/repository/postgres"
	"github.com/yourusername/devoyage-api/internal/seed"
	"github.com/yourusername/devoyage-api/internal/service"
	"github.com/yourusername/devoyage-api/pkg/database"
)

// Загрузка учебного контента из YAML: go run ./cmd/seed -file fixtures/sample.yaml
func main() {
	file := flag.String("file", "fixtures/sample.yaml", "путь к YAML-фикстуре")
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fixtureFile, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open fixture: %v", err)
	}
	defer fixtureFile.Close()

	fixture, err := seed.Parse(fixtureFile)
	if err != nil {
		log.Fatalf("Invalid fixture %s: %v", *file, err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), database.PoolOptions{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDB(db, database.DefaultMigrationsSource); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	quizRepo := pgRepo.NewQuizRepo(db)
	// Без Redis: закешированный API список справочников обновится по истечении TTL
	catalogService := service.NewCatalogService(pgRepo.NewSubjectRepo(db), pgRepo.NewDoctorRepo(db), nil, 0)
	loader := seed.NewLoader(
		catalogService,
		service.NewQuizService(quizRepo),
		service.NewQuestionService(pgRepo.NewQuestionRepo(db), quizRepo),
		service.NewVideoService(pgRepo.NewVideoRepo(db)),
	)

	stats, err := loader.Load(context.Background(), fixture)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Printf("Seed completed: %+v", stats)
}
