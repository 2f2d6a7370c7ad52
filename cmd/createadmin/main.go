package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/yourusername/devoyage-api/internal/config"
	pgRepo "github.com/yourusername/devoyage-api/internal/repository/postgres"
	"github.com/yourusername/devoyage-api/internal/service"
	"github.com/yourusername/devoyage-api/pkg/auth"
	"github.com/yourusername/devoyage-api/pkg/database"
)

// Создание сотрудника: go run ./cmd/createadmin -username admin
// Пароль берется из ADMIN_PASSWORD.
func main() {
	username := flag.String("username", "admin", "имя пользователя")
	staff := flag.Bool("staff", true, "выдать права сотрудника")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), database.PoolOptions{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDB(db, database.DefaultMigrationsSource); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Fatalf("Failed to initialize JWTService: %v", err)
	}
	authService := service.NewAuthService(pgRepo.NewUserRepo(db), jwtService)

	user, err := authService.CreateUser(context.Background(), *username, password, *staff)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	log.Printf("User %q created (ID=%d, is_staff=%t)", user.Username, user.ID, user.IsStaff)
}
