package main

import (
	"fmt"
	"log"

	"github.com/CachoMX/partnership-kpi/internal/config"
	"github.com/CachoMX/partnership-kpi/internal/database"
	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/repository"
	"github.com/CachoMX/partnership-kpi/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Closer{},
		&models.Setter{},
		&models.Call{},
		&models.EODReport{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Closer{},
		&models.Setter{},
		&models.Call{},
		&models.EODReport{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	closerRepo := repository.NewCloserRepository(db)
	setterRepo := repository.NewSetterRepository(db)
	callRepo := repository.NewCallRepository(db)

	// No role cache during seeding
	userService := services.NewUserService(userRepo, closerRepo, setterRepo, callRepo, nil, 0)

	fmt.Println("Creating default admin user...")
	existing, err := userRepo.GetByEmail("admin@example.com")
	if err != nil {
		log.Fatal("Failed to check for existing admin:", err)
	}
	if existing != nil {
		fmt.Println("Admin user already exists")
		return
	}

	if _, err := userService.CreateUser("admin@example.com", "changeme", "Admin", "admin"); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Println("Creating demo rep accounts...")
	demos := []struct {
		email, name, role string
	}{
		{"closer@example.com", "Demo Closer", "closer"},
		{"setter@example.com", "Demo Setter", "setter"},
	}
	for _, d := range demos {
		if _, err := userService.CreateUser(d.email, "changeme", d.name, d.role); err != nil {
			log.Printf("Warning: failed to create %s: %v", d.email, err)
		}
	}

	fmt.Println("Database initialized successfully")
}
