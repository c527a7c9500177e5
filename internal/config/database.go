package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("[DB] Database connected")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.AppointmentSlot{},
		&models.Appointment{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// SeedAdmin creates the Admin account named by ADMIN_EMAIL once. Without
// credentials configured it does nothing.
func SeedAdmin(ctx context.Context, store repository.Store, email, password string) error {
	if email == "" || password == "" {
		log.Println("[DB] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	_, err := store.Users().FindByEmail(ctx, email)
	if err == nil {
		log.Println("[DB] Admin user already exists")
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{Email: email, PasswordHash: hash, Role: models.RoleAdmin}
	if err := store.Users().Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Printf("[DB] Admin user %s seeded", email)
	return nil
}
