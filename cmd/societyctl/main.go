package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/societyhub/societyhub-api/internal/config"
	"github.com/societyhub/societyhub-api/internal/database"
	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/services"
	"github.com/societyhub/societyhub-api/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:   "societyctl",
		Short: "Administrative tooling for the society back office",
	}

	root.AddCommand(migrateCmd(), createAdminCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect() (*gorm.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.Environment)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, cfg, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := connect()
			if err != nil {
				return err
			}

			if err := db.AutoMigrate(
				&models.User{},
				&models.Flat{},
				&models.TenancyRecord{},
				&models.Resident{},
				&models.MaintenanceRecord{},
				&models.VendorAccount{},
				&models.AuditLog{},
			); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}

			logger.Info("Database schema is up to date")
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	var (
		username string
		email    string
		password string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the initial admin user (no-op if it already exists)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := connect()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var existing models.User
			err = db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
			if err == nil {
				logger.Info("Admin user already exists", "username", username)
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			hash, err := services.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			admin := &models.User{
				Username:       username,
				Email:          email,
				HashedPassword: hash,
				FullName:       fullName,
				Role:           models.RoleAdmin,
				IsActive:       true,
			}
			if err := db.WithContext(ctx).Create(admin).Error; err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			logger.Info("Admin user created", "username", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "admin username")
	cmd.Flags().StringVar(&email, "email", "admin@society.local", "admin email")
	cmd.Flags().StringVar(&password, "password", "admin123", "admin password")
	cmd.Flags().StringVar(&fullName, "full-name", "Society Administrator", "admin full name")

	return cmd
}
