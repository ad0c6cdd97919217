// Command migrate creates or updates the database schema from the GORM
// models, plus the pieces AutoMigrate cannot express.
package main

import (
	"fmt"
	"os"

	"sayma/config"
	"sayma/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// rawStatements covers what the model tags cannot: the UUIDv7 extension
// and the partial unique indexes behind the one-review-per-maid and
// one-general-review rules.
var rawStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_user_maid
		ON reviews (user_id, maid_id) WHERE maid_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_user_general
		ON reviews (user_id) WHERE maid_id IS NULL`,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	defer sqlDB.Close()

	if err := db.Exec(rawStatements[0]).Error; err != nil {
		return fmt.Errorf("create extension: %w", err)
	}

	if err := migrate(db); err != nil {
		return err
	}

	for _, stmt := range rawStatements[1:] {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	fmt.Println("schema up to date")

	return nil
}

func migrate(db *gorm.DB) error {
	models := []any{
		&model.UserModel{},
		&model.AccountModel{},
		&model.SessionModel{},
		&model.AdminModel{},
		&model.AuthorizedEmailModel{},
		&model.MaidModel{},
		&model.ReviewModel{},
		&model.ContactFormModel{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
