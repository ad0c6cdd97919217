// Command seed adds a bootstrap email to the admin allow-list so the
// first operator can log in to the back office.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"sayma/config"
	"sayma/internal/domain/entity"
	"sayma/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	email := flag.String("email", "", "email to add to the admin allow-list")
	addedBy := flag.String("added-by", "", "who added the entry, recorded on the row")
	flag.Parse()

	if err := run(*email, *addedBy); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(email, addedBy string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid -email is required")
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := postgres.NewAuthorizedEmailRepository(db)

	exists, err := repo.Exists(ctx, email)
	if err != nil {
		return fmt.Errorf("check allow-list: %w", err)
	}
	if exists {
		fmt.Println(email, "is already authorized")

		return nil
	}

	if err := repo.Create(ctx, &entity.AuthorizedEmail{Email: email, AddedBy: addedBy}); err != nil {
		return fmt.Errorf("add allow-list entry: %w", err)
	}

	fmt.Println("authorized", email)

	return nil
}
