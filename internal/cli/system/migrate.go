package system

import (
	"fmt"
	"io/fs"

	"github.com/wellandco/wishwell/internal/cli"
	"github.com/wellandco/wishwell/internal/migration"
	"github.com/wellandco/wishwell/internal/storage/sqlite"
	"github.com/wellandco/wishwell/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite storage")
	}

	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(db, subFS)
	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
