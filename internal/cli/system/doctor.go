package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/wellandco/wishwell/internal/backup"
	"github.com/wellandco/wishwell/internal/cli"
	"github.com/wellandco/wishwell/internal/migration"
	"github.com/wellandco/wishwell/internal/storage/sqlite"
	"github.com/wellandco/wishwell/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}

		if err := checkFocusInvariant(ctx); err != nil {
			fmt.Printf("❌ Focus invariant: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Focus invariant: OK\n")
		}

		if err := checkContactDuplicates(ctx); err != nil {
			fmt.Printf("❌ Contact uniqueness: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Contact uniqueness: OK\n")
		}

		if err := checkOrphans(ctx); err != nil {
			fmt.Printf("❌ Orphaned records: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Orphaned records: OK\n")
		}

		if err := checkLifeAreaRows(ctx); err != nil {
			fmt.Printf("❌ Life-area rows: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Life-area rows: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Focus invariant: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Contact uniqueness: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Orphaned records: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Life-area rows: SKIPPED (database not reachable)\n")
	}

	if err := checkSnapshotsPresent(ctx); err != nil {
		fmt.Printf("⚠ Snapshots present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Snapshots present: OK\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func sqliteStore(ctx *cli.Context) (*sqlite.Store, error) {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil, fmt.Errorf("doctor command only supports SQLite storage")
	}
	if store.GetDB() == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return store, nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	store, err := sqliteStore(ctx)
	if err != nil {
		return err
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}

	runner := migration.NewRunner(store.GetDB(), subFS)
	current, err := runner.CurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind latest %d, run 'wishwell migrate'", current, latest)
	}
	if current > latest {
		return fmt.Errorf("schema version %d is newer than supported %d, upgrade the application", current, latest)
	}
	return nil
}

func checkFocusInvariant(ctx *cli.Context) error {
	store, err := sqliteStore(ctx)
	if err != nil {
		return err
	}

	var active int
	if err := store.GetDB().QueryRow(`SELECT COUNT(*) FROM desires WHERE is_active = 1`).Scan(&active); err != nil {
		return err
	}
	if active > 1 {
		return fmt.Errorf("%d desires are simultaneously in focus (expected at most 1)", active)
	}

	var completedActive int
	if err := store.GetDB().QueryRow(`SELECT COUNT(*) FROM desires WHERE is_active = 1 AND is_completed = 1`).Scan(&completedActive); err != nil {
		return err
	}
	if completedActive > 0 {
		return fmt.Errorf("%d completed desire(s) still marked as focus", completedActive)
	}

	return nil
}

func checkContactDuplicates(ctx *cli.Context) error {
	store, err := sqliteStore(ctx)
	if err != nil {
		return err
	}

	var dupes int
	err = store.GetDB().QueryRow(`
		SELECT COUNT(*) FROM (
			SELECT desire_id, day, type FROM contacts
			GROUP BY desire_id, day, type
			HAVING COUNT(*) > 1
		)`).Scan(&dupes)
	if err != nil {
		return err
	}
	if dupes > 0 {
		return fmt.Errorf("%d (desire, day, type) group(s) have duplicate contacts", dupes)
	}
	return nil
}

func checkOrphans(ctx *cli.Context) error {
	store, err := sqliteStore(ctx)
	if err != nil {
		return err
	}

	var orphanContacts int
	err = store.GetDB().QueryRow(`
		SELECT COUNT(*) FROM contacts
		WHERE desire_id NOT IN (SELECT id FROM desires)`).Scan(&orphanContacts)
	if err != nil {
		return err
	}

	var orphanItems int
	err = store.GetDB().QueryRow(`
		SELECT COUNT(*) FROM action_items
		WHERE desire_id NOT IN (SELECT id FROM desires)`).Scan(&orphanItems)
	if err != nil {
		return err
	}

	if orphanContacts > 0 || orphanItems > 0 {
		return fmt.Errorf("%d orphaned contact(s) and %d orphaned action item(s)", orphanContacts, orphanItems)
	}
	return nil
}

func checkLifeAreaRows(ctx *cli.Context) error {
	ratings, err := ctx.Store.GetLifeAreas()
	if err != nil {
		return err
	}
	if len(ratings) != 8 {
		return fmt.Errorf("expected 8 life-area rows, found %d", len(ratings))
	}
	return nil
}

func checkSnapshotsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	snapshots, err := mgr.ListSnapshots()
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return fmt.Errorf("no snapshots found, consider running 'wishwell backup create'")
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := time.LoadLocation("UTC"); err != nil {
		return fmt.Errorf("timezone database unavailable: %w", err)
	}
	return nil
}
