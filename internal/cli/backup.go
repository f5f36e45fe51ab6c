package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/wellandco/wishwell/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store)
	path, err := mgr.CreateSnapshot()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	fmt.Printf("%s Snapshot created: %s\n", markStyle.Render("✓"), filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store)
	snapshots, err := mgr.ListSnapshots()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots found.")
		fmt.Printf("Snapshots are stored in: %s\n", mgr.GetSnapshotDir())
		return nil
	}

	fmt.Printf("Snapshots in %s:\n\n", mgr.GetSnapshotDir())
	for _, snap := range snapshots {
		fmt.Printf("%s  %s  (%d bytes)\n",
			snap.Timestamp.Format("2006-01-02 15:04"),
			filepath.Base(snap.Path),
			snap.Size)
	}

	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Snapshot file to restore from."`
	Yes  bool   `help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store)

	// Validate the document before anything destructive happens.
	snap, err := mgr.ReadSnapshot(c.File)
	if err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Replace ALL data with snapshot from %s?",
					snap.ExportedAt.Format("2006-01-02 15:04"))).
				Description(fmt.Sprintf("%d desires, %d contacts, %d feedbacks. This cannot be undone.",
					len(snap.Desires), len(snap.Contacts), len(snap.Feedbacks))).
				Affirmative("Restore").
				Negative("Cancel").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := mgr.RestoreSnapshot(c.File); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Printf("%s Restored from %s\n", markStyle.Render("✓"), filepath.Base(c.File))
	return nil
}
