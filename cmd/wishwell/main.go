package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/wellandco/wishwell/internal/cli"
	"github.com/wellandco/wishwell/internal/cli/system"
	"github.com/wellandco/wishwell/internal/constants"
	apperrors "github.com/wellandco/wishwell/internal/errors"
	"github.com/wellandco/wishwell/internal/logger"
	"github.com/wellandco/wishwell/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/wishwell/wishwell.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize wishwell storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`

	Add      cli.DesireAddCmd      `cmd:"" help:"Add a new desire."`
	List     cli.DesireListCmd     `cmd:"" help:"List desires." default:"1"`
	Show     cli.DesireShowCmd     `cmd:"" help:"Show a desire in detail."`
	Edit     cli.DesireEditCmd     `cmd:"" help:"Edit a desire."`
	Complete cli.DesireCompleteCmd `cmd:"" help:"Mark a desire as completed."`
	Focus    cli.DesireFocusCmd    `cmd:"" help:"Show or set the focus desire."`
	Delete   cli.DesireDeleteCmd   `cmd:"" help:"Delete a desire and all its records."`

	Jot   cli.JotCmd   `cmd:"" help:"Record today's contact with a desire."`
	Week  cli.WeekCmd  `cmd:"" help:"Show a desire's contact grid for the last week."`
	Stats cli.StatsCmd `cmd:"" help:"Show contact statistics for a desire."`
	Log   cli.LogCmd   `cmd:"" help:"Show a desire's full contact history."`

	Contact struct {
		Delete cli.ContactDeleteCmd `cmd:"" help:"Delete a contact record."`
	} `cmd:"" help:"Manage contact records."`

	Step struct {
		Add     cli.StepAddCmd     `cmd:"" help:"Add an action step to a desire."`
		List    cli.StepListCmd    `cmd:"" help:"List a desire's action steps." default:"1"`
		Toggle  cli.StepToggleCmd  `cmd:"" help:"Toggle a step's completion."`
		Edit    cli.StepEditCmd    `cmd:"" help:"Edit a step's text."`
		Delete  cli.StepDeleteCmd  `cmd:"" help:"Delete a step."`
		Clear   cli.StepClearCmd   `cmd:"" help:"Delete all steps of a desire."`
		Reorder cli.StepReorderCmd `cmd:"" help:"Reorder a desire's steps."`
	} `cmd:"" help:"Manage action steps."`

	Area struct {
		List cli.AreaListCmd `cmd:"" help:"Show life-area ratings." default:"1"`
		Rate cli.AreaRateCmd `cmd:"" help:"Rate a life area from 0 to 10."`
	} `cmd:"" help:"Manage life-area ratings."`

	Feedback struct {
		Add    cli.FeedbackAddCmd    `cmd:"" help:"Leave feedback." default:"1"`
		List   cli.FeedbackListCmd   `cmd:"" help:"List feedback entries."`
		Delete cli.FeedbackDeleteCmd `cmd:"" help:"Delete a feedback entry."`
	} `cmd:"" help:"Manage feedback."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a snapshot." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a snapshot."`
	} `cmd:"" help:"Manage data snapshots."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal desire tracker / daily contact journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := sqlite.NewStore(CLI.Config)
	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init and doctor handle
	// their own loading).
	if sel := ctx.Selected(); sel != nil && sel.Name != "init" && sel.Name != "doctor" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
