package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/timetrack/internal/cli"
	"github.com/julianstephens/timetrack/internal/config"
	apperrors "github.com/julianstephens/timetrack/internal/errors"
	"github.com/julianstephens/timetrack/internal/logger"
	"github.com/julianstephens/timetrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path. Overrides TIMETRACK_DATA_PATH and the auto-detected cloud-synced folder." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Log     cli.LogCmd     `cmd:"" help:"Log time against a project."`
	Summary cli.SummaryCmd `cmd:"" help:"Show aggregated time per project."`
	Entries struct {
		List   cli.EntryListCmd   `cmd:"" default:"1" help:"List time entries."`
		Edit   cli.EntryEditCmd   `cmd:"" help:"Edit a time entry."`
		Delete cli.EntryDeleteCmd `cmd:"" help:"Delete a time entry."`
	} `cmd:"" help:"Browse and edit time entries."`
	Project struct {
		Add       cli.ProjectAddCmd       `cmd:"" help:"Add a new project."`
		List      cli.ProjectListCmd      `cmd:"" default:"1" help:"List projects."`
		Edit      cli.ProjectEditCmd      `cmd:"" help:"Edit a project."`
		Archive   cli.ProjectArchiveCmd   `cmd:"" help:"Archive a project."`
		Unarchive cli.ProjectUnarchiveCmd `cmd:"" help:"Unarchive a project."`
		Delete    cli.ProjectDeleteCmd    `cmd:"" help:"Delete a project and its entries."`
	} `cmd:"" help:"Manage projects."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" default:"1" help:"Create a manual backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data file backups."`
	Path cli.PathCmd `cmd:"" help:"Show the resolved data file path."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(config.AppName),
		kong.Description("Personal time tracker with a cloud-synced flat-file store"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":      "v0.1.0",
			"defaultColor": config.DefaultColor,
		},
	)

	// Logs stay in the local config dir, never in the synced data folder.
	logDir := filepath.Join(filepath.Dir(config.LocalFallbackPath()), "logs")
	if err := logger.Init(logger.Config{Debug: CLI.Debug, LogDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	dataPath := config.ResolveDataPath(CLI.Data)
	logger.Debug("Resolved data path", "path", dataPath)

	appCtx := &cli.Context{
		Store: storage.NewJSONStore(dataPath),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
