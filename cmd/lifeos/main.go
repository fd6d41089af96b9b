package main

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifeos/internal/calendar"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/errors"
	"github.com/julianstephens/lifeos/internal/logger"
	"github.com/julianstephens/lifeos/internal/memory"
	"github.com/julianstephens/lifeos/internal/scheduler"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/lifeos/life.yaml"`
	DB      string `help:"Database file path." type:"path" default:"~/.config/lifeos/lifeos.db"`
	Debug   bool   `help:"Enable debug logging."`
	Mock    bool   `help:"Use an in-memory calendar instead of the database."`

	Init         cli.InitCmd         `cmd:"" help:"Create a starter configuration."`
	Propose      cli.ProposeCmd      `cmd:"" help:"Propose a schedule for the week."`
	Analyze      cli.AnalyzeCmd      `cmd:"" help:"Compare the week against your activity targets."`
	Slots        cli.SlotsCmd        `cmd:"" help:"List free time slots."`
	Requirements cli.RequirementsCmd `cmd:"" help:"Show weekly activity requirements."`
	Day          cli.DayCmd          `cmd:"" help:"Show the schedule for a day."`
	Conf struct {
		Validate cli.ConfigValidateCmd `cmd:"" help:"Validate the configuration file."`
		Show     cli.ConfigShowCmd     `cmd:"" help:"Show the effective configuration."`
	} `cmd:"" name:"config" help:"Inspect the configuration."`
	Memory struct {
		Add    cli.MemoryAddCmd    `cmd:"" help:"Remember a note."`
		Search cli.MemorySearchCmd `cmd:"" help:"Search remembered notes."`
		List   cli.MemoryListCmd   `cmd:"" help:"List all remembered notes."`
	} `cmd:"" help:"Manage remembered notes."`
	Mcp cli.McpCmd `cmd:"" help:"Serve the scheduling tools over MCP stdio."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly scheduling engine for the rest of your life"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	appCtx := &cli.Context{ConfigPath: CLI.Config}

	// init runs before a config exists; everything else needs one.
	if ctx.Command() != "init" {
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				errors.Fatalf("no configuration at %s, run 'lifeos init' first", CLI.Config)
			}
			errors.Fatal(err)
		}
		appCtx.Config = cfg
		appCtx.Scheduler = scheduler.New(cfg)
		appCtx.UserID = cfg.Meta.User

		if CLI.Mock {
			appCtx.Calendar = calendar.NewMock()
		} else {
			store, err := calendar.Open(CLI.DB)
			if err != nil {
				errors.Fatal(err)
			}
			defer store.Close()
			appCtx.Calendar = store
		}

		memStore, err := memory.Open(CLI.DB)
		if err != nil {
			errors.Fatal(err)
		}
		defer memStore.Close()
		appCtx.Memory = memStore
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
