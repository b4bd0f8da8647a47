package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekaraca/shiftdash/cmd/shiftdash/commands"
	"github.com/ekaraca/shiftdash/internal/config"
	"github.com/ekaraca/shiftdash/pkg/clients/planclient"
	"github.com/ekaraca/shiftdash/pkg/core/services"
	"github.com/ekaraca/shiftdash/pkg/core/store"
	"github.com/ekaraca/shiftdash/pkg/session"
	"github.com/ekaraca/shiftdash/pkg/utils/logging"
)

var (
	verbose bool
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftdash",
		Short: "Shiftdash - team shift-plan dashboard",
		Long:  `A dashboard client for the team shift-plan service: members, leave days, generated shifts and holidays on a month calendar, with multi-format export.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	rootCmd.AddCommand(commands.LoginCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterCmd(appRef()))
	rootCmd.AddCommand(commands.LogoutCmd(appRef()))
	rootCmd.AddCommand(commands.CalendarCmd(appRef()))
	rootCmd.AddCommand(commands.WatchCmd(appRef()))
	rootCmd.AddCommand(commands.MembersCmd(appRef()))
	rootCmd.AddCommand(commands.PlanCmd(appRef()))
	rootCmd.AddCommand(commands.AssignCmd(appRef()))
	rootCmd.AddCommand(commands.LeaveCmd(appRef()))
	rootCmd.AddCommand(commands.StatsCmd(appRef()))
	rootCmd.AddCommand(commands.ExportCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef hands commands a stable pointer they can use after initApp fills it
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, session, client and sync controller
func initApp() error {
	ctx := appRef()
	ctx.Ctx = context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx.Cfg = cfg

	logger, err := logging.InitLogger(cfg.LogDir, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ctx.Logger = logger

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve session path: %w", err)
		}
	}
	ctx.Session, err = session.Open(sessionPath)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	ctx.Client = planclient.New(cfg.APIBaseURL, ctx.Session, logger)
	ctx.Store = store.New()
	ctx.Sync = services.NewController(ctx.Client, ctx.Store, logger, func() {
		if err := ctx.Session.Clear(); err != nil {
			logger.Warn("failed to clear expired session")
		}
		fmt.Fprintln(os.Stderr, "Session expired. Please login again.")
	})

	return nil
}
