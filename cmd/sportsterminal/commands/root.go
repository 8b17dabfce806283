package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sportsterminal/internal/app"
	"sportsterminal/internal/ui"
	"sportsterminal/internal/version"
)

var (
	home     string
	apiURL   string
	logLevel string
	appCtx   *app.Wire

	stdin io.Reader
)

// Execute runs the CLI with args and the given standard streams.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	home, apiURL, logLevel, appCtx = "", "", "", nil
	stdin = in
	defer func() {
		if appCtx != nil {
			_ = appCtx.Close()
		}
	}()

	root := rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		if cmd == root {
			fmt.Fprintf(out, "Error running program: %v\n", err)
		} else {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}
	return err
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sportsterminal",
		Short:         "Live sports scores in your terminal",
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.ResolveHome(home)
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(dir)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			appCtx, err = app.NewWire(dir, cfg, nil)
			if err != nil {
				return err
			}
			cmd.SetContext(appCtx.Log.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m := ui.NewModel(ctx, appCtx.Scores, ui.Options{
				Interval:    appCtx.Config.Refresh.Interval,
				AutoRefresh: appCtx.Config.Refresh.Auto,
			})
			return ui.Run(ctx, m, stdin, cmd.OutOrStdout())
		},
	}
	root.SetVersionTemplate("sportsterminal version {{.Version}}\n")

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default $XDG_CONFIG_HOME/sportsterminal or ~/.sportsterminal)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "ESPN API base URL (e.g. http://127.0.0.1:8090)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(sportsCmd(), scoresCmd(), gameCmd(), favoritesCmd(), formulaCmd())
	return root
}
