package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termcv/internal/config"
	"termcv/internal/logger"
	"termcv/internal/trace"
	"termcv/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cvSource  string
		themeName string
		fragment  string
		configDir string
	)

	root := &cobra.Command{
		Use:   "termcv",
		Short: "View a résumé as a retro terminal document",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := configDir
			if dir == "" {
				var err error
				dir, err = config.DefaultDir()
				if err != nil {
					return err
				}
			}
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if cvSource != "" {
				cfg.CV = cvSource
			}
			if cfg.CV == "" {
				return fmt.Errorf("no cv source: pass --cv or set cv in %s/config.yaml", dir)
			}
			if themeName != "" {
				cfg.Theme = themeName
			}
			if cfg.Logging == (logger.Config{}) {
				// Logging defaults on; stdout is never used while the
				// TUI runs, so the log file is the only way to see
				// anything.
				cfg.Logging = logger.Config{Enabled: true, Level: "info"}
			}
			if err := logger.Init(cfg.Logging, dir); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			defer logger.Close()

			tracer, err := trace.New(cmd.Context())
			if err != nil {
				logger.Warn("tracing disabled", "err", err)
				tracer = nil
			}
			defer tracer.Shutdown(context.Background())

			model := ui.NewAppModel(ui.Options{
				CVSource:  cfg.CV,
				ConfigDir: dir,
				Config:    cfg,
				Fragment:  fragment,
				Tracer:    tracer,
			})
			p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	root.Flags().StringVar(&cvSource, "cv", "", "cv source: JSON file path or http(s) URL")
	root.Flags().StringVar(&themeName, "theme", "", "palette name (green, amber, cyan, paper)")
	root.Flags().StringVar(&fragment, "panel", "", "panel to focus on startup (deep link)")
	root.Flags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.termcv)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termcv %s (commit: %s)\n", version, commit)
		},
	})
	return root
}
