// Package cli wires command-line flags to a dashboard session.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/repodash/internal/app"
	"github.com/kk-code-lab/repodash/internal/logger"
)

const defaultReportDirName = ".repodash"

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		reportDir string
		stylePath string
		refresh   time.Duration
		logPath   string
	)

	root := &cobra.Command{
		Use:   "repodash",
		Short: "Terminal dashboard for git repository state",
		Long: "Repodash renders repository status, unpushed commits and live file\n" +
			"activity from collector report files in three scrollable columns.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logPath != "" {
				if err := logger.Init(logPath); err != nil {
					return err
				}
				defer logger.Close()
			}

			app, err := apppkg.NewApplication(apppkg.Options{
				ReportDir:       reportDir,
				StylePath:       stylePath,
				RefreshInterval: refresh,
			})
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Run()
		},
	}

	root.Flags().StringVar(&reportDir, "reports", defaultReportDir(), "directory the collectors write report files into")
	root.Flags().StringVar(&stylePath, "style", "", "JSON style file merged over the built-in colors")
	root.Flags().DurationVar(&refresh, "refresh", apppkg.DefaultRefreshInterval, "how often report files are re-read")
	root.Flags().StringVar(&logPath, "log-file", "", "write diagnostics to this file (disabled when empty)")
	return root
}

func defaultReportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultReportDirName
	}
	return filepath.Join(home, defaultReportDirName)
}
