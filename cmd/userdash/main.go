package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userdash/internal/api"
	"userdash/internal/config"
	"userdash/internal/dashboard"
	"userdash/internal/derive"
	"userdash/internal/logging"
)

var version = "dev"

var (
	cfg    = config.Default()
	logger *zap.Logger

	// fetch-only flag
	fetchFilter string
)

var rootCmd = &cobra.Command{
	Use:   "userdash",
	Short: "Terminal dashboard over a users collection",
	Long: `userdash fetches a user collection from a REST endpoint and shows it
in an interactive terminal dashboard: filter by name, keep a local
counter, retry on failure.

Run without arguments to start the dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(cfg.LogFile, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client := api.NewClient(cfg.Endpoint, cfg.Timeout, logger)
		return dashboard.Run(client, cfg.InitialCounter, logger)
	},
}

// fetchCmd lists the collection once without the TUI.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the collection once and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client := api.NewClient(cfg.Endpoint, cfg.Timeout, logger)
		users, err := client.FetchUsers(ctx)
		if err != nil {
			return err
		}

		filtered := derive.FilterByName(users, fetchFilter)
		for _, u := range filtered {
			fmt.Printf("%4d  %-28s %s\n", u.ID, u.Name, u.Email)
		}
		fmt.Printf("\n%d/%d users, total name length %d\n",
			len(filtered), len(users), derive.TotalNameLength(filtered))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("userdash", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "users collection endpoint")
	pf.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	pf.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "diagnostics log file (empty disables logging)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "debug-level logging")

	rootCmd.Flags().IntVar(&cfg.InitialCounter, "counter", cfg.InitialCounter, "initial counter value")

	fetchCmd.Flags().StringVar(&fetchFilter, "filter", "", "case-insensitive name filter")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
