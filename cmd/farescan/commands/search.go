package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"farescan/lib/configutil"
	"farescan/lib/logutil"
	"farescan/lib/telemetry"
	"farescan/services/scanner"

	"github.com/spf13/cobra"
)

var configPath *string

func init() {
	configPath = searchCmd.Flags().String("config", "config.json5", "Path to the search configuration file.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [--config <path/to/config.json5>]",
	Short: "Runs one flight search per the config and writes a snapshot.",
	Args:  cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		closeLog := logutil.Setup(false)
		defer closeLog()

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "farescan")
		if err != nil {
			slog.Warn("telemetry setup failed, continuing without it", "err", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
				defer cancel()
				tel.Shutdown(ctx)
			}()
			telemetry.InstrumentPerfStats(cmd.Context())
		}

		cfg, err := configutil.ReadConfig[scanner.Config](*configPath)
		if err != nil {
			logutil.Fatal("failed to read config", err)
		}
		if err := cfg.Validate(); err != nil {
			logutil.Fatal("invalid config", err)
		}

		svc, err := scanner.NewService(cfg)
		if err != nil {
			logutil.Fatal("failed to build source chain", err)
		}

		t1 := time.Now()
		records := svc.Search(cmd.Context())
		slog.Info("search finished", "seconds", time.Since(t1).Seconds(), "count", len(records))

		query := cfg.Query()
		scanner.Render(os.Stdout, query, records)

		// the report above already reached the user, a failed save is not fatal
		path, err := scanner.WriteSnapshot("", query, records)
		if err != nil {
			slog.Error("failed to save results", "path", path, "err", err)
			return
		}
		slog.Info("results saved", "path", path)
	},
}
