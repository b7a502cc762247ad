// Package cmd provides the root command and CLI setup for excat.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mouse-blink/excat/internal/adapter"
	"github.com/mouse-blink/excat/internal/config"
	"github.com/mouse-blink/excat/internal/controller"
	"github.com/mouse-blink/excat/internal/domain"
)

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var fsAdapter adapter.SourceFSAdapter
var catalogStore adapter.CatalogStore
var workflow domain.Workflow
var ui controller.UI

// cfg holds the configuration loaded before any subcommand runs.
var cfg = config.Default()

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	catalogStore = adapter.NewCatalogStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		catalogStore,
		ui,
		logger,
	)
}

var configFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excat",
		Short: "Exception catalog miner",
		Long: `Excat scans a C++ source tree for throw Exception(...) call sites,
resolves each symbolic error code to its number and writes a JSON catalog of
codes, message templates and template arguments.

Error code numbers come from the tree's definitions file (M(number, NAME) or
const int NAME = number; lines) layered under a configurable override table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default .excat.yml in the working directory)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
	cmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func loadConfig() error {
	var (
		loaded *config.Config
		err    error
	)

	if configFlag != "" {
		loaded, err = config.NewFileLoader(configFlag).Load()
	} else {
		loaded, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Log.Level = logLevelFlag
	}

	level, err := config.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}

	logLevel.Set(level)

	cfg = loaded

	return nil
}

// wordSepNormalizeFunc accepts snake_case spellings of flags, e.g.
// --source_directory for --source-directory.
func wordSepNormalizeFunc(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
