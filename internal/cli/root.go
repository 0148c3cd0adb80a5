package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/goSolTestUtils/internal/config"
	"github.com/LeJamon/goSolTestUtils/internal/logging"
)

var (
	// Global flags
	configFile string
	debug      bool
	verbose    bool
	quiet      bool

	// Populated by loadConfig before any subcommand runs
	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "soltest",
	Short: "soltest - Solana program test fixture tooling",
	Long: `soltest inspects, validates and re-encodes the JSON account fixtures
that program tests load into their test environment. Accounts whose data fits
inline are reported as small-account eligible.`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}

// loadConfig reads the config file and ENV variables and builds the logger.
// The verbosity flags override the configured log level.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	switch {
	case debug:
		loaded.Log.Level = "debug"
	case verbose:
		loaded.Log.Level = "info"
	case quiet:
		loaded.Log.Level = "error"
	}

	l, err := logging.New(loaded.Log)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logger.Debug("configuration loaded",
		zap.String("path", loaded.GetConfigPath()),
		zap.String("fixtures_dir", loaded.FixtureDir()),
	)
	return nil
}
