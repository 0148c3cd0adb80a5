package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/goSolTestUtils/internal/account/smallaccount"
	"github.com/LeJamon/goSolTestUtils/internal/account/uiaccount"
)

// validateCmd checks every fixture in a directory
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check that every fixture in a directory decodes",
	Long: `Load every *.json account fixture in a directory (fixtures.dir from the
configuration by default) and decode each one. Reports how many accounts fit
inline as small accounts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := cfg.FixtureDir()
	if len(args) == 1 {
		dir = args[0]
	}

	loader, err := uiaccount.NewLoader(uiaccount.LoaderConfig{
		CacheSize: cfg.Fixtures.CacheSize,
		Workers:   cfg.Fixtures.Workers,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fixtures, err := loader.LoadDir(ctx, dir)
	if err != nil {
		return err
	}

	var (
		eligible int
		distinct smallaccount.Set
	)
	for _, f := range fixtures {
		keyed, err := f.Account.ToKeyedAccount()
		if err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
		small, err := smallaccount.FromReadonly(keyed.Account)
		if err != nil {
			continue
		}
		eligible++
		if !distinct.Add(small) {
			logger.Info("duplicate small account contents",
				zap.String("path", f.Path),
				zap.Stringer("pubkey", keyed.Pubkey),
			)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d fixtures OK in %s\n", len(fixtures), dir)
	fmt.Fprintf(cmd.OutOrStdout(), "%d small-account eligible (%d distinct)\n", eligible, distinct.Len())
	return nil
}
