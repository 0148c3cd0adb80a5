package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/goSolTestUtils/internal/account"
	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
	"github.com/LeJamon/goSolTestUtils/internal/account/smallaccount"
	"github.com/LeJamon/goSolTestUtils/internal/account/uiaccount"
)

// inspectCmd prints a summary of one account fixture
var inspectCmd = &cobra.Command{
	Use:   "inspect <fixture.json>",
	Short: "Show the account stored in a fixture file",
	Long: `Decode an account fixture and print its fields. When the account data
fits inline, the small-account hash is printed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ui, err := uiaccount.FromFile(args[0])
	if err != nil {
		return err
	}
	keyed, err := ui.ToKeyedAccount()
	if err != nil {
		return err
	}
	logger.Debug("fixture decoded", zap.String("path", args[0]), zap.Stringer("pubkey", keyed.Pubkey))

	printAccount(cmd.OutOrStdout(), keyed)
	return nil
}

func printAccount(out io.Writer, keyed account.KeyedAccount) {
	acc := keyed.Account
	fmt.Fprintf(out, "Pubkey:      %s\n", keyed.Pubkey)
	fmt.Fprintf(out, "Owner:       %s\n", acc.Owner())
	fmt.Fprintf(out, "Lamports:    %s (%s SOL)\n", formatLamports(acc.Lamports()), formatSOL(acc.Lamports()))
	fmt.Fprintf(out, "Executable:  %t\n", acc.Executable())
	if readonly.IsRentExempt(acc) {
		fmt.Fprintf(out, "Rent epoch:  %d (rent exempt)\n", acc.RentEpoch())
	} else {
		fmt.Fprintf(out, "Rent epoch:  %d\n", acc.RentEpoch())
	}
	fmt.Fprintf(out, "Data:        %s\n", humanize.Bytes(uint64(readonly.DataLen(acc))))

	small, err := smallaccount.FromReadonly(acc)
	if err != nil {
		fmt.Fprintf(out, "Small:       no (%v)\n", err)
		return
	}
	fmt.Fprintf(out, "Small:       yes (hash %016x)\n", small.Hash())
}

const lamportsPerSOL = 1_000_000_000

// formatLamports groups digits with commas over the full uint64 range.
func formatLamports(l uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(l))
}

// formatSOL renders l as an exact decimal SOL amount.
func formatSOL(l uint64) string {
	whole, frac := l/lamportsPerSOL, l%lamportsPerSOL
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	return strings.TrimRight(fmt.Sprintf("%d.%09d", whole, frac), "0")
}
