package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/goSolTestUtils/internal/account/uiaccount"
)

var (
	// Encode flags
	encoding   string
	outputPath string
)

// encodeCmd rewrites a fixture with a different data encoding
var encodeCmd = &cobra.Command{
	Use:   "encode <fixture.json>",
	Short: "Re-encode the data of a fixture file",
	Long: `Decode an account fixture and write it back with the requested data
encoding (base58, base64 or base64+zstd). Without --output the result is
printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVarP(&encoding, "encoding", "e", "", "data encoding (default: fixtures.encoding)")
	encodeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	name := encoding
	if name == "" {
		name = cfg.Fixtures.Encoding
	}
	enc, err := uiaccount.ParseEncoding(name)
	if err != nil {
		return err
	}

	ui, err := uiaccount.FromFile(args[0])
	if err != nil {
		return err
	}
	keyed, err := ui.ToKeyedAccount()
	if err != nil {
		return err
	}
	out, err := uiaccount.FromKeyedAccount(keyed, enc)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := uiaccount.WriteFile(outputPath, out); err != nil {
			return err
		}
		logger.Info("fixture written",
			zap.String("path", outputPath),
			zap.String("encoding", string(enc)),
		)
		return nil
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}
