// Command ledger-cli manages shielded keys and talks to a running ledger node.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	NodeURL string
	Timeout time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "ledger-cli",
		Short:         "Shielded ledger command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&flags.NodeURL, "node", envOr("LEDGER_NODE_URL", "http://127.0.0.1:8001"), "ledger node REST url")
	root.PersistentFlags().DurationVar(&flags.Timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(
		newKeygenCmd(),
		newGenesisCmd(),
		newTransferCmd(flags),
		newRecordsCmd(flags),
		newHeightCmd(flags),
	)
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
