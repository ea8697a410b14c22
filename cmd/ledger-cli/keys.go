package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
)

type keyPair struct {
	PrivateKey account.PrivateKey `json:"private_key"`
	ViewKey    account.ViewKey    `json:"view_key"`
	Address    account.Address    `json:"address"`
}

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key with its view key and address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := account.NewPrivateKey(nil)
			if err != nil {
				return err
			}
			return printJSON(cmd, keyPair{PrivateKey: key, ViewKey: key.ViewKey(), Address: key.Address()})
		},
	}
}

// parseOutputs reads "address:gates" pairs into fresh records.
func parseOutputs(args []string) ([]account.Record, error) {
	records := make([]account.Record, 0, len(args))
	for _, arg := range args {
		addr, gates, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("output %q: want address:gates", arg)
		}
		owner, err := account.ParseAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("output %q: %w", arg, err)
		}
		amount, err := strconv.ParseUint(gates, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("output %q: gates: %w", arg, err)
		}
		rec, err := account.NewRecord(owner, amount, nil, nil)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
