package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
	"github.com/goodnatureofminers/shieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

func newGenesisCmd() *cobra.Command {
	var (
		outputs   []string
		timestamp int64
		path      string
	)
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Write a genesis block minting records to the given addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			genesis, err := buildGenesis(timestamp, outputs)
			if err != nil {
				return err
			}
			if path == "" {
				return printJSON(cmd, genesis)
			}
			data, err := json.MarshalIndent(genesis, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("write genesis: %w", err)
			}
			cmd.Printf("genesis %s written to %s\n", genesis.Hash(), path)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&outputs, "to", nil, "address:gates to mint, repeatable")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 1700000000, "genesis timestamp")
	cmd.Flags().StringVarP(&path, "out", "o", "", "write the block to this file instead of stdout")
	return cmd
}

func buildGenesis(timestamp int64, outputs []string) (model.Block, error) {
	if len(outputs) == 0 {
		return ledger.NewGenesisBlock(timestamp, nil)
	}
	records, err := parseOutputs(outputs)
	if err != nil {
		return model.Block{}, err
	}
	tx, err := account.BuildTransaction(nil, nil, records, nil)
	if err != nil {
		return model.Block{}, err
	}
	return ledger.NewGenesisBlock(timestamp, []model.Transaction{tx})
}
