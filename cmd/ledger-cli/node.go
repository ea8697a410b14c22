package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
	"github.com/goodnatureofminers/shieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

func newTransferCmd(flags *globalFlags) *cobra.Command {
	var (
		viewKey string
		spend   []string
		outputs []string
		dryRun  bool
	)
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Spend owned records into new outputs and broadcast the transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := buildTransfer(viewKey, spend, outputs)
			if err != nil {
				return err
			}
			if dryRun {
				return printJSON(cmd, tx)
			}

			ctx, cancel := requestContext(cmd.Context(), flags.Timeout)
			defer cancel()
			var reply string
			if err := newNodeClient(flags).do(ctx, http.MethodPost, "/transaction/broadcast", tx, &reply); err != nil {
				return err
			}
			cmd.Printf("%s %s\n", reply, tx.ID())
			return nil
		},
	}
	cmd.Flags().StringVar(&viewKey, "view-key", "", "view key owning the spent records")
	cmd.Flags().StringArrayVar(&spend, "spend", nil, "commitment of a record to spend, repeatable")
	cmd.Flags().StringArrayVar(&outputs, "to", nil, "address:gates to create, repeatable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the transaction instead of broadcasting it")
	return cmd
}

func buildTransfer(viewKey string, spend, outputs []string) (model.Transaction, error) {
	var viewer *account.Viewer
	if viewKey != "" {
		key, err := account.ParseViewKey(viewKey)
		if err != nil {
			return model.Transaction{}, err
		}
		viewer = key.Viewer()
	}
	commitments := make([]model.Field, 0, len(spend))
	for _, s := range spend {
		commitment, err := model.ParseField(s)
		if err != nil {
			return model.Transaction{}, err
		}
		commitments = append(commitments, commitment)
	}
	records, err := parseOutputs(outputs)
	if err != nil {
		return model.Transaction{}, err
	}
	return account.BuildTransaction(viewer, commitments, records, nil)
}

func newRecordsCmd(flags *globalFlags) *cobra.Command {
	var (
		viewKey string
		filter  string
	)
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List the records a view key owns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := account.ParseViewKey(viewKey)
			if err != nil {
				return err
			}
			f, err := ledger.ParseRecordsFilter(filter)
			if err != nil {
				return err
			}

			ctx, cancel := requestContext(cmd.Context(), flags.Timeout)
			defer cancel()
			var records ledger.Records
			if err := newNodeClient(flags).do(ctx, http.MethodGet, "/records/"+f.String(), key, &records); err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	cmd.Flags().StringVar(&viewKey, "view-key", "", "view key to scan with")
	cmd.Flags().StringVar(&filter, "filter", "unspent", "all, spent or unspent")
	_ = cmd.MarkFlagRequired("view-key")
	return cmd
}

func newHeightCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Print the node's latest block height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := requestContext(cmd.Context(), flags.Timeout)
			defer cancel()
			var height uint32
			if err := newNodeClient(flags).do(ctx, http.MethodGet, "/latest/height", nil, &height); err != nil {
				return err
			}
			cmd.Println(height)
			return nil
		},
	}
}
