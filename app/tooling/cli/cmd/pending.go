package cmd

import (
	"fmt"
	"net/http"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show the transactions waiting for the next block",
	RunE:  pendingRun,
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}

func pendingRun(cmd *cobra.Command, args []string) error {
	var trans []database.Tx
	if err := send(cmd.Context(), http.MethodGet, "/v1/transactions/pending", nil, &trans); err != nil {
		return err
	}

	for _, tx := range trans {
		fmt.Fprintln(cmd.OutOrStdout(), tx)
	}
	printSuccess(cmd, "pending[%d]", len(trans))

	return nil
}
