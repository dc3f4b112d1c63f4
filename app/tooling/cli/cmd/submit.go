package cmd

import (
	"net/http"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var (
	sender    string
	recipient string
	amount    uint64
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a transaction for the next block",
	RunE:  submitRun,
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringVarP(&sender, "sender", "s", "", "Sender of the amount.")
	submitCmd.Flags().StringVarP(&recipient, "recipient", "r", "", "Recipient of the amount.")
	submitCmd.Flags().Uint64VarP(&amount, "amount", "a", 0, "Amount to transfer.")
	submitCmd.MarkFlagRequired("sender")
	submitCmd.MarkFlagRequired("recipient")
	submitCmd.MarkFlagRequired("amount")
}

func submitRun(cmd *cobra.Command, args []string) error {
	tx, err := database.NewTx(sender, recipient, amount)
	if err != nil {
		return err
	}

	var resp struct {
		message
		Index uint64 `json:"index"`
	}
	if err := send(cmd.Context(), http.MethodPost, "/v1/transactions/new", tx, &resp); err != nil {
		return err
	}

	printSuccess(cmd, "%s", resp.Message)

	return nil
}
