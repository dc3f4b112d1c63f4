package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var mineAsync bool

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the next block",
	RunE:  mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
	mineCmd.Flags().BoolVar(&mineAsync, "async", false, "Ask the node to mine in the background.")
}

func mineRun(cmd *cobra.Command, args []string) error {
	if mineAsync {
		var resp message
		if err := send(cmd.Context(), http.MethodPost, "/v1/mine/signal", nil, &resp); err != nil {
			return err
		}

		printSuccess(cmd, "%s", resp.Message)
		return nil
	}

	var resp struct {
		message
		Index        uint64 `json:"index"`
		Proof        uint64 `json:"proof"`
		Hash         string `json:"hash"`
		Transactions []any  `json:"transactions"`
	}
	if err := send(cmd.Context(), http.MethodGet, "/v1/mine", nil, &resp); err != nil {
		return err
	}

	printSuccess(cmd, "%s block[%d] proof[%d] txs[%d] hash[%s]", resp.Message, resp.Index, resp.Proof, len(resp.Transactions), resp.Hash)

	return nil
}
