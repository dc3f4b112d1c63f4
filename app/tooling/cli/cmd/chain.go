package cmd

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Show the node's chain",
	RunE:  chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func chainRun(cmd *cobra.Command, args []string) error {
	var chain database.ChainData
	if err := send(cmd.Context(), http.MethodGet, "/v1/chain", nil, &chain); err != nil {
		return err
	}

	table, err := chainTable(chain.Chain)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), table)
	printSuccess(cmd, "length[%d] valid[%t]", chain.Length, database.IsValidChain(chain.Chain))

	return nil
}

// chainTable renders one row per block.
func chainTable(blocks []database.Block) (string, error) {
	data := pterm.TableData{
		{"Index", "Time", "Txs", "Proof", "Previous Hash", "Hash"},
	}

	for _, blk := range blocks {
		data = append(data, []string{
			strconv.FormatUint(blk.Index, 10),
			time.Unix(int64(blk.TimeStamp), 0).UTC().Format(time.RFC3339),
			strconv.Itoa(len(blk.Transactions)),
			strconv.FormatUint(blk.Proof, 10),
			short(blk.PrevHash),
			short(blk.Hash()),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// short abbreviates a digest for display.
func short(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:16]
}
