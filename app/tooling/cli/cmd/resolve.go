package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var resolveAsync bool

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Run consensus against the node's peers",
	RunE:  resolveRun,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveAsync, "async", false, "Ask the node to resolve in the background.")
}

func resolveRun(cmd *cobra.Command, args []string) error {
	if resolveAsync {
		var resp message
		if err := send(cmd.Context(), http.MethodPost, "/v1/nodes/resolve/signal", nil, &resp); err != nil {
			return err
		}

		printSuccess(cmd, "%s", resp.Message)
		return nil
	}

	var resp struct {
		message
		Replaced bool `json:"replaced"`
		Length   int  `json:"length"`
	}
	if err := send(cmd.Context(), http.MethodGet, "/v1/nodes/resolve", nil, &resp); err != nil {
		return err
	}

	printSuccess(cmd, "%s length[%d]", resp.Message, resp.Length)

	return nil
}
