package cmd

import (
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register ADDRESS...",
	Short: "Register peers with the node",
	Long: `Register peers with the node. Each ADDRESS is the host:port, or an
http URL, of the peer's public or private api.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  registerRun,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func registerRun(cmd *cobra.Command, args []string) error {
	req := struct {
		Nodes []string `json:"nodes"`
	}{
		Nodes: args,
	}

	var resp struct {
		message
		TotalNodes []string `json:"total_nodes"`
	}
	if err := send(cmd.Context(), http.MethodPost, "/v1/nodes/register", req, &resp); err != nil {
		return err
	}

	printSuccess(cmd, "%s: %s", resp.Message, strings.Join(resp.TotalNodes, ", "))

	return nil
}
