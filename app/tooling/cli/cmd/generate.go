package cmd

import (
	"github.com/ardanlabs/ledger/foundation/nodeid"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var keyPath string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a miner key whose address receives mining rewards",
	RunE:  generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&keyPath, "key", "k", "miner.ecdsa", "Path of the key file to write.")
}

func generateRun(cmd *cobra.Command, args []string) error {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return err
	}

	if err := crypto.SaveECDSA(keyPath, privateKey); err != nil {
		return err
	}

	id, err := nodeid.FromKeyFile(keyPath)
	if err != nil {
		return err
	}

	printSuccess(cmd, "key[%s] node-id[%s]", keyPath, id)

	return nil
}
