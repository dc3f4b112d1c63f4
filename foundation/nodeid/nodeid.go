// Package nodeid provides the identifier a node uses to receive
// mining rewards.
package nodeid

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// New returns a random, globally unique identifier for a node.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// FromKeyFile returns the account address for the ECDSA private key stored
// in the specified file. A node started with the same key is always paid
// to the same account.
func FromKeyFile(path string) (string, error) {
	privateKey, err := crypto.LoadECDSA(path)
	if err != nil {
		return "", fmt.Errorf("unable to load private key for node: %w", err)
	}

	return crypto.PubkeyToAddress(privateKey.PublicKey).Hex(), nil
}

// Resolve returns the identifier from the key file when one is specified
// and a random identifier otherwise.
func Resolve(keyPath string) (string, error) {
	if keyPath == "" {
		return New(), nil
	}

	return FromKeyFile(keyPath)
}
