// Package genesis maintains access to the genesis information.
package genesis

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

// ErrNoReward is returned when a genesis file sets a mining reward of zero.
var ErrNoReward = errors.New("genesis: mining reward must be at least 1")

// Genesis represents the genesis information for the chain.
type Genesis struct {
	Date         time.Time `json:"date"`
	Proof        uint64    `json:"proof"`         // The free proof assigned to the genesis block.
	PrevHash     string    `json:"previous_hash"` // Sentinel standing in for the missing previous block hash.
	MiningReward uint64    `json:"mining_reward"` // Reward for mining a block.
}

// Default returns the genesis information used when no genesis file
// is provided. The date is the time of the call.
func Default() Genesis {
	return Genesis{
		Date:         time.Now().UTC(),
		Proof:        100,
		PrevHash:     "1",
		MiningReward: 1,
	}
}

// =============================================================================

// Load opens and consumes the genesis file. Values missing from the file
// fall back to the defaults. Nodes that load the same file produce the same
// genesis block.
func Load(path string) (Genesis, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	genesis := Default()
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	if genesis.MiningReward == 0 {
		return Genesis{}, ErrNoReward
	}

	return genesis, nil
}
