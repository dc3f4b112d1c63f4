package database

import (
	"errors"
	"fmt"
)

// RewardSender is the sender used for the transaction that pays the miner
// of a block. It marks value created by the system.
const RewardSender = "0"

// ErrInvalidTransaction is returned when a transaction is missing
// required information.
var ErrInvalidTransaction = errors.New("invalid transaction")

// =============================================================================

// Tx is the transactional information between two parties.
type Tx struct {
	Sender    string `json:"sender"`    // Identifier of the party sending value.
	Recipient string `json:"recipient"` // Identifier of the party receiving value.
	Amount    uint64 `json:"amount"`    // Value moved by this transaction.
}

// NewTx constructs a new transaction after validating it.
func NewTx(sender string, recipient string, amount uint64) (Tx, error) {
	tx := Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}

	if err := tx.Validate(); err != nil {
		return Tx{}, err
	}

	return tx, nil
}

// NewRewardTx constructs the transaction that pays the miner of a block.
func NewRewardTx(nodeID string, reward uint64) Tx {
	return Tx{
		Sender:    RewardSender,
		Recipient: nodeID,
		Amount:    reward,
	}
}

// Validate checks the transaction carries both parties. The amount can't be
// missing at this level, a zero amount is a legal transaction.
func (tx Tx) Validate() error {
	if tx.Sender == "" {
		return fmt.Errorf("%w: missing sender", ErrInvalidTransaction)
	}

	if tx.Recipient == "" {
		return fmt.Errorf("%w: missing recipient", ErrInvalidTransaction)
	}

	return nil
}

// IsReward reports whether this transaction pays a miner.
func (tx Tx) IsReward() bool {
	return tx.Sender == RewardSender
}

// String implements the Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%s:%d", tx.Sender, tx.Recipient, tx.Amount)
}
