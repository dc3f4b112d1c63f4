package public

import "github.com/ardanlabs/ledger/foundation/blockchain/database"

// newTx is what a client submits to add a transaction. Amount is a pointer
// so a missing amount can be told apart from an amount of zero.
type newTx struct {
	Sender    string  `json:"sender" validate:"required"`
	Recipient string  `json:"recipient" validate:"required"`
	Amount    *uint64 `json:"amount" validate:"required"`
}

type txAccepted struct {
	Message string `json:"message"`
	Index   uint64 `json:"index"`
}

type minedBlock struct {
	Message      string        `json:"message"`
	Index        uint64        `json:"index"`
	TimeStamp    uint64        `json:"timestamp"`
	Transactions []database.Tx `json:"transactions"`
	Proof        uint64        `json:"proof"`
	PrevHash     string        `json:"previous_hash"`
	Hash         string        `json:"hash"`
}

type registerNodes struct {
	Nodes []string `json:"nodes" validate:"required"`
}

type nodesRegistered struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

type resolved struct {
	Message  string           `json:"message"`
	Replaced bool             `json:"replaced"`
	Chain    []database.Block `json:"chain"`
	Length   int              `json:"length"`
}

type status struct {
	Message string `json:"message"`
}
