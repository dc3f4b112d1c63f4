// Package digest provides the content addressing used by the blockchain.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ZeroHash represents a hash code of zeros. It is what Sum returns for a
// value that can't be marshaled, and it is never the hash of a real block.
const ZeroHash string = "0000000000000000000000000000000000000000000000000000000000000000"

// Sum returns the hex encoded SHA-256 hash of the JSON form of the value.
// The caller is responsible for handing in a value whose JSON form is
// canonical, meaning a struct whose fields are declared in key order.
func Sum(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	return SumBytes(data)
}

// SumBytes returns the hex encoded SHA-256 hash of the data.
func SumBytes(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
