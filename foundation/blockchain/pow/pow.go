// Package pow implements the proof of work puzzle used to forge new blocks.
//
// The puzzle: given the proof and hash of the previous block, find a number p
// such that sha256("{lastProof}{p}{lastHash}") starts with Difficulty zeros.
// The difficulty is fixed and never adjusts.
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Difficulty represents the number of leading hex zeros a solution needs.
const Difficulty = 4

// reportEvery is the number of attempts between progress events.
const reportEvery = 1_000_000

// prefix is what a solved hash must start with.
var prefix = strings.Repeat("0", Difficulty)

// =============================================================================

// Solve searches for the smallest proof that solves the puzzle for the
// specified previous proof and hash. The search only stops early if the
// context is cancelled.
func Solve(ctx context.Context, lastProof uint64, lastHash string, ev func(v string, args ...any)) (uint64, error) {
	ev("pow: Solve: MINING: started: lastProof[%d]: lastHash[%s]", lastProof, lastHash)
	defer ev("pow: Solve: MINING: completed")

	var proof uint64
	for {
		if proof > 0 && proof%reportEvery == 0 {
			ev("pow: Solve: MINING: attempts[%d]", proof)

			// Did we get asked to stop trying to solve the problem.
			if err := ctx.Err(); err != nil {
				ev("pow: Solve: MINING: CANCELLED")
				return 0, err
			}
		}

		if IsValid(lastProof, proof, lastHash) {
			ev("pow: Solve: MINING: SOLVED: proof[%d]", proof)
			return proof, nil
		}

		proof++
	}
}

// IsValid checks the proof solves the puzzle against the previous block's
// proof and hash. This is the same check the miner and chain validation use.
func IsValid(lastProof uint64, proof uint64, lastHash string) bool {
	return strings.HasPrefix(Hash(lastProof, proof, lastHash), prefix)
}

// Hash returns the hex encoded hash of the guess for the puzzle.
func Hash(lastProof uint64, proof uint64, lastHash string) string {
	guess := make([]byte, 0, 40+len(lastHash))
	guess = strconv.AppendUint(guess, lastProof, 10)
	guess = strconv.AppendUint(guess, proof, 10)
	guess = append(guess, lastHash...)

	hash := sha256.Sum256(guess)
	return hex.EncodeToString(hash[:])
}
