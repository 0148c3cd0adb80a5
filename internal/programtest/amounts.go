package programtest

import (
	"github.com/gagliardetto/solana-go"

	"github.com/LeJamon/goSolTestUtils/internal/account"
	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

// SOL converts a SOL amount to lamports.
// For example, SOL(2) returns 2,000,000,000 lamports.
func SOL(n uint64) uint64 {
	return n * LamportsPerSOL
}

// Lamports returns the lamport amount unchanged.
// This is a convenience function for clarity when specifying amounts in lamports.
func Lamports(n uint64) uint64 {
	return n
}

// SystemAccount returns a rent-exempt, data-less account owned by the
// system program, the shape of a plain wallet.
func SystemAccount(lamports uint64) *account.Account {
	return account.New(account.Params{
		Lamports:  lamports,
		Owner:     solana.SystemProgramID,
		RentEpoch: readonly.RentExemptEpoch,
	})
}
