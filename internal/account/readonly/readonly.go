// Package readonly defines the read-only account capabilities consumed by
// generic account-processing code.
//
// Each capability is its own interface so that a consumer can ask for only
// what it reads. Any value exposing the accessors can be used, no common base
// type is required: the heap-backed account.Account and the inline
// smallaccount.SmallAccount both satisfy Account.
package readonly

import (
	"bytes"
	"math"

	"github.com/gagliardetto/solana-go"
)

// RentExemptEpoch is the rent epoch assigned to rent-exempt accounts.
const RentExemptEpoch uint64 = math.MaxUint64

// Data exposes the account payload.
// The returned slice is a view and must not be modified by the caller.
type Data interface {
	Data() []byte
}

// IsExecutable exposes the executable flag.
type IsExecutable interface {
	Executable() bool
}

// Lamports exposes the account balance.
type Lamports interface {
	Lamports() uint64
}

// Owner exposes the owning program.
type Owner interface {
	Owner() solana.PublicKey
}

// RentEpoch exposes the rent epoch.
type RentEpoch interface {
	RentEpoch() uint64
}

// Account is the full read-only account capability set.
type Account interface {
	Data
	IsExecutable
	Lamports
	Owner
	RentEpoch
}

// Equivalent reports whether a and b hold the same logical account,
// regardless of how each one stores it.
func Equivalent(a, b Account) bool {
	return bytes.Equal(a.Data(), b.Data()) &&
		a.Lamports() == b.Lamports() &&
		a.RentEpoch() == b.RentEpoch() &&
		a.Owner() == b.Owner() &&
		a.Executable() == b.Executable()
}

// DataLen returns the payload length.
func DataLen(a Data) int {
	return len(a.Data())
}

// IsOwnedBy reports whether program owns the account.
func IsOwnedBy(a Owner, program solana.PublicKey) bool {
	return a.Owner() == program
}

// IsRentExempt reports whether the account carries the rent-exempt epoch.
func IsRentExempt(a RentEpoch) bool {
	return a.RentEpoch() == RentExemptEpoch
}
