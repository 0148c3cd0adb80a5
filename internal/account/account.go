// Package account provides the heap-backed account representation and the
// keyed (address, account) pair used to register fixtures.
package account

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
)

// Params bundles the fields of a new account.
type Params struct {
	Data       []byte
	Lamports   uint64
	RentEpoch  uint64
	Owner      solana.PublicKey
	Executable bool
}

// Account is an account whose payload lives in its own heap buffer.
// It is immutable once built; use Clone to derive a modified copy.
type Account struct {
	data       []byte
	lamports   uint64
	rentEpoch  uint64
	owner      solana.PublicKey
	executable bool
}

var _ readonly.Account = (*Account)(nil)

// New creates an account from p. The data is copied.
func New(p Params) *Account {
	data := make([]byte, len(p.Data))
	copy(data, p.Data)
	return &Account{
		data:       data,
		lamports:   p.Lamports,
		rentEpoch:  p.RentEpoch,
		owner:      p.Owner,
		executable: p.Executable,
	}
}

// FromReadonly materializes any read-only account into an Account.
func FromReadonly(a readonly.Account) *Account {
	return New(Params{
		Data:       a.Data(),
		Lamports:   a.Lamports(),
		RentEpoch:  a.RentEpoch(),
		Owner:      a.Owner(),
		Executable: a.Executable(),
	})
}

// Data returns the account payload without copying it. The slice aliases
// the account and must not be modified; use Clone for a private copy.
func (a *Account) Data() []byte {
	return a.data[:len(a.data):len(a.data)]
}

// Executable reports whether the account holds a loaded program.
func (a *Account) Executable() bool {
	return a.executable
}

// Lamports returns the account balance.
func (a *Account) Lamports() uint64 {
	return a.lamports
}

// Owner returns the program that owns the account.
func (a *Account) Owner() solana.PublicKey {
	return a.owner
}

// RentEpoch returns the epoch at which rent is next due.
func (a *Account) RentEpoch() uint64 {
	return a.rentEpoch
}

// Params returns the fields of a as construction parameters.
// The returned Data aliases the account's buffer.
func (a *Account) Params() Params {
	return Params{
		Data:       a.data,
		Lamports:   a.lamports,
		RentEpoch:  a.rentEpoch,
		Owner:      a.owner,
		Executable: a.executable,
	}
}

// Clone returns a deep copy of a.
func (a *Account) Clone() *Account {
	return New(a.Params())
}

// String implements fmt.Stringer for debugging.
func (a *Account) String() string {
	return fmt.Sprintf("Account{lamports: %d, data_len: %d, owner: %s, executable: %t, rent_epoch: %d}",
		a.lamports, len(a.data), a.owner, a.executable, a.rentEpoch)
}

// KeyedAccount pairs an account with its address.
type KeyedAccount struct {
	Pubkey  solana.PublicKey
	Account *Account
}
