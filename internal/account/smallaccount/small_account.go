// Package smallaccount provides SmallAccount, an account that stores payloads
// of at most MaxDataLen bytes inline instead of in a separate heap buffer.
//
// Only the first len bytes of the inline buffer are meaningful. Equality,
// hashing and the data view all ignore the bytes past len, so two accounts
// with the same logical contents compare and hash alike whatever their
// padding holds. Compare with Equal, never with ==.
package smallaccount

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/gagliardetto/solana-go"

	"github.com/LeJamon/goSolTestUtils/internal/account"
	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
)

// MaxDataLen is the inline payload capacity in bytes.
const MaxDataLen = 15

// ErrDataTooLong is returned when a payload exceeds MaxDataLen.
var ErrDataTooLong = errors.New("account data too long")

// SmallAccount is an account with an inline payload of up to MaxDataLen bytes.
//
// data is the first field so that data and len pack into the first 8-byte
// word and the struct keeps the alignment of its uint64 fields.
type SmallAccount struct {
	data       [MaxDataLen]byte
	len        uint8
	lamports   uint64
	rentEpoch  uint64
	owner      solana.PublicKey
	executable bool
}

var _ readonly.Account = (*SmallAccount)(nil)

// TryNewParams bundles the fields of a new SmallAccount.
type TryNewParams struct {
	Data       []byte
	Lamports   uint64
	RentEpoch  uint64
	Owner      solana.PublicKey
	Executable bool
}

// Fits reports whether a payload of n bytes can be stored inline.
func Fits(n int) bool {
	return n >= 0 && n <= MaxDataLen
}

// TryNew builds a SmallAccount from p. It returns ErrDataTooLong, and the
// zero value, if p.Data does not fit.
func TryNew(p TryNewParams) (SmallAccount, error) {
	if !Fits(len(p.Data)) {
		return SmallAccount{}, ErrDataTooLong
	}
	a := SmallAccount{
		len:        uint8(len(p.Data)),
		lamports:   p.Lamports,
		rentEpoch:  p.RentEpoch,
		owner:      p.Owner,
		executable: p.Executable,
	}
	copy(a.data[:], p.Data)
	return a, nil
}

// MustNew is like TryNew but panics if p.Data does not fit.
// It is meant for package-level fixtures.
func MustNew(p TryNewParams) SmallAccount {
	a, err := TryNew(p)
	if err != nil {
		panic(fmt.Sprintf("smallaccount: %v (%d > %d bytes)", err, len(p.Data), MaxDataLen))
	}
	return a
}

// FromReadonly copies any read-only account into a SmallAccount.
func FromReadonly(src readonly.Account) (SmallAccount, error) {
	return TryNew(TryNewParams{
		Data:       src.Data(),
		Lamports:   src.Lamports(),
		RentEpoch:  src.RentEpoch(),
		Owner:      src.Owner(),
		Executable: src.Executable(),
	})
}

// DataSlice returns the logical payload without copying it.
// The slice aliases the account and must not be modified.
func (a *SmallAccount) DataSlice() []byte {
	return a.data[:a.len:a.len]
}

// Data is DataSlice, satisfying readonly.Data.
func (a *SmallAccount) Data() []byte {
	return a.DataSlice()
}

// Executable reports whether the account holds a loaded program.
func (a *SmallAccount) Executable() bool {
	return a.executable
}

// Lamports returns the account balance.
func (a *SmallAccount) Lamports() uint64 {
	return a.lamports
}

// Owner returns the program that owns the account.
func (a *SmallAccount) Owner() solana.PublicKey {
	return a.owner
}

// RentEpoch returns the epoch at which rent is next due.
func (a *SmallAccount) RentEpoch() uint64 {
	return a.rentEpoch
}

// Equal reports whether a and b hold the same payload and metadata.
func (a *SmallAccount) Equal(b *SmallAccount) bool {
	return bytes.Equal(a.DataSlice(), b.DataSlice()) &&
		a.lamports == b.lamports &&
		a.rentEpoch == b.rentEpoch &&
		a.owner == b.owner &&
		a.executable == b.executable
}

// WriteHash feeds the logical contents of a into h, in the same field order
// Equal compares them. The payload is length-prefixed.
func (a *SmallAccount) WriteHash(h hash.Hash) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(a.len))
	h.Write(buf[:])
	h.Write(a.DataSlice())
	binary.LittleEndian.PutUint64(buf[:], a.lamports)
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], a.rentEpoch)
	h.Write(buf[:])
	h.Write(a.owner[:])
	if a.executable {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}

// Hash returns the xxhash64 digest of WriteHash. Equal accounts always
// hash alike.
func (a *SmallAccount) Hash() uint64 {
	d := xxhash.New()
	a.WriteHash(d)
	return d.Sum64()
}

// ToAccount copies a into a heap-backed account.
func (a *SmallAccount) ToAccount() *account.Account {
	return account.FromReadonly(a)
}

// String implements fmt.Stringer for debugging.
func (a *SmallAccount) String() string {
	return fmt.Sprintf("SmallAccount{data: %x, lamports: %d, rent_epoch: %d, owner: %s, executable: %t}",
		a.DataSlice(), a.lamports, a.rentEpoch, a.owner, a.executable)
}
