package readonly_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/LeJamon/goSolTestUtils/internal/account"
	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
	"github.com/LeJamon/goSolTestUtils/internal/account/smallaccount"
)

// stubAccount satisfies Account without sharing a type with the real ones.
type stubAccount struct {
	data      []byte
	lamports  uint64
	owner     solana.PublicKey
	exec      bool
	rentEpoch uint64
}

func (s stubAccount) Data() []byte            { return s.data }
func (s stubAccount) Executable() bool        { return s.exec }
func (s stubAccount) Lamports() uint64        { return s.lamports }
func (s stubAccount) Owner() solana.PublicKey { return s.owner }
func (s stubAccount) RentEpoch() uint64       { return s.rentEpoch }

func TestEquivalentAcrossRepresentations(t *testing.T) {
	p := account.Params{
		Data:      []byte{1, 2, 3},
		Lamports:  100,
		RentEpoch: 5,
		Owner:     solana.SystemProgramID,
	}
	heap := account.New(p)
	small := smallaccount.MustNew(smallaccount.TryNewParams(p))
	stub := stubAccount{data: []byte{1, 2, 3}, lamports: 100, owner: solana.SystemProgramID, rentEpoch: 5}

	assert.True(t, readonly.Equivalent(heap, &small))
	assert.True(t, readonly.Equivalent(&small, stub))

	stub.exec = true
	assert.False(t, readonly.Equivalent(heap, stub))
}

func TestHelpers(t *testing.T) {
	a := stubAccount{data: []byte("abcd"), owner: solana.TokenProgramID, rentEpoch: readonly.RentExemptEpoch}

	assert.Equal(t, 4, readonly.DataLen(a))
	assert.True(t, readonly.IsOwnedBy(a, solana.TokenProgramID))
	assert.False(t, readonly.IsOwnedBy(a, solana.SystemProgramID))
	assert.True(t, readonly.IsRentExempt(a))

	a.rentEpoch = 0
	assert.False(t, readonly.IsRentExempt(a))
}
