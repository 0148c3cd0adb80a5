package smallaccount

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goSolTestUtils/internal/account"
	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
)

var testOwner = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

func params(data []byte) TryNewParams {
	return TryNewParams{
		Data:       data,
		Lamports:   100,
		RentEpoch:  5,
		Owner:      testOwner,
		Executable: false,
	}
}

func TestTryNewCapacityBoundary(t *testing.T) {
	tests := []struct {
		name    string
		dataLen int
		wantErr error
	}{
		{"empty", 0, nil},
		{"one byte", 1, nil},
		{"exactly max", MaxDataLen, nil},
		{"one over max", MaxDataLen + 1, ErrDataTooLong},
		{"far over max", 1024, ErrDataTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{0xAB}, tt.dataLen)
			a, err := TryNew(params(data))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, SmallAccount{}, a, "no partial value on failure")
				return
			}
			require.NoError(t, err)
			assert.Len(t, a.DataSlice(), tt.dataLen)
			assert.Equal(t, data, a.DataSlice())
		})
	}
}

func TestTryNewScenario(t *testing.T) {
	a, err := TryNew(params([]byte{1, 2, 3}))
	require.NoError(t, err)

	assert.Equal(t, []byte{1, 2, 3}, a.DataSlice())
	assert.Equal(t, []byte{1, 2, 3}, a.Data())
	assert.Equal(t, uint64(100), a.Lamports())
	assert.Equal(t, uint64(5), a.RentEpoch())
	assert.Equal(t, testOwner, a.Owner())
	assert.False(t, a.Executable())
}

func TestTryNewSixteenBytes(t *testing.T) {
	_, err := TryNew(params(make([]byte, 16)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataTooLong))
	assert.Equal(t, "account data too long", err.Error())
}

func TestTryNewCopiesInput(t *testing.T) {
	data := []byte{9, 8, 7}
	a, err := TryNew(params(data))
	require.NoError(t, err)

	data[0] = 0
	assert.Equal(t, []byte{9, 8, 7}, a.DataSlice())
}

func TestDataSliceNeverExceedsLen(t *testing.T) {
	a := MustNew(params([]byte{1, 2}))
	s := a.DataSlice()
	assert.Len(t, s, 2)
	assert.Equal(t, 2, cap(s), "capacity is clipped so appends cannot reach the padding")

	_ = append(s, 0xFF)
	assert.Equal(t, byte(0), a.data[2])
}

func TestEmptyAccount(t *testing.T) {
	a := MustNew(params(nil))
	assert.Empty(t, a.DataSlice())
	assert.Equal(t, 0, readonly.DataLen(&a))
}

func TestPaddingIrrelevance(t *testing.T) {
	a := MustNew(params([]byte{1, 2, 3}))
	b := MustNew(params([]byte{1, 2, 3}))

	for i := 3; i < MaxDataLen; i++ {
		b.data[i] = byte(0xF0 + i)
	}
	require.NotEqual(t, a.data, b.data, "physical buffers differ")

	assert.True(t, a.Equal(&b))
	assert.True(t, b.Equal(&a))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestPaddingIrrelevanceEmptyPayload(t *testing.T) {
	a := MustNew(params(nil))
	b := MustNew(params(nil))
	b.data = [MaxDataLen]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	assert.True(t, a.Equal(&b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestMetadataDivergence(t *testing.T) {
	base := params([]byte{4, 5, 6})
	a := MustNew(base)

	otherOwner := solana.SystemProgramID
	tests := []struct {
		name   string
		mutate func(p *TryNewParams)
	}{
		{"lamports", func(p *TryNewParams) { p.Lamports++ }},
		{"rent epoch", func(p *TryNewParams) { p.RentEpoch++ }},
		{"owner", func(p *TryNewParams) { p.Owner = otherOwner }},
		{"executable", func(p *TryNewParams) { p.Executable = !p.Executable }},
		{"data", func(p *TryNewParams) { p.Data = []byte{4, 5, 7} }},
		{"data length", func(p *TryNewParams) { p.Data = []byte{4, 5} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			b := MustNew(p)
			assert.False(t, a.Equal(&b))
			assert.False(t, b.Equal(&a))
		})
	}
}

func TestHashDistinguishesLengthPrefix(t *testing.T) {
	// Trailing zero bytes in the payload are significant even though
	// padding is zero as well.
	a := MustNew(params([]byte{1}))
	b := MustNew(params([]byte{1, 0}))
	assert.False(t, a.Equal(&b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(params(make([]byte, MaxDataLen+1)))
	})
}

func TestFromReadonly(t *testing.T) {
	heap := account.New(account.Params{
		Data:       []byte("hello"),
		Lamports:   42,
		RentEpoch:  readonly.RentExemptEpoch,
		Owner:      testOwner,
		Executable: true,
	})

	small, err := FromReadonly(heap)
	require.NoError(t, err)
	assert.True(t, readonly.Equivalent(heap, &small))
	assert.True(t, readonly.IsRentExempt(&small))

	back := small.ToAccount()
	assert.True(t, readonly.Equivalent(heap, back))

	big := account.New(account.Params{Data: make([]byte, 200), Owner: testOwner})
	_, err = FromReadonly(big)
	assert.ErrorIs(t, err, ErrDataTooLong)
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(0))
	assert.True(t, Fits(MaxDataLen))
	assert.False(t, Fits(MaxDataLen+1))
	assert.False(t, Fits(-1))
}

func TestString(t *testing.T) {
	a := MustNew(params([]byte{0xde, 0xad}))
	assert.Contains(t, a.String(), "data: dead")
	assert.Contains(t, a.String(), testOwner.String())
}

func TestLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout check assumes a 64-bit platform")
	}
	var a SmallAccount
	assert.Equal(t, uintptr(0), unsafe.Offsetof(a.data))
	assert.Equal(t, uintptr(MaxDataLen), unsafe.Offsetof(a.len))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(a.lamports))
	assert.Equal(t, uintptr(8), unsafe.Alignof(a))
	assert.Equal(t, uintptr(72), unsafe.Sizeof(a))
}
