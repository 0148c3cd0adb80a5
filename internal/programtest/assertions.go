package programtest

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
)

// RequireAccountExists asserts that an account is registered at address.
func RequireAccountExists(t *testing.T, pt *ProgramTest, address solana.PublicKey) {
	t.Helper()
	require.True(t, pt.Exists(address),
		"Expected account %s to exist, but it does not", address)
}

// RequireAccountNotExists asserts that no account is registered at address.
func RequireAccountNotExists(t *testing.T, pt *ProgramTest, address solana.PublicKey) {
	t.Helper()
	require.False(t, pt.Exists(address),
		"Expected account %s to not exist, but it does", address)
}

// RequireLamports asserts that the account at address holds expected lamports.
func RequireLamports(t *testing.T, pt *ProgramTest, address solana.PublicKey, expected uint64) {
	t.Helper()
	RequireAccountExists(t, pt, address)
	actual := pt.Lamports(address)
	require.Equal(t, expected, actual,
		"Account %s balance mismatch: expected %d lamports, got %d lamports",
		address, expected, actual)
}

// RequireOwner asserts that the account at address is owned by expected.
func RequireOwner(t *testing.T, pt *ProgramTest, address, expected solana.PublicKey) {
	t.Helper()
	acc, ok := pt.Account(address)
	require.True(t, ok, "Expected account %s to exist, but it does not", address)
	require.Equal(t, expected, acc.Owner(),
		"Account %s owner mismatch: expected %s, got %s", address, expected, acc.Owner())
}

// RequireData asserts that the account at address holds exactly expected.
func RequireData(t *testing.T, pt *ProgramTest, address solana.PublicKey, expected []byte) {
	t.Helper()
	acc, ok := pt.Account(address)
	require.True(t, ok, "Expected account %s to exist, but it does not", address)
	require.Equal(t, expected, acc.Data(),
		"Account %s data mismatch", address)
}

// RequireEquivalent asserts that the account at address is logically equal
// to expected, whatever representation expected uses.
func RequireEquivalent(t *testing.T, pt *ProgramTest, address solana.PublicKey, expected readonly.Account) {
	t.Helper()
	acc, ok := pt.Account(address)
	require.True(t, ok, "Expected account %s to exist, but it does not", address)
	require.True(t, readonly.Equivalent(acc, expected),
		"Account %s mismatch: got %s", address, acc)
}
