// Package programtest provides test infrastructure for Solana program tests.
//
// It follows the shape of a jtx-style test environment: a ProgramTest holds
// the accounts a test starts from, and fluent methods register them one
// after another.
//
// # Basic Usage
//
//	func TestDeposit(t *testing.T) {
//	    alice := programtest.NewKeypair("alice")
//	    pool := smallaccount.MustNew(smallaccount.TryNewParams{
//	        Data:  []byte{1, 0, 0, 0},
//	        Owner: poolProgramID,
//	    })
//
//	    pt := programtest.New(t).
//	        Fund(alice, programtest.SOL(10)).
//	        AddReadonlyAccount(poolAddress, &pool).
//	        AddAccountFromFile("testdata/usdc_mint.json")
//
//	    programtest.RequireLamports(t, pt, alice.PublicKey, programtest.SOL(10))
//	}
//
// # Registering Accounts
//
// Every method consumes the ProgramTest and returns it, so calls chain:
//
//	pt.AddAccountChained(address, acc)     // raw (address, account) pair
//	pt.AddKeyedAccount(keyed)              // account.KeyedAccount
//	pt.AddKeyedUIAccount(uiKeyed)          // JSON-shaped account
//	pt.AddAccountFromFile(path)            // JSON fixture on disk
//	pt.AddAccountsFromDir(dir)             // every *.json in dir
//	pt.AddReadonlyAccount(address, small)  // any readonly.Account
//
// Registering an address twice replaces the earlier account. Conversion and
// file errors fail the test immediately.
//
// # Keypairs
//
// NewKeypair derives an ed25519 keypair from a name. The same name always
// yields the same keypair, so tests are reproducible.
//
//	alice := programtest.NewKeypair("alice")
//	alice.PublicKey   // solana.PublicKey
//	alice.PrivateKey  // solana.PrivateKey
//
// # Assertions
//
//	programtest.RequireAccountExists(t, pt, address)
//	programtest.RequireLamports(t, pt, address, programtest.SOL(1))
//	programtest.RequireOwner(t, pt, address, solana.TokenProgramID)
//	programtest.RequireData(t, pt, address, []byte{1, 2, 3})
//	programtest.RequireEquivalent(t, pt, address, &small)
package programtest
