package programtest

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/LeJamon/goSolTestUtils/internal/account"
	"github.com/LeJamon/goSolTestUtils/internal/account/readonly"
	"github.com/LeJamon/goSolTestUtils/internal/account/uiaccount"
)

// ProgramTest holds the accounts a program test starts from.
// It is not safe for concurrent use.
type ProgramTest struct {
	t        testing.TB
	accounts map[solana.PublicKey]*account.Account

	loader *uiaccount.Loader
	logger *zap.Logger
}

// Option configures a ProgramTest.
type Option func(*ProgramTest)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *zap.Logger) Option {
	return func(p *ProgramTest) {
		p.logger = logger
	}
}

// WithLoader shares a fixture loader, and its cache, between tests.
func WithLoader(loader *uiaccount.Loader) Option {
	return func(p *ProgramTest) {
		p.loader = loader
	}
}

// New creates an empty test environment.
func New(t testing.TB, opts ...Option) *ProgramTest {
	t.Helper()

	p := &ProgramTest{
		t:        t,
		accounts: make(map[solana.PublicKey]*account.Account),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.loader == nil {
		loader, err := uiaccount.NewLoader(uiaccount.LoaderConfig{Logger: p.logger})
		if err != nil {
			t.Fatalf("Failed to create fixture loader: %v", err)
		}
		p.loader = loader
	}

	return p
}

// AddAccount registers acc at address. The account is copied, and a later
// registration of the same address replaces it.
func (p *ProgramTest) AddAccount(address solana.PublicKey, acc *account.Account) {
	p.t.Helper()
	if acc == nil {
		p.t.Fatalf("Failed to add account %s: account is nil", address)
		return
	}
	if _, exists := p.accounts[address]; exists {
		p.logger.Debug("replacing account", zap.Stringer("address", address))
	}
	p.accounts[address] = acc.Clone()
	p.logger.Debug("account added",
		zap.Stringer("address", address),
		zap.Stringer("owner", acc.Owner()),
		zap.Uint64("lamports", acc.Lamports()),
		zap.Int("data_len", len(acc.Data())),
	)
}

// AddAccountChained is AddAccount returning p for chaining.
func (p *ProgramTest) AddAccountChained(address solana.PublicKey, acc *account.Account) *ProgramTest {
	p.AddAccount(address, acc)
	return p
}

// AddKeyedAccount registers an (address, account) pair.
func (p *ProgramTest) AddKeyedAccount(keyed account.KeyedAccount) *ProgramTest {
	return p.AddAccountChained(keyed.Pubkey, keyed.Account)
}

// AddKeyedUIAccount decodes and registers a JSON-shaped account.
func (p *ProgramTest) AddKeyedUIAccount(keyed uiaccount.KeyedUIAccount) *ProgramTest {
	p.t.Helper()
	ka, err := keyed.ToKeyedAccount()
	if err != nil {
		p.t.Fatalf("Failed to decode account %s: %v", keyed.Pubkey, err)
		return p
	}
	return p.AddKeyedAccount(ka)
}

// AddAccountFromFile loads and registers the account fixture at path.
func (p *ProgramTest) AddAccountFromFile(path string) *ProgramTest {
	p.t.Helper()
	keyed, err := p.loader.Load(path)
	if err != nil {
		p.t.Fatalf("Failed to load account fixture %s: %v", path, err)
		return p
	}
	return p.AddKeyedUIAccount(keyed)
}

// AddAccountsFromDir registers every *.json fixture in dir.
func (p *ProgramTest) AddAccountsFromDir(dir string) *ProgramTest {
	p.t.Helper()
	fixtures, err := p.loader.LoadDir(context.Background(), dir)
	if err != nil {
		p.t.Fatalf("Failed to load account fixtures from %s: %v", dir, err)
		return p
	}
	for _, f := range fixtures {
		p.AddKeyedUIAccount(f.Account)
	}
	return p
}

// AddReadonlyAccount registers any read-only account, such as a
// smallaccount.SmallAccount, at address.
func (p *ProgramTest) AddReadonlyAccount(address solana.PublicKey, acc readonly.Account) *ProgramTest {
	p.t.Helper()
	if acc == nil {
		p.t.Fatalf("Failed to add account %s: account is nil", address)
		return p
	}
	return p.AddAccountChained(address, account.FromReadonly(acc))
}

// Fund registers a system-owned wallet for kp holding lamports.
func (p *ProgramTest) Fund(kp *Keypair, lamports uint64) *ProgramTest {
	return p.AddAccountChained(kp.PublicKey, SystemAccount(lamports))
}

// Account returns a copy of the account registered at address.
func (p *ProgramTest) Account(address solana.PublicKey) (*account.Account, bool) {
	acc, ok := p.accounts[address]
	if !ok {
		return nil, false
	}
	return acc.Clone(), true
}

// Exists reports whether an account is registered at address.
func (p *ProgramTest) Exists(address solana.PublicKey) bool {
	_, ok := p.accounts[address]
	return ok
}

// Lamports returns the balance at address, or 0 if nothing is registered.
func (p *ProgramTest) Lamports(address solana.PublicKey) uint64 {
	if acc, ok := p.accounts[address]; ok {
		return acc.Lamports()
	}
	return 0
}

// Len returns the number of registered accounts.
func (p *ProgramTest) Len() int {
	return len(p.accounts)
}

// KeyedAccounts returns every registered account ordered by address bytes.
func (p *ProgramTest) KeyedAccounts() []account.KeyedAccount {
	keyed := make([]account.KeyedAccount, 0, len(p.accounts))
	for address, acc := range p.accounts {
		keyed = append(keyed, account.KeyedAccount{Pubkey: address, Account: acc})
	}
	sort.Slice(keyed, func(i, j int) bool {
		return bytes.Compare(keyed[i].Pubkey[:], keyed[j].Pubkey[:]) < 0
	})
	return keyed
}
