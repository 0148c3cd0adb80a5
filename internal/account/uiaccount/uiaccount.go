// Package uiaccount reads and writes account fixtures in the JSON shape
// printed by `solana account --output json`:
//
//	{
//	  "pubkey": "<base58>",
//	  "account": {
//	    "lamports": 1461600,
//	    "data": ["<payload>", "base64"],
//	    "owner": "<base58>",
//	    "executable": false,
//	    "rentEpoch": 18446744073709551615,
//	    "space": 82
//	  }
//	}
//
// The payload may be encoded as base58, base64 or base64+zstd. A bare string
// is the legacy base58 form. jsonParsed payloads cannot be turned back into
// bytes and are rejected.
package uiaccount

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"

	"github.com/LeJamon/goSolTestUtils/internal/account"
)

// MaxAccountDataLen is the largest payload a fixture may decode to (10 MiB).
const MaxAccountDataLen = 10 * 1024 * 1024

var (
	// ErrUnsupportedEncoding is returned for payload encodings that cannot
	// be decoded into raw bytes.
	ErrUnsupportedEncoding = errors.New("unsupported account data encoding")

	// ErrSpaceMismatch is returned when the declared space differs from the
	// decoded payload length.
	ErrSpaceMismatch = errors.New("account space does not match data length")

	// ErrDataTooLarge is returned when a payload exceeds MaxAccountDataLen.
	ErrDataTooLarge = errors.New("account data exceeds maximum length")
)

// UIAccount is the JSON form of an account.
type UIAccount struct {
	Lamports   uint64  `json:"lamports"`
	Data       UIData  `json:"data"`
	Owner      string  `json:"owner"`
	Executable bool    `json:"executable"`
	RentEpoch  uint64  `json:"rentEpoch"`
	Space      *uint64 `json:"space,omitempty"`
}

// KeyedUIAccount is the JSON form of an (address, account) pair.
type KeyedUIAccount struct {
	Pubkey  string    `json:"pubkey"`
	Account UIAccount `json:"account"`
}

// ToAccount decodes a into an account.Account.
func (a UIAccount) ToAccount() (*account.Account, error) {
	owner, err := solana.PublicKeyFromBase58(a.Owner)
	if err != nil {
		return nil, fmt.Errorf("invalid owner %q: %w", a.Owner, err)
	}
	data, err := a.Data.Decode()
	if err != nil {
		return nil, err
	}
	if a.Space != nil && *a.Space != uint64(len(data)) {
		return nil, fmt.Errorf("%w: space %d, data %d bytes", ErrSpaceMismatch, *a.Space, len(data))
	}
	return account.New(account.Params{
		Data:       data,
		Lamports:   a.Lamports,
		RentEpoch:  a.RentEpoch,
		Owner:      owner,
		Executable: a.Executable,
	}), nil
}

// ToKeyedAccount decodes k into an account.KeyedAccount.
func (k KeyedUIAccount) ToKeyedAccount() (account.KeyedAccount, error) {
	pubkey, err := solana.PublicKeyFromBase58(k.Pubkey)
	if err != nil {
		return account.KeyedAccount{}, fmt.Errorf("invalid pubkey %q: %w", k.Pubkey, err)
	}
	acc, err := k.Account.ToAccount()
	if err != nil {
		return account.KeyedAccount{}, fmt.Errorf("account %s: %w", k.Pubkey, err)
	}
	return account.KeyedAccount{Pubkey: pubkey, Account: acc}, nil
}

// FromKeyedAccount encodes ka into its JSON form using enc for the payload.
func FromKeyedAccount(ka account.KeyedAccount, enc Encoding) (KeyedUIAccount, error) {
	data, err := EncodeData(ka.Account.Data(), enc)
	if err != nil {
		return KeyedUIAccount{}, err
	}
	space := uint64(len(ka.Account.Data()))
	return KeyedUIAccount{
		Pubkey: ka.Pubkey.String(),
		Account: UIAccount{
			Lamports:   ka.Account.Lamports(),
			Data:       data,
			Owner:      ka.Account.Owner().String(),
			Executable: ka.Account.Executable(),
			RentEpoch:  ka.Account.RentEpoch(),
			Space:      &space,
		},
	}, nil
}

// FromFile reads a keyed account fixture from path.
func FromFile(path string) (KeyedUIAccount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return KeyedUIAccount{}, fmt.Errorf("failed to read fixture: %w", err)
	}
	var k KeyedUIAccount
	if err := json.Unmarshal(raw, &k); err != nil {
		return KeyedUIAccount{}, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return k, nil
}

// WriteFile writes k to path as indented JSON.
func WriteFile(path string, k KeyedUIAccount) error {
	raw, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	return nil
}
