package programtest

import (
	"crypto/ed25519"
	"crypto/sha512"

	"github.com/gagliardetto/solana-go"
)

// Keypair is a deterministic test keypair.
type Keypair struct {
	// Name is a human-readable identifier (used for debugging).
	Name string

	// PrivateKey is the 64-byte ed25519 private key.
	PrivateKey solana.PrivateKey

	// PublicKey is the account address.
	PublicKey solana.PublicKey
}

// NewKeypair creates a keypair derived from the name.
// Using the same name will always produce the same keypair.
func NewKeypair(name string) *Keypair {
	// Seed is the first 32 bytes of SHA512(name)
	hash := sha512.Sum512([]byte(name))
	priv := solana.PrivateKey(ed25519.NewKeyFromSeed(hash[:ed25519.SeedSize]))

	return &Keypair{
		Name:       name,
		PrivateKey: priv,
		PublicKey:  priv.PublicKey(),
	}
}

// String implements the Stringer interface for debugging.
func (k *Keypair) String() string {
	return k.Name + " (" + k.PublicKey.String() + ")"
}
