package jwtx

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"

	"github.com/aussiebroadwan/labdash/pkg/cryptox"
)

// KeyManager owns the in-memory signing keys for session tokens.
//
// Keys are ephemeral: they are generated at startup and never persisted, so
// every session is invalidated by a restart. Users simply log in again.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
}

// KeyManagerOptions configures NewEphemeralKeyManager.
type KeyManagerOptions struct {
	Issuer string

	// NumKeys is clamped to [1, 10]; zero means 3.
	NumKeys int
}

// NewEphemeralKeyManager generates NumKeys Ed25519 signers with random kids.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	n := opts.NumKeys
	if n <= 0 {
		n = 3
	}
	n = min(n, 10)

	keyset := NewKeySet()
	signers := make([]Signer, 0, n)
	for i := range n {
		kid, err := randomKeyID()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key id: %w", err)
		}
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}
		s, err := NewSignerEdDSA(kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: load key %d: %w", i+1, err)
		}
		signers = append(signers, s)
		keyset.Add(s)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// Signer picks one of the signing keys at random.
func (km *KeyManager) Signer() Signer {
	return km.signers[mrand.IntN(len(km.signers))]
}

// NumSigners reports how many signing keys are loaded.
func (km *KeyManager) NumSigners() int { return len(km.signers) }

// Sign signs claims with a randomly chosen key.
func (km *KeyManager) Sign(c Claims) (string, error) {
	return km.Signer().Sign(c)
}

func randomKeyID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
