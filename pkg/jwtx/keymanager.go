package jwtx

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/wgchat/pkg/cryptox"
)

// signingPurpose binds derived signing keys to this use.
const signingPurpose = "wgchat/jwt-signing/v1"

// KeyManager owns the signing keys of an instance and the KeySet that
// verifies them.
type KeyManager struct {
	KeySet *KeySet

	mu      sync.RWMutex
	signers []Signer
}

// KeyManagerOptions configures an ephemeral KeyManager.
type KeyManagerOptions struct {
	// NumKeys is how many signing keys to generate. Defaults to 1, capped
	// at 10.
	NumKeys int
}

// NewEphemeralKeyManager creates signing keys that only exist in memory.
// Outstanding tokens stop verifying when the process exits.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	n := min(max(opts.NumKeys, 1), 10)

	km := &KeyManager{KeySet: NewKeySet()}
	for i := range n {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}
		if err := km.addPEM(pemKey); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// NewSeededKeyManager derives a single signing key from secret. Every
// instance given the same secret signs and verifies with the same key.
func NewSeededKeyManager(secret []byte) (*KeyManager, error) {
	pemKey, err := cryptox.DeriveEd25519Key(secret, signingPurpose)
	if err != nil {
		return nil, fmt.Errorf("jwtx: derive signing key: %w", err)
	}

	km := &KeyManager{KeySet: NewKeySet()}
	if err := km.addPEM(pemKey); err != nil {
		return nil, err
	}
	return km, nil
}

func (km *KeyManager) addPEM(pemKey []byte) error {
	// Load once with a placeholder kid to learn the public key, then name
	// the key after it so the kid is stable for derived keys.
	probe, err := NewSignerEdDSA("", pemKey)
	if err != nil {
		return err
	}

	signer, err := NewSignerEdDSA(keyID(probe.pub), pemKey)
	if err != nil {
		return err
	}
	return km.AddSigner(signer)
}

// keyID is a short fingerprint of the public key.
func keyID(pub []byte) string {
	sum := sha256.Sum256(pub)
	return "wgchat-" + base64.RawURLEncoding.EncodeToString(sum[:9])
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// GetSigner returns one of the active signers, picked at random.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	default:
		return km.signers[rand.IntN(len(km.signers))]
	}
}

// NumSigners returns the number of active signing keys.
func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// AddSigner adds a signing key and publishes its verification key.
func (km *KeyManager) AddSigner(signer Signer) error {
	if signer == nil {
		return fmt.Errorf("jwtx: signer cannot be nil")
	}
	if err := signer.Validate(); err != nil {
		return err
	}

	km.mu.Lock()
	defer km.mu.Unlock()

	if err := km.KeySet.AddSigner(signer); err != nil {
		return fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}
	km.signers = append(km.signers, signer)
	return nil
}
