// Package pake wraps the OPAQUE asymmetric PAKE. The rest of the service
// only ever sees opaque byte strings; the group, hash and key stretching
// choices live here.
package pake

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/bytemare/opaque"
)

const setupVersion = "v1"

var (
	// ErrNotConfigured means the server has no setup to answer with.
	ErrNotConfigured = errors.New("pake: server setup not configured")
	ErrInvalidSetup  = errors.New("pake: invalid server setup")
	ErrMalformed     = errors.New("pake: malformed protocol message")
	// ErrAuthentication covers every failure of the key exchange itself,
	// including a wrong password.
	ErrAuthentication = errors.New("pake: authentication failed")
)

// Setup is the long-lived server secret: its AKE key pair and the OPRF
// seed. Losing or rotating it invalidates every stored envelope.
type Setup struct {
	PrivateKey []byte
	PublicKey  []byte
	OPRFSeed   []byte
}

// GenerateSetup creates fresh server key material.
func GenerateSetup() Setup {
	conf := opaque.DefaultConfiguration()
	sk, pk := conf.KeyGen()
	return Setup{
		PrivateKey: sk,
		PublicKey:  pk,
		OPRFSeed:   conf.GenerateOPRFSeed(),
	}
}

// String encodes the setup as "v1.<sk>.<pk>.<seed>" with base64url parts.
// This is the value of OPAQUE_SERVER_SETUP.
func (s Setup) String() string {
	enc := base64.RawURLEncoding
	return strings.Join([]string{
		setupVersion,
		enc.EncodeToString(s.PrivateKey),
		enc.EncodeToString(s.PublicKey),
		enc.EncodeToString(s.OPRFSeed),
	}, ".")
}

// ParseSetup decodes a value produced by Setup.String.
func ParseSetup(raw string) (Setup, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Setup{}, ErrNotConfigured
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 4 || parts[0] != setupVersion {
		return Setup{}, ErrInvalidSetup
	}

	var out [3][]byte
	for i, p := range parts[1:] {
		b, err := base64.RawURLEncoding.DecodeString(p)
		if err != nil || len(b) == 0 {
			return Setup{}, fmt.Errorf("%w: part %d", ErrInvalidSetup, i+1)
		}
		out[i] = b
	}

	s := Setup{PrivateKey: out[0], PublicKey: out[1], OPRFSeed: out[2]}

	// Key material that the library refuses is caught here instead of on
	// the first registration.
	if _, err := s.server(); err != nil {
		return Setup{}, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	return s, nil
}

func (s Setup) server() (*opaque.Server, error) {
	conf := opaque.DefaultConfiguration()
	srv, err := conf.Server()
	if err != nil {
		return nil, err
	}
	if err := srv.SetKeyMaterial(nil, s.PrivateKey, s.PublicKey, s.OPRFSeed); err != nil {
		return nil, err
	}
	return srv, nil
}
