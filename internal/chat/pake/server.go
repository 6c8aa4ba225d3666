package pake

import (
	"fmt"

	"github.com/bytemare/opaque"
)

// Server is the server half of OPAQUE as the services use it. All
// messages are the serialized wire forms.
type Server interface {
	// RegistrationResponse answers a client's registration request for the
	// given credential identifier.
	RegistrationResponse(credentialID string, request []byte) ([]byte, error)

	// CheckRecord reports whether record is a well formed registration
	// record.
	CheckRecord(record []byte) error

	// StartLogin produces KE2 against the stored record, along with the
	// server AKE state needed by FinishLogin.
	StartLogin(credentialID string, record []byte, ke1 []byte) (ke2 []byte, state []byte, err error)

	// FinishLogin verifies the client's KE3 against the saved state.
	FinishLogin(state []byte, ke3 []byte) error
}

// NewServer returns a Server for setup. The opaque server object is not
// safe for concurrent use, so every call builds its own.
func NewServer(setup Setup) Server {
	return &opaqueServer{setup: setup}
}

type opaqueServer struct {
	setup Setup
}

func (s *opaqueServer) RegistrationResponse(credentialID string, request []byte) ([]byte, error) {
	srv, err := s.setup.server()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	req, err := srv.Deserialize.RegistrationRequest(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	pks, err := srv.Deserialize.DecodeAkePublicKey(s.setup.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	resp := srv.RegistrationResponse(req, pks, []byte(credentialID), s.setup.OPRFSeed)
	return resp.Serialize(), nil
}

func (s *opaqueServer) CheckRecord(record []byte) error {
	srv, err := s.setup.server()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}
	if _, err := srv.Deserialize.RegistrationRecord(record); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func (s *opaqueServer) StartLogin(credentialID string, record []byte, ke1 []byte) ([]byte, []byte, error) {
	srv, err := s.setup.server()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	rec, err := srv.Deserialize.RegistrationRecord(record)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: stored record: %v", ErrAuthentication, err)
	}

	msg, err := srv.Deserialize.KE1(ke1)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	ke2, err := srv.LoginInit(msg, &opaque.ClientRecord{
		CredentialIdentifier: []byte(credentialID),
		RegistrationRecord:   rec,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return ke2.Serialize(), srv.SerializeState(), nil
}

func (s *opaqueServer) FinishLogin(state []byte, ke3 []byte) error {
	srv, err := s.setup.server()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	if err := srv.SetAKEState(state); err != nil {
		return fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	msg, err := srv.Deserialize.KE3(ke3)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := srv.LoginFinish(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	return nil
}
