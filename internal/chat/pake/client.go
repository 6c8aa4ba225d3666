package pake

import (
	"fmt"

	"github.com/bytemare/opaque"
)

// Registration is an in-flight client registration. It holds the blinded
// password state between the two round trips.
type Registration struct {
	client *opaque.Client
}

// StartRegistration blinds password and returns the request to send.
func StartRegistration(password []byte) (*Registration, []byte, error) {
	c, err := opaque.DefaultConfiguration().Client()
	if err != nil {
		return nil, nil, err
	}
	req := c.RegistrationInit(password)
	return &Registration{client: c}, req.Serialize(), nil
}

// Finish turns the server's response into the record to upload.
func (r *Registration) Finish(response []byte) ([]byte, error) {
	resp, err := r.client.Deserialize.RegistrationResponse(response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	record, _ := r.client.RegistrationFinalize(resp)
	return record.Serialize(), nil
}

// Login is an in-flight client login.
type Login struct {
	client *opaque.Client
}

// StartLogin returns KE1 for password.
func StartLogin(password []byte) (*Login, []byte, error) {
	c, err := opaque.DefaultConfiguration().Client()
	if err != nil {
		return nil, nil, err
	}
	ke1 := c.LoginInit(password)
	return &Login{client: c}, ke1.Serialize(), nil
}

// Finish checks the server's KE2 and produces KE3. A wrong password shows
// up here as ErrAuthentication since the envelope cannot be opened.
func (l *Login) Finish(ke2 []byte) ([]byte, error) {
	msg, err := l.client.Deserialize.KE2(ke2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	ke3, _, err := l.client.LoginFinish(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	return ke3.Serialize(), nil
}
