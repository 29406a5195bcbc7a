package security

import (
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"github.com/joefazee/crud/models"
)

// SymmetricKeySize is the key length required by PASETO v2 local tokens
const SymmetricKeySize = 32

// PasetoMaker issues and verifies PASETO v2 local tokens
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

var _ Maker = (*PasetoMaker)(nil)

// NewPasetoMaker creates a maker with a 32 byte symmetric key
func NewPasetoMaker(symmetricKey string) (*PasetoMaker, error) {
	if len(symmetricKey) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidTokenKey, len(symmetricKey))
	}

	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
	}, nil
}

func (m *PasetoMaker) CreateToken(subject string, duration time.Duration, scope string) (string, *Payload, error) {
	payload, err := NewPayload(subject, duration, scope)
	if err != nil {
		return "", nil, err
	}

	token, err := m.paseto.Encrypt(m.symmetricKey, payload, nil)
	if err != nil {
		return "", nil, err
	}
	return token, payload, nil
}

func (m *PasetoMaker) VerifyToken(token string) (*Payload, error) {
	payload := &Payload{}

	if err := m.paseto.Decrypt(token, m.symmetricKey, payload, nil); err != nil {
		return nil, ErrInvalidToken
	}

	if err := payload.Valid(); err != nil {
		return nil, err
	}
	return payload, nil
}
