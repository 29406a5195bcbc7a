package security

import (
	"time"
)

const (
	TokenScopeAccess = "access"
)

// Maker makes a new token
type Maker interface {

	// CreateToken creates a new token for a subject and duration
	CreateToken(subject string, duration time.Duration, scope string) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}
