package token

import (
	"time"
)

// RevokedToken is a denylisted JWT, keyed by its jti claim. Tokens land here
// on logout and are rejected until they expire on their own.
type RevokedToken struct {
	JTI string
	Exp time.Time
}
