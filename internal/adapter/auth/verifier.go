package auth

import (
	"context"
	"errors"

	"github.com/rl1809/roomledger/internal/port"
)

var ErrInvalidCredential = errors.New("invalid credential")

// StaticVerifier accepts a credential the host environment has already
// authenticated for the principal and returns the ledger proof bound to that
// principal's accounts. Real signature verification lives in the host; this
// adapter only enforces the binding.
type StaticVerifier struct{}

func NewStaticVerifier() *StaticVerifier {
	return &StaticVerifier{}
}

func (v *StaticVerifier) Verify(ctx context.Context, principal, credential string) (port.Proof, error) {
	if principal == "" || credential != principal {
		return "", ErrInvalidCredential
	}
	return port.Proof(principal), nil
}
