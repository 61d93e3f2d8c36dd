package port

import "context"

// AuthorityVerifier binds a presented credential to the claimed principal.
// The host environment owns real signature verification; the core trusts the
// returned proof without re-checking it.
type AuthorityVerifier interface {
	Verify(ctx context.Context, principal, credential string) (Proof, error)
}
