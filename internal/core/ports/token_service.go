package ports

import "github.com/pulsedash/dashboard-api/internal/core/domain"

// TokenService mints and checks signed tokens. Both operations are pure:
// no store access, no side effects beyond the stateless signature.
type TokenService interface {
	// Issue produces a signed token embedding the user's identifier, email,
	// role and display name, valid for a fixed window from issuance.
	Issue(user *domain.User) (string, error)
	// Verify returns the embedded claims when the signature is valid and the
	// token has not expired; otherwise domain.ErrInvalidToken.
	Verify(token string) (*domain.Claims, error)
}
