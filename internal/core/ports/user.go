package ports

import (
	"context"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

// Authenticator resolves basic-auth credentials to a Principal.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (domain.Principal, error)
}
