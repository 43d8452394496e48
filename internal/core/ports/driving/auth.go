package driving

import (
	"context"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

// AuthFlow runs the one-shot installed-app authorization-code flow and
// returns the granted tokens. The refresh token in the result is what
// belongs in configuration.
type AuthFlow interface {
	Authorize(ctx context.Context) (*domain.AuthResult, error)
}
