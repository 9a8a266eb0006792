package repositories

import (
	"context"

	"github.com/avinashn/gl_journal_app/internal/core/domain"
)

// GLAccountReader defines read operations for GL account data
type GLAccountReader interface {
	// FindGLAccountByID retrieves a specific GL account by its identifier.
	FindGLAccountByID(ctx context.Context, glAccountID int64) (*domain.GLAccount, error)
}

// GLAccountRepositoryFacade combines all GL account repository interfaces
type GLAccountRepositoryFacade interface {
	GLAccountReader
}
