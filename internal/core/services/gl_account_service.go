package services

import (
	"context"
	"fmt"

	"github.com/avinashn/gl_journal_app/internal/core/domain"
	portsrepo "github.com/avinashn/gl_journal_app/internal/core/ports/repositories"
	portssvc "github.com/avinashn/gl_journal_app/internal/core/ports/services"
)

// glAccountService exposes read access to the chart of accounts.
type glAccountService struct {
	glAccountRepo portsrepo.GLAccountRepositoryFacade
}

// NewGLAccountService creates a new GLAccountService.
func NewGLAccountService(glAccountRepo portsrepo.GLAccountRepositoryFacade) portssvc.GLAccountSvcFacade {
	return &glAccountService{
		glAccountRepo: glAccountRepo,
	}
}

var _ portssvc.GLAccountSvcFacade = (*glAccountService)(nil)

func (s *glAccountService) GetGLAccountByID(ctx context.Context, glAccountID int64) (*domain.GLAccount, error) {
	account, err := s.glAccountRepo.FindGLAccountByID(ctx, glAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find GL account %d: %w", glAccountID, err)
	}
	return account, nil
}
