package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	portsrepo "github.com/avinashn/gl_journal_app/internal/core/ports/repositories"
	portssvc "github.com/avinashn/gl_journal_app/internal/core/ports/services"
	"github.com/avinashn/gl_journal_app/internal/middleware"
)

// ledgerAccountResolver resolves savings product references to their
// configured control GL account via the product mapping repository.
type ledgerAccountResolver struct {
	mappingRepo portsrepo.ProductMappingRepositoryFacade
}

// NewLedgerAccountResolver creates a new LedgerAccountResolver.
func NewLedgerAccountResolver(mappingRepo portsrepo.ProductMappingRepositoryFacade) portssvc.LedgerAccountResolverFacade {
	return &ledgerAccountResolver{
		mappingRepo: mappingRepo,
	}
}

// Ensure ledgerAccountResolver implements the portssvc.LedgerAccountResolverFacade interface
var _ portssvc.LedgerAccountResolverFacade = (*ledgerAccountResolver)(nil)

// ResolveSavingsControlAccount looks up the savings control account mapped for
// the product and optional payment type. A missing mapping is a configuration
// error surfaced as apperrors.ErrAccountNotConfigured.
func (r *ledgerAccountResolver) ResolveSavingsControlAccount(ctx context.Context, savingsProductID int64, paymentTypeID *int64) (*domain.GLAccount, error) {
	account, err := r.mappingRepo.FindLinkedGLAccount(ctx, savingsProductID, domain.SavingsControl, paymentTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Warn("No control account mapped for savings product",
				slog.Int64("savings_product_id", savingsProductID))
			return nil, fmt.Errorf("%w: product %d", apperrors.ErrAccountNotConfigured, savingsProductID)
		}
		return nil, fmt.Errorf("failed to look up control account for product %d: %w", savingsProductID, err)
	}
	return account, nil
}
