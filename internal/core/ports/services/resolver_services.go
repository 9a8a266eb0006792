package services

import (
	"context"

	"github.com/avinashn/gl_journal_app/internal/core/domain"
)

// LedgerAccountResolverFacade resolves a savings product reference to the GL
// account configured as that product's control account.
type LedgerAccountResolverFacade interface {
	// ResolveSavingsControlAccount returns the control GL account for the given
	// savings product, honouring a payment-type specific mapping when a payment
	// type is supplied. It returns apperrors.ErrAccountNotConfigured when no
	// mapping exists.
	ResolveSavingsControlAccount(ctx context.Context, savingsProductID int64, paymentTypeID *int64) (*domain.GLAccount, error)
}
