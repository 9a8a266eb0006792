package repositories

import (
	"context"

	"github.com/avinashn/gl_journal_app/internal/core/domain"
)

// ProductMappingReader defines read operations for product-to-GL-account mapping data
type ProductMappingReader interface {
	// FindLinkedGLAccount retrieves the GL account mapped for a savings product,
	// financial account type and optional payment type. A payment-type specific
	// mapping takes precedence over the product-level default; if neither is
	// configured it returns apperrors.ErrNotFound.
	FindLinkedGLAccount(ctx context.Context, productID int64, financialAccountType domain.FinancialAccountType, paymentTypeID *int64) (*domain.GLAccount, error)
}

// ProductMappingRepositoryFacade combines all product mapping repository interfaces
type ProductMappingRepositoryFacade interface {
	ProductMappingReader
}
