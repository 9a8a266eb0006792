package pgsql

import (
	"context"
	"errors"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	portsrepo "github.com/avinashn/gl_journal_app/internal/core/ports/repositories"
	"github.com/avinashn/gl_journal_app/internal/models"
	"github.com/avinashn/gl_journal_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProductMappingRepository provides read access to the product-to-GL-account
// mapping configuration.
type PgxProductMappingRepository struct {
	BaseRepository
}

// NewPgxProductMappingRepository creates a new repository for product mapping data.
func NewPgxProductMappingRepository(pool *pgxpool.Pool) portsrepo.ProductMappingRepositoryFacade {
	return &PgxProductMappingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProductMappingRepository implements portsrepo.ProductMappingRepositoryFacade
var _ portsrepo.ProductMappingRepositoryFacade = (*PgxProductMappingRepository)(nil)

// FindLinkedGLAccount retrieves the GL account mapped for a savings product and
// financial account type. A payment-type specific mapping wins over the
// product-level default (payment_type_id IS NULL); no row at all yields
// apperrors.ErrNotFound.
func (r *PgxProductMappingRepository) FindLinkedGLAccount(ctx context.Context, productID int64, financialAccountType domain.FinancialAccountType, paymentTypeID *int64) (*domain.GLAccount, error) {
	query := `
		SELECT a.gl_account_id, a.name, a.gl_code, a.account_type, a.manual_entries_allowed, a.disabled
		FROM acc_product_mapping m
		JOIN acc_gl_account a ON a.gl_account_id = m.gl_account_id
		WHERE m.product_id = $1
		  AND m.financial_account_type = $2
		  AND (m.payment_type_id = $3 OR m.payment_type_id IS NULL)
		ORDER BY m.payment_type_id NULLS LAST
		LIMIT 1;
	`
	var m models.GLAccount
	err := r.Pool.QueryRow(ctx, query, productID, int(financialAccountType), paymentTypeID).Scan(
		&m.GLAccountID,
		&m.Name,
		&m.GLCode,
		&m.AccountType,
		&m.ManualEntriesAllowed,
		&m.Disabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query product mapping", err)
	}

	account := mapping.ToDomainGLAccount(m)
	return &account, nil
}
