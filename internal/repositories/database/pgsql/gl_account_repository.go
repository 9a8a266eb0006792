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

// PgxGLAccountRepository provides read access to the chart of accounts.
type PgxGLAccountRepository struct {
	BaseRepository
}

// NewPgxGLAccountRepository creates a new repository for GL account data.
func NewPgxGLAccountRepository(pool *pgxpool.Pool) portsrepo.GLAccountRepositoryFacade {
	return &PgxGLAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxGLAccountRepository implements portsrepo.GLAccountRepositoryFacade
var _ portsrepo.GLAccountRepositoryFacade = (*PgxGLAccountRepository)(nil)

// FindGLAccountByID retrieves a GL account by its identifier.
func (r *PgxGLAccountRepository) FindGLAccountByID(ctx context.Context, glAccountID int64) (*domain.GLAccount, error) {
	query := `
		SELECT gl_account_id, name, gl_code, account_type, manual_entries_allowed, disabled
		FROM acc_gl_account
		WHERE gl_account_id = $1;
	`
	var m models.GLAccount
	err := r.Pool.QueryRow(ctx, query, glAccountID).Scan(
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
		return nil, apperrors.NewAppError(500, "failed to query GL account", err)
	}

	account := mapping.ToDomainGLAccount(m)
	return &account, nil
}
