package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	portsrepo "github.com/avinashn/gl_journal_app/internal/core/ports/repositories"
	portssvc "github.com/avinashn/gl_journal_app/internal/core/ports/services"
	"github.com/avinashn/gl_journal_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductMappingRepository ---
type MockProductMappingRepository struct {
	mock.Mock
}

var _ portsrepo.ProductMappingRepositoryFacade = (*MockProductMappingRepository)(nil)

func (m *MockProductMappingRepository) FindLinkedGLAccount(ctx context.Context, productID int64, financialAccountType domain.FinancialAccountType, paymentTypeID *int64) (*domain.GLAccount, error) {
	args := m.Called(ctx, productID, financialAccountType, paymentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GLAccount), args.Error(1)
}

// --- Test Suite ---
type LedgerAccountResolverTestSuite struct {
	suite.Suite
	mockRepo *MockProductMappingRepository
	service  portssvc.LedgerAccountResolverFacade
	ctx      context.Context
}

func (s *LedgerAccountResolverTestSuite) SetupTest() {
	s.mockRepo = new(MockProductMappingRepository)
	s.service = services.NewLedgerAccountResolver(s.mockRepo)
	s.ctx = context.Background()
}

func TestLedgerAccountResolverTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerAccountResolverTestSuite))
}

func (s *LedgerAccountResolverTestSuite) TestResolve_Success() {
	account := glAccount(99)
	s.mockRepo.On("FindLinkedGLAccount", s.ctx, int64(7), domain.SavingsControl, (*int64)(nil)).
		Return(account, nil)

	resolved, err := s.service.ResolveSavingsControlAccount(s.ctx, 7, nil)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), account, resolved)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LedgerAccountResolverTestSuite) TestResolve_MissingMappingIsConfigurationError() {
	s.mockRepo.On("FindLinkedGLAccount", s.ctx, int64(7), domain.SavingsControl, (*int64)(nil)).
		Return(nil, apperrors.ErrNotFound)

	resolved, err := s.service.ResolveSavingsControlAccount(s.ctx, 7, nil)

	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, apperrors.ErrAccountNotConfigured)
	assert.Nil(s.T(), resolved)
}

func (s *LedgerAccountResolverTestSuite) TestResolve_RepositoryFailurePropagates() {
	repoErr := errors.New("connection refused")
	s.mockRepo.On("FindLinkedGLAccount", s.ctx, int64(7), domain.SavingsControl, (*int64)(nil)).
		Return(nil, repoErr)

	resolved, err := s.service.ResolveSavingsControlAccount(s.ctx, 7, nil)

	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, repoErr)
	assert.NotErrorIs(s.T(), err, apperrors.ErrAccountNotConfigured)
	assert.Nil(s.T(), resolved)
}

func (s *LedgerAccountResolverTestSuite) TestResolve_PaymentTypeForwarded() {
	paymentTypeID := int64(3)
	s.mockRepo.On("FindLinkedGLAccount", s.ctx, int64(7), domain.SavingsControl, &paymentTypeID).
		Return(glAccount(98), nil)

	resolved, err := s.service.ResolveSavingsControlAccount(s.ctx, 7, &paymentTypeID)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(98), resolved.GLAccountID)
	s.mockRepo.AssertExpectations(s.T())
}
