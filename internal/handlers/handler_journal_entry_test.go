package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avinashn/gl_journal_app/internal/apperrors"
	"github.com/avinashn/gl_journal_app/internal/core/domain"
	portssvc "github.com/avinashn/gl_journal_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

func (m *MockJournalEntryService) ParseJournalEntryCommand(ctx context.Context, body []byte) (*domain.JournalEntryCommand, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntryCommand), args.Error(1)
}

func (m *MockJournalEntryService) CreateJournalEntry(ctx context.Context, body []byte) (string, error) {
	args := m.Called(ctx, body)
	return args.String(0), args.Error(1)
}

func (m *MockJournalEntryService) GetJournalEntries(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Test Suite ---
type JournalEntryHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockJournalEntryService
}

func (s *JournalEntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockSvc = new(MockJournalEntryService)
	handler := newJournalEntryHandler(s.mockSvc)

	s.router = gin.New()
	s.router.POST("/journalentries", handler.createJournalEntry)
	s.router.GET("/journalentries/:transactionID", handler.getJournalEntries)
}

func TestJournalEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalEntryHandlerTestSuite))
}

func (s *JournalEntryHandlerTestSuite) performRequest(method, path, body string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *JournalEntryHandlerTestSuite) TestCreateJournalEntry_Success() {
	body := `{"officeId":1,"currencyCode":"USD","transactionDate":"04 March 2024","accountingRuleId":2}`
	s.mockSvc.On("CreateJournalEntry", mock.Anything, []byte(body)).Return("txn-123", nil)

	recorder := s.performRequest(http.MethodPost, "/journalentries", body)

	assert.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(s.T(), `{"transactionId":"txn-123"}`, recorder.Body.String())
	s.mockSvc.AssertExpectations(s.T())
}

func (s *JournalEntryHandlerTestSuite) TestCreateJournalEntry_ParsingErrorsAreBadRequests() {
	parseErrors := []error{
		apperrors.ErrEmptyPayload,
		fmt.Errorf("%w: surpriseField", apperrors.ErrUnsupportedParameter),
		fmt.Errorf("%w: officeId is required", apperrors.ErrMalformedRequest),
		fmt.Errorf("%w: credit entry 0 is missing amount", apperrors.ErrMalformedLineItem),
	}
	for _, parseErr := range parseErrors {
		s.SetupTest()
		s.mockSvc.On("CreateJournalEntry", mock.Anything, mock.Anything).Return("", parseErr)

		recorder := s.performRequest(http.MethodPost, "/journalentries", `{}`)

		assert.Equal(s.T(), http.StatusBadRequest, recorder.Code, "error %v", parseErr)
	}
}

func (s *JournalEntryHandlerTestSuite) TestCreateJournalEntry_UnconfiguredAccountIsUnprocessable() {
	s.mockSvc.On("CreateJournalEntry", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: product 7", apperrors.ErrAccountNotConfigured))

	recorder := s.performRequest(http.MethodPost, "/journalentries", `{"officeId":1}`)

	assert.Equal(s.T(), http.StatusUnprocessableEntity, recorder.Code)
	assert.Contains(s.T(), recorder.Body.String(), "product 7")
}

func (s *JournalEntryHandlerTestSuite) TestCreateJournalEntry_UnexpectedErrorIsInternal() {
	s.mockSvc.On("CreateJournalEntry", mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	recorder := s.performRequest(http.MethodPost, "/journalentries", `{"officeId":1}`)

	assert.Equal(s.T(), http.StatusInternalServerError, recorder.Code)
	// Internal details never reach the client.
	assert.NotContains(s.T(), recorder.Body.String(), "connection refused")
}

func (s *JournalEntryHandlerTestSuite) TestGetJournalEntries_Success() {
	entries := []domain.JournalEntry{
		{
			EntryID:       "e1",
			TransactionID: "txn-123",
			GLAccountID:   10,
			OfficeID:      1,
			CurrencyCode:  "USD",
			Side:          domain.Credit,
			Amount:        decimal.NewFromInt(100),
			EntryDate:     time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
	}
	s.mockSvc.On("GetJournalEntries", mock.Anything, "txn-123").Return(entries, nil)

	recorder := s.performRequest(http.MethodGet, "/journalentries/txn-123", "")

	assert.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Contains(s.T(), recorder.Body.String(), `"transactionId":"txn-123"`)
	assert.Contains(s.T(), recorder.Body.String(), `"side":"CREDIT"`)
}

func (s *JournalEntryHandlerTestSuite) TestGetJournalEntries_NotFound() {
	s.mockSvc.On("GetJournalEntries", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	recorder := s.performRequest(http.MethodGet, "/journalentries/missing", "")

	assert.Equal(s.T(), http.StatusNotFound, recorder.Code)
}

func (s *JournalEntryHandlerTestSuite) TestGetJournalEntries_RepositoryFailure() {
	s.mockSvc.On("GetJournalEntries", mock.Anything, "txn-123").Return(nil, errors.New("boom"))

	recorder := s.performRequest(http.MethodGet, "/journalentries/txn-123", "")

	assert.Equal(s.T(), http.StatusInternalServerError, recorder.Code)
}
