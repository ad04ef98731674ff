package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trackmint/finance_tracker_app/internal/apperrors"
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmint/finance_tracker_app/internal/core/ports/services"
	"github.com/trackmint/finance_tracker_app/internal/core/services"
	"github.com/trackmint/finance_tracker_app/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, splits []domain.Split, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, journal, splits, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, userID string, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, userID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindSplitsByJournalID(ctx context.Context, journalID string) ([]domain.Split, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Split), args.Error(1)
}

func (m *MockJournalRepository) FindSplitsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Split, error) {
	args := m.Called(ctx, journalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Split), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, userID string, filter domain.JournalFilter) ([]domain.Journal, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Journal), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalRepository) SummarizeJournals(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (domain.JournalTotals, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	return args.Get(0).(domain.JournalTotals), args.Error(1)
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournal(ctx context.Context, journal domain.Journal, splits []domain.Split, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, journal, splits, balanceChanges)
	return args.Error(0)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, userID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.TransactionSvcFacade
	userID          string
	checkingAccount domain.Account
	savingsAccount  domain.Account
	expenseAccount  domain.Account
	revenueAccount  domain.Account
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewTransactionService(suite.mockJournalRepo, suite.mockAccountSvc)

	suite.userID = uuid.NewString()

	suite.checkingAccount = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Checking",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.savingsAccount = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Savings",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.expenseAccount = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Groceries",
		AccountType:  domain.Expense,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Salary",
		AccountType:  domain.Revenue,
		CurrencyCode: "USD",
		IsActive:     true,
	}
}

func (suite *TransactionServiceTestSuite) accountsMap(accounts ...domain.Account) map[string]domain.Account {
	m := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.AccountID] = a
	}
	return m
}

// expectFreshRead wires the read-back done after a successful write.
func (suite *TransactionServiceTestSuite) expectFreshRead(journal *domain.Journal, splits []domain.Split) {
	suite.mockJournalRepo.On("FindJournalByID", mock.Anything, suite.userID, mock.AnythingOfType("string")).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindSplitsByJournalID", mock.Anything, mock.AnythingOfType("string")).Return(splits, nil).Once()
}

// --- CreateTransaction ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Withdrawal_Success() {
	ctx := context.Background()
	amount := decimal.NewFromFloat(50.25)
	req := dto.CreateTransactionRequest{
		Type:        "withdrawal",
		Description: "Weekly groceries",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: suite.expenseAccount.AccountID, Amount: amount},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.userID, mock.Anything).
		Return(suite.accountsMap(suite.checkingAccount, suite.expenseAccount), nil).Once()

	var savedJournal domain.Journal
	var savedSplits []domain.Split
	suite.mockJournalRepo.On("SaveJournal", ctx,
		mock.AnythingOfType("domain.Journal"),
		mock.AnythingOfType("[]domain.Split"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return changes[suite.checkingAccount.AccountID].Equal(amount.Neg()) &&
				changes[suite.expenseAccount.AccountID].Equal(amount)
		}),
	).Run(func(args mock.Arguments) {
		savedJournal = args.Get(1).(domain.Journal)
		savedSplits = args.Get(2).([]domain.Split)
	}).Return(nil).Once()

	suite.mockJournalRepo.On("FindJournalByID", mock.Anything, suite.userID, mock.AnythingOfType("string")).
		Return(&domain.Journal{}, nil).Once()
	suite.mockJournalRepo.On("FindSplitsByJournalID", mock.Anything, mock.AnythingOfType("string")).
		Return([]domain.Split{}, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Withdrawal, savedJournal.TransactionKind)
	suite.Equal(suite.userID, savedJournal.UserID)
	suite.Equal(suite.userID, savedJournal.CreatedBy)
	suite.Require().Len(savedSplits, 1)
	suite.Equal(1, savedSplits[0].Sequence)
	suite.Equal("USD", savedSplits[0].CurrencyCode)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Deposit_DecrementsRevenueSource() {
	ctx := context.Background()
	amount := decimal.NewFromInt(2000)
	req := dto.CreateTransactionRequest{
		Type:        "deposit",
		Description: "Monthly salary",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.revenueAccount.AccountID, DestinationAccountID: suite.checkingAccount.AccountID, Amount: amount},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.userID, mock.Anything).
		Return(suite.accountsMap(suite.revenueAccount, suite.checkingAccount), nil).Once()

	// The revenue source is decremented and the asset destination incremented,
	// same arithmetic as every other kind.
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything, mock.Anything,
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return changes[suite.revenueAccount.AccountID].Equal(amount.Neg()) &&
				changes[suite.checkingAccount.AccountID].Equal(amount)
		}),
	).Return(nil).Once()
	suite.expectFreshRead(&domain.Journal{}, []domain.Split{})

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MultiSplit_SequenceOrder() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "withdrawal",
		Description: "Shopping trip",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: suite.expenseAccount.AccountID, Amount: decimal.NewFromInt(30)},
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: suite.expenseAccount.AccountID, Amount: decimal.NewFromInt(20)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.userID, mock.Anything).
		Return(suite.accountsMap(suite.checkingAccount, suite.expenseAccount), nil).Once()

	var savedSplits []domain.Split
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything, mock.Anything,
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			// Deltas accumulate across splits touching the same account.
			return changes[suite.checkingAccount.AccountID].Equal(decimal.NewFromInt(-50)) &&
				changes[suite.expenseAccount.AccountID].Equal(decimal.NewFromInt(50))
		}),
	).Run(func(args mock.Arguments) {
		savedSplits = args.Get(2).([]domain.Split)
	}).Return(nil).Once()
	suite.expectFreshRead(&domain.Journal{}, []domain.Split{})

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().Len(savedSplits, 2)
	suite.Equal(1, savedSplits[0].Sequence)
	suite.Equal(2, savedSplits[1].Sequence)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_EmptyDescription() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "withdrawal",
		Description: "   ",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: suite.expenseAccount.AccountID, Amount: decimal.NewFromInt(10)},
		},
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NoSplits() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "withdrawal",
		Description: "No legs",
		Date:        time.Now(),
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "withdrawal",
		Description: "Zero amount",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: suite.expenseAccount.AccountID, Amount: decimal.Zero},
		},
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SameAccountSplit() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "transfer",
		Description: "Self transfer",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: suite.checkingAccount.AccountID, Amount: decimal.NewFromInt(10)},
		},
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountNotFound() {
	ctx := context.Background()
	unknownAccountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:        "withdrawal",
		Description: "Unknown destination",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: unknownAccountID, Amount: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.userID, mock.Anything).
		Return(suite.accountsMap(suite.checkingAccount), nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TypeRuleViolation() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "withdrawal",
		Description: "Withdrawal from revenue",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.revenueAccount.AccountID, DestinationAccountID: suite.expenseAccount.AccountID, Amount: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.userID, mock.Anything).
		Return(suite.accountsMap(suite.revenueAccount, suite.expenseAccount), nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownKind() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "refund",
		Description: "Unsupported kind",
		Date:        time.Now(),
		Splits: []dto.CreateSplitRequest{
			{SourceAccountID: suite.checkingAccount.AccountID, DestinationAccountID: suite.expenseAccount.AccountID, Amount: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.userID, mock.Anything).
		Return(suite.accountsMap(suite.checkingAccount, suite.expenseAccount), nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetTransactionByID ---

func (suite *TransactionServiceTestSuite) TestGetTransaction_Success() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, UserID: suite.userID, Description: "Lunch"}
	splits := []domain.Split{{SplitID: uuid.NewString(), JournalID: journalID, Sequence: 1}}

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindSplitsByJournalID", ctx, journalID).Return(splits, nil).Once()

	result, err := suite.service.GetTransactionByID(ctx, suite.userID, journalID)

	suite.Require().NoError(err)
	suite.Equal(journalID, result.JournalID)
	suite.Len(result.Splits, 1)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetTransactionByID(ctx, suite.userID, journalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindSplitsByJournalID", mock.Anything, mock.Anything)
}

// --- ListTransactions ---

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	journalA := domain.Journal{JournalID: uuid.NewString(), UserID: suite.userID}
	journalB := domain.Journal{JournalID: uuid.NewString(), UserID: suite.userID}
	params := dto.ListTransactionsParams{Page: 2, Limit: 10, SortBy: "date", SortDirection: "desc"}

	suite.mockJournalRepo.On("ListJournals", ctx, suite.userID,
		mock.MatchedBy(func(filter domain.JournalFilter) bool {
			return filter.SortBy == domain.SortByDate && filter.SortDescending &&
				filter.Limit == 10 && filter.Offset == 10
		}),
	).Return([]domain.Journal{journalA, journalB}, int64(25), nil).Once()

	suite.mockJournalRepo.On("FindSplitsByJournalIDs", ctx, []string{journalA.JournalID, journalB.JournalID}).
		Return(map[string][]domain.Split{
			journalA.JournalID: {{SplitID: uuid.NewString(), JournalID: journalA.JournalID, Sequence: 1}},
			journalB.JournalID: {},
		}, nil).Once()

	result, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Len(result.Items, 2)
	suite.Equal(int64(25), result.Total)
	suite.Equal(2, result.Page)
	suite.Equal(10, result.Limit)
	suite.Equal(3, result.TotalPages)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidSortField() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Page: 1, Limit: 10, SortBy: "amount; DROP TABLE journals", SortDirection: "asc"}

	_, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ListJournals", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidSortDirection() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Page: 1, Limit: 10, SortBy: "date", SortDirection: "sideways"}

	_, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_KindFilter() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Page: 1, Limit: 20, SortBy: "date", SortDirection: "asc"}
	kind := "deposit"
	params.Type = &kind

	suite.mockJournalRepo.On("ListJournals", ctx, suite.userID,
		mock.MatchedBy(func(filter domain.JournalFilter) bool {
			return filter.Kind != nil && *filter.Kind == domain.Deposit && !filter.SortDescending
		}),
	).Return([]domain.Journal{}, int64(0), nil).Once()

	result, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Empty(result.Items)
	suite.Equal(0, result.TotalPages)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- UpdateTransaction ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DescriptionAndNotes() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, UserID: suite.userID, Description: "Old", Notes: "old notes"}
	newDescription := "Corrected description"
	newNotes := "extra detail"
	req := dto.UpdateTransactionRequest{Description: &newDescription, Notes: &newNotes}

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(journal, nil).Twice()
	suite.mockJournalRepo.On("FindSplitsByJournalID", ctx, journalID).Return([]domain.Split{}, nil).Twice()
	suite.mockJournalRepo.On("UpdateJournal", ctx,
		mock.MatchedBy(func(j domain.Journal) bool {
			return j.Description == newDescription && j.Notes == newNotes && j.LastUpdatedBy == suite.userID
		}),
	).Return(nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, journalID, req)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NoFieldsIsNoOp() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, UserID: suite.userID, Description: "Unchanged"}

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindSplitsByJournalID", ctx, journalID).Return([]domain.Split{}, nil).Once()

	result, err := suite.service.UpdateTransaction(ctx, suite.userID, journalID, dto.UpdateTransactionRequest{})

	suite.Require().NoError(err)
	suite.Equal("Unchanged", result.Description)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournal", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_EmptyDescriptionRejected() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, UserID: suite.userID, Description: "Old"}
	blank := "  "

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindSplitsByJournalID", ctx, journalID).Return([]domain.Split{}, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, journalID, dto.UpdateTransactionRequest{Description: &blank})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournal", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()
	description := "New"

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, journalID, dto.UpdateTransactionRequest{Description: &description})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteTransaction ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ReversesBalances() {
	ctx := context.Background()
	journalID := uuid.NewString()
	amount := decimal.NewFromInt(75)
	journal := &domain.Journal{JournalID: journalID, UserID: suite.userID, TransactionKind: domain.Withdrawal}
	splits := []domain.Split{{
		SplitID:              uuid.NewString(),
		JournalID:            journalID,
		SourceAccountID:      suite.checkingAccount.AccountID,
		DestinationAccountID: suite.expenseAccount.AccountID,
		Amount:               amount,
		Sequence:             1,
	}}

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindSplitsByJournalID", ctx, journalID).Return(splits, nil).Once()
	suite.mockJournalRepo.On("DeleteJournal", ctx, mock.Anything, mock.Anything,
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			// Exact inverse of the deltas applied at creation.
			return changes[suite.checkingAccount.AccountID].Equal(amount) &&
				changes[suite.expenseAccount.AccountID].Equal(amount.Neg())
		}),
	).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, journalID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.userID, journalID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, journalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetTransactionSummary ---

func (suite *TransactionServiceTestSuite) TestGetTransactionSummary_Arithmetic() {
	ctx := context.Background()
	totals := domain.JournalTotals{
		TotalTransactions: 2,
		TotalIncome:       decimal.NewFromInt(2000),
		TotalExpenses:     decimal.NewFromInt(150),
	}

	suite.mockJournalRepo.On("SummarizeJournals", ctx, suite.userID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(totals, nil).Once()

	summary, err := suite.service.GetTransactionSummary(ctx, suite.userID, nil, nil)

	suite.Require().NoError(err)
	suite.True(summary.NetFlow.Equal(decimal.NewFromInt(1850)))
	suite.True(summary.AverageTransaction.Equal(decimal.NewFromInt(1075)))
	suite.Equal(int64(2), summary.TotalTransactions)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionSummary_Empty() {
	ctx := context.Background()

	suite.mockJournalRepo.On("SummarizeJournals", ctx, suite.userID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.JournalTotals{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero}, nil).Once()

	summary, err := suite.service.GetTransactionSummary(ctx, suite.userID, nil, nil)

	suite.Require().NoError(err)
	suite.True(summary.AverageTransaction.IsZero())
	suite.True(summary.NetFlow.IsZero())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
