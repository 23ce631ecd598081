package clickservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockAdRepo, *MockTransactionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	adRepo := NewMockAdRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, adRepo, transactionRepo, txManager)
	defer ctrl.Finish()
	return service, accountRepo, adRepo, transactionRepo, txManager
}

func TestProcessClick(t *testing.T) {
	service, accountRepo, adRepo, transactionRepo, txManager := NewMock(t)
	token := "click-abc"

	activeAccount := &domain.Account{
		ID:                1,
		Login:             "user",
		Status:            domain.ActiveAccountStatus,
		Balance:           100.0,
		TotalAdsCompleted: 3,
	}
	activeAd := &domain.Ad{
		ID:           3,
		Title:        "Watch this",
		RewardAmount: 1.75,
		Active:       true,
	}

	tests := []struct {
		name           string
		accountID      int
		adID           int
		clickToken     *string
		prepareMock    func()
		expectedResult *ClickResult
		expectedError  error
	}{
		{
			name:      "Click credits balance and appends one transaction",
			accountID: 1,
			adID:      3,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				adRepo.EXPECT().FindByID(gomock.Any(), 3).Return(activeAd, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				accountRepo.EXPECT().CreditForClick(gomock.Any(), 1, 1.75).Return(&domain.Account{
					ID:                1,
					Status:            domain.ActiveAccountStatus,
					Balance:           101.75,
					TotalAdsCompleted: 4,
				}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.AdClickTransaction, transaction.Type)
						assert.Equal(t, 1.75, transaction.EarnedAmount)
						assert.Equal(t, 3, *transaction.AdID)
						transaction.ID = 10
						return transaction, nil
					})
			},
			expectedResult: &ClickResult{
				Balance:           101.75,
				EarnedAmount:      1.75,
				TotalAdsCompleted: 4,
			},
			expectedError: nil,
		},
		{
			name:      "Missing account",
			accountID: 99,
			adID:      3,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:      "Pending account cannot earn",
			accountID: 1,
			adID:      3,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Account{
					ID:     1,
					Status: domain.PendingAccountStatus,
				}, nil)
			},
			expectedError: ErrAccountNotActive,
		},
		{
			name:      "Frozen account cannot earn",
			accountID: 1,
			adID:      3,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Account{
					ID:     1,
					Status: domain.FrozenAccountStatus,
				}, nil)
			},
			expectedError: ErrAccountNotActive,
		},
		{
			name:      "Missing ad",
			accountID: 1,
			adID:      99,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				adRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrAdNotFound,
		},
		{
			name:      "Inactive ad is rejected",
			accountID: 1,
			adID:      4,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				adRepo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.Ad{ID: 4, Active: false}, nil)
			},
			expectedError: ErrAdNotFound,
		},
		{
			name:       "Replayed click token does not credit again",
			accountID:  1,
			adID:       3,
			clickToken: &token,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				adRepo.EXPECT().FindByID(gomock.Any(), 3).Return(activeAd, nil)
				transactionRepo.EXPECT().FindByClickToken(gomock.Any(), token).Return(&domain.Transaction{
					ID:           10,
					AccountID:    1,
					EarnedAmount: 1.75,
					ClickToken:   &token,
				}, nil)
			},
			expectedResult: &ClickResult{
				Balance:           100.0,
				EarnedAmount:      1.75,
				TotalAdsCompleted: 3,
				Replayed:          true,
			},
			expectedError: nil,
		},
		{
			name:       "Concurrent duplicate token replays the stored result",
			accountID:  1,
			adID:       3,
			clickToken: &token,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				adRepo.EXPECT().FindByID(gomock.Any(), 3).Return(activeAd, nil)
				// The pre-check misses: the competing click commits between
				// the lookup and the insert.
				transactionRepo.EXPECT().FindByClickToken(gomock.Any(), token).Return(nil, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				accountRepo.EXPECT().CreditForClick(gomock.Any(), 1, 1.75).Return(&domain.Account{
					ID:      1,
					Balance: 101.75,
				}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "transactions_click_token_key",
				})
				transactionRepo.EXPECT().FindByClickToken(gomock.Any(), token).Return(&domain.Transaction{
					ID:           11,
					AccountID:    1,
					EarnedAmount: 1.75,
					ClickToken:   &token,
				}, nil)
			},
			expectedResult: &ClickResult{
				Balance:           100.0,
				EarnedAmount:      1.75,
				TotalAdsCompleted: 3,
				Replayed:          true,
			},
			expectedError: nil,
		},
		{
			name:       "Unrelated unique violation is not replayed",
			accountID:  1,
			adID:       3,
			clickToken: &token,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				adRepo.EXPECT().FindByID(gomock.Any(), 3).Return(activeAd, nil)
				transactionRepo.EXPECT().FindByClickToken(gomock.Any(), token).Return(nil, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				accountRepo.EXPECT().CreditForClick(gomock.Any(), 1, 1.75).Return(&domain.Account{
					ID:      1,
					Balance: 101.75,
				}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "transactions_pkey",
				})
			},
			expectedError: &pgconn.PgError{Code: "23505", ConstraintName: "transactions_pkey"},
		},
		{
			name:      "Transaction insert failure rolls back",
			accountID: 1,
			adID:      3,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				adRepo.EXPECT().FindByID(gomock.Any(), 3).Return(activeAd, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				accountRepo.EXPECT().CreditForClick(gomock.Any(), 1, 1.75).Return(&domain.Account{
					ID:      1,
					Balance: 101.75,
				}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ProcessClick(context.Background(), tt.accountID, tt.adID, tt.clickToken)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	service, _, _, transactionRepo, _ := NewMock(t)

	t.Run("Returns account transactions", func(t *testing.T) {
		transactionRepo.EXPECT().FindByAccountID(gomock.Any(), 1).Return([]domain.Transaction{
			{ID: 10, AccountID: 1, Type: domain.AdClickTransaction, EarnedAmount: 1.75},
		}, nil)

		transactions, err := service.GetTransactions(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, transactions, 1)
	})

	t.Run("Repo error", func(t *testing.T) {
		transactionRepo.EXPECT().FindByAccountID(gomock.Any(), 1).Return(nil, errors.New("db error"))

		transactions, err := service.GetTransactions(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, transactions)
	})
}
