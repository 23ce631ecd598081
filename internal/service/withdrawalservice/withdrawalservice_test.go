package withdrawalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockWithdrawalRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, withdrawalRepo, txManager)
	defer ctrl.Finish()
	return service, accountRepo, withdrawalRepo, txManager
}

var admin = domain.Principal{ID: 2, IsAdmin: true}

func TestRequestWithdrawal(t *testing.T) {
	service, accountRepo, withdrawalRepo, txManager := NewMock(t)

	activeAccount := &domain.Account{
		ID:      1,
		Status:  domain.ActiveAccountStatus,
		Balance: 100.0,
	}

	tests := []struct {
		name          string
		accountID     int
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Request reserves balance and records pending withdrawal",
			accountID: 1,
			amount:    50.0,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				accountRepo.EXPECT().Reserve(gomock.Any(), 1, 50.0).Return(&domain.Account{
					ID:      1,
					Status:  domain.ActiveAccountStatus,
					Balance: 50.0,
				}, nil)
				withdrawalRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
						assert.Equal(t, domain.PendingWithdrawalStatus, withdrawal.Status)
						assert.Equal(t, 50.0, withdrawal.Amount)
						withdrawal.ID = 5
						return withdrawal, nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "Zero amount rejected",
			accountID:     1,
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			accountID:     1,
			amount:        -10.0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:      "Missing account",
			accountID: 99,
			amount:    50.0,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:      "Frozen account cannot withdraw",
			accountID: 1,
			amount:    50.0,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Account{
					ID:     1,
					Status: domain.FrozenAccountStatus,
				}, nil)
			},
			expectedError: ErrAccountNotActive,
		},
		{
			name:      "Amount exceeds balance, no record created",
			accountID: 1,
			amount:    500.0,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeAccount, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				accountRepo.EXPECT().Reserve(gomock.Any(), 1, 500.0).Return(nil, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			withdrawal, err := service.RequestWithdrawal(context.Background(), tt.accountID, tt.amount, "4561261212345467", "First Bank")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, withdrawal)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, withdrawal.ID)
				assert.Equal(t, domain.PendingWithdrawalStatus, withdrawal.Status)
			}
		})
	}
}

func TestResolveWithdrawal(t *testing.T) {
	service, accountRepo, withdrawalRepo, txManager := NewMock(t)
	now := time.Now()
	adminID := 2

	pending := &domain.Withdrawal{
		ID:        5,
		AccountID: 1,
		Amount:    50.0,
		Status:    domain.PendingWithdrawalStatus,
	}

	tests := []struct {
		name          string
		principal     domain.Principal
		decision      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Approve moves amount into withdrawn total",
			principal: admin,
			decision:  domain.ApprovedWithdrawalStatus,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(gomock.Any(), 5).Return(pending, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				withdrawalRepo.EXPECT().Resolve(gomock.Any(), 5, "approved", 2, "ok", gomock.Any()).Return(&domain.Withdrawal{
					ID:          5,
					AccountID:   1,
					Amount:      50.0,
					Status:      domain.ApprovedWithdrawalStatus,
					Notes:       "ok",
					ProcessedAt: &now,
					ProcessedBy: &adminID,
				}, nil)
				accountRepo.EXPECT().ApplyWithdrawn(gomock.Any(), 1, 50.0).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "Reject refunds the reservation",
			principal: admin,
			decision:  domain.RejectedWithdrawalStatus,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(gomock.Any(), 5).Return(pending, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				withdrawalRepo.EXPECT().Resolve(gomock.Any(), 5, "rejected", 2, "ok", gomock.Any()).Return(&domain.Withdrawal{
					ID:          5,
					AccountID:   1,
					Amount:      50.0,
					Status:      domain.RejectedWithdrawalStatus,
					ProcessedAt: &now,
					ProcessedBy: &adminID,
				}, nil)
				accountRepo.EXPECT().Refund(gomock.Any(), 1, 50.0).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Non-admin is rejected",
			principal:     domain.Principal{ID: 1, IsAdmin: false},
			decision:      domain.ApprovedWithdrawalStatus,
			prepareMock:   func() {},
			expectedError: ErrNotAdmin,
		},
		{
			name:          "Unknown decision rejected",
			principal:     admin,
			decision:      "maybe",
			prepareMock:   func() {},
			expectedError: ErrInvalidDecision,
		},
		{
			name:      "Missing withdrawal",
			principal: admin,
			decision:  domain.ApprovedWithdrawalStatus,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrWithdrawalNotFound,
		},
		{
			name:      "Second resolution fails",
			principal: admin,
			decision:  domain.RejectedWithdrawalStatus,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Withdrawal{
					ID:     5,
					Status: domain.ApprovedWithdrawalStatus,
				}, nil)
			},
			expectedError: ErrAlreadyResolved,
		},
		{
			name:      "Lost race on resolution",
			principal: admin,
			decision:  domain.ApprovedWithdrawalStatus,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(gomock.Any(), 5).Return(pending, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				withdrawalRepo.EXPECT().Resolve(gomock.Any(), 5, "approved", 2, "ok", gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrAlreadyResolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			resolved, err := service.ResolveWithdrawal(context.Background(), tt.principal, 5, tt.decision, "ok")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resolved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.decision, resolved.Status)
				assert.NotNil(t, resolved.ProcessedAt)
				assert.Equal(t, 2, *resolved.ProcessedBy)
			}
		})
	}
}

func TestGetAccount(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)

	t.Run("Returns account", func(t *testing.T) {
		accountRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Account{ID: 1, Balance: 100.0}, nil)

		account, err := service.GetAccount(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 100.0, account.Balance)
	})

	t.Run("Missing account", func(t *testing.T) {
		accountRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		account, err := service.GetAccount(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, account)
	})
}

func TestGetWithdrawals(t *testing.T) {
	service, _, withdrawalRepo, _ := NewMock(t)

	t.Run("Returns account withdrawals", func(t *testing.T) {
		withdrawalRepo.EXPECT().GetWithdrawalsByAccountID(gomock.Any(), 1).Return([]domain.Withdrawal{
			{ID: 5, AccountID: 1, Amount: 50.0, Status: domain.PendingWithdrawalStatus},
		}, nil)

		withdrawals, err := service.GetWithdrawals(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, withdrawals, 1)
	})

	t.Run("Repo error", func(t *testing.T) {
		withdrawalRepo.EXPECT().GetWithdrawalsByAccountID(gomock.Any(), 1).Return(nil, errors.New("db error"))

		withdrawals, err := service.GetWithdrawals(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, withdrawals)
	})
}

func TestGetWithdrawalsByStatus(t *testing.T) {
	service, _, withdrawalRepo, _ := NewMock(t)

	t.Run("Admin lists pending queue", func(t *testing.T) {
		withdrawalRepo.EXPECT().GetWithdrawalsByStatus(gomock.Any(), "pending").Return([]domain.Withdrawal{
			{ID: 5, Status: domain.PendingWithdrawalStatus},
		}, nil)

		withdrawals, err := service.GetWithdrawalsByStatus(context.Background(), admin, "pending")
		assert.NoError(t, err)
		assert.Len(t, withdrawals, 1)
	})

	t.Run("Non-admin is rejected", func(t *testing.T) {
		withdrawals, err := service.GetWithdrawalsByStatus(context.Background(), domain.Principal{ID: 1}, "pending")
		assert.ErrorIs(t, err, ErrNotAdmin)
		assert.Nil(t, withdrawals)
	})
}
