package withdrawals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/dto"
	withdrawalservice "github.com/odelads/odelads/internal/service/withdrawalservice"
	"github.com/odelads/odelads/pkg/auth"
)

func NewMock(t *testing.T) (*WithdrawalsHandler, *MockService, *MockTransactionService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	transactionService := NewMockTransactionService(ctrl)
	handler := New(service, transactionService)
	defer ctrl.Finish()
	return handler, service, transactionService
}

func authCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), 1).Return(&domain.Account{
					ID:                1,
					Balance:           100.50,
					WithdrawnTotal:    50.25,
					TotalAdsCompleted: 3,
					Points:            10,
					Status:            domain.ActiveAccountStatus,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Current:           100.50,
				Withdrawn:         50.25,
				TotalAdsCompleted: 3,
				Points:            10,
				Status:            "active",
			},
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), 1).Return(nil, withdrawalservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful withdrawal request",
			body: `{"amount":50,"card_number":"4561261212345467","bank_name":"First Bank"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, 50.0, "4561261212345467", "First Bank").Return(&domain.Withdrawal{
					ID:          5,
					AccountID:   1,
					Amount:      50.0,
					Status:      domain.PendingWithdrawalStatus,
					CardNumber:  "4561261212345467",
					BankName:    "First Bank",
					RequestedAt: now,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{bad json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Card number fails Luhn check",
			body:         `{"amount":50,"card_number":"1234567890123456","bank_name":"First Bank"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid amount",
			body: `{"amount":-5,"card_number":"4561261212345467","bank_name":"First Bank"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, -5.0, "4561261212345467", "First Bank").Return(nil, withdrawalservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":500,"card_number":"4561261212345467","bank_name":"First Bank"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, 500.0, "4561261212345467", "First Bank").Return(nil, withdrawalservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Account not active",
			body: `{"amount":50,"card_number":"4561261212345467","bank_name":"First Bank"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, 50.0, "4561261212345467", "First Bank").Return(nil, withdrawalservice.ErrAccountNotActive)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Internal server error",
			body: `{"amount":50,"card_number":"4561261212345467","bank_name":"First Bank"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, 50.0, "4561261212345467", "First Bank").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/balance/withdraw", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.Withdraw(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.ID)
				assert.Equal(t, "pending", body.Status)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returns withdrawal history",
			prepareMock: func() {
				service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return([]domain.Withdrawal{
					{ID: 5, AccountID: 1, Amount: 50.0, Status: domain.PendingWithdrawalStatus, RequestedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No withdrawals",
			prepareMock: func() {
				service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/withdrawals", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.GetWithdrawals(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, _, transactionService := NewMock(t)
	now := time.Now()
	adID := 3

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returns transaction trail",
			prepareMock: func() {
				transactionService.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: 10, AccountID: 1, AdID: &adID, Type: domain.AdClickTransaction, EarnedAmount: 1.75, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				transactionService.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				transactionService.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.GetTransactions(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
