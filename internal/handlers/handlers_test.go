package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/odelads/odelads/docs"
	"github.com/odelads/odelads/internal/pg"
	"github.com/odelads/odelads/internal/repo"
	"github.com/odelads/odelads/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	txManager := pg.NewMockTXManager(ctrl)

	services := service.New(repo.New(mockDB, txManager), txManager)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockAdsHandler := NewMockAdsHandler(ctrl)
	mockWithdrawalsHandler := NewMockWithdrawalsHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdsHandler.EXPECT().GetAds(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdsHandler.EXPECT().Click(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalsHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalsHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalsHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalsHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		AdsHandler:         mockAdsHandler,
		WithdrawalsHandler: mockWithdrawalsHandler,
		AdminHandler:       mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/ads", http.StatusUnauthorized},
		{"POST", "/api/user/ads/1/click", http.StatusUnauthorized},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"POST", "/api/user/balance/withdraw", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"GET", "/api/admin/accounts", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
