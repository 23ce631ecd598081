package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var accountCols = []string{"id", "login", "password_hash", "status", "balance", "withdrawn_total", "total_ads_completed", "points", "is_admin", "created_at"}

func TestRepository_FindByLogin(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:  "Existing login returns account",
			login: "user",
			mockSetup: func() {
				rows := pgxmock.NewRows(accountCols).
					AddRow(1, "user", "hash", "active", 100.0, 50.0, 3, 10, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE login = $1`)).
					WithArgs("user").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Account{
				ID:                1,
				Login:             "user",
				PasswordHash:      "hash",
				Status:            "active",
				Balance:           100.0,
				WithdrawnTotal:    50.0,
				TotalAdsCompleted: 3,
				Points:            10,
				IsAdmin:           false,
				CreatedAt:         now,
			},
		},
		{
			name:  "Unknown login returns nil",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE login = $1`)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE login = $1`)).
					WithArgs("user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.FindByLogin(ctx, tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, account)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		accountID int
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:      "Existing account",
			accountID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(accountCols).
					AddRow(1, "user", "hash", "pending", 0.0, 0.0, 0, 0, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Account{
				ID:           1,
				Login:        "user",
				PasswordHash: "hash",
				Status:       "pending",
				CreatedAt:    now,
			},
		},
		{
			name:      "Missing account returns nil",
			accountID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.FindByID(ctx, tt.accountID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, account)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		account   *domain.Account
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create account successfully",
			account: &domain.Account{
				Login:        "user",
				PasswordHash: "hash",
				Status:       domain.PendingAccountStatus,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (login, password_hash, status)`)).
					WithArgs("user", "hash", "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			account: &domain.Account{
				Login:        "user",
				PasswordHash: "hash",
				Status:       domain.PendingAccountStatus,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (login, password_hash, status)`)).
					WithArgs("user", "hash", "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.Create(ctx, tt.account)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, account.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Returns all accounts", func(t *testing.T) {
		rows := pgxmock.NewRows(accountCols).
			AddRow(1, "first", "hash1", "active", 10.0, 0.0, 1, 5, false, now).
			AddRow(2, "second", "hash2", "frozen", 20.0, 5.0, 2, 0, true, now)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
			WillReturnRows(rows)

		accounts, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, accounts, 2)
		assert.Equal(t, "first", accounts[0].Login)
		assert.Equal(t, "second", accounts[1].Login)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
			WillReturnError(errors.New("database error"))

		accounts, err := repo.List(ctx)
		assert.Error(t, err)
		assert.Nil(t, accounts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		accountID int
		status    string
		mockSetup func()
		expectErr bool
	}{
		{
			name:      "Update status successfully",
			accountID: 1,
			status:    domain.ActiveAccountStatus,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				mock.ExpectExec(regexp.QuoteMeta(`SET status = $1`)).
					WithArgs("active", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:      "Database error",
			accountID: 1,
			status:    domain.FrozenAccountStatus,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
				mock.ExpectExec(regexp.QuoteMeta(`SET status = $1`)).
					WithArgs("frozen", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(ctx, tt.accountID, tt.status)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreditForClick(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		accountID int
		amount    float64
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:      "Credit active account",
			accountID: 1,
			amount:    1.75,
			mockSetup: func() {
				rows := pgxmock.NewRows(accountCols).
					AddRow(1, "user", "hash", "active", 101.75, 0.0, 4, 0, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1, total_ads_completed = total_ads_completed + 1`)).
					WithArgs(1.75, 1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Account{
				ID:                1,
				Login:             "user",
				PasswordHash:      "hash",
				Status:            "active",
				Balance:           101.75,
				TotalAdsCompleted: 4,
				CreatedAt:         now,
			},
		},
		{
			name:      "Account not active returns nil",
			accountID: 2,
			amount:    1.75,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1, total_ads_completed = total_ads_completed + 1`)).
					WithArgs(1.75, 2).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:      "Database error",
			accountID: 1,
			amount:    1.75,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1, total_ads_completed = total_ads_completed + 1`)).
					WithArgs(1.75, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.CreditForClick(ctx, tt.accountID, tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, account)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		accountID int
		amount    float64
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:      "Reserve funds successfully",
			accountID: 1,
			amount:    50.0,
			mockSetup: func() {
				rows := pgxmock.NewRows(accountCols).
					AddRow(1, "user", "hash", "active", 50.0, 0.0, 0, 0, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND balance >= $1`)).
					WithArgs(50.0, 1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Account{
				ID:           1,
				Login:        "user",
				PasswordHash: "hash",
				Status:       "active",
				Balance:      50.0,
				CreatedAt:    now,
			},
		},
		{
			name:      "Insufficient balance returns nil",
			accountID: 1,
			amount:    500.0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND balance >= $1`)).
					WithArgs(500.0, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.Reserve(ctx, tt.accountID, tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, account)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Refund(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)

	t.Run("Refund successfully", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance + $1`)).
			WithArgs(30.0, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Refund(ctx, 1, 30.0)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance + $1`)).
			WithArgs(30.0, 1).
			WillReturnError(errors.New("database error"))

		err := repo.Refund(ctx, 1, 30.0)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ApplyWithdrawn(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)

	t.Run("Apply withdrawn total", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET withdrawn_total = withdrawn_total + $1`)).
			WithArgs(30.0, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.ApplyWithdrawn(ctx, 1, 30.0)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Deposit(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		accountID int
		amount    float64
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:      "Deposit successfully",
			accountID: 1,
			amount:    200.0,
			mockSetup: func() {
				rows := pgxmock.NewRows(accountCols).
					AddRow(1, "user", "hash", "active", 300.0, 0.0, 0, 0, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1`)).
					WithArgs(200.0, 1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Account{
				ID:           1,
				Login:        "user",
				PasswordHash: "hash",
				Status:       "active",
				Balance:      300.0,
				CreatedAt:    now,
			},
		},
		{
			name:      "Missing account returns nil",
			accountID: 99,
			amount:    200.0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1`)).
					WithArgs(200.0, 99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.Deposit(ctx, tt.accountID, tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, account)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddPoints(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)

	t.Run("Add points successfully", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET points = points + $1`)).
			WithArgs(25, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.AddPoints(ctx, 1, 25)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET points = points + $1`)).
			WithArgs(25, 1).
			WillReturnError(errors.New("database error"))

		err := repo.AddPoints(ctx, 1, 25)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ResetCounters(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)

	t.Run("Reset counters successfully", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET total_ads_completed = 0, points = 0`)).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.ResetCounters(ctx, 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
