package accountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Status, &a.Balance, &a.WithdrawnTotal, &a.TotalAdsCompleted, &a.Points, &a.IsAdmin, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Account, error) {
	query := `
        SELECT id, login, password_hash, status, balance, withdrawn_total, total_ads_completed, points, is_admin, created_at
        FROM accounts
        WHERE login = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, login))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account by login", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `
        SELECT id, login, password_hash, status, balance, withdrawn_total, total_ads_completed, points, is_admin, created_at
        FROM accounts
        WHERE id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (login, password_hash, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, account.Login, account.PasswordHash, account.Status).Scan(&account.ID)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT id, login, password_hash, status, balance, withdrawn_total, total_ads_completed, points, is_admin, created_at
        FROM accounts
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		err := rows.Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Status, &a.Balance, &a.WithdrawnTotal, &a.TotalAdsCompleted, &a.Points, &a.IsAdmin, &a.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, accountID int, status string) error {
	query := `
        UPDATE accounts
        SET status = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, accountID)
		if err != nil {
			zap.L().Error("can't update account status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// CreditForClick atomically adds the reward and bumps the ads counter.
// Returns nil when the account is missing or not active anymore: the guarded
// UPDATE is the per-account serialization point for concurrent clicks.
func (r *Repository) CreditForClick(ctx context.Context, accountID int, amount float64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1, total_ads_completed = total_ads_completed + 1
		WHERE id = $2 AND status = 'active'
		RETURNING id, login, password_hash, status, balance, withdrawn_total, total_ads_completed, points, is_admin, created_at
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, amount, accountID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't credit account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Reserve debits the requested amount. Returns nil when the balance is
// insufficient: the balance >= amount guard runs in the same statement, so two
// concurrent requests cannot both reserve the same funds.
func (r *Repository) Reserve(ctx context.Context, accountID int, amount float64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
		RETURNING id, login, password_hash, status, balance, withdrawn_total, total_ads_completed, points, is_admin, created_at
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, amount, accountID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't reserve funds", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Refund returns a rejected withdrawal's reservation to the balance.
func (r *Repository) Refund(ctx context.Context, accountID int, amount float64) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, amount, accountID)
	if err != nil {
		zap.L().Error("can't refund reservation", zap.Error(err))
		return err
	}
	return nil
}

// ApplyWithdrawn moves an approved withdrawal's reserved amount into the
// withdrawn total. The balance was already debited at request time.
func (r *Repository) ApplyWithdrawn(ctx context.Context, accountID int, amount float64) error {
	query := `
		UPDATE accounts
		SET withdrawn_total = withdrawn_total + $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, amount, accountID)
	if err != nil {
		zap.L().Error("can't apply withdrawn total", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Deposit(ctx context.Context, accountID int, amount float64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
		RETURNING id, login, password_hash, status, balance, withdrawn_total, total_ads_completed, points, is_admin, created_at
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, amount, accountID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't deposit to account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) AddPoints(ctx context.Context, accountID int, points int) error {
	query := `
		UPDATE accounts
		SET points = points + $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, points, accountID)
	if err != nil {
		zap.L().Error("can't add points", zap.Error(err))
		return err
	}
	return nil
}

// ResetCounters zeroes ad-derived fields, never financial balances.
func (r *Repository) ResetCounters(ctx context.Context, accountID int) error {
	query := `
		UPDATE accounts
		SET total_ads_completed = 0, points = 0
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't reset counters", zap.Error(err))
		return err
	}
	return nil
}
