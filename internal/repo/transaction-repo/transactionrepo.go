package transactionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a ledger entry. Rows are never updated or deleted.
func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, ad_id, type, earned_amount, click_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, transaction.AccountID, transaction.AdID, transaction.Type, transaction.EarnedAmount, transaction.ClickToken, transaction.CreatedAt).Scan(&transaction.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) FindByClickToken(ctx context.Context, clickToken string) (*domain.Transaction, error) {
	query := `
        SELECT id, account_id, ad_id, type, earned_amount, click_token, created_at
        FROM transactions
        WHERE click_token = $1
    `
	row := r.db.QueryRow(ctx, query, clickToken)

	var t domain.Transaction
	err := row.Scan(&t.ID, &t.AccountID, &t.AdID, &t.Type, &t.EarnedAmount, &t.ClickToken, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction by click token", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, account_id, ad_id, type, earned_amount, click_token, created_at
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.AccountID, &t.AdID, &t.Type, &t.EarnedAmount, &t.ClickToken, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
