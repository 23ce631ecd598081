package withdrawalrepo

import (
	"context"
	"time"

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

const withdrawalColumns = `id, account_id, amount, status, card_number, bank_name, notes, requested_at, processed_at, processed_by, payout_sent_at`

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (account_id, amount, status, card_number, bank_name, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, withdrawal.AccountID, withdrawal.Amount, withdrawal.Status, withdrawal.CardNumber, withdrawal.BankName, withdrawal.RequestedAt).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, withdrawalID)

	var wd domain.Withdrawal
	err := row.Scan(&wd.ID, &wd.AccountID, &wd.Amount, &wd.Status, &wd.CardNumber, &wd.BankName, &wd.Notes, &wd.RequestedAt, &wd.ProcessedAt, &wd.ProcessedBy, &wd.PayoutSentAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

// Resolve finalizes a pending withdrawal. Returns nil when the record is no
// longer pending: the status guard makes a second resolution a no-op at the
// database level.
func (r *Repository) Resolve(ctx context.Context, withdrawalID int, status string, processedBy int, notes string, processedAt time.Time) (*domain.Withdrawal, error) {
	query := `
		UPDATE withdrawals
		SET status = $1, processed_by = $2, notes = $3, processed_at = $4
		WHERE id = $5 AND status = 'pending'
		RETURNING ` + withdrawalColumns + `
	`
	row := r.db.QueryRow(ctx, query, status, processedBy, notes, processedAt, withdrawalID)

	var wd domain.Withdrawal
	err := row.Scan(&wd.ID, &wd.AccountID, &wd.Amount, &wd.Status, &wd.CardNumber, &wd.BankName, &wd.Notes, &wd.RequestedAt, &wd.ProcessedAt, &wd.ProcessedBy, &wd.PayoutSentAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't resolve withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) GetWithdrawalsByAccountID(ctx context.Context, accountID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE account_id = $1
        ORDER BY requested_at DESC
    `
	return r.queryWithdrawals(ctx, query, accountID)
}

func (r *Repository) GetWithdrawalsByStatus(ctx context.Context, status string) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE status = $1
        ORDER BY requested_at ASC
    `
	return r.queryWithdrawals(ctx, query, status)
}

// FindForPayout returns approved withdrawals not yet submitted to the gateway.
func (r *Repository) FindForPayout(ctx context.Context, limit uint32) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE status = 'approved' AND payout_sent_at IS NULL
        ORDER BY processed_at ASC
        LIMIT $1
    `
	return r.queryWithdrawals(ctx, query, int(limit))
}

func (r *Repository) MarkPayoutSent(ctx context.Context, withdrawalID int, sentAt time.Time) error {
	query := `
        UPDATE withdrawals
        SET payout_sent_at = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, sentAt, withdrawalID)
	if err != nil {
		zap.L().Error("can't mark payout sent", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) queryWithdrawals(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.AccountID, &wd.Amount, &wd.Status, &wd.CardNumber, &wd.BankName, &wd.Notes, &wd.RequestedAt, &wd.ProcessedAt, &wd.ProcessedBy, &wd.PayoutSentAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}
