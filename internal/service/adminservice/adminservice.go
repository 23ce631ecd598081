package adminservice

import (
	"context"
	"errors"
	"time"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=adminservice.go -destination=adminservice_mock.go -package=adminservice

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	UpdateStatus(ctx context.Context, accountID int, status string) error
	Deposit(ctx context.Context, accountID int, amount float64) (*domain.Account, error)
	AddPoints(ctx context.Context, accountID int, points int) error
	ResetCounters(ctx context.Context, accountID int) error
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Points are clamped per operation, not in total.
const maxPointsPerAward = 100

var (
	ErrNotAdmin          = errors.New("admin access required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidTransition = errors.New("status transition not permitted")
	ErrInvalidAmount     = errors.New("deposit amount must be positive")
)

// legalTransitions: pending->active, active<->frozen.
var legalTransitions = map[string][]string{
	domain.PendingAccountStatus: {domain.ActiveAccountStatus},
	domain.ActiveAccountStatus:  {domain.FrozenAccountStatus},
	domain.FrozenAccountStatus:  {domain.ActiveAccountStatus},
}

func (s *Service) ListAccounts(ctx context.Context, principal domain.Principal) ([]domain.Account, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) SetAccountStatus(ctx context.Context, principal domain.Principal, accountID int, status string) (*domain.Account, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	allowed := false
	for _, next := range legalTransitions[account.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		zap.L().Info("status transition rejected",
			zap.Int("account_id", accountID),
			zap.String("from", account.Status),
			zap.String("to", status),
		)
		return nil, ErrInvalidTransition
	}

	if err := s.accountRepo.UpdateStatus(ctx, accountID, status); err != nil {
		return nil, err
	}
	account.Status = status

	zap.L().Info("account status updated",
		zap.Int("account_id", accountID),
		zap.String("status", status),
		zap.Int("admin_id", principal.ID),
	)
	return account, nil
}

// Deposit credits the account manually and appends a deposit row to the
// transaction trail so admin credits stay auditable.
func (s *Service) Deposit(ctx context.Context, principal domain.Principal, accountID int, amount float64) (*domain.Account, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.accountRepo.Deposit(ctx, accountID, amount)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		transaction := &domain.Transaction{
			AccountID:    accountID,
			Type:         domain.DepositTransaction,
			EarnedAmount: amount,
			CreatedAt:    time.Now(),
		}
		if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to deposit", zap.Error(err))
		return nil, err
	}

	zap.L().Info("manual deposit",
		zap.Int("account_id", accountID),
		zap.Float64("amount", amount),
		zap.Int("admin_id", principal.ID),
	)
	return account, nil
}

func (s *Service) AwardPoints(ctx context.Context, principal domain.Principal, accountID int, points int) error {
	if !principal.IsAdmin {
		return ErrNotAdmin
	}
	if points <= 0 {
		return ErrInvalidAmount
	}
	if points > maxPointsPerAward {
		points = maxPointsPerAward
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if err := s.accountRepo.AddPoints(ctx, accountID, points); err != nil {
		return err
	}
	zap.L().Info("points awarded", zap.Int("account_id", accountID), zap.Int("points", points))
	return nil
}

// ResetCounters clears ad-derived fields only. Balances are never reset.
func (s *Service) ResetCounters(ctx context.Context, principal domain.Principal, accountID int) error {
	if !principal.IsAdmin {
		return ErrNotAdmin
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if err := s.accountRepo.ResetCounters(ctx, accountID); err != nil {
		return err
	}
	zap.L().Info("counters reset", zap.Int("account_id", accountID), zap.Int("admin_id", principal.ID))
	return nil
}
