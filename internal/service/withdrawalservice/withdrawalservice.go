package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=withdrawalservice.go -destination=withdrawalservice_mock.go -package=withdrawalservice

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	Reserve(ctx context.Context, accountID int, amount float64) (*domain.Account, error)
	Refund(ctx context.Context, accountID int, amount float64) error
	ApplyWithdrawn(ctx context.Context, accountID int, amount float64) error
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error)
	Resolve(ctx context.Context, withdrawalID int, status string, processedBy int, notes string, processedAt time.Time) (*domain.Withdrawal, error)
	GetWithdrawalsByAccountID(ctx context.Context, accountID int) ([]domain.Withdrawal, error)
	GetWithdrawalsByStatus(ctx context.Context, status string) ([]domain.Withdrawal, error)
}

type Service struct {
	accountRepo    AccountRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
}

func New(accountRepo AccountRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
	}
}

var (
	ErrInvalidAmount       = errors.New("withdrawal amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNotActive    = errors.New("account is not active")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrAlreadyResolved     = errors.New("withdrawal already resolved")
	ErrInvalidDecision     = errors.New("decision must be approved or rejected")
	ErrNotAdmin            = errors.New("admin access required")
)

// RequestWithdrawal reserves the requested amount immediately: the balance is
// debited at request time, refunded on rejection and moved into the withdrawn
// total on approval.
func (s *Service) RequestWithdrawal(ctx context.Context, accountID int, amount float64, cardNumber, bankName string) (*domain.Withdrawal, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.Status != domain.ActiveAccountStatus {
		return nil, ErrAccountNotActive
	}

	var withdrawal *domain.Withdrawal
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reserved, err := s.accountRepo.Reserve(ctx, accountID, amount)
		if err != nil {
			return err
		}
		if reserved == nil {
			return ErrInsufficientBalance
		}

		withdrawal = &domain.Withdrawal{
			AccountID:   accountID,
			Amount:      amount,
			Status:      domain.PendingWithdrawalStatus,
			CardNumber:  cardNumber,
			BankName:    bankName,
			RequestedAt: time.Now(),
		}
		if _, err := s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal); err != nil {
			zap.L().Error("failed to create withdrawal record", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("account_id", accountID),
		zap.Float64("amount", amount),
	)
	return withdrawal, nil
}

// ResolveWithdrawal finalizes a pending request exactly once. A second
// resolution of the same record fails and leaves the first decision intact.
func (s *Service) ResolveWithdrawal(ctx context.Context, principal domain.Principal, withdrawalID int, decision, notes string) (*domain.Withdrawal, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}
	if decision != domain.ApprovedWithdrawalStatus && decision != domain.RejectedWithdrawalStatus {
		return nil, ErrInvalidDecision
	}

	existing, err := s.withdrawalRepo.FindByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrWithdrawalNotFound
	}
	if existing.Status != domain.PendingWithdrawalStatus {
		return nil, ErrAlreadyResolved
	}

	var resolved *domain.Withdrawal
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		resolved, err = s.withdrawalRepo.Resolve(ctx, withdrawalID, decision, principal.ID, notes, time.Now())
		if err != nil {
			return err
		}
		if resolved == nil {
			return ErrAlreadyResolved
		}

		switch decision {
		case domain.ApprovedWithdrawalStatus:
			return s.accountRepo.ApplyWithdrawn(ctx, resolved.AccountID, resolved.Amount)
		case domain.RejectedWithdrawalStatus:
			return s.accountRepo.Refund(ctx, resolved.AccountID, resolved.Amount)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to resolve withdrawal", zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal resolved",
		zap.Int("withdrawal_id", withdrawalID),
		zap.String("decision", decision),
		zap.Int("processed_by", principal.ID),
	)
	return resolved, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, accountID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) GetWithdrawalsByStatus(ctx context.Context, principal domain.Principal, status string) ([]domain.Withdrawal, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
