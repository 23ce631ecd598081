package clickservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=clickservice.go -destination=clickservice_mock.go -package=clickservice

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	CreditForClick(ctx context.Context, accountID int, amount float64) (*domain.Account, error)
}

type AdRepo interface {
	FindByID(ctx context.Context, adID int) (*domain.Ad, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByClickToken(ctx context.Context, clickToken string) (*domain.Transaction, error)
	FindByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error)
}

type Service struct {
	accountRepo     AccountRepo
	adRepo          AdRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(accountRepo AccountRepo, adRepo AdRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		adRepo:          adRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrAccountNotActive = errors.New("account is not active")
	ErrAdNotFound       = errors.New("ad not found")
)

type ClickResult struct {
	Balance           float64
	EarnedAmount      float64
	TotalAdsCompleted int
	Replayed          bool
}

// ProcessClick credits the ad reward to the account and appends exactly one
// transaction record. A repeated click token replays the original result
// without crediting again.
func (s *Service) ProcessClick(ctx context.Context, accountID int, adID int, clickToken *string) (*ClickResult, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.Status != domain.ActiveAccountStatus {
		zap.L().Info("click rejected, account not active", zap.Int("account_id", accountID), zap.String("status", account.Status))
		return nil, ErrAccountNotActive
	}

	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad == nil || !ad.Active {
		return nil, ErrAdNotFound
	}

	if clickToken != nil && *clickToken != "" {
		existing, err := s.transactionRepo.FindByClickToken(ctx, *clickToken)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			zap.L().Info("click token replayed", zap.String("click_token", *clickToken))
			return &ClickResult{
				Balance:           account.Balance,
				EarnedAmount:      existing.EarnedAmount,
				TotalAdsCompleted: account.TotalAdsCompleted,
				Replayed:          true,
			}, nil
		}
	}

	var result *ClickResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		credited, err := s.accountRepo.CreditForClick(ctx, accountID, ad.RewardAmount)
		if err != nil {
			return err
		}
		if credited == nil {
			return ErrAccountNotActive
		}

		transaction := &domain.Transaction{
			AccountID:    accountID,
			AdID:         &ad.ID,
			Type:         domain.AdClickTransaction,
			EarnedAmount: ad.RewardAmount,
			ClickToken:   clickToken,
			CreatedAt:    time.Now(),
		}
		if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}

		result = &ClickResult{
			Balance:           credited.Balance,
			EarnedAmount:      ad.RewardAmount,
			TotalAdsCompleted: credited.TotalAdsCompleted,
		}
		return nil
	})
	if err != nil {
		// Two concurrent clicks with the same token can both pass the
		// pre-check; the loser hits the unique index on click_token and
		// gets the stored result instead of an error.
		if clickToken != nil && isDuplicateClickToken(err) {
			existing, findErr := s.transactionRepo.FindByClickToken(ctx, *clickToken)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				zap.L().Info("click token replayed", zap.String("click_token", *clickToken))
				return &ClickResult{
					Balance:           account.Balance,
					EarnedAmount:      existing.EarnedAmount,
					TotalAdsCompleted: account.TotalAdsCompleted,
					Replayed:          true,
				}, nil
			}
		}
		zap.L().Error("failed to process click", zap.Error(err))
		return nil, err
	}

	zap.L().Info("click processed",
		zap.Int("account_id", accountID),
		zap.Int("ad_id", adID),
		zap.Float64("earned", result.EarnedAmount),
	)
	return result, nil
}

func isDuplicateClickToken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "click_token")
}

func (s *Service) GetTransactions(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
