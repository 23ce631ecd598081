package payout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/odelads/odelads/internal/config"
	"github.com/odelads/odelads/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/odelads/odelads/pkg/clients"
)

//go:generate mockgen -source=payout.go -destination=payout_mock.go -package=payout

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingWithdrawals sync.Map

type Repo interface {
	FindForPayout(ctx context.Context, limit uint32) ([]domain.Withdrawal, error)
	MarkPayoutSent(ctx context.Context, withdrawalID int, sentAt time.Time) error
}

type Request struct {
	WithdrawalID int     `json:"withdrawal_id"`
	Amount       float64 `json:"amount"`
	CardNumber   string  `json:"card_number"`
	BankName     string  `json:"bank_name"`
}

type Response struct {
	WithdrawalID int    `json:"withdrawal_id"`
	Status       string `json:"status"`
}

// Service submits approved withdrawals to the external payout gateway.
// Withdrawal status never changes here: terminal states are final, the
// dispatcher only stamps payout_sent_at.
type Service struct {
	url            string
	withdrawalRepo Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, withdrawalRepo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.PayoutAddress,
		withdrawalRepo: withdrawalRepo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout dispatcher")
			return
		case <-ticker.C:
			s.processWithdrawals(ctx)
		}
	}
}

func (s *Service) processWithdrawals(ctx context.Context) {
	withdrawals, err := s.withdrawalRepo.FindForPayout(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch withdrawals for payout", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, withdrawal := range withdrawals {
		withdrawal := withdrawal

		if _, loaded := processingWithdrawals.LoadOrStore(withdrawal.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingWithdrawals.Delete(withdrawal.ID)
				return s.handleWithdrawal(ctx, withdrawal)
			})
			if err != nil {
				processingWithdrawals.Delete(withdrawal.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching payouts", zap.Error(err))
	}
}

func (s *Service) handleWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	url := s.url + "/api/payouts"
	body, err := json.Marshal(Request{
		WithdrawalID: withdrawal.ID,
		Amount:       withdrawal.Amount,
		CardNumber:   withdrawal.CardNumber,
		BankName:     withdrawal.BankName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payout request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, headers, body)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to dispatch withdrawal %d after %d retries: %w", withdrawal.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(withdrawal, respHeaders, attempt)
			case http.StatusServiceUnavailable:
				zap.L().Warn("Payout gateway unavailable, retrying", zap.Int("withdrawalID", withdrawal.ID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("payout gateway unavailable for withdrawal %d after %d retries", withdrawal.ID, maxRetries)

			case http.StatusOK:
				return s.confirmPayout(ctx, withdrawal, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("withdrawalID", withdrawal.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) confirmPayout(ctx context.Context, withdrawal domain.Withdrawal, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.WithdrawalID != withdrawal.ID {
		return fmt.Errorf("withdrawal id mismatch: expected %d, got %d", withdrawal.ID, response.WithdrawalID)
	}

	if err := s.withdrawalRepo.MarkPayoutSent(ctx, withdrawal.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to mark payout sent for withdrawal %d: %w", withdrawal.ID, err)
	}

	zap.L().Info("Payout dispatched",
		zap.Int("withdrawalID", withdrawal.ID),
		zap.Float64("amount", withdrawal.Amount),
		zap.String("gatewayStatus", response.Status),
	)
	return nil
}

func (s *Service) handleRateLimit(withdrawal domain.Withdrawal, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("withdrawalID", withdrawal.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
