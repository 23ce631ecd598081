package adservice

import (
	"context"
	"errors"

	"github.com/odelads/odelads/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=adservice.go -destination=adservice_mock.go -package=adservice

type Repo interface {
	FindByID(ctx context.Context, adID int) (*domain.Ad, error)
	FindActive(ctx context.Context) ([]domain.Ad, error)
	FindAll(ctx context.Context) ([]domain.Ad, error)
	Save(ctx context.Context, ad *domain.Ad) error
	Update(ctx context.Context, ad *domain.Ad) error
	Delete(ctx context.Context, adID int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrAdNotFound       = errors.New("ad not found")
	ErrNotAdmin         = errors.New("admin access required")
	ErrInvalidReward    = errors.New("reward amount must be positive")
	ErrMissingTargetURL = errors.New("target url is required")
)

func (s *Service) GetActiveAds(ctx context.Context) ([]domain.Ad, error) {
	ads, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get active ads", zap.Error(err))
		return nil, err
	}
	return ads, nil
}

func (s *Service) GetAllAds(ctx context.Context, principal domain.Principal) ([]domain.Ad, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}
	ads, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get ads", zap.Error(err))
		return nil, err
	}
	return ads, nil
}

func (s *Service) CreateAd(ctx context.Context, principal domain.Principal, ad *domain.Ad) (*domain.Ad, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}
	if ad.RewardAmount <= 0 {
		return nil, ErrInvalidReward
	}
	if ad.TargetURL == "" {
		return nil, ErrMissingTargetURL
	}

	if err := s.repo.Save(ctx, ad); err != nil {
		zap.L().Error("can't save ad: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("ad created", zap.Int("ad_id", ad.ID), zap.String("title", ad.Title))
	return ad, nil
}

func (s *Service) UpdateAd(ctx context.Context, principal domain.Principal, ad *domain.Ad) (*domain.Ad, error) {
	if !principal.IsAdmin {
		return nil, ErrNotAdmin
	}
	if ad.RewardAmount <= 0 {
		return nil, ErrInvalidReward
	}

	existing, err := s.repo.FindByID(ctx, ad.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrAdNotFound
	}

	if err := s.repo.Update(ctx, ad); err != nil {
		zap.L().Error("can't update ad: ", zap.Error(err))
		return nil, err
	}
	return ad, nil
}

func (s *Service) DeleteAd(ctx context.Context, principal domain.Principal, adID int) error {
	if !principal.IsAdmin {
		return ErrNotAdmin
	}

	existing, err := s.repo.FindByID(ctx, adID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAdNotFound
	}

	if err := s.repo.Delete(ctx, adID); err != nil {
		zap.L().Error("can't delete ad: ", zap.Error(err))
		return err
	}
	zap.L().Info("ad deleted", zap.Int("ad_id", adID))
	return nil
}
