package adrepo

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

func (r *Repository) FindByID(ctx context.Context, adID int) (*domain.Ad, error) {
	query := `
        SELECT id, title, reward_amount, duration_seconds, target_url, active, created_at
        FROM ads
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, adID)

	var ad domain.Ad
	err := row.Scan(&ad.ID, &ad.Title, &ad.RewardAmount, &ad.DurationSeconds, &ad.TargetURL, &ad.Active, &ad.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find ad", zap.Error(err))
		return nil, err
	}
	return &ad, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Ad, error) {
	query := `
        SELECT id, title, reward_amount, duration_seconds, target_url, active, created_at
        FROM ads
        WHERE active = TRUE
        ORDER BY created_at DESC
    `
	return r.queryAds(ctx, query)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Ad, error) {
	query := `
        SELECT id, title, reward_amount, duration_seconds, target_url, active, created_at
        FROM ads
        ORDER BY created_at DESC
    `
	return r.queryAds(ctx, query)
}

func (r *Repository) queryAds(ctx context.Context, query string) ([]domain.Ad, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get ads", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		var ad domain.Ad
		err := rows.Scan(&ad.ID, &ad.Title, &ad.RewardAmount, &ad.DurationSeconds, &ad.TargetURL, &ad.Active, &ad.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ad row", zap.Error(err))
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

func (r *Repository) Save(ctx context.Context, ad *domain.Ad) error {
	query := `
        INSERT INTO ads (title, reward_amount, duration_seconds, target_url, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, ad.Title, ad.RewardAmount, ad.DurationSeconds, ad.TargetURL, ad.Active).Scan(&ad.ID)
		if err != nil {
			zap.L().Error("can't save ad", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, ad *domain.Ad) error {
	query := `
        UPDATE ads
        SET title = $1, reward_amount = $2, duration_seconds = $3, target_url = $4, active = $5
        WHERE id = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, ad.Title, ad.RewardAmount, ad.DurationSeconds, ad.TargetURL, ad.Active, ad.ID)
		if err != nil {
			zap.L().Error("failed to update ad", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, adID int) error {
	query := `
        DELETE FROM ads
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, adID)
	if err != nil {
		zap.L().Error("can't delete ad", zap.Error(err))
		return err
	}
	return nil
}
