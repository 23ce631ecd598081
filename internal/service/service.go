package service

import (
	pkgauth "github.com/odelads/odelads/pkg/auth"

	"github.com/odelads/odelads/internal/pg"
	"github.com/odelads/odelads/internal/repo"
	adminservice "github.com/odelads/odelads/internal/service/adminservice"
	adservice "github.com/odelads/odelads/internal/service/adservice"
	authservice "github.com/odelads/odelads/internal/service/authservice"
	clickservice "github.com/odelads/odelads/internal/service/clickservice"
	withdrawalservice "github.com/odelads/odelads/internal/service/withdrawalservice"
)

type Services struct {
	AuthService       *authservice.Service
	AdService         *adservice.Service
	ClickService      *clickservice.Service
	WithdrawalService *withdrawalservice.Service
	AdminService      *adminservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.AccountRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	adService := adservice.New(repo.AdRepo)
	clickService := clickservice.New(repo.AccountRepo, repo.AdRepo, repo.TransactionRepo, txManager)
	withdrawalService := withdrawalservice.New(repo.AccountRepo, repo.WithdrawalRepo, txManager)
	adminService := adminservice.New(repo.AccountRepo, repo.TransactionRepo, txManager)

	return &Services{
		AuthService:       authService,
		AdService:         adService,
		ClickService:      clickService,
		WithdrawalService: withdrawalService,
		AdminService:      adminService,
	}
}
