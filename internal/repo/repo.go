package repo

import (
	"github.com/odelads/odelads/internal/pg"
	accountrepo "github.com/odelads/odelads/internal/repo/account-repo"
	adrepo "github.com/odelads/odelads/internal/repo/ad-repo"
	transactionrepo "github.com/odelads/odelads/internal/repo/transaction-repo"
	withdrawalrepo "github.com/odelads/odelads/internal/repo/withdrawal-repo"
)

type Repositories struct {
	AccountRepo     *accountrepo.Repository
	AdRepo          *adrepo.Repository
	TransactionRepo *transactionrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	adRepo := adrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)

	return &Repositories{
		AccountRepo:     accountRepo,
		AdRepo:          adRepo,
		TransactionRepo: transactionRepo,
		WithdrawalRepo:  withdrawalRepo,
	}
}
