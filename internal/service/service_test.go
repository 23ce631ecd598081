package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/odelads/odelads/internal/pg"
	"github.com/odelads/odelads/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	txManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, txManager)
	services := New(repos, txManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AdService)
	assert.NotNil(t, services.ClickService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.AdminService)
}
