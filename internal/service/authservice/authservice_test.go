package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockRepo(ctrl)
	service := New(accountRepo, &auth.HashService{}, &auth.JWTService{})
	defer ctrl.Finish()
	return service, accountRepo
}

func TestRegister(t *testing.T) {
	service, accountRepo := NewMock(t)
	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Register account successfully",
			login:    "user",
			password: "password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.Account) (*domain.Account, error) {
						assert.Equal(t, domain.PendingAccountStatus, account.Status)
						assert.NotEqual(t, "password", account.PasswordHash)
						account.ID = 1
						return account, nil
					})
			},
			expectedError: nil,
		},
		{
			name:     "Login already taken",
			login:    "user",
			password: "password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(&domain.Account{ID: 1, Login: "user"}, nil)
			},
			expectedError: errors.New("username already taken"),
		},
		{
			name:     "Repo error on lookup",
			login:    "user",
			password: "password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, account.ID)
				assert.Equal(t, domain.PendingAccountStatus, account.Status)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, accountRepo := NewMock(t)

	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword("password")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Authenticate successfully",
			login:    "user",
			password: "password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(&domain.Account{
					ID:           1,
					Login:        "user",
					PasswordHash: hash,
					Status:       domain.ActiveAccountStatus,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown login",
			login:    "ghost",
			password: "password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedError: errors.New("invalid credentials"),
		},
		{
			name:     "Wrong password",
			login:    "user",
			password: "wrong",
			prepareMock: func() {
				accountRepo.EXPECT().FindByLogin(gomock.Any(), "user").Return(&domain.Account{
					ID:           1,
					Login:        "user",
					PasswordHash: hash,
				}, nil)
			},
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "user", account.Login)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken(1, false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	jwtService := &auth.JWTService{}
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.False(t, claims.IsAdmin)

	adminToken, err := service.GenerateToken(2, true)
	assert.NoError(t, err)

	claims, err = jwtService.ValidateToken(adminToken)
	assert.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
	assert.True(t, claims.IsAdmin)
}
