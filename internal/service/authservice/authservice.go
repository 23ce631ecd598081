package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/odelads/odelads/internal/domain"
	"github.com/odelads/odelads/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates an account in pending status. Only an administrator can
// activate it, so a fresh account cannot earn until reviewed.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.Account, error) {
	existingAccount, err := s.accountRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existingAccount != nil {
		zap.L().Info("account already exists, login: ", zap.String("login", login))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	account := &domain.Account{
		Login:        login,
		PasswordHash: hashedPassword,
		Status:       domain.PendingAccountStatus,
	}
	newAccount, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("login", login))
	return newAccount, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByLogin(ctx, login)
	if err != nil || account == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("account successfully authenticated", zap.String("login", login))
	return account, nil
}

func (s *Service) GenerateToken(userID int, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
