package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tripweave/internal/config"
	"tripweave/internal/models/db_models"
	"tripweave/internal/models/request_models"
	"tripweave/internal/repositories"
	"tripweave/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	Exists(ctx context.Context, identity string) (bool, error)
	VerifyToken(token string) bool
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	cfg         *config.Config
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, cfg *config.Config, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (string, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Identity)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Email:        request.Identity,
		PasswordHash: hashedPassword,
		DisplayName:  request.DisplayName,
		Role:         "user",
	}

	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		return "", utils.ErrDatabaseError
	}

	return utils.CreateToken(newAccount.ID, newAccount.Role, a.tokenTTL())
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Identity)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role, a.tokenTTL())
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := a.accountRepo.UpdateLastLogin(ctx, account.ID, utils.NowUnixSeconds()); err != nil {
		a.logger.Warn("Failed to record last login", zap.Error(err))
	}

	return token, nil
}

func (a *AccountService) Exists(ctx context.Context, identity string) (bool, error) {
	account, err := a.accountRepo.FindByEmail(ctx, identity)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return account != nil, nil
}

func (a *AccountService) VerifyToken(token string) bool {
	_, err := utils.ValidateToken(token)
	return err == nil
}

func (a *AccountService) tokenTTL() time.Duration {
	return time.Duration(a.cfg.JWTTTLMinutes) * time.Minute
}
