package services

import (
	"context"

	"go.uber.org/zap"

	"elope/internal/models/db_models"
	"elope/internal/models/request_models"
	"elope/internal/repositories"
	"elope/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenMinter
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenMinter, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error("looking up account failed", zap.Error(err))
		return "", utils.ErrDatabaseError
	}

	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		a.logger.Error("signing token failed", zap.Error(err))
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error("looking up account failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		a.logger.Error("inserting account failed", zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}
