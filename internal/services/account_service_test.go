package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elope/internal/models/db_models"
	"elope/internal/models/request_models"
	"elope/pkg/utils"
)

type mockAccountRepo struct {
	byEmail map[string]*db_models.Account
	findErr error
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (m *mockAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	m.byEmail[account.Email] = account
	return nil
}

func (m *mockAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	for _, account := range m.byEmail {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (m *mockAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byEmail[email], nil
}

func newAccountServiceForTest(repo *mockAccountRepo) AccountServiceInterface {
	tokens := utils.NewTokenMinter("test-secret", time.Hour)
	return NewAccountService(repo, tokens, zap.NewNop())
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newMockAccountRepo()
	svc := newAccountServiceForTest(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Password:    "hunter22",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.byEmail["ada@example.com"])
	// never the plaintext
	assert.NotEqual(t, "hunter22", repo.byEmail["ada@example.com"].PasswordHash)

	token, err := svc.Login(request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	}, context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginFailures(t *testing.T) {
	repo := newMockAccountRepo()
	svc := newAccountServiceForTest(repo)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Password:    "hunter22",
	}))

	_, err := svc.Login(request_models.LoginRequest{Email: "nobody@example.com", Password: "hunter22"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	_, err = svc.Login(request_models.LoginRequest{Email: "ada@example.com", Password: "wrong-pass"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	repo.findErr = errors.New("connection reset")
	_, err = svc.Login(request_models.LoginRequest{Email: "ada@example.com", Password: "hunter22"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newMockAccountRepo()
	svc := newAccountServiceForTest(repo)

	req := request_models.SignUpRequest{DisplayName: "Ada", Email: "ada@example.com", Password: "hunter22"}
	require.NoError(t, svc.CreateAccount(context.Background(), req))

	err := svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}
