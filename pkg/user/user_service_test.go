package user

import (
	"context"
	"sync"
	"testing"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"
	"Experience-Club-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	m     sync.RWMutex
	users map[string]*entities.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*entities.User{}}
}

func (m *mockUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.users[user.ID.String()] = user
	return nil
}

func (m *mockUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.users[user.ID.String()] = user
	return nil
}

type mockCoinRepository struct {
	balance int
}

func (m *mockCoinRepository) GetUserBalance(context.Context, string) (int, error) {
	return m.balance, nil
}

func (m *mockCoinRepository) GetUserCoinStats(context.Context, string) (map[string]int, error) {
	return map[string]int{"balance": m.balance}, nil
}

func (m *mockCoinRepository) CreateCoinTransaction(context.Context, *entities.CoinTransaction) error {
	return nil
}

func (m *mockCoinRepository) GetUserCoinTransactions(context.Context, string, int, int) ([]*entities.CoinTransaction, int64, error) {
	return nil, 0, nil
}

func newTestService(repo *mockUserRepository, coins *mockCoinRepository) UserService {
	return NewUserService(repo, coins, jwt.NewJWTService())
}

func TestRegister_HashesPasswordAndDefaults(t *testing.T) {
	repo := newMockUserRepository()
	svc := newTestService(repo, &mockCoinRepository{})

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "jamie@example.com",
		Password: "supersecret",
		Name:     "Jamie",
	})
	require.NoError(t, err)

	stored := repo.users[res.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.Equal(t, "en", stored.Language)
	assert.Equal(t, "USD", stored.Currency)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	svc := newTestService(repo, &mockCoinRepository{})

	req := domain.RegisterRequest{Email: "jamie@example.com", Password: "supersecret", Name: "Jamie"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepository()
	svc := newTestService(repo, &mockCoinRepository{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email: "jamie@example.com", Password: "supersecret", Name: "Jamie",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email: "jamie@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	// unknown email yields the same error, not a user-exists oracle
	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email: "nobody@example.com", Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLogin_ReturnsToken(t *testing.T) {
	repo := newMockUserRepository()
	svc := newTestService(repo, &mockCoinRepository{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email: "jamie@example.com", Password: "supersecret", Name: "Jamie",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email: "jamie@example.com", Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestMe_IncludesCoinBalance(t *testing.T) {
	repo := newMockUserRepository()
	svc := newTestService(repo, &mockCoinRepository{balance: 420})

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email: "jamie@example.com", Password: "supersecret", Name: "Jamie",
	})
	require.NoError(t, err)

	profile, err := svc.Me(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, 420, profile.CoinBalance)

	_, err = svc.Me(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	repo := newMockUserRepository()
	svc := newTestService(repo, &mockCoinRepository{})

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email: "jamie@example.com", Password: "supersecret", Name: "Jamie",
	})
	require.NoError(t, err)

	err = svc.UpdateProfile(context.Background(), domain.UpdateProfileRequest{
		Language: "pt-BR",
		Currency: "EUR",
	}, res.ID)
	require.NoError(t, err)

	stored := repo.users[res.ID]
	assert.Equal(t, "Jamie", stored.Name)
	assert.Equal(t, "pt-BR", stored.Language)
	assert.Equal(t, "EUR", stored.Currency)
}
