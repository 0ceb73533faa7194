// Package mockrepo provides hand-written testify mocks for the domain
// repository interfaces.
package mockrepo

import (
	"context"

	"rangriti/internal/domain/entity"
	"rangriti/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager. When Factory
// is set, Execute runs the callback against it and propagates the
// callback's error, mirroring a real commit/rollback outcome.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if m.Factory != nil {
		if err := fn(m.Factory); err != nil {
			return err
		}
	}

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock

	Users         *MockUserRepository
	Auths         *MockAuthRepository
	RefreshTokens *MockRefreshTokenRepository
	Products      *MockProductRepository
	Carts         *MockCartRepository
	Orders        *MockOrderRepository
	Workshops     *MockWorkshopRepository
}

// NewMockRepositoryFactory builds a factory with every repository mocked.
func NewMockRepositoryFactory() *MockRepositoryFactory {
	return &MockRepositoryFactory{
		Users:         &MockUserRepository{},
		Auths:         &MockAuthRepository{},
		RefreshTokens: &MockRefreshTokenRepository{},
		Products:      &MockProductRepository{},
		Carts:         &MockCartRepository{},
		Orders:        &MockOrderRepository{},
		Workshops:     &MockWorkshopRepository{},
	}
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository { return m.Users }

func (m *MockRepositoryFactory) AuthRepo() repository.AuthRepository { return m.Auths }

func (m *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return m.RefreshTokens
}

func (m *MockRepositoryFactory) ProductRepo() repository.ProductRepository { return m.Products }

func (m *MockRepositoryFactory) CartRepo() repository.CartRepository { return m.Carts }

func (m *MockRepositoryFactory) OrderRepo() repository.OrderRepository { return m.Orders }

func (m *MockRepositoryFactory) WorkshopRepo() repository.WorkshopRepository { return m.Workshops }

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockAuthRepository mocks repository.AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Authentication), args.Error(1)
}

func (m *MockAuthRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	args := m.Called(ctx, auth)

	return args.Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)

	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	args := m.Called(ctx, id, qty)

	return args.Error(0)
}

// MockCartRepository mocks repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListLines(ctx context.Context, buyerID uuid.UUID) ([]*entity.CartLine, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CartLine), args.Error(1)
}

func (m *MockCartRepository) UpsertLine(ctx context.Context, line *entity.CartLine) error {
	args := m.Called(ctx, line)

	return args.Error(0)
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, buyerID, productID uuid.UUID, qty int) error {
	args := m.Called(ctx, buyerID, productID, qty)

	return args.Error(0)
}

func (m *MockCartRepository) RemoveLine(ctx context.Context, buyerID, productID uuid.UUID) error {
	args := m.Called(ctx, buyerID, productID)

	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, buyerID uuid.UUID) error {
	args := m.Called(ctx, buyerID)

	return args.Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, buyerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ListByArtist(ctx context.Context, artistID uuid.UUID, page, limit int) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, artistID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

// MockWorkshopRepository mocks repository.WorkshopRepository.
type MockWorkshopRepository struct {
	mock.Mock
}

func (m *MockWorkshopRepository) Create(ctx context.Context, workshop *entity.Workshop) error {
	args := m.Called(ctx, workshop)

	return args.Error(0)
}

func (m *MockWorkshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Workshop), args.Error(1)
}

func (m *MockWorkshopRepository) ListAll(ctx context.Context) ([]*entity.Workshop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Workshop), args.Error(1)
}

func (m *MockWorkshopRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*entity.Workshop, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Workshop), args.Error(1)
}
