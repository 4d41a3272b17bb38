package testhelpers

import (
	"context"
	"time"

	"natanbot/domain/entities"
	"natanbot/events"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Get(ctx context.Context, guildID, userID int64) (*entities.Account, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy, as the file store does
	return args.Get(0).(*entities.Account).Clone(), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, accounts ...*entities.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.Account, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Account), args.Error(1)
}

// MockXPProfileRepository is a mock implementation of XPProfileRepository
type MockXPProfileRepository struct {
	mock.Mock
}

func (m *MockXPProfileRepository) Get(ctx context.Context, guildID, userID int64) (*entities.XPProfile, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p := *args.Get(0).(*entities.XPProfile)
	return &p, args.Error(1)
}

func (m *MockXPProfileRepository) Save(ctx context.Context, profile *entities.XPProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockXPProfileRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.XPProfile, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.XPProfile), args.Error(1)
}

// MockVIPGrantRepository is a mock implementation of VIPGrantRepository
type MockVIPGrantRepository struct {
	mock.Mock
}

func (m *MockVIPGrantRepository) Get(ctx context.Context, guildID, userID int64) (*entities.VIPGrant, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VIPGrant), args.Error(1)
}

func (m *MockVIPGrantRepository) Set(ctx context.Context, grant *entities.VIPGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockVIPGrantRepository) Clear(ctx context.Context, guildID, userID int64) (bool, error) {
	args := m.Called(ctx, guildID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVIPGrantRepository) ListAll(ctx context.Context) ([]*entities.VIPGrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VIPGrant), args.Error(1)
}

func (m *MockVIPGrantRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.VIPGrant, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VIPGrant), args.Error(1)
}

// MockEconomyConfigRepository is a mock implementation of EconomyConfigRepository
type MockEconomyConfigRepository struct {
	mock.Mock
}

func (m *MockEconomyConfigRepository) Get(ctx context.Context, guildID int64) (*entities.GuildEconomyConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildEconomyConfig), args.Error(1)
}

func (m *MockEconomyConfigRepository) Save(ctx context.Context, cfg *entities.GuildEconomyConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockXPConfigRepository is a mock implementation of XPConfigRepository
type MockXPConfigRepository struct {
	mock.Mock
}

func (m *MockXPConfigRepository) Get(ctx context.Context, guildID int64) (*entities.XPConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.XPConfig), args.Error(1)
}

func (m *MockXPConfigRepository) Save(ctx context.Context, cfg *entities.XPConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockVIPConfigRepository is a mock implementation of VIPConfigRepository
type MockVIPConfigRepository struct {
	mock.Mock
}

func (m *MockVIPConfigRepository) Get(ctx context.Context, guildID int64) (*entities.VIPConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VIPConfig), args.Error(1)
}

func (m *MockVIPConfigRepository) Save(ctx context.Context, cfg *entities.VIPConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockVIPStatusProvider is a mock implementation of VIPStatusProvider
type MockVIPStatusProvider struct {
	mock.Mock
}

func (m *MockVIPStatusProvider) IsVIP(ctx context.Context, guildID, userID int64) (bool, error) {
	args := m.Called(ctx, guildID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVIPStatusProvider) VIPExpiry(ctx context.Context, guildID, userID int64) (*time.Time, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// MockRoleManager is a mock implementation of RoleManager
type MockRoleManager struct {
	mock.Mock
}

func (m *MockRoleManager) AddRole(ctx context.Context, guildID, userID, roleID int64) error {
	args := m.Called(ctx, guildID, userID, roleID)
	return args.Error(0)
}

func (m *MockRoleManager) RemoveRole(ctx context.Context, guildID, userID, roleID int64) error {
	args := m.Called(ctx, guildID, userID, roleID)
	return args.Error(0)
}

// MockEmitter is a mock implementation of events.Emitter
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
