package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"natanbot/domain/entities"
	"natanbot/domain/testhelpers"
	"natanbot/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vipFixture struct {
	grants  *testhelpers.MockVIPGrantRepository
	configs *testhelpers.MockVIPConfigRepository
	roles   *testhelpers.MockRoleManager
	emitter *testhelpers.MockEmitter
	service *vipService
	now     time.Time
}

func newVIPFixture() *vipFixture {
	f := &vipFixture{
		grants:  new(testhelpers.MockVIPGrantRepository),
		configs: new(testhelpers.MockVIPConfigRepository),
		roles:   new(testhelpers.MockRoleManager),
		emitter: new(testhelpers.MockEmitter),
		now:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	f.service = NewVIPService(f.grants, f.configs, f.roles, f.emitter).(*vipService)
	f.service.now = func() time.Time { return f.now }
	return f
}

func vipConfigWithRole(guildID, roleID int64) *entities.VIPConfig {
	cfg := entities.DefaultVIPConfig(guildID)
	cfg.RoleID = roleID
	return cfg
}

func TestVIPService_IsVIP(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	f.grants.On("Get", ctx, testGuild, int64(1)).Return(&entities.VIPGrant{ExpiresAt: f.now.Add(time.Hour)}, nil)
	f.grants.On("Get", ctx, testGuild, int64(2)).Return(&entities.VIPGrant{ExpiresAt: f.now}, nil)
	f.grants.On("Get", ctx, testGuild, int64(3)).Return(nil, nil)

	active, err := f.service.IsVIP(ctx, testGuild, 1)
	require.NoError(t, err)
	assert.True(t, active)

	// Expiry is exclusive
	expired, err := f.service.IsVIP(ctx, testGuild, 2)
	require.NoError(t, err)
	assert.False(t, expired)

	absent, err := f.service.IsVIP(ctx, testGuild, 3)
	require.NoError(t, err)
	assert.False(t, absent)

	expiry, err := f.service.VIPExpiry(ctx, testGuild, 2)
	require.NoError(t, err)
	assert.Nil(t, expiry)
}

func TestVIPService_Grant(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	f.grants.On("Set", ctx, mock.MatchedBy(func(g *entities.VIPGrant) bool {
		return g.UserID == 7 && g.GrantedBy == 9 && g.ExpiresAt.Equal(f.now.Add(30*24*time.Hour))
	})).Return(nil)
	f.configs.On("Get", ctx, testGuild).Return(vipConfigWithRole(testGuild, 555), nil)
	f.roles.On("AddRole", ctx, testGuild, int64(7), int64(555)).Return(nil)
	f.emitter.On("Emit", ctx, mock.AnythingOfType("events.VIPGrantedEvent")).Return()

	grant, err := f.service.Grant(ctx, testGuild, 7, 9, 30)

	require.NoError(t, err)
	assert.Equal(t, f.now, grant.GrantedAt)
	f.grants.AssertExpectations(t)
	f.roles.AssertExpectations(t)
	f.emitter.AssertExpectations(t)
}

func TestVIPService_Grant_RoleFailureKeepsGrant(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	f.grants.On("Set", ctx, mock.Anything).Return(nil)
	f.configs.On("Get", ctx, testGuild).Return(vipConfigWithRole(testGuild, 555), nil)
	f.roles.On("AddRole", ctx, testGuild, int64(7), int64(555)).Return(errors.New("missing permissions"))
	f.emitter.On("Emit", ctx, mock.Anything).Return()

	grant, err := f.service.Grant(ctx, testGuild, 7, 9, 1)

	require.NoError(t, err)
	assert.NotNil(t, grant)
}

func TestVIPService_Grant_RejectsNonPositiveDays(t *testing.T) {
	f := newVIPFixture()

	_, err := f.service.Grant(context.Background(), testGuild, 7, 9, 0)

	var verr *entities.ValidationError
	assert.True(t, errors.As(err, &verr))
	f.grants.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestVIPService_Revoke(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	f.grants.On("Clear", ctx, testGuild, int64(7)).Return(true, nil)
	f.grants.On("Clear", ctx, testGuild, int64(8)).Return(false, nil)
	f.configs.On("Get", ctx, testGuild).Return(vipConfigWithRole(testGuild, 555), nil)
	f.roles.On("RemoveRole", ctx, testGuild, int64(7), int64(555)).Return(nil)

	removed, err := f.service.Revoke(ctx, testGuild, 7)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.service.Revoke(ctx, testGuild, 8)
	require.NoError(t, err)
	assert.False(t, removed)

	f.roles.AssertExpectations(t)
	f.roles.AssertNumberOfCalls(t, "RemoveRole", 1)
}

func TestVIPService_ListActive_SortedByExpiry(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	f.grants.On("ListByGuild", ctx, testGuild).Return([]*entities.VIPGrant{
		{UserID: 1, ExpiresAt: f.now.Add(72 * time.Hour)},
		{UserID: 2, ExpiresAt: f.now.Add(-time.Hour)},
		{UserID: 3, ExpiresAt: f.now.Add(time.Hour)},
	}, nil)

	active, err := f.service.ListActive(ctx, testGuild)

	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, int64(3), active[0].UserID)
	assert.Equal(t, int64(1), active[1].UserID)
}

func TestVIPService_SweepExpired(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()
	otherGuild := int64(200)

	f.grants.On("ListAll", ctx).Return([]*entities.VIPGrant{
		{GuildID: testGuild, UserID: 1, ExpiresAt: f.now.Add(-time.Minute)},
		{GuildID: testGuild, UserID: 2, ExpiresAt: f.now.Add(time.Hour)},
		{GuildID: otherGuild, UserID: 3, ExpiresAt: f.now.Add(-24 * time.Hour)},
	}, nil)
	f.grants.On("Get", ctx, testGuild, int64(1)).Return(&entities.VIPGrant{GuildID: testGuild, UserID: 1, ExpiresAt: f.now.Add(-time.Minute)}, nil)
	f.grants.On("Get", ctx, otherGuild, int64(3)).Return(&entities.VIPGrant{GuildID: otherGuild, UserID: 3, ExpiresAt: f.now.Add(-24 * time.Hour)}, nil)
	f.grants.On("Clear", ctx, testGuild, int64(1)).Return(true, nil)
	f.grants.On("Clear", ctx, otherGuild, int64(3)).Return(true, nil)
	f.configs.On("Get", ctx, testGuild).Return(vipConfigWithRole(testGuild, 555), nil)
	f.configs.On("Get", ctx, otherGuild).Return(entities.DefaultVIPConfig(otherGuild), nil)
	f.roles.On("RemoveRole", ctx, testGuild, int64(1), int64(555)).Return(nil)
	f.emitter.On("Emit", ctx, mock.MatchedBy(func(e events.Event) bool {
		_, ok := e.(events.VIPExpiredEvent)
		return ok
	})).Return().Twice()

	expired, err := f.service.SweepExpired(ctx)

	require.NoError(t, err)
	assert.Len(t, expired, 2)
	f.grants.AssertExpectations(t)
	// The other guild has no VIP role configured
	f.roles.AssertNumberOfCalls(t, "RemoveRole", 1)
	f.emitter.AssertExpectations(t)
}

func TestVIPService_SweepExpired_ContinuesPastFailures(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	f.grants.On("ListAll", ctx).Return([]*entities.VIPGrant{
		{GuildID: testGuild, UserID: 1, ExpiresAt: f.now.Add(-time.Minute)},
		{GuildID: testGuild, UserID: 2, ExpiresAt: f.now.Add(-time.Minute)},
	}, nil)
	f.grants.On("Get", ctx, testGuild, int64(1)).Return(&entities.VIPGrant{GuildID: testGuild, UserID: 1, ExpiresAt: f.now.Add(-time.Minute)}, nil)
	f.grants.On("Get", ctx, testGuild, int64(2)).Return(&entities.VIPGrant{GuildID: testGuild, UserID: 2, ExpiresAt: f.now.Add(-time.Minute)}, nil)
	f.grants.On("Clear", ctx, testGuild, int64(1)).Return(false, errors.New("write failed"))
	f.grants.On("Clear", ctx, testGuild, int64(2)).Return(true, nil)
	f.configs.On("Get", ctx, testGuild).Return(entities.DefaultVIPConfig(testGuild), nil)
	f.emitter.On("Emit", ctx, mock.Anything).Return().Once()

	expired, err := f.service.SweepExpired(ctx)

	assert.Error(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, int64(2), expired[0].UserID)
}

func TestVIPService_SweepExpired_SkipsRenewedGrant(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	// Listed as expired, renewed by /vip add before the sweep got to it
	f.grants.On("ListAll", ctx).Return([]*entities.VIPGrant{
		{GuildID: testGuild, UserID: 1, ExpiresAt: f.now.Add(-time.Minute)},
		{GuildID: testGuild, UserID: 2, ExpiresAt: f.now.Add(-time.Minute)},
	}, nil)
	f.grants.On("Get", ctx, testGuild, int64(1)).Return(&entities.VIPGrant{GuildID: testGuild, UserID: 1, ExpiresAt: f.now.Add(30 * 24 * time.Hour)}, nil)
	f.grants.On("Get", ctx, testGuild, int64(2)).Return(nil, nil)

	expired, err := f.service.SweepExpired(ctx)

	require.NoError(t, err)
	assert.Empty(t, expired)
	f.grants.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything, mock.Anything)
	f.roles.AssertNotCalled(t, "RemoveRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestVIPService_SetMultiplier(t *testing.T) {
	f := newVIPFixture()
	ctx := context.Background()

	f.configs.On("Get", ctx, testGuild).Return(entities.DefaultVIPConfig(testGuild), nil)
	f.configs.On("Save", ctx, mock.MatchedBy(func(c *entities.VIPConfig) bool {
		return c.Multipliers[entities.MultiplierCoins] == 3.0
	})).Return(nil).Once()

	require.NoError(t, f.service.SetMultiplier(ctx, testGuild, entities.MultiplierCoins, 3.0))

	var verr *entities.ValidationError
	assert.True(t, errors.As(f.service.SetMultiplier(ctx, testGuild, "karma", 2.0), &verr))
	assert.True(t, errors.As(f.service.SetMultiplier(ctx, testGuild, entities.MultiplierXP, 0.5), &verr))
	f.configs.AssertExpectations(t)
}
