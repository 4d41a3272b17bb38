package services

import (
	"context"
	"errors"
	"testing"

	"natanbot/domain/entities"
	"natanbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileWith(userID, xp, messages int64) *entities.XPProfile {
	p := entities.NewXPProfile(testGuild, userID)
	p.Experience = xp
	p.Messages = messages
	return p
}

func newXPServiceWithProfiles(profiles ...*entities.XPProfile) (*xpService, *testhelpers.MockXPProfileRepository, *testhelpers.MockXPConfigRepository) {
	repo := new(testhelpers.MockXPProfileRepository)
	configs := new(testhelpers.MockXPConfigRepository)
	configs.On("Get", mock.Anything, testGuild).Return(entities.DefaultXPConfig(testGuild), nil)
	repo.On("ListByGuild", mock.Anything, testGuild).Return(profiles, nil).Maybe()
	svc := NewXPService(repo, configs, testhelpers.NoopLocker{}).(*xpService)
	return svc, repo, configs
}

func TestXPService_Leaderboard(t *testing.T) {
	svc, _, _ := newXPServiceWithProfiles(
		profileWith(5, 100, 10),
		profileWith(3, 900, 80),
		profileWith(4, 100, 12),
		profileWith(1, 0, 1),
		profileWith(2, 2500, 200),
	)
	ctx := context.Background()

	page1, pages, err := svc.Leaderboard(ctx, testGuild, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
	require.Len(t, page1, 2)
	assert.Equal(t, int64(2), page1[0].UserID)
	assert.Equal(t, 6, page1[0].Level)
	assert.Equal(t, int64(3), page1[1].UserID)

	// Equal XP falls back to user ID order
	page2, _, err := svc.Leaderboard(ctx, testGuild, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5}, []int64{page2[0].UserID, page2[1].UserID})
	assert.Equal(t, 3, page2[0].Rank)

	// Out-of-range pages clamp to the last one
	last, _, err := svc.Leaderboard(ctx, testGuild, 99, 2)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, 5, last[0].Rank)
}

func TestXPService_Leaderboard_EmptyGuild(t *testing.T) {
	svc, _, _ := newXPServiceWithProfiles()

	entries, pages, err := svc.Leaderboard(context.Background(), testGuild, 1, 10)

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, pages)
}

func TestXPService_Rank(t *testing.T) {
	svc, _, _ := newXPServiceWithProfiles(profileWith(1, 50, 1), profileWith(2, 75, 1))
	ctx := context.Background()

	rank, err := svc.Rank(ctx, testGuild, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	rank, err = svc.Rank(ctx, testGuild, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
}

func TestXPService_SetCooldown(t *testing.T) {
	t.Run("vip cooldown defaults to half", func(t *testing.T) {
		svc, _, configs := newXPServiceWithProfiles()
		configs.On("Save", mock.Anything, mock.MatchedBy(func(c *entities.XPConfig) bool {
			return c.CooldownSeconds == 90 && c.VIPCooldownSeconds == 45
		})).Return(nil).Once()

		require.NoError(t, svc.SetCooldown(context.Background(), testGuild, 90, nil))
		configs.AssertExpectations(t)
	})

	t.Run("explicit vip cooldown", func(t *testing.T) {
		svc, _, configs := newXPServiceWithProfiles()
		vip := int64(10)
		configs.On("Save", mock.Anything, mock.MatchedBy(func(c *entities.XPConfig) bool {
			return c.VIPCooldownSeconds == 10
		})).Return(nil).Once()

		require.NoError(t, svc.SetCooldown(context.Background(), testGuild, 60, &vip))
		configs.AssertExpectations(t)
	})

	t.Run("vip cooldown above regular", func(t *testing.T) {
		svc, _, configs := newXPServiceWithProfiles()
		vip := int64(120)

		err := svc.SetCooldown(context.Background(), testGuild, 60, &vip)

		var verr *entities.ValidationError
		assert.True(t, errors.As(err, &verr))
		configs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestXPService_SetXPRange_Validation(t *testing.T) {
	svc, _, configs := newXPServiceWithProfiles()
	ctx := context.Background()

	var verr *entities.ValidationError
	assert.True(t, errors.As(svc.SetXPRange(ctx, testGuild, 0, 10), &verr))
	assert.True(t, errors.As(svc.SetXPRange(ctx, testGuild, 20, 10), &verr))
	assert.True(t, errors.As(svc.SetXPPerLevel(ctx, testGuild, 0), &verr))
	configs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestXPService_ResetUser(t *testing.T) {
	svc, repo, _ := newXPServiceWithProfiles()
	repo.On("Get", mock.Anything, testGuild, int64(1)).Return(profileWith(1, 5000, 300), nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(p *entities.XPProfile) bool {
		return p.Experience == 0 && p.Level == 1 && p.Messages == 300
	})).Return(nil).Once()

	require.NoError(t, svc.ResetUser(context.Background(), testGuild, 1))
	repo.AssertExpectations(t)
}
