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

func TestEconomyService_UpsertShopItem(t *testing.T) {
	accounts := new(testhelpers.MockAccountRepository)
	configs := new(testhelpers.MockEconomyConfigRepository)
	configs.On("Get", mock.Anything, testGuild).Return(entities.DefaultGuildEconomyConfig(testGuild), nil)
	configs.On("Save", mock.Anything, mock.MatchedBy(func(c *entities.GuildEconomyConfig) bool {
		item, ok := c.ShopItem("bicycle")
		return ok && item.Name == "bicycle" && item.Price == 800
	})).Return(nil).Once()
	svc := NewEconomyService(accounts, configs, testhelpers.NoopLocker{})

	require.NoError(t, svc.UpsertShopItem(context.Background(), testGuild, entities.ShopItem{Name: "  Bicycle ", Price: 800}))

	var verr *entities.ValidationError
	assert.True(t, errors.As(svc.UpsertShopItem(context.Background(), testGuild, entities.ShopItem{Name: " ", Price: 1}), &verr))
	assert.True(t, errors.As(svc.UpsertShopItem(context.Background(), testGuild, entities.ShopItem{Name: "kite", Price: 0}), &verr))
	configs.AssertExpectations(t)
}

func TestEconomyService_SetBalance(t *testing.T) {
	accounts := new(testhelpers.MockAccountRepository)
	configs := new(testhelpers.MockEconomyConfigRepository)
	accounts.On("Get", mock.Anything, testGuild, testUser).Return(account(testUser, 40), nil)
	accounts.On("Save", mock.Anything, mock.MatchedBy(func(saved []*entities.Account) bool {
		return len(saved) == 1 && saved[0].Balance == 5000
	})).Return(nil).Once()
	svc := NewEconomyService(accounts, configs, testhelpers.NoopLocker{})

	acc, err := svc.SetBalance(context.Background(), testGuild, testUser, 5000)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), acc.Balance)

	_, err = svc.SetBalance(context.Background(), testGuild, testUser, -1)
	assert.Error(t, err)
	accounts.AssertExpectations(t)
}
