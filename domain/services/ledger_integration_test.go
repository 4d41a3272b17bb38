package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"natanbot/domain/entities"
	"natanbot/domain/utils"
	"natanbot/events"
	"natanbot/infrastructure"
	"natanbot/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledger struct {
	stores   *repository.Stores
	vip      *vipService
	executor *ActionExecutor
	bus      *events.Bus
	now      time.Time
}

func openLedger(t *testing.T, dir string) *ledger {
	t.Helper()
	stores, err := repository.OpenStores(dir)
	require.NoError(t, err)

	l := &ledger{
		stores: stores,
		bus:    events.NewBus(),
		now:    time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
	l.vip = NewVIPService(stores.VIPGrants, stores.VIPConfig, nil, l.bus).(*vipService)
	l.vip.now = func() time.Time { return l.now }
	l.executor = NewActionExecutor(
		stores.Accounts, stores.XPProfiles, stores.EconomyConfig, stores.XPConfig, stores.VIPConfig,
		l.vip, NewRewardResolver(utils.NewSeededRandomSource(1, 2)), infrastructure.NewAccountLocker(), l.bus,
	)
	l.executor.now = func() time.Time { return l.now }
	return l
}

func TestLedger_DailyTwiceWithinCooldown(t *testing.T) {
	l := openLedger(t, t.TempDir())
	ctx := context.Background()

	first, err := l.executor.PerformAction(ctx, testGuild, testUser, entities.ActionDaily, entities.ActionParams{})
	require.NoError(t, err)
	assert.True(t, first.IsApplied())

	l.now = l.now.Add(time.Hour)
	second, err := l.executor.PerformAction(ctx, testGuild, testUser, entities.ActionDaily, entities.ActionParams{})
	require.NoError(t, err)
	assert.Equal(t, entities.RejectCooldownActive, second.Reason)
	assert.Equal(t, 23*time.Hour, second.Remaining)

	snap, err := l.executor.QueryAccount(ctx, testGuild, testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), snap.Balance)
}

func TestLedger_DepositWithdrawRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := openLedger(t, dir)
	ctx := context.Background()

	_, err := l.executor.PerformAction(ctx, testGuild, testUser, entities.ActionDaily, entities.ActionParams{})
	require.NoError(t, err)
	_, err = l.executor.PerformAction(ctx, testGuild, testUser, entities.ActionDeposit, entities.ActionParams{Amount: 600})
	require.NoError(t, err)
	out, err := l.executor.PerformAction(ctx, testGuild, testUser, entities.ActionWithdraw, entities.ActionParams{Amount: 600})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), out.NewBalance)
	assert.Equal(t, int64(0), out.NewBankBalance)

	// A fresh process sees the same ledger
	reopened := openLedger(t, dir)
	snap, err := reopened.executor.QueryAccount(ctx, testGuild, testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), snap.Balance)
	assert.Equal(t, int64(0), snap.BankBalance)
}

func TestLedger_ConcurrentGiftsConserveCoins(t *testing.T) {
	l := openLedger(t, t.TempDir())
	ctx := context.Background()

	for _, id := range []int64{testUser, testTarget} {
		out, err := l.executor.PerformAction(ctx, testGuild, id, entities.ActionDaily, entities.ActionParams{})
		require.NoError(t, err)
		require.True(t, out.IsApplied())
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := l.executor.PerformAction(ctx, testGuild, testUser, entities.ActionGift, entities.ActionParams{TargetUserID: testTarget, Amount: 7})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := l.executor.PerformAction(ctx, testGuild, testTarget, entities.ActionGift, entities.ActionParams{TargetUserID: testUser, Amount: 5})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	a, err := l.executor.QueryAccount(ctx, testGuild, testUser)
	require.NoError(t, err)
	b, err := l.executor.QueryAccount(ctx, testGuild, testTarget)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), a.Balance+b.Balance)
	assert.Equal(t, int64(1000-50*7+50*5), a.Balance)
}

func TestLedger_ExpiredVIPLosesBonus(t *testing.T) {
	l := openLedger(t, t.TempDir())
	ctx := context.Background()

	_, err := l.vip.Grant(ctx, testGuild, testUser, 99, 1)
	require.NoError(t, err)

	isVIP, err := l.vip.IsVIP(ctx, testGuild, testUser)
	require.NoError(t, err)
	assert.True(t, isVIP)

	l.now = l.now.Add(25 * time.Hour)
	isVIP, err = l.vip.IsVIP(ctx, testGuild, testUser)
	require.NoError(t, err)
	assert.False(t, isVIP)

	out, err := l.executor.PerformAction(ctx, testGuild, testUser, entities.ActionDaily, entities.ActionParams{})
	require.NoError(t, err)
	assert.False(t, out.VIP)
	assert.Equal(t, int64(1000), out.AmountDelta)

	expired, err := l.vip.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Len(t, expired, 1)

	grant, err := l.stores.VIPGrants.Get(ctx, testGuild, testUser)
	require.NoError(t, err)
	assert.Nil(t, grant)
}
