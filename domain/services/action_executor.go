package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"natanbot/domain/entities"
	"natanbot/domain/interfaces"
	"natanbot/domain/utils"
	"natanbot/events"
	"natanbot/infrastructure/observability"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ActionExecutor runs one ledger action end to end: cooldown gate, reward
// resolution, mutation and persistence. Mutations of the same account are
// serialised through the locker; events are only emitted once the write
// went through.
type ActionExecutor struct {
	accounts      interfaces.AccountRepository
	xpProfiles    interfaces.XPProfileRepository
	economyConfig interfaces.EconomyConfigRepository
	xpConfig      interfaces.XPConfigRepository
	vipConfig     interfaces.VIPConfigRepository
	vip           interfaces.VIPStatusProvider
	resolver      *RewardResolver
	locker        interfaces.AccountLocker
	emitter       events.Emitter
	now           func() time.Time
}

// NewActionExecutor creates a new action executor
func NewActionExecutor(
	accounts interfaces.AccountRepository,
	xpProfiles interfaces.XPProfileRepository,
	economyConfig interfaces.EconomyConfigRepository,
	xpConfig interfaces.XPConfigRepository,
	vipConfig interfaces.VIPConfigRepository,
	vip interfaces.VIPStatusProvider,
	resolver *RewardResolver,
	locker interfaces.AccountLocker,
	emitter events.Emitter,
) *ActionExecutor {
	return &ActionExecutor{
		accounts:      accounts,
		xpProfiles:    xpProfiles,
		economyConfig: economyConfig,
		xpConfig:      xpConfig,
		vipConfig:     vipConfig,
		vip:           vip,
		resolver:      resolver,
		locker:        locker,
		emitter:       emitter,
		now:           time.Now,
	}
}

// action carries the state shared by the steps of one PerformAction call
type action struct {
	id      string
	guildID int64
	userID  int64
	kind    entities.ActionKind
	params  entities.ActionParams
	now     time.Time
	isVIP   bool
	vipCfg  *entities.VIPConfig
	cfg     *entities.GuildEconomyConfig
	bus     *events.TransactionalBus
}

// PerformAction runs one action. Expected failures are rejected outcomes;
// the returned error is reserved for store failures and malformed input.
func (e *ActionExecutor) PerformAction(ctx context.Context, guildID, userID int64, kind entities.ActionKind, params entities.ActionParams) (*entities.ActionOutcome, error) {
	a := &action{
		id:      uuid.NewString(),
		guildID: guildID,
		userID:  userID,
		kind:    kind,
		params:  params,
		bus:     events.NewTransactionalBus(e.emitter),
	}

	keys := []string{utils.AccountKey(guildID, userID)}
	if kind.IsTwoParty() && params.TargetUserID != 0 {
		keys = append(keys, utils.AccountKey(guildID, params.TargetUserID))
	}
	unlock := e.locker.Lock(keys...)
	defer unlock()

	// Read the clock after the lock so cooldowns see the order mutations happen in
	a.now = e.now()

	outcome, err := e.dispatch(ctx, a)
	if err != nil {
		a.bus.Discard()
		log.WithFields(log.Fields{
			"actionID": a.id,
			"guildID":  guildID,
			"userID":   userID,
			"kind":     kind,
			"error":    err,
		}).Error("Action failed")
		return nil, err
	}

	outcome.ActionID = a.id
	outcome.Kind = kind
	outcome.VIP = a.isVIP
	a.bus.Flush(ctx)

	fields := log.Fields{
		"actionID": a.id,
		"guildID":  guildID,
		"userID":   userID,
		"kind":     kind,
		"status":   outcome.Status,
		"reason":   outcome.Reason,
		"delta":    outcome.AmountDelta,
	}
	if kind == entities.ActionMessageXP {
		log.WithFields(fields).Debug("Action executed")
	} else {
		log.WithFields(fields).Info("Action executed")
	}
	observability.GetMetrics().RecordAction(string(kind), string(outcome.Status), string(outcome.Reason))

	return outcome, nil
}

func (e *ActionExecutor) dispatch(ctx context.Context, a *action) (*entities.ActionOutcome, error) {
	if err := validateParams(a.kind, a.params); err != nil {
		return nil, err
	}

	var err error
	a.isVIP, err = e.vip.IsVIP(ctx, a.guildID, a.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check VIP status: %w", err)
	}
	if a.isVIP {
		if a.vipCfg, err = e.vipConfig.Get(ctx, a.guildID); err != nil {
			return nil, fmt.Errorf("failed to load VIP config: %w", err)
		}
	}

	if a.kind == entities.ActionMessageXP {
		return e.messageXP(ctx, a)
	}

	if a.cfg, err = e.economyConfig.Get(ctx, a.guildID); err != nil {
		return nil, fmt.Errorf("failed to load economy config: %w", err)
	}
	actor, err := e.accounts.Get(ctx, a.guildID, a.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	switch a.kind {
	case entities.ActionDaily:
		return e.daily(ctx, a, actor)
	case entities.ActionWork:
		return e.work(ctx, a, actor)
	case entities.ActionCrime:
		return e.crime(ctx, a, actor)
	case entities.ActionRob:
		return e.rob(ctx, a, actor)
	case entities.ActionBet:
		return e.bet(ctx, a, actor)
	case entities.ActionLottery:
		return e.lottery(ctx, a, actor)
	case entities.ActionDeposit:
		return e.deposit(ctx, a, actor)
	case entities.ActionWithdraw:
		return e.withdraw(ctx, a, actor)
	case entities.ActionBuy:
		return e.buy(ctx, a, actor)
	case entities.ActionSell:
		return e.sell(ctx, a, actor)
	case entities.ActionGift:
		return e.gift(ctx, a, actor)
	case entities.ActionGive:
		return e.give(ctx, a)
	case entities.ActionHire:
		return e.hire(ctx, a, actor)
	case entities.ActionFire:
		return e.fire(ctx, a, actor)
	default:
		return nil, entities.NewValidationError("kind", fmt.Sprintf("unknown action kind %q", a.kind))
	}
}

func validateParams(kind entities.ActionKind, p entities.ActionParams) error {
	switch kind {
	case entities.ActionBet, entities.ActionDeposit, entities.ActionWithdraw, entities.ActionGift:
		if p.Amount <= 0 {
			return entities.NewValidationError("amount", "must be positive")
		}
	case entities.ActionBuy, entities.ActionSell:
		if p.Item == "" {
			return entities.NewValidationError("item", "is required")
		}
		if p.Quantity < 0 {
			return entities.NewValidationError("quantity", "cannot be negative")
		}
		if p.Quantity > entities.MaxItemQuantity {
			return entities.NewValidationError("quantity", fmt.Sprintf("must be at most %d", entities.MaxItemQuantity))
		}
	case entities.ActionGive:
		if p.TargetUserID == 0 {
			return entities.NewValidationError("target", "is required")
		}
	}
	return nil
}

// gate returns a cooldown rejection, or nil when the action may proceed
func (a *action) gate(lastTimestamp *time.Time, interval time.Duration) *entities.ActionOutcome {
	res := CheckCooldown(lastTimestamp, interval, a.now)
	if res.Allowed {
		return nil
	}
	return entities.RejectedCooldown(a.kind, res.Remaining)
}

func (a *action) rejected(reason entities.RejectReason) *entities.ActionOutcome {
	return entities.Rejected(a.kind, reason)
}

func (a *action) insufficient(required int64) *entities.ActionOutcome {
	o := entities.Rejected(a.kind, entities.RejectInsufficientFunds)
	o.Required = required
	return o
}

func (a *action) applied(actor *entities.Account, delta int64) *entities.ActionOutcome {
	return &entities.ActionOutcome{
		Kind:           a.kind,
		Status:         entities.OutcomeApplied,
		AmountDelta:    delta,
		NewBalance:     actor.Balance,
		NewBankBalance: actor.BankBalance,
	}
}

// balanceChanged queues a BalanceChangeEvent when the wallet moved
func (a *action) balanceChanged(account *entities.Account, oldBalance int64) {
	if account.Balance == oldBalance {
		return
	}
	a.bus.Publish(events.BalanceChangeEvent{
		ActionID:     a.id,
		UserID:       account.UserID,
		GuildID:      account.GuildID,
		OldBalance:   oldBalance,
		NewBalance:   account.Balance,
		Kind:         a.kind,
		ChangeAmount: account.Balance - oldBalance,
	})
}

func (e *ActionExecutor) save(ctx context.Context, a *action, accounts ...*entities.Account) error {
	if err := e.accounts.Save(ctx, accounts...); err != nil {
		return fmt.Errorf("failed to persist %s: %w", a.kind, err)
	}
	return nil
}

func (e *ActionExecutor) daily(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	if o := a.gate(actor.LastPerformed(a.kind), a.cfg.Cooldown(a.kind)); o != nil {
		return o, nil
	}

	amount := e.resolver.ResolveDailyReward(a.cfg.DailyReward, a.isVIP, a.vipCfg)
	old := actor.Balance
	actor.Balance += amount
	actor.MarkPerformed(a.kind, a.now)
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	return a.applied(actor, amount), nil
}

func (e *ActionExecutor) work(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	job, ok := a.cfg.Job(actor.JobTitle)
	assigned := false
	if actor.JobTitle == "" || !ok {
		if job, ok = e.resolver.PickJob(a.cfg.AssignableJobs()); !ok {
			return a.rejected(entities.RejectEmptyCatalog), nil
		}
		actor.JobTitle = job.Name
		assigned = true
	}

	if o := a.gate(actor.LastPerformed(a.kind), a.cfg.Cooldown(a.kind)); o != nil {
		// The assignment stands even though the shift itself is refused
		if assigned {
			if err := e.save(ctx, a, actor); err != nil {
				return nil, err
			}
		}
		o.JobTitle = job.Name
		o.JobAssigned = assigned
		return o, nil
	}

	amount := e.resolver.ResolveWorkReward(job, a.isVIP, a.vipCfg)
	old := actor.Balance
	actor.Balance += amount
	actor.MarkPerformed(a.kind, a.now)
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	o := a.applied(actor, amount)
	o.JobTitle = job.Name
	o.JobAssigned = assigned
	return o, nil
}

func (e *ActionExecutor) crime(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	if o := a.gate(actor.LastPerformed(a.kind), a.cfg.Cooldown(a.kind)); o != nil {
		return o, nil
	}

	var crime entities.Crime
	var ok bool
	if a.params.CrimeKind != "" {
		if crime, ok = a.cfg.Crime(a.params.CrimeKind); !ok {
			o := a.rejected(entities.RejectUnknownItem)
			o.CrimeKind = a.params.CrimeKind
			return o, nil
		}
	} else if crime, ok = e.resolver.PickCrime(a.cfg.Crimes); !ok {
		return a.rejected(entities.RejectEmptyCatalog), nil
	}

	res := e.resolver.ResolveCrimeOutcome(crime, a.cfg.CrimeFine, a.isVIP, a.vipCfg)
	old := actor.Balance
	var delta int64
	if res.Success {
		actor.Balance += res.Amount
		delta = res.Amount
	} else {
		delta = -actor.Debit(res.Amount)
	}
	actor.MarkPerformed(a.kind, a.now)
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	o := a.applied(actor, delta)
	o.Success = res.Success
	o.CrimeKind = crime.Name
	return o, nil
}

func (e *ActionExecutor) rob(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	targetID := a.params.TargetUserID
	if targetID == 0 || targetID == a.userID {
		return a.rejected(entities.RejectInvalidTarget), nil
	}
	if o := a.gate(actor.LastPerformed(a.kind), a.cfg.Cooldown(a.kind)); o != nil {
		return o, nil
	}

	rules := a.cfg.Rob
	if !actor.CanAfford(rules.MinActorBalance) {
		return a.insufficient(rules.MinActorBalance), nil
	}
	target, err := e.accounts.Get(ctx, a.guildID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target account: %w", err)
	}
	if target.Balance < rules.MinTargetBalance {
		o := a.rejected(entities.RejectTargetTooPoor)
		o.TargetUserID = targetID
		o.Required = rules.MinTargetBalance
		return o, nil
	}

	res := e.resolver.ResolveRobOutcome(target.Balance, rules, a.isVIP, a.vipCfg)
	oldActor, oldTarget := actor.Balance, target.Balance
	var delta int64
	toSave := []*entities.Account{actor}
	if res.Success {
		stolen := target.Debit(res.Amount)
		actor.Balance += stolen
		delta = stolen
		toSave = append(toSave, target)
	} else {
		delta = -actor.Debit(res.Amount)
	}
	actor.MarkPerformed(a.kind, a.now)
	a.balanceChanged(actor, oldActor)
	a.balanceChanged(target, oldTarget)

	if err := e.save(ctx, a, toSave...); err != nil {
		return nil, err
	}
	o := a.applied(actor, delta)
	o.Success = res.Success
	o.TargetUserID = targetID
	o.TargetBalance = target.Balance
	return o, nil
}

func (e *ActionExecutor) bet(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	if o := a.gate(actor.LastPerformed(a.kind), a.cfg.Cooldown(a.kind)); o != nil {
		return o, nil
	}
	stake := a.params.Amount
	if !actor.CanAfford(stake) {
		return a.insufficient(stake), nil
	}

	old := actor.Balance
	actor.Balance -= stake
	res := e.resolver.ResolveBetOutcome(stake, a.cfg.Bet, a.isVIP)
	actor.Balance += res.Payout
	actor.MarkPerformed(a.kind, a.now)
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	o := a.applied(actor, res.Payout-stake)
	o.Success = res.Won
	return o, nil
}

func (e *ActionExecutor) lottery(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	if o := a.gate(actor.LastPerformed(a.kind), a.cfg.Cooldown(a.kind)); o != nil {
		return o, nil
	}
	price := a.cfg.Lottery.TicketPrice
	if !actor.CanAfford(price) {
		return a.insufficient(price), nil
	}

	old := actor.Balance
	actor.Balance -= price
	res := e.resolver.ResolveLotteryOutcome(a.cfg.Lottery)
	actor.Balance += res.Prize
	actor.MarkPerformed(a.kind, a.now)
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	o := a.applied(actor, res.Prize-price)
	o.Success = res.Prize > 0
	o.Lottery = &res
	return o, nil
}

func (e *ActionExecutor) deposit(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	amount := a.params.Amount
	if !actor.CanAfford(amount) {
		return a.insufficient(amount), nil
	}

	old := actor.Balance
	actor.Balance -= amount
	actor.BankBalance += amount
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	return a.applied(actor, -amount), nil
}

func (e *ActionExecutor) withdraw(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	amount := a.params.Amount
	if actor.BankBalance < amount {
		return a.insufficient(amount), nil
	}

	old := actor.Balance
	actor.BankBalance -= amount
	actor.Balance += amount
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	return a.applied(actor, amount), nil
}

func quantityOrOne(q int64) int64 {
	if q <= 0 {
		return 1
	}
	return q
}

// itemCost multiplies without wrapping. On overflow it saturates and
// reports false.
func itemCost(price, qty int64) (int64, bool) {
	if price > 0 && qty > math.MaxInt64/price {
		return math.MaxInt64, false
	}
	return price * qty, true
}

func (e *ActionExecutor) buy(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	item, ok := a.cfg.ShopItem(a.params.Item)
	if !ok {
		o := a.rejected(entities.RejectUnknownItem)
		o.Item = a.params.Item
		return o, nil
	}
	qty := quantityOrOne(a.params.Quantity)
	cost, ok := itemCost(item.Price, qty)
	if !ok || !actor.CanAfford(cost) {
		o := a.insufficient(cost)
		o.Item = item.Name
		o.Quantity = qty
		return o, nil
	}

	old := actor.Balance
	actor.Balance -= cost
	actor.AddItem(item.Name, qty)
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	o := a.applied(actor, -cost)
	o.Item = item.Name
	o.Quantity = qty
	return o, nil
}

func (e *ActionExecutor) sell(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	item, ok := a.cfg.ShopItem(a.params.Item)
	if !ok {
		o := a.rejected(entities.RejectUnknownItem)
		o.Item = a.params.Item
		return o, nil
	}
	qty := quantityOrOne(a.params.Quantity)
	if actor.Quantity(item.Name) < qty {
		o := a.rejected(entities.RejectInsufficientItems)
		o.Item = item.Name
		o.Quantity = actor.Quantity(item.Name)
		o.Required = qty
		return o, nil
	}

	value := a.cfg.SellPrice(item, qty)
	old := actor.Balance
	if err := actor.RemoveItem(item.Name, qty); err != nil {
		return nil, fmt.Errorf("failed to remove sold item: %w", err)
	}
	actor.Balance += value
	a.balanceChanged(actor, old)

	if err := e.save(ctx, a, actor); err != nil {
		return nil, err
	}
	o := a.applied(actor, value)
	o.Item = item.Name
	o.Quantity = qty
	return o, nil
}

func (e *ActionExecutor) gift(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	targetID := a.params.TargetUserID
	if targetID == 0 || targetID == a.userID {
		return a.rejected(entities.RejectInvalidTarget), nil
	}
	amount := a.params.Amount
	if !actor.CanAfford(amount) {
		return a.insufficient(amount), nil
	}

	target, err := e.accounts.Get(ctx, a.guildID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target account: %w", err)
	}

	oldActor, oldTarget := actor.Balance, target.Balance
	actor.Balance -= amount
	target.Balance += amount
	a.balanceChanged(actor, oldActor)
	a.balanceChanged(target, oldTarget)

	if err := e.save(ctx, a, actor, target); err != nil {
		return nil, err
	}
	o := a.applied(actor, -amount)
	o.TargetUserID = targetID
	o.TargetBalance = target.Balance
	return o, nil
}

// give is the administrative grant; a negative amount takes coins away,
// flooring the wallet at zero
func (e *ActionExecutor) give(ctx context.Context, a *action) (*entities.ActionOutcome, error) {
	targetID := a.params.TargetUserID
	target, err := e.accounts.Get(ctx, a.guildID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target account: %w", err)
	}

	old := target.Balance
	if a.params.Amount >= 0 {
		target.Balance += a.params.Amount
	} else {
		target.Debit(-a.params.Amount)
	}
	a.balanceChanged(target, old)

	if err := e.save(ctx, a, target); err != nil {
		return nil, err
	}
	o := a.applied(target, target.Balance-old)
	o.TargetUserID = targetID
	o.TargetBalance = target.Balance
	return o, nil
}

func (e *ActionExecutor) hire(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	targetID := a.params.TargetUserID
	if targetID == 0 || targetID == a.userID || actor.HasEmployee(targetID) {
		return a.rejected(entities.RejectInvalidTarget), nil
	}
	if actor.JobTitle != entities.JobEntrepreneur {
		return a.rejected(entities.RejectNotPermitted), nil
	}

	target, err := e.accounts.Get(ctx, a.guildID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target account: %w", err)
	}
	actor.Employees = append(actor.Employees, targetID)
	target.JobTitle = entities.JobEmployee

	if err := e.save(ctx, a, actor, target); err != nil {
		return nil, err
	}
	o := a.applied(actor, 0)
	o.TargetUserID = targetID
	o.JobTitle = target.JobTitle
	return o, nil
}

func (e *ActionExecutor) fire(ctx context.Context, a *action, actor *entities.Account) (*entities.ActionOutcome, error) {
	targetID := a.params.TargetUserID
	if targetID == 0 || !actor.HasEmployee(targetID) {
		return a.rejected(entities.RejectInvalidTarget), nil
	}
	if actor.JobTitle != entities.JobEntrepreneur {
		return a.rejected(entities.RejectNotPermitted), nil
	}

	target, err := e.accounts.Get(ctx, a.guildID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target account: %w", err)
	}
	actor.RemoveEmployee(targetID)
	if target.JobTitle == entities.JobEmployee {
		target.JobTitle = ""
	}

	if err := e.save(ctx, a, actor, target); err != nil {
		return nil, err
	}
	o := a.applied(actor, 0)
	o.TargetUserID = targetID
	return o, nil
}

// messageXP is the XP path: VIP members get the shorter cooldown
func (e *ActionExecutor) messageXP(ctx context.Context, a *action) (*entities.ActionOutcome, error) {
	cfg, err := e.xpConfig.Get(ctx, a.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load XP config: %w", err)
	}
	profile, err := e.xpProfiles.Get(ctx, a.guildID, a.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load XP profile: %w", err)
	}

	if o := a.gate(profile.LastMessageAt, cfg.Cooldown(a.isVIP)); o != nil {
		return o, nil
	}

	gain := e.resolver.ResolveXPGain(cfg, a.isVIP, a.vipCfg)
	oldLevel := profile.Level
	profile.Experience += gain
	profile.Messages++
	now := a.now
	profile.LastMessageAt = &now
	profile.Level = utils.CalculateLevel(profile.Experience, cfg.XPPerLevel)

	leveledUp := profile.Level > oldLevel
	if leveledUp {
		a.bus.Publish(events.LevelUpEvent{
			UserID:     a.userID,
			GuildID:    a.guildID,
			OldLevel:   oldLevel,
			NewLevel:   profile.Level,
			Experience: profile.Experience,
		})
	}

	if err := e.xpProfiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to persist XP gain: %w", err)
	}
	observability.GetMetrics().RecordXPAwarded(gain)

	return &entities.ActionOutcome{
		Kind:        a.kind,
		Status:      entities.OutcomeApplied,
		AmountDelta: gain,
		Experience:  profile.Experience,
		NewLevel:    profile.Level,
		LeveledUp:   leveledUp,
	}, nil
}

// QueryAccount merges the economy record, the XP profile and VIP status
func (e *ActionExecutor) QueryAccount(ctx context.Context, guildID, userID int64) (*entities.AccountSnapshot, error) {
	account, err := e.accounts.Get(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	profile, err := e.xpProfiles.Get(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load XP profile: %w", err)
	}
	cfg, err := e.xpConfig.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load XP config: %w", err)
	}
	expiry, err := e.vip.VIPExpiry(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check VIP status: %w", err)
	}

	level := utils.CalculateLevel(profile.Experience, cfg.XPPerLevel)
	return &entities.AccountSnapshot{
		GuildID:      guildID,
		UserID:       userID,
		Balance:      account.Balance,
		BankBalance:  account.BankBalance,
		NetWorth:     account.NetWorth(),
		Inventory:    account.Inventory,
		JobTitle:     account.JobTitle,
		Employees:    account.Employees,
		LastActions:  account.LastActions,
		Experience:   profile.Experience,
		Level:        level,
		Messages:     profile.Messages,
		LevelFloorXP: utils.CalculateXPForLevel(level, cfg.XPPerLevel),
		NextLevelXP:  utils.CalculateXPForLevel(level+1, cfg.XPPerLevel),
		IsVIP:        expiry != nil,
		VIPExpiry:    expiry,
	}, nil
}
