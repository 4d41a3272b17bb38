package services

import (
	"natanbot/domain/entities"
	"natanbot/domain/utils"
)

// Fixed VIP rolls layered on top of the configured rewards. Each is an
// independent draw made after the base outcome.
const (
	workBoostChance      = 30
	workBoostFactor      = 1.5
	crimeLuckyChance     = 25
	crimeLuckyFactor     = 1.3
	robLuckyChance       = 20
	robLuckyFactor       = 1.4
	betVIPWinBonus       = 10
	betJackpotChance     = 15
	betJackpotMultiplier = 3
)

// CrimeOutcome is the result of a crime attempt. On failure Amount is the fine.
type CrimeOutcome struct {
	Success bool
	Amount  int64
	Lucky   bool
}

// RobOutcome is the result of a robbery. On failure Amount is the fine.
type RobOutcome struct {
	Success bool
	Amount  int64
	Lucky   bool
}

// BetOutcome is the result of a bet; Payout excludes the already deducted stake
type BetOutcome struct {
	Won     bool
	Payout  int64
	Jackpot bool
}

// RewardResolver computes reward magnitudes from configured ranges,
// probability rolls and VIP bonuses. It never touches the ledger.
type RewardResolver struct {
	rng utils.RandomSource
}

// NewRewardResolver creates a resolver drawing from rng
func NewRewardResolver(rng utils.RandomSource) *RewardResolver {
	return &RewardResolver{rng: rng}
}

func (r *RewardResolver) roll(threshold int) bool {
	return utils.Roll(r.rng, clampPercent(threshold))
}

func (r *RewardResolver) draw(rr entities.RewardRange) int64 {
	return r.rng.IntBetween(rr.Min, rr.Max)
}

// ResolveDailyReward applies the VIP daily multiplier to the base reward
func (r *RewardResolver) ResolveDailyReward(base int64, isVIP bool, vip *entities.VIPConfig) int64 {
	if isVIP && vip != nil {
		return utils.ApplyMultiplier(base, vip.Multiplier(entities.MultiplierDaily))
	}
	return base
}

// ResolveWorkReward draws a salary from the job's range
func (r *RewardResolver) ResolveWorkReward(job entities.Job, isVIP bool, vip *entities.VIPConfig) int64 {
	salary := job.Salary
	if isVIP && r.roll(workBoostChance) {
		salary.Max = utils.ApplyMultiplier(salary.Max, workBoostFactor)
	}

	amount := r.draw(salary)
	if isVIP && vip != nil {
		amount = utils.ApplyMultiplier(amount, vip.Multiplier(entities.MultiplierCoins))
	}
	return amount
}

// ResolveCrimeOutcome rolls the crime and draws either the loot or the fine
func (r *RewardResolver) ResolveCrimeOutcome(crime entities.Crime, fine entities.RewardRange, isVIP bool, vip *entities.VIPConfig) CrimeOutcome {
	threshold := crime.SuccessChance
	if isVIP && vip != nil {
		threshold += vip.CrimeSuccessBonus
	}

	if !r.roll(threshold) {
		return CrimeOutcome{Amount: r.draw(fine)}
	}

	out := CrimeOutcome{Success: true, Amount: r.draw(crime.Reward)}
	if isVIP && r.roll(crimeLuckyChance) {
		out.Amount = utils.ApplyMultiplier(out.Amount, crimeLuckyFactor)
		out.Lucky = true
	}
	return out
}

// ResolveRobOutcome rolls a robbery against a target holding targetBalance.
// The balance preconditions are the caller's job.
func (r *RewardResolver) ResolveRobOutcome(targetBalance int64, rules entities.RobRules, isVIP bool, vip *entities.VIPConfig) RobOutcome {
	threshold := rules.SuccessChance
	if isVIP && vip != nil {
		threshold += vip.RobSuccessBonus
	}

	if !r.roll(threshold) {
		return RobOutcome{Amount: r.draw(rules.Fine)}
	}

	steal := StealRange(targetBalance, rules)
	out := RobOutcome{Success: true, Amount: r.draw(steal)}
	if isVIP && r.roll(robLuckyChance) {
		out.Amount = min(utils.ApplyMultiplier(out.Amount, robLuckyFactor), targetBalance)
		out.Lucky = true
	}
	return out
}

// StealRange is [Steal.Min, min(Steal.Max, targetBalance/2)], collapsed to
// the upper bound when the target is too poor for the minimum
func StealRange(targetBalance int64, rules entities.RobRules) entities.RewardRange {
	hi := min(rules.Steal.Max, targetBalance/2)
	if hi < 0 {
		hi = 0
	}
	lo := rules.Steal.Min
	if lo > hi {
		lo = hi
	}
	return entities.RewardRange{Min: lo, Max: hi}
}

// ResolveBetOutcome rolls a bet of stake
func (r *RewardResolver) ResolveBetOutcome(stake int64, rules entities.BetRules, isVIP bool) BetOutcome {
	threshold := rules.WinChance
	if isVIP {
		threshold += betVIPWinBonus
	}

	if !r.roll(threshold) {
		return BetOutcome{}
	}

	out := BetOutcome{Won: true, Payout: stake * rules.PayoutMultiplier}
	if isVIP && r.roll(betJackpotChance) {
		out.Payout = stake * betJackpotMultiplier
		out.Jackpot = true
	}
	return out
}

// ResolveLotteryOutcome draws the player's numbers and the winning numbers.
// Both sets are drawn with replacement, so duplicates reduce the matches.
func (r *RewardResolver) ResolveLotteryOutcome(rules entities.LotteryRules) entities.LotteryResult {
	player := r.drawNumbers(rules)
	draw := r.drawNumbers(rules)

	matches := countMatches(player, draw)
	return entities.LotteryResult{
		PlayerNumbers: player,
		DrawNumbers:   draw,
		Matches:       matches,
		Prize:         rules.Prizes[matches],
	}
}

func (r *RewardResolver) drawNumbers(rules entities.LotteryRules) []int {
	nums := make([]int, rules.Picks)
	for i := range nums {
		nums[i] = int(r.rng.IntBetween(1, int64(rules.MaxNumber)))
	}
	return nums
}

// countMatches is the size of the intersection of both sets
func countMatches(a, b []int) int {
	inB := make(map[int]struct{}, len(b))
	for _, n := range b {
		inB[n] = struct{}{}
	}
	seen := make(map[int]struct{}, len(a))
	for _, n := range a {
		if _, ok := inB[n]; ok {
			seen[n] = struct{}{}
		}
	}
	return len(seen)
}

// ResolveXPGain draws the XP for one message
func (r *RewardResolver) ResolveXPGain(cfg *entities.XPConfig, isVIP bool, vip *entities.VIPConfig) int64 {
	amount := r.rng.IntBetween(cfg.MinXP, cfg.MaxXP)
	if isVIP && vip != nil {
		amount = utils.ApplyMultiplier(amount, vip.Multiplier(entities.MultiplierXP))
	}
	return amount
}

// PickJob draws a job uniformly from jobs
func (r *RewardResolver) PickJob(jobs []entities.Job) (entities.Job, bool) {
	if len(jobs) == 0 {
		return entities.Job{}, false
	}
	return jobs[r.rng.IntBetween(0, int64(len(jobs)-1))], true
}

// PickCrime draws a crime uniformly from crimes
func (r *RewardResolver) PickCrime(crimes []entities.Crime) (entities.Crime, bool) {
	if len(crimes) == 0 {
		return entities.Crime{}, false
	}
	return crimes[r.rng.IntBetween(0, int64(len(crimes)-1))], true
}

func clampPercent(p int) int {
	return max(0, min(100, p))
}
