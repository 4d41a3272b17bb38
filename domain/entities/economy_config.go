package entities

import (
	"strings"
	"time"
)

// Job titles with special meaning
const (
	JobEntrepreneur = "entrepreneur"
	JobEmployee     = "employee"
)

// RewardRange is an inclusive integer range
type RewardRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Job is an occupation in the guild's catalog
type Job struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Salary      RewardRange `json:"salary"`
	// Restricted jobs are only given out by hiring, never by the random draw
	Restricted bool `json:"restricted,omitempty"`
}

// Crime is an entry of the crime catalog
type Crime struct {
	Name          string      `json:"name"`
	Reward        RewardRange `json:"reward"`
	SuccessChance int         `json:"success_chance"`
}

// MaxItemQuantity bounds a single buy or sell
const MaxItemQuantity = 1000

// ShopItem is something members can buy and sell back
type ShopItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// RobRules parameterises the rob action
type RobRules struct {
	MinTargetBalance int64       `json:"min_target_balance"`
	MinActorBalance  int64       `json:"min_actor_balance"`
	SuccessChance    int         `json:"success_chance"`
	Steal            RewardRange `json:"steal"`
	Fine             RewardRange `json:"fine"`
}

// BetRules parameterises the bet action
type BetRules struct {
	WinChance        int   `json:"win_chance"`
	PayoutMultiplier int64 `json:"payout_multiplier"`
}

// LotteryRules parameterises the lottery action
type LotteryRules struct {
	TicketPrice int64         `json:"ticket_price"`
	Picks       int           `json:"picks"`
	MaxNumber   int           `json:"max_number"`
	Prizes      map[int]int64 `json:"prizes"`
}

// GuildEconomyConfig holds every tunable of a guild's economy
type GuildEconomyConfig struct {
	GuildID         int64                `json:"guild_id"`
	DailyReward     int64                `json:"daily_reward"`
	CooldownSeconds map[ActionKind]int64 `json:"cooldowns"`
	Jobs            []Job                `json:"jobs"`
	Crimes          []Crime              `json:"crimes"`
	CrimeFine       RewardRange          `json:"crime_fine"`
	Rob             RobRules             `json:"rob"`
	Bet             BetRules             `json:"bet"`
	Lottery         LotteryRules         `json:"lottery"`
	Shop            []ShopItem           `json:"shop"`
	SellRate        float64              `json:"sell_rate"`
}

// DefaultGuildEconomyConfig returns the economy a guild starts with
func DefaultGuildEconomyConfig(guildID int64) *GuildEconomyConfig {
	return &GuildEconomyConfig{
		GuildID:     guildID,
		DailyReward: 1000,
		CooldownSeconds: map[ActionKind]int64{
			ActionDaily:   86400,
			ActionWork:    3600,
			ActionCrime:   7200,
			ActionRob:     0,
			ActionBet:     0,
			ActionLottery: 0,
		},
		Jobs: []Job{
			{Name: "courier", Description: "Delivers orders around town", Salary: RewardRange{200, 800}},
			{Name: "cashier", Description: "Runs the register at the market", Salary: RewardRange{300, 600}},
			{Name: JobEntrepreneur, Description: "Owns a business and can hire", Salary: RewardRange{800, 2000}},
			{Name: "programmer", Description: "Writes software", Salary: RewardRange{1000, 1500}},
			{Name: "doctor", Description: "Treats patients at the hospital", Salary: RewardRange{1500, 2500}},
			{Name: JobEmployee, Description: "Works for an entrepreneur", Salary: RewardRange{400, 900}, Restricted: true},
		},
		Crimes: []Crime{
			{Name: "shoplifting", Reward: RewardRange{100, 1000}, SuccessChance: 60},
			{Name: "bank_hack", Reward: RewardRange{500, 3000}, SuccessChance: 30},
			{Name: "smuggling", Reward: RewardRange{1000, 5000}, SuccessChance: 20},
			{Name: "pickpocket", Reward: RewardRange{50, 300}, SuccessChance: 80},
		},
		CrimeFine: RewardRange{100, 1000},
		Rob: RobRules{
			MinTargetBalance: 100,
			MinActorBalance:  50,
			SuccessChance:    40,
			Steal:            RewardRange{50, 1000},
			Fine:             RewardRange{100, 500},
		},
		Bet: BetRules{
			WinChance:        45,
			PayoutMultiplier: 2,
		},
		Lottery: LotteryRules{
			TicketPrice: 100,
			Picks:       6,
			MaxNumber:   60,
			Prizes: map[int]int64{
				6: 100000,
				5: 10000,
				4: 1000,
				3: 100,
				2: 50,
			},
		},
		Shop: []ShopItem{
			{Name: "smartphone", Description: "Latest generation phone", Price: 1500},
			{Name: "notebook", Description: "Laptop for work and play", Price: 3000},
			{Name: "car", Description: "Four wheels and a full tank", Price: 50000},
			{Name: "house", Description: "A place to call home", Price: 200000},
		},
		SellRate: 0.7,
	}
}

// Cooldown returns the configured interval for kind, zero if ungated
func (c *GuildEconomyConfig) Cooldown(kind ActionKind) time.Duration {
	return time.Duration(c.CooldownSeconds[kind]) * time.Second
}

// Job looks up a job by name
func (c *GuildEconomyConfig) Job(name string) (Job, bool) {
	for _, j := range c.Jobs {
		if strings.EqualFold(j.Name, name) {
			return j, true
		}
	}
	return Job{}, false
}

// AssignableJobs returns the jobs eligible for random assignment
func (c *GuildEconomyConfig) AssignableJobs() []Job {
	jobs := make([]Job, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		if !j.Restricted {
			jobs = append(jobs, j)
		}
	}
	return jobs
}

// Crime looks up a crime by name
func (c *GuildEconomyConfig) Crime(name string) (Crime, bool) {
	for _, cr := range c.Crimes {
		if strings.EqualFold(cr.Name, name) {
			return cr, true
		}
	}
	return Crime{}, false
}

// ShopItem looks up an item by name, case-insensitively
func (c *GuildEconomyConfig) ShopItem(name string) (ShopItem, bool) {
	for _, it := range c.Shop {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return ShopItem{}, false
}

// UpsertShopItem adds item or replaces the one with the same name
func (c *GuildEconomyConfig) UpsertShopItem(item ShopItem) {
	for i, it := range c.Shop {
		if strings.EqualFold(it.Name, item.Name) {
			c.Shop[i] = item
			return
		}
	}
	c.Shop = append(c.Shop, item)
}

// SellPrice is what the shop pays back for qty units of item
func (c *GuildEconomyConfig) SellPrice(item ShopItem, qty int64) int64 {
	return int64(float64(item.Price)*c.SellRate) * qty
}
