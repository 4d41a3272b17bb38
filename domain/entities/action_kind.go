package entities

// ActionKind identifies one of the discrete ledger operations
type ActionKind string

const (
	// Cooldown-gated rewards
	ActionDaily   ActionKind = "daily"
	ActionWork    ActionKind = "work"
	ActionCrime   ActionKind = "crime"
	ActionRob     ActionKind = "rob"
	ActionBet     ActionKind = "bet"
	ActionLottery ActionKind = "lottery"

	// Wallet transfers
	ActionDeposit  ActionKind = "deposit"
	ActionWithdraw ActionKind = "withdraw"
	ActionBuy      ActionKind = "buy"
	ActionSell     ActionKind = "sell"
	ActionGift     ActionKind = "gift"
	ActionGive     ActionKind = "give"

	// Employment
	ActionHire ActionKind = "hire"
	ActionFire ActionKind = "fire"

	// XP path
	ActionMessageXP ActionKind = "message_xp"
)

// IsGated reports whether the kind goes through the cooldown gate
func (k ActionKind) IsGated() bool {
	switch k {
	case ActionDaily, ActionWork, ActionCrime, ActionRob, ActionBet, ActionLottery, ActionMessageXP:
		return true
	}
	return false
}

// IsTwoParty reports whether the kind mutates a second account
func (k ActionKind) IsTwoParty() bool {
	switch k {
	case ActionRob, ActionGift, ActionGive, ActionHire, ActionFire:
		return true
	}
	return false
}

// ActionParams carries the per-kind arguments of an action.
// Fields irrelevant to a kind are ignored.
type ActionParams struct {
	TargetUserID int64
	Amount       int64
	Item         string
	Quantity     int64
	CrimeKind    string
}
