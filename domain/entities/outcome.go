package entities

import "time"

// OutcomeStatus is the terminal state of an executed action
type OutcomeStatus string

const (
	OutcomeApplied  OutcomeStatus = "applied"
	OutcomeRejected OutcomeStatus = "rejected"
)

// RejectReason explains why an action was not applied
type RejectReason string

const (
	RejectCooldownActive    RejectReason = "cooldown_active"
	RejectInsufficientFunds RejectReason = "insufficient_funds"
	RejectInsufficientItems RejectReason = "insufficient_items"
	RejectUnknownItem       RejectReason = "unknown_item"
	RejectInvalidTarget     RejectReason = "invalid_target"
	RejectTargetTooPoor     RejectReason = "target_too_poor"
	RejectNotPermitted      RejectReason = "not_permitted"
	RejectEmptyCatalog      RejectReason = "empty_catalog"
)

// LotteryResult holds both number sets of a single lottery ticket
type LotteryResult struct {
	PlayerNumbers []int `json:"player_numbers"`
	DrawNumbers   []int `json:"draw_numbers"`
	Matches       int   `json:"matches"`
	Prize         int64 `json:"prize"`
}

// ActionOutcome is the structured result of PerformAction.
// Rejected outcomes never carry a mutation.
type ActionOutcome struct {
	ActionID string
	Kind     ActionKind
	Status   OutcomeStatus
	Reason   RejectReason

	// Remaining is set for cooldown rejections
	Remaining time.Duration
	// Required is the amount the actor was missing funds or items for
	Required int64

	// Success reports the roll result of crime, rob and bet
	Success        bool
	AmountDelta    int64
	NewBalance     int64
	NewBankBalance int64

	// XP path
	Experience int64
	NewLevel   int
	LeveledUp  bool

	VIP          bool
	JobTitle     string
	JobAssigned  bool
	CrimeKind    string
	Item         string
	Quantity     int64
	TargetUserID int64
	// TargetBalance is the target's wallet after a two-party action
	TargetBalance int64
	Lottery       *LotteryResult
}

// IsApplied reports whether the action mutated the ledger
func (o *ActionOutcome) IsApplied() bool {
	return o.Status == OutcomeApplied
}

// Rejected builds a rejected outcome for kind with the given reason
func Rejected(kind ActionKind, reason RejectReason) *ActionOutcome {
	return &ActionOutcome{
		Kind:   kind,
		Status: OutcomeRejected,
		Reason: reason,
	}
}

// RejectedCooldown builds a cooldown rejection carrying the remaining wait
func RejectedCooldown(kind ActionKind, remaining time.Duration) *ActionOutcome {
	o := Rejected(kind, RejectCooldownActive)
	o.Remaining = remaining
	return o
}
