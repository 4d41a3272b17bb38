package entities

import (
	"fmt"
	"time"
)

// Account is the economy record of a user within a guild
type Account struct {
	GuildID     int64                    `json:"guild_id"`
	UserID      int64                    `json:"user_id"`
	Balance     int64                    `json:"balance"`
	BankBalance int64                    `json:"bank"`
	Inventory   map[string]int64         `json:"inventory"`
	JobTitle    string                   `json:"job,omitempty"`
	Employees   []int64                  `json:"employees,omitempty"`
	LastActions map[ActionKind]time.Time `json:"last_actions"`
}

// NewAccount returns the canonical default record for a user
func NewAccount(guildID, userID int64) *Account {
	return &Account{
		GuildID:     guildID,
		UserID:      userID,
		Inventory:   make(map[string]int64),
		LastActions: make(map[ActionKind]time.Time),
	}
}

// Normalize fills nil collections left by older or hand-edited documents
func (a *Account) Normalize() {
	if a.Inventory == nil {
		a.Inventory = make(map[string]int64)
	}
	if a.LastActions == nil {
		a.LastActions = make(map[ActionKind]time.Time)
	}
}

// LastPerformed returns when kind last succeeded, or nil if never
func (a *Account) LastPerformed(kind ActionKind) *time.Time {
	t, ok := a.LastActions[kind]
	if !ok {
		return nil
	}
	return &t
}

// MarkPerformed records a successful performance of kind
func (a *Account) MarkPerformed(kind ActionKind, at time.Time) {
	a.Normalize()
	a.LastActions[kind] = at
}

// CanAfford checks if the wallet covers amount
func (a *Account) CanAfford(amount int64) bool {
	return a.Balance >= amount
}

// Debit subtracts amount from the wallet without going below zero and
// returns the amount actually taken
func (a *Account) Debit(amount int64) int64 {
	if amount > a.Balance {
		amount = a.Balance
	}
	if amount < 0 {
		amount = 0
	}
	a.Balance -= amount
	return amount
}

// NetWorth is wallet plus bank
func (a *Account) NetWorth() int64 {
	return a.Balance + a.BankBalance
}

// Quantity returns how many of item the account holds
func (a *Account) Quantity(item string) int64 {
	return a.Inventory[item]
}

// AddItem adds qty units of item to the inventory
func (a *Account) AddItem(item string, qty int64) {
	a.Normalize()
	a.Inventory[item] += qty
}

// RemoveItem takes qty units of item, deleting the entry when it reaches zero
func (a *Account) RemoveItem(item string, qty int64) error {
	have := a.Inventory[item]
	if have < qty {
		return fmt.Errorf("only %d of %s held, %d requested", have, item, qty)
	}
	if have == qty {
		delete(a.Inventory, item)
		return nil
	}
	a.Inventory[item] = have - qty
	return nil
}

// HasEmployee reports whether userID works for this account
func (a *Account) HasEmployee(userID int64) bool {
	for _, id := range a.Employees {
		if id == userID {
			return true
		}
	}
	return false
}

// RemoveEmployee drops userID from the employee list
func (a *Account) RemoveEmployee(userID int64) {
	kept := a.Employees[:0]
	for _, id := range a.Employees {
		if id != userID {
			kept = append(kept, id)
		}
	}
	a.Employees = kept
}

// Clone returns a deep copy
func (a *Account) Clone() *Account {
	c := *a
	c.Inventory = make(map[string]int64, len(a.Inventory))
	for k, v := range a.Inventory {
		c.Inventory[k] = v
	}
	c.LastActions = make(map[ActionKind]time.Time, len(a.LastActions))
	for k, v := range a.LastActions {
		c.LastActions[k] = v
	}
	if a.Employees != nil {
		c.Employees = append([]int64(nil), a.Employees...)
	}
	return &c
}
