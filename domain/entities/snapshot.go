package entities

import "time"

// AccountSnapshot is a read-only projection of everything the ledger
// holds for a user, for display commands
type AccountSnapshot struct {
	GuildID     int64
	UserID      int64
	Balance     int64
	BankBalance int64
	NetWorth    int64
	Inventory   map[string]int64
	JobTitle    string
	Employees   []int64
	LastActions map[ActionKind]time.Time

	Experience int64
	Level      int
	Messages   int64
	// LevelFloorXP and NextLevelXP bound the current level
	LevelFloorXP int64
	NextLevelXP  int64

	IsVIP     bool
	VIPExpiry *time.Time
}

// LevelProgress returns the fraction of the current level completed, in [0,1]
func (s *AccountSnapshot) LevelProgress() float64 {
	span := s.NextLevelXP - s.LevelFloorXP
	if span <= 0 {
		return 0
	}
	p := float64(s.Experience-s.LevelFloorXP) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
