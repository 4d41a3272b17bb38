package services

import (
	"context"
	"fmt"
	"sort"

	"natanbot/domain/entities"
	"natanbot/domain/interfaces"
	"natanbot/domain/utils"

	log "github.com/sirupsen/logrus"
)

type xpService struct {
	profiles interfaces.XPProfileRepository
	configs  interfaces.XPConfigRepository
	locker   interfaces.AccountLocker
}

// NewXPService creates a new XP service
func NewXPService(profiles interfaces.XPProfileRepository, configs interfaces.XPConfigRepository, locker interfaces.AccountLocker) interfaces.XPService {
	return &xpService{
		profiles: profiles,
		configs:  configs,
		locker:   locker,
	}
}

func (s *xpService) GetConfig(ctx context.Context, guildID int64) (*entities.XPConfig, error) {
	cfg, err := s.configs.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load XP config: %w", err)
	}
	return cfg, nil
}

// ranked returns every profile of the guild, most experienced first.
// Ties go to the lower user ID so the order is stable between calls.
func (s *xpService) ranked(ctx context.Context, guildID int64) ([]*entities.XPProfile, *entities.XPConfig, error) {
	cfg, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return nil, nil, err
	}
	profiles, err := s.profiles.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list XP profiles: %w", err)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Experience != profiles[j].Experience {
			return profiles[i].Experience > profiles[j].Experience
		}
		return profiles[i].UserID < profiles[j].UserID
	})
	return profiles, cfg, nil
}

func (s *xpService) Leaderboard(ctx context.Context, guildID int64, page, perPage int) ([]interfaces.LeaderboardEntry, int, error) {
	if perPage <= 0 {
		return nil, 0, entities.NewValidationError("perPage", "must be positive")
	}
	profiles, cfg, err := s.ranked(ctx, guildID)
	if err != nil {
		return nil, 0, err
	}

	pages := max(1, (len(profiles)+perPage-1)/perPage)
	page = max(1, min(page, pages))

	start := (page - 1) * perPage
	end := min(start+perPage, len(profiles))
	entries := make([]interfaces.LeaderboardEntry, 0, end-start)
	for i := start; i < end; i++ {
		p := profiles[i]
		entries = append(entries, interfaces.LeaderboardEntry{
			Rank:       i + 1,
			UserID:     p.UserID,
			Experience: p.Experience,
			Level:      utils.CalculateLevel(p.Experience, cfg.XPPerLevel),
			Messages:   p.Messages,
		})
	}
	return entries, pages, nil
}

func (s *xpService) Rank(ctx context.Context, guildID, userID int64) (int, error) {
	profiles, _, err := s.ranked(ctx, guildID)
	if err != nil {
		return 0, err
	}
	for i, p := range profiles {
		if p.UserID == userID {
			return i + 1, nil
		}
	}
	return 0, nil
}

func (s *xpService) update(ctx context.Context, guildID int64, apply func(cfg *entities.XPConfig)) error {
	cfg, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return err
	}
	apply(cfg)
	if err := s.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save XP config: %w", err)
	}
	log.WithFields(log.Fields{
		"guildID":     guildID,
		"minXP":       cfg.MinXP,
		"maxXP":       cfg.MaxXP,
		"xpPerLevel":  cfg.XPPerLevel,
		"cooldown":    cfg.CooldownSeconds,
		"vipCooldown": cfg.VIPCooldownSeconds,
	}).Info("XP config updated")
	return nil
}

func (s *xpService) SetXPRange(ctx context.Context, guildID, minXP, maxXP int64) error {
	if minXP <= 0 || maxXP < minXP {
		return entities.NewValidationError("range", "need 0 < min <= max")
	}
	return s.update(ctx, guildID, func(cfg *entities.XPConfig) {
		cfg.MinXP = minXP
		cfg.MaxXP = maxXP
	})
}

// SetXPPerLevel changes the curve. Stored levels are recomputed lazily on
// the next message or query.
func (s *xpService) SetXPPerLevel(ctx context.Context, guildID, xpPerLevel int64) error {
	if xpPerLevel <= 0 {
		return entities.NewValidationError("xpPerLevel", "must be positive")
	}
	return s.update(ctx, guildID, func(cfg *entities.XPConfig) {
		cfg.XPPerLevel = xpPerLevel
	})
}

func (s *xpService) SetCooldown(ctx context.Context, guildID, seconds int64, vipSeconds *int64) error {
	if seconds <= 0 {
		return entities.NewValidationError("seconds", "must be positive")
	}
	vip := seconds / 2
	if vipSeconds != nil {
		if *vipSeconds <= 0 || *vipSeconds > seconds {
			return entities.NewValidationError("vipSeconds", "need 0 < vip cooldown <= cooldown")
		}
		vip = *vipSeconds
	}
	return s.update(ctx, guildID, func(cfg *entities.XPConfig) {
		cfg.CooldownSeconds = seconds
		cfg.VIPCooldownSeconds = vip
	})
}

func (s *xpService) ResetUser(ctx context.Context, guildID, userID int64) error {
	unlock := s.locker.Lock(utils.AccountKey(guildID, userID))
	defer unlock()

	profile, err := s.profiles.Get(ctx, guildID, userID)
	if err != nil {
		return fmt.Errorf("failed to load XP profile: %w", err)
	}
	profile.Reset()
	if err := s.profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save XP profile: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID": guildID,
		"userID":  userID,
	}).Info("XP profile reset")
	return nil
}
