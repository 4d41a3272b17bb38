package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"natanbot/domain/entities"
	"natanbot/domain/interfaces"
	"natanbot/events"
	"natanbot/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

type vipService struct {
	grants  interfaces.VIPGrantRepository
	configs interfaces.VIPConfigRepository
	roles   interfaces.RoleManager
	emitter events.Emitter
	now     func() time.Time

	// mu orders grant writes against the sweeper's check-and-clear
	mu sync.Mutex
}

// NewVIPService creates a new VIP service. roles may be nil when no
// Discord session is available, in which case role changes are skipped.
func NewVIPService(
	grants interfaces.VIPGrantRepository,
	configs interfaces.VIPConfigRepository,
	roles interfaces.RoleManager,
	emitter events.Emitter,
) interfaces.VIPService {
	return &vipService{
		grants:  grants,
		configs: configs,
		roles:   roles,
		emitter: emitter,
		now:     time.Now,
	}
}

// IsVIP reports whether an unexpired grant exists. Expired grants count as
// absent even before the sweeper removed them.
func (s *vipService) IsVIP(ctx context.Context, guildID, userID int64) (bool, error) {
	grant, err := s.grants.Get(ctx, guildID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get VIP grant: %w", err)
	}
	return grant != nil && grant.IsActive(s.now()), nil
}

func (s *vipService) VIPExpiry(ctx context.Context, guildID, userID int64) (*time.Time, error) {
	grant, err := s.grants.Get(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get VIP grant: %w", err)
	}
	if grant == nil || !grant.IsActive(s.now()) {
		return nil, nil
	}
	expiry := grant.ExpiresAt
	return &expiry, nil
}

func (s *vipService) Grant(ctx context.Context, guildID, userID, grantedBy int64, days int) (*entities.VIPGrant, error) {
	if days <= 0 {
		return nil, entities.NewValidationError("days", "must be positive")
	}

	now := s.now()
	grant := &entities.VIPGrant{
		GuildID:   guildID,
		UserID:    userID,
		ExpiresAt: now.Add(time.Duration(days) * 24 * time.Hour),
		GrantedBy: grantedBy,
		GrantedAt: now,
	}
	s.mu.Lock()
	err := s.grants.Set(ctx, grant)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to save VIP grant: %w", err)
	}

	cfg, err := s.configs.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load VIP config: %w", err)
	}
	if cfg.RoleID != 0 && s.roles != nil {
		if err := s.roles.AddRole(ctx, guildID, userID, cfg.RoleID); err != nil {
			// The grant stands; the member can get the role by hand
			log.WithFields(log.Fields{
				"guildID": guildID,
				"userID":  userID,
				"roleID":  cfg.RoleID,
				"error":   err,
			}).Warn("Failed to add VIP role")
		}
	}

	log.WithFields(log.Fields{
		"guildID":   guildID,
		"userID":    userID,
		"grantedBy": grantedBy,
		"days":      days,
		"expiresAt": grant.ExpiresAt,
	}).Info("VIP granted")
	observability.GetMetrics().RecordVIPGrant()

	if s.emitter != nil {
		s.emitter.Emit(ctx, events.VIPGrantedEvent{Grant: *grant})
	}
	return grant, nil
}

func (s *vipService) Revoke(ctx context.Context, guildID, userID int64) (bool, error) {
	removed, err := s.grants.Clear(ctx, guildID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to clear VIP grant: %w", err)
	}
	if !removed {
		return false, nil
	}

	cfg, err := s.configs.Get(ctx, guildID)
	if err != nil {
		return true, fmt.Errorf("failed to load VIP config: %w", err)
	}
	s.removeRole(ctx, cfg, userID)

	log.WithFields(log.Fields{
		"guildID": guildID,
		"userID":  userID,
	}).Info("VIP revoked")
	return true, nil
}

func (s *vipService) removeRole(ctx context.Context, cfg *entities.VIPConfig, userID int64) {
	if cfg.RoleID == 0 || s.roles == nil {
		return
	}
	if err := s.roles.RemoveRole(ctx, cfg.GuildID, userID, cfg.RoleID); err != nil {
		log.WithFields(log.Fields{
			"guildID": cfg.GuildID,
			"userID":  userID,
			"roleID":  cfg.RoleID,
			"error":   err,
		}).Warn("Failed to remove VIP role")
	}
}

func (s *vipService) ListActive(ctx context.Context, guildID int64) ([]*entities.VIPGrant, error) {
	grants, err := s.grants.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list VIP grants: %w", err)
	}

	now := s.now()
	active := make([]*entities.VIPGrant, 0, len(grants))
	for _, g := range grants {
		if g.IsActive(now) {
			active = append(active, g)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].ExpiresAt.Before(active[j].ExpiresAt)
	})
	return active, nil
}

// SweepExpired removes every expired grant across guilds. A failure on one
// grant does not stop the others; the errors are joined.
func (s *vipService) SweepExpired(ctx context.Context) ([]*entities.VIPGrant, error) {
	grants, err := s.grants.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list VIP grants: %w", err)
	}

	now := s.now()
	var expired []*entities.VIPGrant
	var errs []error
	configs := make(map[int64]*entities.VIPConfig)

	for _, listed := range grants {
		if listed.IsActive(now) {
			continue
		}
		g, err := s.clearIfExpired(ctx, listed.GuildID, listed.UserID, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if g == nil {
			continue
		}
		expired = append(expired, g)

		cfg, ok := configs[g.GuildID]
		if !ok {
			if cfg, err = s.configs.Get(ctx, g.GuildID); err != nil {
				errs = append(errs, fmt.Errorf("failed to load VIP config of %d: %w", g.GuildID, err))
				continue
			}
			configs[g.GuildID] = cfg
		}
		s.removeRole(ctx, cfg, g.UserID)

		log.WithFields(log.Fields{
			"guildID":   g.GuildID,
			"userID":    g.UserID,
			"expiredAt": g.ExpiresAt,
		}).Info("VIP expired")
		observability.GetMetrics().RecordVIPExpired()
		if s.emitter != nil {
			s.emitter.Emit(ctx, events.VIPExpiredEvent{Grant: *g})
		}
	}

	return expired, errors.Join(errs...)
}

// clearIfExpired re-reads the grant before deleting it, so a renewal made
// after the sweep listed the grants survives. Returns nil when nothing was
// cleared.
func (s *vipService) clearIfExpired(ctx context.Context, guildID, userID int64, now time.Time) (*entities.VIPGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.grants.Get(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grant of %d in %d: %w", userID, guildID, err)
	}
	if current == nil || current.IsActive(now) {
		return nil, nil
	}
	if _, err := s.grants.Clear(ctx, guildID, userID); err != nil {
		return nil, fmt.Errorf("failed to clear grant of %d in %d: %w", userID, guildID, err)
	}
	return current, nil
}

func (s *vipService) GetConfig(ctx context.Context, guildID int64) (*entities.VIPConfig, error) {
	cfg, err := s.configs.Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load VIP config: %w", err)
	}
	return cfg, nil
}

func (s *vipService) SetRole(ctx context.Context, guildID int64, roleID int64) error {
	cfg, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return err
	}
	cfg.RoleID = roleID
	if err := s.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save VIP config: %w", err)
	}
	return nil
}

func (s *vipService) SetMultiplier(ctx context.Context, guildID int64, category string, value float64) error {
	if !entities.IsMultiplierCategory(category) {
		return entities.NewValidationError("category", fmt.Sprintf("unknown multiplier %q", category))
	}
	if value < 1 {
		return entities.NewValidationError("value", "must be at least 1.0")
	}

	cfg, err := s.GetConfig(ctx, guildID)
	if err != nil {
		return err
	}
	if cfg.Multipliers == nil {
		cfg.Multipliers = make(map[string]float64)
	}
	cfg.Multipliers[category] = value
	if err := s.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save VIP config: %w", err)
	}
	return nil
}
