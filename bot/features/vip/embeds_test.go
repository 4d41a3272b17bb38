package vip

import (
	"testing"
	"time"

	"natanbot/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestBuildStatusEmbed(t *testing.T) {
	t.Run("not vip", func(t *testing.T) {
		embed := BuildStatusEmbed(7, nil, now)

		assert.Equal(t, "<@7> is not a VIP.", embed.Description)
		assert.Empty(t, embed.Fields)
	})

	t.Run("vip", func(t *testing.T) {
		expiry := now.Add(49 * time.Hour)
		embed := BuildStatusEmbed(7, &expiry, now)

		require.Len(t, embed.Fields, 2)
		assert.Equal(t, "2d 1h", embed.Fields[1].Value)
	})
}

func TestBuildListEmbed_Truncates(t *testing.T) {
	grants := make([]*entities.VIPGrant, 0, 12)
	for i := 0; i < 12; i++ {
		grants = append(grants, &entities.VIPGrant{UserID: int64(i + 1), ExpiresAt: now.Add(time.Duration(i+1) * time.Hour)})
	}

	embed := BuildListEmbed(grants, 10, now)

	assert.Equal(t, "👑 VIP Members (12)", embed.Title)
	assert.Contains(t, embed.Description, "<@1> · 1h left")
	assert.Contains(t, embed.Description, "...and 2 more")
	assert.NotContains(t, embed.Description, "<@11>")
}

func TestBuildConfigEmbed(t *testing.T) {
	cfg := entities.DefaultVIPConfig(1)

	embed := BuildConfigEmbed(cfg)

	assert.Equal(t, "not set", embed.Fields[0].Value)
	assert.Equal(t, "+15% / +15%", embed.Fields[1].Value)
	assert.Equal(t, "**coins** ×1.5\n**daily** ×2\n**xp** ×2", embed.Fields[2].Value)
}
