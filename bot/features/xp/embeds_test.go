package xp

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"natanbot/domain/entities"
	"natanbot/domain/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProfileEmbed(t *testing.T) {
	snap := &entities.AccountSnapshot{
		UserID:       1,
		Experience:   650,
		Level:        3,
		Messages:     40,
		LevelFloorXP: 400,
		NextLevelXP:  900,
	}

	embed := BuildProfileEmbed(snap, "Rita", 2)

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "3", embed.Fields[0].Value)
	assert.Equal(t, "#2", embed.Fields[1].Value)
	assert.Contains(t, embed.Fields[3].Value, "50%")
	assert.Contains(t, embed.Fields[3].Value, "650 / 900 XP")
	assert.Nil(t, embed.Footer)
}

func TestBuildProfileEmbed_Unranked(t *testing.T) {
	embed := BuildProfileEmbed(&entities.AccountSnapshot{Level: 1, NextLevelXP: 100}, "Rita", 0)

	assert.Equal(t, "Unranked", embed.Fields[1].Value)
}

func TestBuildLeaderboardEmbed(t *testing.T) {
	entries := []interfaces.LeaderboardEntry{
		{Rank: 1, UserID: 10, Experience: 5000, Level: 8},
		{Rank: 4, UserID: 11, Experience: 1200, Level: 4},
	}

	embed := BuildLeaderboardEmbed(entries, 1, 3)

	assert.Contains(t, embed.Description, "🥇 <@10> · level 8 · 5,000 XP")
	assert.Contains(t, embed.Description, "**4.** <@11>")
	assert.Equal(t, "Page 1/3", embed.Footer.Text)
}

func TestBuildLeaderboardEmbed_Empty(t *testing.T) {
	embed := BuildLeaderboardEmbed(nil, 1, 1)

	assert.Equal(t, "Nobody has earned experience yet.", embed.Description)
}

func TestRankCardGenerator_Generate(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	snap := &entities.AccountSnapshot{
		UserID:       1,
		Experience:   450,
		Level:        3,
		Messages:     1200,
		LevelFloorXP: 400,
		NextLevelXP:  900,
		IsVIP:        true,
		VIPExpiry:    &expiry,
	}

	data, err := NewRankCardGenerator().Generate("A rather long display name here", snap, 1)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
