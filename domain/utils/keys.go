package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// AccountKey is the composite "{guild}_{user}" key of per-member records
func AccountKey(guildID, userID int64) string {
	return fmt.Sprintf("%d_%d", guildID, userID)
}

// GuildKey is the key of per-guild config documents
func GuildKey(guildID int64) string {
	return strconv.FormatInt(guildID, 10)
}

// GuildPrefix matches every AccountKey of a guild
func GuildPrefix(guildID int64) string {
	return GuildKey(guildID) + "_"
}

// ParseAccountKey splits an AccountKey back into its ids
func ParseAccountKey(key string) (guildID, userID int64, err error) {
	guildPart, userPart, ok := strings.Cut(key, "_")
	if !ok {
		return 0, 0, fmt.Errorf("malformed account key %q", key)
	}
	if guildID, err = strconv.ParseInt(guildPart, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("malformed guild id in key %q: %w", key, err)
	}
	if userID, err = strconv.ParseInt(userPart, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("malformed user id in key %q: %w", key, err)
	}
	return guildID, userID, nil
}
