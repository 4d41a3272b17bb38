package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// GetDisplayName returns the server-specific display name for a user
// Falls back to username if nickname is not set or if there's an error
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			if member.User.GlobalName != "" {
				return member.User.GlobalName
			}
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// GetDisplayNameInt64 is a convenience wrapper that accepts int64 user IDs
func GetDisplayNameInt64(s *discordgo.Session, guildID string, userID int64) string {
	return GetDisplayName(s, guildID, strconv.FormatInt(userID, 10))
}

// ParseUserID converts a Discord user ID string to int64
func ParseUserID(userID string) (int64, error) {
	return strconv.ParseInt(userID, 10, 64)
}

// FormatUserID converts an int64 user ID to string
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID int64) string {
	return "<@" + FormatUserID(userID) + ">"
}

// GetRoleMention returns a Discord mention string for a role
func GetRoleMention(roleID int64) string {
	return "<@&" + FormatUserID(roleID) + ">"
}

// InvokerID returns the ID of the user behind an interaction
func InvokerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// InteractionIDs parses the guild and invoking user of a guild interaction
func InteractionIDs(i *discordgo.InteractionCreate) (guildID, userID int64, err error) {
	if guildID, err = strconv.ParseInt(i.GuildID, 10, 64); err != nil {
		return 0, 0, NewUserError("This command only works in a server.", "interaction without guild")
	}
	if userID, err = ParseUserID(InvokerID(i)); err != nil {
		return 0, 0, NewSystemError(err, "failed to parse invoker ID")
	}
	return guildID, userID, nil
}

// IsUserAdmin checks if a user has administrator permissions in a guild
func IsUserAdmin(s *discordgo.Session, guildID, userID string) bool {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		log.Errorf("Failed to get guild member: %v", err)
		return false
	}

	if guild, err := s.State.Guild(guildID); err == nil && guild.OwnerID == userID {
		return true
	}

	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil {
			continue
		}
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// RequireAdmin returns a user error when the invoker is not an administrator
func RequireAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return nil
	}
	if IsUserAdmin(s, i.GuildID, InvokerID(i)) {
		return nil
	}
	return NewUserError("You need administrator permissions for this command.", "non-admin invoked admin command")
}
