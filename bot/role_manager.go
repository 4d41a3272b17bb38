package bot

import (
	"context"
	"strconv"

	"natanbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

type roleManager struct {
	session *discordgo.Session
}

// NewRoleManager grants and removes guild roles through the Discord API
func NewRoleManager(s *discordgo.Session) interfaces.RoleManager {
	return &roleManager{session: s}
}

func (r *roleManager) AddRole(ctx context.Context, guildID, userID, roleID int64) error {
	return r.session.GuildMemberRoleAdd(id(guildID), id(userID), id(roleID), discordgo.WithContext(ctx))
}

func (r *roleManager) RemoveRole(ctx context.Context, guildID, userID, roleID int64) error {
	return r.session.GuildMemberRoleRemove(id(guildID), id(userID), id(roleID), discordgo.WithContext(ctx))
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
