package ticket

import "github.com/bwmarrin/discordgo"

const memberPerms = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages

// Overwrites builds the access list for a new ticket channel: @everyone
// denied, the requester and the staff role allowed to view and send. The
// guild ID doubles as the @everyone role ID.
func Overwrites(guildID, userID, staffRoleID string) []*discordgo.PermissionOverwrite {
	return []*discordgo.PermissionOverwrite{
		{
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    userID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: memberPerms,
		},
		{
			ID:    staffRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: memberPerms,
		},
	}
}
