package ticket

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Kind is the type of ticket a user can open.
type Kind int

const (
	KindPurchase Kind = iota
	KindSupport
)

// Tag returns the kind's segment in derived channel names.
func (k Kind) Tag() string {
	if k == KindPurchase {
		return "purchase"
	}
	return "support"
}

// ButtonID returns the component custom ID of the panel button that opens
// this kind of ticket. The IDs must stay stable across restarts: presses
// arrive from buttons posted by earlier runs.
func (k Kind) ButtonID() string {
	if k == KindPurchase {
		return "purchase_ticket"
	}
	return "support_ticket"
}

// GreetingKey returns the lang key for the kind's greeting message.
func (k Kind) GreetingKey() string {
	if k == KindPurchase {
		return "greeting.purchase"
	}
	return "greeting.support"
}

// ChannelName derives the ticket channel name for a user and kind, e.g.
// "alice-support-ticket". The name is derived from the username alone, so two
// accounts sharing a username share a dedup key. Known limitation, kept for
// compatibility with existing ticket channels.
func ChannelName(username string, kind Kind) string {
	return strings.ToLower(username) + "-" + kind.Tag() + "-ticket"
}

// FindByName returns the first text channel whose name matches exactly, or
// nil. The live channel listing is the only record of open tickets.
func FindByName(channels []*discordgo.Channel, name string) *discordgo.Channel {
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return ch
		}
	}
	return nil
}
