package panel

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"ticket-bot/lang"
	"ticket-bot/ticket"
)

// ChannelName is the exact name of the channel the panel lives in. The bot
// does not create it; the community's existing setup is expected to match,
// emoji prefix included.
const ChannelName = "🎫⫸・ticket"

// Session is the slice of the Discord API the bootstrapper uses.
type Session interface {
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessagesBulkDelete(channelID string, messages []string, options ...discordgo.RequestOption) error
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bootstrap resets the panel channel to a known state: every existing
// message is purged and one fresh panel message is posted. Safe to run on
// every start. If the panel channel does not exist the reset is abandoned;
// the caller decides whether that is fatal.
func Bootstrap(s Session, guildID string) error {
	channels, err := s.GuildChannels(guildID)
	if err != nil {
		return fmt.Errorf("list channels: %w", err)
	}

	ch := ticket.FindByName(channels, ChannelName)
	if ch == nil {
		return fmt.Errorf("panel channel %q not found, create it in your server", ChannelName)
	}

	if err := purge(s, ch.ID); err != nil {
		return fmt.Errorf("purge panel channel: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       lang.T("panel.title"),
		Description: lang.T("panel.description"),
		Color:       0x5865F2,
	}
	_, err = s.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{buttonRow()},
	})
	if err != nil {
		return fmt.Errorf("post panel message: %w", err)
	}
	return nil
}

// purge deletes every message in the channel. Recent messages go through
// bulk deletion; Discord rejects bulk deletes of messages older than two
// weeks, so those fall back to one-by-one deletes.
func purge(s Session, channelID string) error {
	for {
		msgs, err := s.ChannelMessages(channelID, 100, "", "", "")
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			return nil
		}

		cutoff := time.Now().Add(-13 * 24 * time.Hour)
		var bulk []string
		for _, m := range msgs {
			if m.Timestamp.After(cutoff) {
				bulk = append(bulk, m.ID)
				continue
			}
			if err := s.ChannelMessageDelete(channelID, m.ID); err != nil {
				return err
			}
		}

		switch len(bulk) {
		case 0:
		case 1:
			if err := s.ChannelMessageDelete(channelID, bulk[0]); err != nil {
				return err
			}
		default:
			if err := s.ChannelMessagesBulkDelete(channelID, bulk); err != nil {
				return err
			}
		}

		if len(msgs) < 100 {
			return nil
		}
	}
}

func buttonRow() discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    lang.T("button.purchase"),
				Style:    discordgo.SuccessButton,
				CustomID: ticket.KindPurchase.ButtonID(),
			},
			discordgo.Button{
				Label:    lang.T("button.support"),
				Style:    discordgo.PrimaryButton,
				CustomID: ticket.KindSupport.ButtonID(),
			},
		},
	}
}
