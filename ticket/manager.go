package ticket

import (
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"ticket-bot/config"
	"ticket-bot/lang"
)

// CloseButtonID is the component custom ID on the close button posted into
// every ticket channel. It must stay stable: buttons on already-posted
// messages keep the ID they were created with.
const CloseButtonID = "close_ticket"

// Manager runs the ticket lifecycle: opening a private channel per request
// and tearing it down again on close. It keeps no state of its own; the
// guild's live channel listing is the only record of open tickets.
type Manager struct {
	session Session
	cfg     *config.Config
}

func NewManager(session Session, cfg *config.Config) *Manager {
	return &Manager{session: session, cfg: cfg}
}

// Open handles a purchase or support button press. It creates a private
// channel for the requester under the configured category unless one with
// the derived name already exists.
//
// The duplicate check is a read of the live listing with no lock around the
// following create: two quick presses can race past it and produce two
// channels. Accepted; serializing opens would need the per-user registry
// this design deliberately goes without.
func (m *Manager) Open(i *discordgo.InteractionCreate, kind Kind) {
	r := NewResponder(m.session, i.Interaction)
	user := interactionUser(i)
	if user == nil {
		return
	}

	name := ChannelName(user.Username, kind)

	channels, err := m.session.GuildChannels(i.GuildID)
	if err != nil {
		log.Printf("Failed to list channels for dedup check: %v", err)
		r.Ephemeral(lang.T("ticket.create_failed"))
		return
	}
	if existing := FindByName(channels, name); existing != nil {
		r.Ephemeral(lang.T("ticket.already_open"))
		return
	}

	// No pre-validation of the category or staff role: the create call is
	// made with the configured IDs and a platform rejection is surfaced.
	ch, err := m.session.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             m.cfg.TicketCategoryID,
		PermissionOverwrites: Overwrites(i.GuildID, user.ID, m.cfg.StaffRoleID),
	})
	if err != nil {
		log.Printf("Failed to create ticket channel %q: %v", name, err)
		r.Ephemeral(lang.T("ticket.create_failed"))
		return
	}

	// The channel exists from here on. A failed greeting or confirmation
	// leaves it empty but open; nothing is rolled back.
	greeting := lang.T(kind.GreetingKey(), "user", user.Mention())
	_, err = m.session.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content:    greeting,
		Components: []discordgo.MessageComponent{closeButtonRow()},
	})
	if err != nil {
		log.Printf("Failed to send greeting into %q: %v", name, err)
	}

	r.Ephemeral(lang.T("ticket.created", "channel", channelMention(ch.ID)))
}

// Close handles the close button inside a ticket channel. The interaction's
// channel is the ticket; there is no separate lookup. An audit entry goes to
// the log channel first (best effort), then the user gets an acknowledgment,
// then the channel is deleted.
func (m *Manager) Close(i *discordgo.InteractionCreate) {
	r := NewResponder(m.session, i.Interaction)
	user := interactionUser(i)
	if user == nil {
		return
	}

	m.audit(i.ChannelID, user)

	r.Ephemeral(lang.T("ticket.closing"))

	if _, err := m.session.ChannelDelete(i.ChannelID); err != nil {
		log.Printf("Failed to delete ticket channel %s: %v", i.ChannelID, err)
	}
}

// audit writes the closure record to the log channel. Failures are logged
// and swallowed; closing proceeds either way.
func (m *Manager) audit(channelID string, closedBy *discordgo.User) {
	channelName := channelID
	if ch, err := m.session.Channel(channelID); err == nil {
		channelName = ch.Name
	}

	transcript := Transcript(m.session, channelID)

	embed := &discordgo.MessageEmbed{
		Title: lang.T("audit.title"),
		Color: 0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: lang.T("audit.channel"), Value: "`" + channelName + "`", Inline: true},
			{Name: lang.T("audit.closed_by"), Value: closedBy.Mention(), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	_, err := m.session.ChannelMessageSendComplex(m.cfg.TicketLogChanID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files: []*discordgo.File{
			{
				Name:        channelName + "-transcript.txt",
				ContentType: "text/plain",
				Reader:      strings.NewReader(transcript),
			},
		},
	})
	if err != nil {
		log.Printf("Failed to write audit entry for %q: %v", channelName, err)
	}
}

func closeButtonRow() discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    lang.T("button.close"),
				Style:    discordgo.DangerButton,
				CustomID: CloseButtonID,
			},
		},
	}
}

func channelMention(id string) string {
	return "<#" + id + ">"
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
