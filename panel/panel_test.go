package panel

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-bot/ticket"
)

// fakeSession keeps real per-channel message lists so repeated bootstraps
// observe the messages earlier runs posted.
type fakeSession struct {
	channels []*discordgo.Channel
	messages map[string][]*discordgo.Message
	nextID   int

	listErr error
	sendErr error

	lastSend      *discordgo.MessageSend
	bulkDeletes   int
	singleDeleted []string
}

func newFakeSession(channels ...*discordgo.Channel) *fakeSession {
	return &fakeSession{channels: channels, messages: map[string][]*discordgo.Message{}}
}

func (f *fakeSession) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.channels, nil
}

func (f *fakeSession) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	msgs := f.messages[channelID]
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (f *fakeSession) ChannelMessagesBulkDelete(channelID string, ids []string, _ ...discordgo.RequestOption) error {
	f.bulkDeletes++
	for _, id := range ids {
		f.removeMessage(channelID, id)
	}
	return nil
}

func (f *fakeSession) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	f.singleDeleted = append(f.singleDeleted, messageID)
	f.removeMessage(channelID, messageID)
	return nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.nextID++
	msg := &discordgo.Message{
		ID:        fmt.Sprintf("msg-%d", f.nextID),
		ChannelID: channelID,
		Timestamp: time.Now(),
	}
	f.messages[channelID] = append(f.messages[channelID], msg)
	f.lastSend = data
	return msg, nil
}

func (f *fakeSession) removeMessage(channelID, messageID string) {
	msgs := f.messages[channelID]
	for i, m := range msgs {
		if m.ID == messageID {
			f.messages[channelID] = append(msgs[:i], msgs[i+1:]...)
			return
		}
	}
}

func panelChannel() *discordgo.Channel {
	return &discordgo.Channel{ID: "panel-1", Name: ChannelName, Type: discordgo.ChannelTypeGuildText}
}

func TestBootstrapPostsPanel(t *testing.T) {
	fs := newFakeSession(panelChannel())

	require.NoError(t, Bootstrap(fs, "guild-1"))

	require.Len(t, fs.messages["panel-1"], 1)
	require.NotNil(t, fs.lastSend)
	require.Len(t, fs.lastSend.Embeds, 1)
	assert.NotEmpty(t, fs.lastSend.Embeds[0].Title)

	require.Len(t, fs.lastSend.Components, 1)
	row := fs.lastSend.Components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)
	purchase := row.Components[0].(discordgo.Button)
	support := row.Components[1].(discordgo.Button)
	assert.Equal(t, ticket.KindPurchase.ButtonID(), purchase.CustomID)
	assert.Equal(t, ticket.KindSupport.ButtonID(), support.CustomID)
}

func TestBootstrapTwiceLeavesOnePanelMessage(t *testing.T) {
	fs := newFakeSession(panelChannel())

	require.NoError(t, Bootstrap(fs, "guild-1"))
	require.NoError(t, Bootstrap(fs, "guild-1"))

	assert.Len(t, fs.messages["panel-1"], 1)
}

func TestBootstrapPurgesExistingMessages(t *testing.T) {
	fs := newFakeSession(panelChannel())
	now := time.Now()
	fs.messages["panel-1"] = []*discordgo.Message{
		{ID: "recent-1", Timestamp: now},
		{ID: "recent-2", Timestamp: now.Add(-time.Hour)},
		{ID: "ancient", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}

	require.NoError(t, Bootstrap(fs, "guild-1"))

	require.Len(t, fs.messages["panel-1"], 1)
	assert.Equal(t, 1, fs.bulkDeletes)
	// Messages past the bulk-delete window are deleted one at a time.
	assert.Contains(t, fs.singleDeleted, "ancient")
}

func TestBootstrapMissingPanelChannel(t *testing.T) {
	fs := newFakeSession(&discordgo.Channel{ID: "other", Name: "general", Type: discordgo.ChannelTypeGuildText})

	err := Bootstrap(fs, "guild-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ChannelName)
}

func TestBootstrapListFailure(t *testing.T) {
	fs := newFakeSession(panelChannel())
	fs.listErr = errors.New("boom")

	require.Error(t, Bootstrap(fs, "guild-1"))
}

func TestBootstrapSendFailure(t *testing.T) {
	fs := newFakeSession(panelChannel())
	fs.sendErr = errors.New("no permission")

	require.Error(t, Bootstrap(fs, "guild-1"))
}
