package ticket

import (
	"fmt"
	"strings"
	"time"
)

// transcriptLimit caps how much history goes into the audit attachment.
// One listing call's worth; older messages are dropped.
const transcriptLimit = 100

// Transcript renders a channel's recent history as plain text, oldest
// first, for attachment to the audit log entry.
func Transcript(s Session, channelID string) string {
	msgs, err := s.ChannelMessages(channelID, transcriptLimit, "", "", "")
	if err != nil {
		return fmt.Sprintf("transcript unavailable: %v\n", err)
	}

	var sb strings.Builder
	// The listing comes back newest first; walk it backwards.
	for idx := len(msgs) - 1; idx >= 0; idx-- {
		m := msgs[idx]
		fmt.Fprintf(&sb, "%s  %s: %s\n", m.Timestamp.Format(time.DateTime), m.Author.Username, m.Content)
		for _, a := range m.Attachments {
			fmt.Fprintf(&sb, "%21s attachment: %s\n", "", a.URL)
		}
	}
	if sb.Len() == 0 {
		return "(no messages)\n"
	}
	return sb.String()
}
