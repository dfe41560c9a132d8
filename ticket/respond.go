package ticket

import (
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
)

// Responder sends ephemeral replies to one interaction. Discord allows a
// single initial response per interaction; anything after that must go
// through the follow-up endpoint. The sent flag tracks which side of that
// line we are on.
type Responder struct {
	session Session
	inter   *discordgo.Interaction
	sent    bool
}

func NewResponder(session Session, inter *discordgo.Interaction) *Responder {
	return &Responder{session: session, inter: inter}
}

// Ephemeral sends a private reply to the interaction's user.
func (r *Responder) Ephemeral(content string) {
	if !r.sent {
		err := r.session.InteractionRespond(r.inter, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err == nil {
			r.sent = true
			return
		}
		if !isAlreadyAcknowledged(err) {
			log.Printf("Failed to respond to interaction: %v", err)
			return
		}
		// Something already took the initial response slot; this reply and
		// any later ones go through the follow-up endpoint.
		r.sent = true
	}

	_, err := r.session.FollowupMessageCreate(r.inter, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("Failed to send follow-up: %v", err)
	}
}

func isAlreadyAcknowledged(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeInteractionHasAlreadyBeenAcknowledged
	}
	return false
}
