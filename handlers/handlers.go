package handlers

import (
	"github.com/bwmarrin/discordgo"

	"ticket-bot/ticket"
)

// Register attaches the interaction router to the session. Each inbound
// event is dispatched in the handler goroutine discordgo spawns for it.
func Register(s *discordgo.Session, mgr *ticket.Manager) {
	s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		dispatch(mgr, i)
	})
}

// dispatch routes one interaction to the ticket manager. Only component
// presses inside a guild are handled; everything else, including unknown
// custom IDs, is ignored without a reply.
func dispatch(mgr *ticket.Manager, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		return
	}
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	switch i.MessageComponentData().CustomID {
	case ticket.KindPurchase.ButtonID():
		mgr.Open(i, ticket.KindPurchase)
	case ticket.KindSupport.ButtonID():
		mgr.Open(i, ticket.KindSupport)
	case ticket.CloseButtonID:
		mgr.Close(i)
	}
}
