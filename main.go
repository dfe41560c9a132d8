package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ticket-bot/bot"
	"ticket-bot/config"
	"ticket-bot/handlers"
	"ticket-bot/lang"
	"ticket-bot/panel"
	"ticket-bot/ticket"
)

func main() {
	langPath := flag.String("lang", "lang.yml", "Path to the message catalog")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lang.Load(*langPath)

	b, err := bot.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	mgr := ticket.NewManager(b.Session, cfg)
	handlers.Register(b.Session, mgr)

	if err := b.Start(); err != nil {
		log.Fatalf("Failed to connect to Discord: %v", err)
	}
	defer b.Stop()

	b.WaitReady()
	if err := panel.Bootstrap(b.Session, cfg.GuildID); err != nil {
		log.Printf("WARNING: Panel bootstrap failed: %v", err)
	}

	log.Println("Bot is running. Press Ctrl+C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
