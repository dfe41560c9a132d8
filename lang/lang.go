package lang

import (
	"log"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	mu       sync.RWMutex
	messages = defaults()
)

// defaults returns the built-in English catalog. A lang file overrides
// individual keys; anything it does not mention keeps these values.
func defaults() map[string]string {
	return map[string]string{
		"panel.title":       "🎫 Create a Ticket",
		"panel.description": "Click a button below to open a ticket.",

		"button.purchase": "🎟 Purchase Ticket",
		"button.support":  "🛠 Support Ticket",
		"button.close":    "❌ Close Ticket",

		"ticket.already_open":  "❗ You already have an open ticket.",
		"ticket.created":       "✅ Ticket created: {channel}",
		"ticket.create_failed": "❗ Could not create your ticket. Please try again later.",
		"ticket.closing":       "✅ Ticket closing...",

		"greeting.purchase": "👋 Hello {user}, please provide your payment method or proof of purchase.",
		"greeting.support":  "👋 Hello {user}, describe your issue and a staff member will assist you shortly.",

		"audit.title":     "🗑 Ticket Closed",
		"audit.closed_by": "Closed By",
		"audit.channel":   "Ticket",
	}
}

// Load reads a YAML lang file and merges it over the defaults. The file maps
// an active_language key to a block of message keys, like:
//
//	active_language: en
//	en:
//	  ticket.already_open: "You already have an open ticket."
func Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[lang] Could not read %s: %v — using built-in messages", path, err)
		return
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		log.Fatalf("[lang] Failed to parse %s: %v", path, err)
	}

	activeLang := "en"
	if v, ok := raw["active_language"]; ok {
		if s, ok := v.(string); ok && s != "" {
			activeLang = s
		}
	}

	block, ok := raw[activeLang]
	if !ok {
		log.Printf("[lang] Language %q not found in %s — using built-in messages", activeLang, path)
		return
	}
	blockMap, ok := block.(map[string]interface{})
	if !ok {
		log.Fatalf("[lang] Language block %q is not a map", activeLang)
	}

	m := defaults()
	loaded := 0
	for k, v := range blockMap {
		if s, ok := v.(string); ok {
			m[k] = s
			loaded++
		}
	}

	mu.Lock()
	messages = m
	mu.Unlock()

	log.Printf("[lang] Loaded language %q (%d keys)", activeLang, loaded)
}

// T looks up a message and substitutes {name} placeholders from key/value
// pairs: T("ticket.created", "channel", "<#123>").
func T(key string, pairs ...string) string {
	mu.RLock()
	s, ok := messages[key]
	mu.RUnlock()

	if !ok {
		return "{" + key + "}"
	}

	for j := 0; j+1 < len(pairs); j += 2 {
		s = strings.ReplaceAll(s, "{"+pairs[j]+"}", pairs[j+1])
	}
	return s
}

// Reset restores the built-in catalog. Used by tests.
func Reset() {
	mu.Lock()
	messages = defaults()
	mu.Unlock()
}
