package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting the bot needs. All fields are required and the
// process must not start without them. The four ID fields are Discord
// snowflakes: validated as integers, kept as strings because that is how
// discordgo addresses guilds, roles and channels.
type Config struct {
	Token            string
	GuildID          string
	StaffRoleID      string
	TicketCategoryID string
	TicketLogChanID  string
}

const (
	envToken          = "TOKEN"
	envGuildID        = "GUILD_ID"
	envStaffRoleID    = "STAFF_ROLE_ID"
	envTicketCategory = "TICKET_CATEGORY_ID"
	envTicketLogChan  = "TICKET_LOG_CHANNEL_ID"
)

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first, without overwriting variables that are
// already set. The returned error names every missing or malformed variable
// so an operator can fix them in a single pass.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Token:            getenv(envToken),
		GuildID:          getenv(envGuildID),
		StaffRoleID:      getenv(envStaffRoleID),
		TicketCategoryID: getenv(envTicketCategory),
		TicketLogChanID:  getenv(envTicketLogChan),
	}

	var problems []string
	if cfg.Token == "" {
		problems = append(problems, envToken+" is not set")
	}
	ids := []struct {
		name  string
		value string
	}{
		{envGuildID, cfg.GuildID},
		{envStaffRoleID, cfg.StaffRoleID},
		{envTicketCategory, cfg.TicketCategoryID},
		{envTicketLogChan, cfg.TicketLogChanID},
	}
	for _, id := range ids {
		if id.value == "" {
			problems = append(problems, id.name+" is not set")
			continue
		}
		if _, err := strconv.ParseUint(id.value, 10, 64); err != nil {
			problems = append(problems, fmt.Sprintf("%s is not a numeric ID: %q", id.name, id.value))
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}
