package app

import (
	"strings"

	"github.com/yungbote/startpage-backend/internal/platform/logger"
	"github.com/yungbote/startpage-backend/internal/platform/openai"
)

type Clients struct {
	OpenAI openai.Client
}

// wireClients never fails: a missing API key only disables AI flash cards.
func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")
	if strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
		log.Info("OPENAI_API_KEY not set; AI flash cards disabled")
		return Clients{}
	}
	c, err := openai.NewClient(cfg.OpenAI, log)
	if err != nil {
		log.Warn("OpenAI client init failed; AI flash cards disabled", "error", err)
		return Clients{}
	}
	return Clients{OpenAI: c}
}
