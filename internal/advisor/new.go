package advisor

import (
	"context"
	"fmt"

	"github.com/findash/backend/internal/config"
)

// New returns the advisor for the configured provider and a function
// releasing its resources.
func New(ctx context.Context, cfg config.Config) (Advisor, func() error, error) {
	nop := func() error { return nil }

	switch cfg.AdvisorProvider {
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.GeminiAPIKey, cfg.AdvisorModel)
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	case config.ProviderOpenAI:
		o, err := NewOpenAI(cfg.OpenAIAPIKey, cfg.AdvisorModel, "")
		if err != nil {
			return nil, nil, err
		}
		return o, nop, nil
	case config.ProviderNone, "":
		return Disabled{}, nop, nil
	}

	return nil, nil, fmt.Errorf("unknown advisor provider '%s'", cfg.AdvisorProvider)
}
