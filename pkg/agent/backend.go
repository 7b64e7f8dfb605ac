package agent

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-mcp-weather"
	config "github.com/mutablelogic/go-mcp-weather/pkg/config"
	anthropic "github.com/mutablelogic/go-mcp-weather/pkg/provider/anthropic"
	bedrock "github.com/mutablelogic/go-mcp-weather/pkg/provider/bedrock"
	openai "github.com/mutablelogic/go-mcp-weather/pkg/provider/openai"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NewBackend returns the backend for the provider selected in the
// configuration. The client options apply to the HTTP providers.
func NewBackend(ctx context.Context, c config.Config, opts ...client.ClientOpt) (weather.Backend, error) {
	switch c.Provider {
	case config.ProviderOpenAI:
		if backend, err := openai.New(c.OpenAI.APIKey, c.OpenAI.Model, opts...); err != nil {
			return nil, err
		} else {
			return backend, nil
		}
	case config.ProviderAnthropic:
		if backend, err := anthropic.New(c.Anthropic.APIKey, c.Anthropic.Model, opts...); err != nil {
			return nil, err
		} else {
			return backend, nil
		}
	case config.ProviderBedrock:
		cfg, err := bedrock.NewConfig(ctx, bedrock.Config{
			Region:          c.Bedrock.Region,
			RoleARN:         c.Bedrock.RoleARN,
			ExternalID:      c.Bedrock.ExternalID,
			SessionName:     c.Bedrock.SessionName,
			AccessKeyID:     c.Bedrock.AccessKeyID,
			SecretAccessKey: c.Bedrock.SecretAccessKey,
			SessionToken:    c.Bedrock.SessionToken,
		})
		if err != nil {
			return nil, err
		}
		if backend, err := bedrock.NewFromConfig(cfg, c.Bedrock.ModelID); err != nil {
			return nil, err
		} else {
			return backend, nil
		}
	default:
		return nil, weather.ErrBadParameter.Withf("unknown provider %q", c.Provider)
	}
}
