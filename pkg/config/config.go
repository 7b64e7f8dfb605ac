// Package config holds the client configuration: the LLM provider, its
// credentials and the command which starts the weather server.
package config

import (
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Config struct {
	Provider  string  `yaml:"provider"`
	MaxTokens uint    `yaml:"max_tokens,omitempty"`
	Server    Server  `yaml:"server"`
	OpenAI    APIKey  `yaml:"openai"`
	Anthropic APIKey  `yaml:"anthropic"`
	Bedrock   Bedrock `yaml:"bedrock"`
}

// Server is the command which is spawned and spoken to over stdio
type Server struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// APIKey is the configuration for an HTTP API provider
type APIKey struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model,omitempty"`
}

// Bedrock is the configuration for Claude on AWS Bedrock
type Bedrock struct {
	Region          string `yaml:"region"`
	ModelID         string `yaml:"model_id,omitempty"`
	RoleARN         string `yaml:"role_arn,omitempty"`
	ExternalID      string `yaml:"external_id,omitempty"`
	SessionName     string `yaml:"session_name,omitempty"`
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
	SessionToken    string `yaml:"session_token,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
)

const (
	DefaultProvider      = ProviderOpenAI
	DefaultServerCommand = "weather-server"
	DefaultRegion        = "us-east-1"
)

var (
	providers    = []string{ProviderOpenAI, ProviderAnthropic, ProviderBedrock}
	placeholders = []string{"YOURE_API_KEY_HERE", "YOUR_API_KEY_HERE"}
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Default returns the configuration used when there is no file
func Default() Config {
	return Config{
		Provider: DefaultProvider,
		Server:   Server{Command: DefaultServerCommand},
		Bedrock:  Bedrock{Region: DefaultRegion},
	}
}

// Read decodes a YAML document over the defaults. Unknown keys are errors.
func Read(r io.Reader) (Config, error) {
	config := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, weather.ErrBadParameter.Withf("config: %v", err)
	}
	return config, nil
}

// Load reads the configuration file at path. An empty path returns the
// defaults, and a missing file returns ErrNotFound.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, weather.ErrNotFound.Withf("config: %s", path)
		}
		return Config{}, err
	}
	defer f.Close()
	return Read(f)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate clears placeholder values, fills in defaults and checks the
// configuration for the selected provider
func (c *Config) Validate() error {
	c.clearPlaceholders()

	// Provider
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if !slices.Contains(providers, c.Provider) {
		return weather.ErrBadParameter.Withf("unknown provider %q, expected one of %s", c.Provider, strings.Join(providers, ", "))
	}

	// Server
	if c.Server.Command == "" {
		c.Server.Command = DefaultServerCommand
	}

	// Bedrock region
	if c.Bedrock.Region == "" {
		c.Bedrock.Region = DefaultRegion
	}

	// Credentials for the selected provider
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return weather.ErrBadParameter.With("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return weather.ErrBadParameter.With("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderBedrock:
		if (c.Bedrock.AccessKeyID == "") != (c.Bedrock.SecretAccessKey == "") {
			return weather.ErrBadParameter.With("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together")
		}
	}

	return nil
}

// Model returns the configured model for the selected provider, or empty
// when the provider default is used
func (c Config) Model() string {
	switch c.Provider {
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderAnthropic:
		return c.Anthropic.Model
	case ProviderBedrock:
		return c.Bedrock.ModelID
	}
	return ""
}

// IsPlaceholder returns true for empty values and for values copied from
// an example configuration, such as "<your key>"
func IsPlaceholder(value string) bool {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return true
	case strings.HasPrefix(value, "<") && strings.HasSuffix(value, ">"):
		return true
	case slices.Contains(placeholders, strings.ToUpper(value)):
		return true
	}
	return false
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Config) clearPlaceholders() {
	for _, field := range []*string{
		&c.OpenAI.APIKey,
		&c.Anthropic.APIKey,
		&c.Bedrock.RoleARN,
		&c.Bedrock.ExternalID,
		&c.Bedrock.AccessKeyID,
		&c.Bedrock.SecretAccessKey,
		&c.Bedrock.SessionToken,
	} {
		if IsPlaceholder(*field) {
			*field = ""
		} else {
			*field = strings.TrimSpace(*field)
		}
	}
}
