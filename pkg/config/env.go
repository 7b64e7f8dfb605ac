package config

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Env holds the values which override the configuration file. It is
// embedded in the command line so each field is also read from the
// environment variable named by its env tag.
type Env struct {
	Provider        string `name:"provider" env:"LLM_PROVIDER" help:"LLM provider (openai, anthropic, bedrock)"`
	OpenAIKey       string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	AnthropicKey    string `name:"anthropic-api-key" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
	BedrockModel    string `name:"bedrock-model" env:"BEDROCK_MODEL_ID" help:"Bedrock model identifier"`
	Region          string `name:"aws-region" env:"AWS_REGION" help:"AWS region for Bedrock"`
	RoleARN         string `name:"aws-role-arn" env:"AWS_ROLE_ARN" help:"IAM role to assume for Bedrock"`
	ExternalID      string `name:"aws-external-id" env:"AWS_EXTERNAL_ID" help:"External ID for the assumed role"`
	SessionName     string `name:"aws-session-name" env:"AWS_ROLE_SESSION_NAME" help:"Session name for the assumed role"`
	AccessKeyID     string `name:"aws-access-key-id" env:"AWS_ACCESS_KEY_ID" help:"AWS access key"`
	SecretAccessKey string `name:"aws-secret-access-key" env:"AWS_SECRET_ACCESS_KEY" help:"AWS secret key"`
	SessionToken    string `name:"aws-session-token" env:"AWS_SESSION_TOKEN" help:"AWS session token"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Apply sets every non-empty value from env on the configuration
func (c *Config) Apply(env Env) {
	for _, v := range []struct {
		dst *string
		src string
	}{
		{&c.Provider, env.Provider},
		{&c.OpenAI.APIKey, env.OpenAIKey},
		{&c.Anthropic.APIKey, env.AnthropicKey},
		{&c.Bedrock.ModelID, env.BedrockModel},
		{&c.Bedrock.Region, env.Region},
		{&c.Bedrock.RoleARN, env.RoleARN},
		{&c.Bedrock.ExternalID, env.ExternalID},
		{&c.Bedrock.SessionName, env.SessionName},
		{&c.Bedrock.AccessKeyID, env.AccessKeyID},
		{&c.Bedrock.SecretAccessKey, env.SecretAccessKey},
		{&c.Bedrock.SessionToken, env.SessionToken},
	} {
		if v.src != "" {
			*v.dst = v.src
		}
	}
}
