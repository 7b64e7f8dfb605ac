package bedrock_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	// Packages
	aws "github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	weather "github.com/mutablelogic/go-mcp-weather"
	bedrock "github.com/mutablelogic/go-mcp-weather/pkg/provider/bedrock"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// fakeRuntime records the last invocation and replies with a fixed body
type fakeRuntime struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeRuntime) InvokeModel(_ context.Context, params *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func Test_client_001(t *testing.T) {
	// A runtime client is required, and the default model is used when empty
	assert := assert.New(t)

	_, err := bedrock.New(nil, "")
	assert.ErrorIs(err, weather.ErrBadParameter)

	c, err := bedrock.New(&fakeRuntime{}, "")
	assert.NoError(err)
	assert.Equal("bedrock", c.Name())
	assert.Equal(bedrock.DefaultModel, c.Model())
}

func Test_client_002(t *testing.T) {
	// The Anthropic body is sent with the Bedrock version and without a model
	assert := assert.New(t)
	require := require.New(t)

	runtime := &fakeRuntime{body: `{
		"id": "msg_1", "type": "message", "role": "assistant",
		"content": [{"type": "text", "text": "London is rainy."}],
		"stop_reason": "end_turn"
	}`}
	c, err := bedrock.New(runtime, "")
	require.NoError(err)

	conv := schema.NewConversation("You are a helpful weather assistant.")
	conv.Append(schema.NewMessage(schema.RoleUser, "Weather in London?"))
	message, err := c.Generate(context.Background(), conv, []schema.ToolDefinition{{Name: "get_current_weather"}})
	require.NoError(err)
	assert.Equal("London is rainy.", message.Text())

	// Check the invocation
	require.NotNil(runtime.input)
	assert.Equal(bedrock.DefaultModel, aws.ToString(runtime.input.ModelId))
	assert.Equal("application/json", aws.ToString(runtime.input.ContentType))
	assert.Equal("application/json", aws.ToString(runtime.input.Accept))

	var body map[string]any
	require.NoError(json.Unmarshal(runtime.input.Body, &body))
	assert.Equal("bedrock-2023-05-31", body["anthropic_version"])
	assert.NotContains(body, "model")
	assert.Equal("You are a helpful weather assistant.", body["system"])
	assert.Len(body["tools"], 1)
}

func Test_client_003(t *testing.T) {
	// Invocation errors and malformed bodies are returned
	assert := assert.New(t)

	sentinel := errors.New("access denied")
	c, err := bedrock.New(&fakeRuntime{err: sentinel}, "")
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), schema.Conversation{schema.NewMessage(schema.RoleUser, "Hi")}, nil)
	assert.ErrorIs(err, sentinel)

	c, err = bedrock.New(&fakeRuntime{body: "not json"}, "")
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), schema.Conversation{schema.NewMessage(schema.RoleUser, "Hi")}, nil)
	assert.ErrorIs(err, weather.ErrInternalServerError)
}

func Test_config_001(t *testing.T) {
	// Static keys are used as given, and must be set together
	assert := assert.New(t)
	ctx := context.Background()

	_, err := bedrock.NewConfig(ctx, bedrock.Config{AccessKeyID: "AKID"})
	assert.ErrorIs(err, weather.ErrBadParameter)

	cfg, err := bedrock.NewConfig(ctx, bedrock.Config{AccessKeyID: "AKID", SecretAccessKey: "SECRET", SessionToken: "TOKEN"})
	require.NoError(t, err)
	assert.Equal(bedrock.DefaultRegion, cfg.Region)

	creds, err := cfg.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal("AKID", creds.AccessKeyID)
	assert.Equal("SECRET", creds.SecretAccessKey)
	assert.Equal("TOKEN", creds.SessionToken)
}

func Test_config_002(t *testing.T) {
	// A role ARN wraps the credentials in a cache
	assert := assert.New(t)

	cfg, err := bedrock.NewConfig(context.Background(), bedrock.Config{
		Region:          "eu-west-1",
		RoleARN:         "arn:aws:iam::123456789012:role/weather",
		ExternalID:      "external",
		AccessKeyID:     "AKID",
		SecretAccessKey: "SECRET",
	})
	require.NoError(t, err)
	assert.Equal("eu-west-1", cfg.Region)
	assert.IsType(&aws.CredentialsCache{}, cfg.Credentials)
}
