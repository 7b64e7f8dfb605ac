package bedrock

import (
	"context"
	"time"

	// Packages
	aws "github.com/aws/aws-sdk-go-v2/aws"
	config "github.com/aws/aws-sdk-go-v2/config"
	credentials "github.com/aws/aws-sdk-go-v2/credentials"
	stscreds "github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	sts "github.com/aws/aws-sdk-go-v2/service/sts"
	weather "github.com/mutablelogic/go-mcp-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the AWS settings used to sign Bedrock requests. Without
// static keys the default credential chain is used, and with a role ARN
// those credentials are exchanged for the role through STS.
type Config struct {
	Region          string
	RoleARN         string
	ExternalID      string
	SessionName     string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultRegion      = "us-east-1"
	DefaultSessionName = "weather-app-session"
	roleDuration       = time.Hour
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NewConfig returns the AWS configuration for the settings
func NewConfig(ctx context.Context, c Config) (aws.Config, error) {
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return aws.Config{}, weather.ErrBadParameter.With("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together")
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}

	// Base credentials
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
	}
	if c.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}

	// Assume the role
	if c.RoleARN != "" {
		sessionName := c.SessionName
		if sessionName == "" {
			sessionName = DefaultSessionName
		}
		provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), c.RoleARN, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = sessionName
			o.Duration = roleDuration
			if c.ExternalID != "" {
				o.ExternalID = aws.String(c.ExternalID)
			}
		})
		cfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return cfg, nil
}
