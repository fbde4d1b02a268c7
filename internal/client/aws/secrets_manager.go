package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/facturepro/facturepro-api/internal/helpers"
	"github.com/facturepro/facturepro-api/internal/logger"
	"go.uber.org/zap"
)

// secretsAPI is the subset of the Secrets Manager client used here
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient creates a client from the default AWS configuration
// chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return *result.SecretString, nil
}

// GetSecretString fetches the secret whose ARN is in secretArnEnvVar. When the
// ARN is unset or the fetch fails it falls back to the value of fallbackEnvVar.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		value, err := c.fetch(ctx, secretArn)
		if err == nil {
			logger.Log.Info("Fetched secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
			return value, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches the JSON secret whose ARN is in secretArnEnvVar and
// unmarshals it into target. There is no env fallback for JSON secrets.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("%s is not set", secretArnEnvVar)
	}

	value, err := c.fetch(ctx, secretArn)
	if err != nil {
		return fmt.Errorf("failed to fetch secret from %s: %w", secretArnEnvVar, err)
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("secret from %s is not valid JSON: %w", secretArnEnvVar, err)
	}
	return nil
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DatabaseDSN returns the Postgres connection string for a stage. Deployed
// stages build it from DB_HOST, DB_NAME, DB_SSLMODE and the RDS secret named
// by RDS_SECRET_ARN; local uses DATABASE_URL (or DATABASE_URL_ARN).
func (c *SecretsManagerClient) DatabaseDSN(ctx context.Context, stage string) (string, error) {
	if stage != helpers.StageProd && stage != helpers.StageDev {
		return c.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	}

	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	if host == "" || name == "" {
		return "", fmt.Errorf("DB_HOST and DB_NAME are required for stage %s", stage)
	}
	sslMode := helpers.GetEnvWithDefault("DB_SSLMODE", "require")

	var secret rdsSecret
	if err := c.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", err
	}
	if secret.Username == "" || secret.Password == "" {
		return "", fmt.Errorf("username or password missing in RDS secret")
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		host, name, sslMode), nil
}
