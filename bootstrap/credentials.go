package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/config"
)

// GoogleServiceAccountJSON loads the service account key from a local file,
// or from an encrypted SSM parameter when no file is configured.
func GoogleServiceAccountJSON(ctx context.Context, cfg config.Config) ([]byte, error) {
	if cfg.GoogleServiceAccountFile != "" {
		creds, err := os.ReadFile(cfg.GoogleServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read service account file: %w", err)
		}
		return creds, nil
	}

	if cfg.GoogleServiceAccountSSMParameter == "" {
		return nil, errors.New("no google service account configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get aws config: %w", err)
	}

	out, err := ssm.NewFromConfig(awsCfg).GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(cfg.GoogleServiceAccountSSMParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get service account from ssm: %w", err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return nil, fmt.Errorf("ssm parameter %q has no value", cfg.GoogleServiceAccountSSMParameter)
	}

	return []byte(*out.Parameter.Value), nil
}
