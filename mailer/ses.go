package mailer

import (
	"context"
	"fmt"

	"github.com/International-Combat-Archery-Alliance/email/awsses"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

// NewSESSender sends through Amazon SES using the default AWS credential chain.
func NewSESSender(ctx context.Context) (*awsses.AWSSESSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get aws config: %w", err)
	}

	return awsses.NewAWSSESSender(sesv2.NewFromConfig(cfg)), nil
}
