package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/config"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/dynamo"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/sheets"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/sqlite"
)

// Store is the configured registration backend.
type Store struct {
	registration.Repository
	// Lister and Getter are nil for backends that cannot be read back.
	Lister registration.Lister
	Getter registration.Getter

	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore connects to the backend named by STORE_BACKEND.
func OpenStore(ctx context.Context, cfg config.Config, loc *time.Location) (*Store, error) {
	switch cfg.StoreBackend {
	case config.StoreSheets:
		creds, err := GoogleServiceAccountJSON(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client, err := sheets.NewFromServiceAccountJSON(ctx, creds, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			return nil, err
		}
		return &Store{Repository: client}, nil

	case config.StoreDynamo:
		client, err := newDynamoClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := dynamo.NewDB(client, cfg.DynamoTable)
		if err := db.EnsureTable(ctx); err != nil {
			return nil, err
		}
		return &Store{Repository: db, Lister: db, Getter: db}, nil

	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.SQLitePath, loc)
		if err != nil {
			return nil, err
		}
		return &Store{Repository: store, Lister: store, Getter: store, close: store.Close}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// newDynamoClient uses the default AWS chain, or dummy credentials when
// pointed at a local DynamoDB endpoint.
func newDynamoClient(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.DynamoEndpoint != "" {
		opts = append(opts,
			awsconfig.WithRegion("localhost"),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
		)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to get aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	}), nil
}
