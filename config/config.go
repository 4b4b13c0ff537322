package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreSheets = "sheets"
	StoreDynamo = "dynamo"
	StoreSQLite = "sqlite"

	EmailProviderLog   = "log"
	EmailProviderSES   = "ses"
	EmailProviderGmail = "gmail"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	Host        string `env:"HOST" envDefault:"0.0.0.0"`
	Port        string `env:"PORT" envDefault:"8080"`

	SpreadsheetID string `env:"SPREADSHEET_ID" envDefault:"1XzZv9sR9YQ7W8P6oN5m4L3K2J1H0G9F8E7D6C5B4A3"`
	SheetName     string `env:"SHEET_NAME" envDefault:"Registrations"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"yacc2025connect@gmail.com"`

	EmailFrom     string `env:"EMAIL_FROM" envDefault:"YACC 2025 <yacc2025connect@gmail.com>"`
	EmailProvider string `env:"EMAIL_PROVIDER"`
	// GmailSender is the mailbox the service account impersonates for gmail delivery.
	GmailSender string `env:"GMAIL_SENDER" envDefault:"yacc2025connect@gmail.com"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"sheets"`

	GoogleServiceAccountFile         string `env:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	GoogleServiceAccountSSMParameter string `env:"GOOGLE_SERVICE_ACCOUNT_SSM_PARAMETER"`

	DynamoTable    string `env:"DYNAMO_TABLE" envDefault:"YACC2025Registrations"`
	DynamoEndpoint string `env:"DYNAMO_ENDPOINT"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"registrations.db"`

	Timezone       string   `env:"TIMEZONE" envDefault:"Asia/Manila"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://yacc2025.github.io"`
	TracingEnabled bool     `env:"TRACING_ENABLED" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// a missing .env is the normal case outside of local dev
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config from env: %w", err)
	}

	if cfg.EmailProvider == "" {
		cfg.EmailProvider = EmailProviderLog
		if cfg.IsProd() {
			cfg.EmailProvider = EmailProviderGmail
		}
	}

	return cfg, nil
}

func (c Config) IsProd() bool {
	return c.Environment == "prod"
}

// Location resolves the configured time zone used for timestamps and IDs.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SpreadsheetURL is the link included in admin notifications.
func (c Config) SpreadsheetURL() string {
	return "https://docs.google.com/spreadsheets/d/" + c.SpreadsheetID
}

func (c Config) Validate() error {
	var errs []error

	if c.Environment != "local" && c.Environment != "prod" {
		errs = append(errs, fmt.Errorf("ENVIRONMENT must be local or prod, got %q", c.Environment))
	}
	if c.SheetName == "" {
		errs = append(errs, errors.New("SHEET_NAME is empty"))
	}
	if c.AdminEmail == "" {
		errs = append(errs, errors.New("ADMIN_EMAIL is empty"))
	}
	if c.EmailFrom == "" {
		errs = append(errs, errors.New("EMAIL_FROM is empty"))
	}

	switch c.StoreBackend {
	case StoreSheets:
		if c.SpreadsheetID == "" {
			errs = append(errs, errors.New("SPREADSHEET_ID is empty"))
		}
		if c.GoogleServiceAccountFile == "" && c.GoogleServiceAccountSSMParameter == "" {
			errs = append(errs, errors.New("one of GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_SERVICE_ACCOUNT_SSM_PARAMETER is required for the sheets store"))
		}
	case StoreDynamo:
		if c.DynamoTable == "" {
			errs = append(errs, errors.New("DYNAMO_TABLE is empty"))
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend))
	}

	switch c.EmailProvider {
	case EmailProviderLog, EmailProviderSES:
	case EmailProviderGmail:
		if c.GmailSender == "" {
			errs = append(errs, errors.New("GMAIL_SENDER is empty"))
		}
		if c.GoogleServiceAccountFile == "" && c.GoogleServiceAccountSSMParameter == "" {
			errs = append(errs, errors.New("one of GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_SERVICE_ACCOUNT_SSM_PARAMETER is required for gmail delivery"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown EMAIL_PROVIDER %q", c.EmailProvider))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
