package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/bootstrap"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/config"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/events"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

// adminCLI carries what every subcommand needs once the config is loaded.
type adminCLI struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	cli := &adminCLI{}

	rootCmd := &cobra.Command{
		Use:          "yacc-admin",
		Short:        "Operator tools for YACC 2025 registrations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cli.cfg = cfg
			cli.logger = bootstrap.NewLogger(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.AddCommand(
		cli.registrationsCmd(),
		cli.sendTestEmailCmd(),
		cli.listCmd(),
		cli.showCmd(),
	)

	return rootCmd
}

func (c *adminCLI) registrationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "registrations",
		Short: "Show the registrations overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := c.cfg.Location()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), registration.RegistrationsOverview(events.YACC2025(loc).Name))
			return err
		},
	}
}

func (c *adminCLI) sendTestEmailCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "send-test-email",
		Short: "Send a participant confirmation for a fixture registration",
		Long: `Send a participant confirmation email for a made up registration
(Test User / Test Church / Test Sport) to the given address.

Nothing is written to the registrations store and no admin notification is sent.

Examples:
  yacc-admin send-test-email --to you@example.com
  EMAIL_PROVIDER=log yacc-admin send-test-email --to you@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			loc, err := c.cfg.Location()
			if err != nil {
				return err
			}

			sender, err := bootstrap.EmailSender(ctx, c.cfg, c.logger)
			if err != nil {
				return fmt.Errorf("failed to create %s email sender: %w", c.cfg.EmailProvider, err)
			}

			notifier, err := bootstrap.Notifier(c.cfg, sender, loc)
			if err != nil {
				return err
			}

			registrationID, err := registration.SendTestEmail(ctx, notifier, registration.NewIDGenerator(loc), to)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Test email %s sent to %s\n", registrationID, to)
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "address to send the test email to")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (c *adminCLI) listCmd() *cobra.Command {
	var (
		limit  int32
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored registrations, oldest first",
		Long: `List registrations from the configured store one page at a time.

Only the dynamo and sqlite stores can be listed. The sheets store is read
directly in Google Sheets.

Examples:
  STORE_BACKEND=sqlite yacc-admin list
  STORE_BACKEND=dynamo yacc-admin list --limit 50 --cursor <cursor from previous page>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var cursorPtr *string
			if cmd.Flags().Changed("cursor") {
				cursorPtr = &cursor
			}

			return c.list(ctx, cmd, cursorPtr, limit)
		},
	}

	cmd.Flags().Int32Var(&limit, "limit", 25, fmt.Sprintf("registrations per page, at most %d", registration.MaxListLimit))
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor printed by the previous page")

	return cmd
}

func (c *adminCLI) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <registration-id>",
		Short: "Print every column of one registration",
		Long: `Print one stored registration, one column per line, in spreadsheet order.

Only the dynamo and sqlite stores can be read back.

Examples:
  STORE_BACKEND=sqlite yacc-admin show YACC2511030042`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			loc, err := c.cfg.Location()
			if err != nil {
				return err
			}

			store, err := bootstrap.OpenStore(ctx, c.cfg, loc)
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", c.cfg.StoreBackend, err)
			}
			defer store.Close()

			if store.Getter == nil {
				return fmt.Errorf("the %s store cannot be read back, open %s instead", c.cfg.StoreBackend, c.cfg.SpreadsheetURL())
			}

			rec, err := store.Getter.GetRegistration(ctx, args[0])
			if err != nil {
				return err
			}
			rec.RegisteredAt = rec.RegisteredAt.In(loc)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, value := range rec.Row() {
				fmt.Fprintf(tw, "%s:\t%v\n", registration.Columns[i], value)
			}
			return tw.Flush()
		},
	}
}

func (c *adminCLI) list(ctx context.Context, cmd *cobra.Command, cursor *string, limit int32) error {
	loc, err := c.cfg.Location()
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, c.cfg, loc)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", c.cfg.StoreBackend, err)
	}
	defer store.Close()

	if store.Lister == nil {
		return fmt.Errorf("the %s store cannot be listed, open %s instead", c.cfg.StoreBackend, c.cfg.SpreadsheetURL())
	}

	resp, err := store.Lister.ListRegistrations(ctx, cursor, limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REGISTRATION ID\tTIMESTAMP\tNAME\tORGANIZATION\tSPORT\tSTATUS\tPAYMENT")
	for _, rec := range resp.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.RegistrationID,
			rec.RegisteredAt.In(loc).Format(registration.TimestampLayout),
			rec.FullName,
			rec.Organization,
			rec.SportName,
			rec.Status,
			rec.PaymentStatus,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if resp.HasNextPage && resp.Cursor != nil {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nNext page: --cursor %s\n", *resp.Cursor)
		return err
	}

	return nil
}
