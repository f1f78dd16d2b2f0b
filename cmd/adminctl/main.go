package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/dtroode/adminpanel-server/database"
	"github.com/dtroode/adminpanel-server/internal/config"
	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
	"github.com/dtroode/adminpanel-server/internal/notify"
	"github.com/dtroode/adminpanel-server/internal/repository/postgres"
	"github.com/dtroode/adminpanel-server/internal/session"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if err != errUsage {
			color.Red("Error: %v\n", err)
		}
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "migrate":
		return cmdMigrate(ctx, cfg, out)
	case "grant-admin":
		return cmdSetRole(ctx, cfg, rest, model.RoleAdmin, out)
	case "revoke-admin":
		return cmdSetRole(ctx, cfg, rest, model.RoleUser, out)
	case "issue-session":
		return cmdIssueSession(cfg, rest, out)
	case "email-diagnostics":
		return cmdEmailDiagnostics(cfg, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func printUsage(w io.Writer) {
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w, "Usage: adminctl <command> [args]")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  migrate                        Apply pending database migrations")
	fmt.Fprintln(w, "  grant-admin <email>            Give the user with this email the admin role")
	fmt.Fprintln(w, "  revoke-admin <email>           Return the user with this email to the user role")
	fmt.Fprintln(w, "  issue-session <user-id> [ttl]  Print a session token for local testing")
	fmt.Fprintln(w, "  email-diagnostics              Show the email provider configuration")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DATABASE_DSN, SESSION_SECRET, SESSION_TTL, EMAIL_RESEND_API_KEY (see .env)")
}

func cmdMigrate(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintln(out, "Migrations applied")
	return nil
}

func cmdSetRole(ctx context.Context, cfg *config.Config, args []string, role model.Role, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one email: %w", errUsage)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := postgres.NewUserRepository(db).SetRoleByEmail(ctx, args[0], role)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("no user with email %s", args[0])
		}
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "%s (%s) is now %s\n", user.Email, user.ID, user.Role)
	return nil
}

func cmdIssueSession(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("expected a user id and an optional ttl: %w", errUsage)
	}

	ttl := cfg.Session.TTL
	if len(args) == 2 {
		d, err := time.ParseDuration(args[1])
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid ttl %q", args[1])
		}
		ttl = d
	}

	issuer := session.NewJWT(cfg.Session.Secret, cfg.Session.CookieName, logger.NewWithWriter(io.Discard, 0, "text"))
	token, err := issuer.Issue(args[0], ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, token)
	return nil
}

func cmdEmailDiagnostics(cfg *config.Config, out io.Writer) error {
	svc, err := notify.New(notify.Options{
		APIKey:    cfg.Email.ResendAPIKey,
		AppURL:    cfg.Email.AppURL,
		BrandName: cfg.Email.BrandName,
	}, nil, logger.NewWithWriter(io.Discard, 0, "text"))
	if err != nil {
		return err
	}
	d := svc.Diagnostics()

	cyan := color.New(color.FgCyan)
	cyan.Fprintln(out, "Email provider")
	if d.Configured {
		color.New(color.FgGreen).Fprintf(out, "  API key:  %s (%d chars)\n", d.KeyPrefix, d.KeyLength)
	} else {
		color.New(color.FgRed).Fprintln(out, "  API key:  not set")
	}
	fmt.Fprintln(out)

	cyan.Fprintln(out, "Senders")
	kinds := make([]string, 0, len(d.Senders))
	for kind := range d.Senders {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %s\t%s\n", kind, d.Senders[model.EmailKind(kind)])
	}
	return w.Flush()
}
