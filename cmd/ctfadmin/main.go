// ctfadmin is the operator CLI: schema migrations, schedule edits,
// admin promotion and national ID checks.
//
//	ctfadmin [--database-url URL] <command> [flags]
//
// Commands:
//
//	migrate                      apply pending migrations
//	check-id <id>                validate a national ID number
//	schedule show                print the event schedule and phase
//	schedule set [flags]         --registration-end, --start, --end (RFC 3339, "" clears)
//	promote --email <address>    grant admin rights
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"go-ctf-event/database"
	"go-ctf-event/eventphase"
	"go-ctf-event/logger"
	"go-ctf-event/services"
	"go-ctf-event/validation"
)

var errUsage = errors.New("usage: ctfadmin [--database-url URL] <migrate|check-id|schedule|promote> [flags]")

// backend is what the database-backed commands need.
type backend interface {
	services.SettingsRepository
	services.ProfileRepository
}

// opener connects to the database. The returned func releases it.
type opener func(ctx context.Context, dsn string) (backend, func(), error)

type app struct {
	out     io.Writer
	open    opener
	migrate func(dsn string) error
	version func(dsn string) (uint, bool, error)
	now     func() time.Time
}

func main() {
	_ = godotenv.Load()
	a := &app{
		out:     os.Stdout,
		open:    openPostgres,
		migrate: database.RunMigrations,
		version: database.MigrationVersion,
		now:     time.Now,
	}
	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openPostgres(ctx context.Context, dsn string) (backend, func(), error) {
	pool, err := database.NewPool(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return database.NewStore(pool), pool.Close, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	global := pflag.NewFlagSet("ctfadmin", pflag.ContinueOnError)
	global.SetInterspersed(false)
	dsn := global.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	if err := global.Parse(args); err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}
	cmd, cmdArgs := rest[0], rest[1:]

	switch cmd {
	case "check-id":
		return a.checkID(cmdArgs)
	case "migrate":
		return a.runMigrate(*dsn)
	case "schedule":
		return a.schedule(ctx, *dsn, cmdArgs)
	case "promote":
		return a.promote(ctx, *dsn, cmdArgs)
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

func (a *app) checkID(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: ctfadmin check-id <id>")
	}
	if !validation.ValidateNationalID(args[0]) {
		fmt.Fprintf(a.out, "%s: invalid\n", args[0])
		return fmt.Errorf("national id %s is invalid", args[0])
	}
	fmt.Fprintf(a.out, "%s: valid\n", args[0])
	return nil
}

func (a *app) runMigrate(dsn string) error {
	if dsn == "" {
		return errors.New("--database-url or DATABASE_URL is required")
	}
	if err := a.migrate(dsn); err != nil {
		return err
	}
	version, dirty, err := a.version(dsn)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "schema version %d (dirty=%v)\n", version, dirty)
	return nil
}

func (a *app) schedule(ctx context.Context, dsn string, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: ctfadmin schedule <show|set> [flags]")
	}
	store, release, err := a.connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer release()

	events := services.NewEventService(store, nil)
	events.SetClock(a.now)
	if err := events.Refresh(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "show":
		a.printSchedule(events)
		return nil
	case "set":
		updated, err := scheduleFromFlags(events.Snapshot(), args[1:])
		if err != nil {
			return err
		}
		if _, err := events.UpdateSettings(ctx, updated); err != nil {
			return err
		}
		a.printSchedule(events)
		return nil
	default:
		return fmt.Errorf("unknown schedule command %q", args[0])
	}
}

// scheduleFromFlags applies the given flags on top of current. Flags that
// are not passed keep their value; an empty value clears the boundary.
func scheduleFromFlags(current eventphase.Settings, args []string) (eventphase.Settings, error) {
	fs := pflag.NewFlagSet("schedule set", pflag.ContinueOnError)
	regEnd := fs.String("registration-end", "", "registration deadline (RFC 3339, empty clears)")
	start := fs.String("start", "", "event start (RFC 3339, empty clears)")
	end := fs.String("end", "", "event end (RFC 3339, empty clears)")
	if err := fs.Parse(args); err != nil {
		return current, err
	}

	apply := func(name, raw string, target *eventphase.Boundary) error {
		if !fs.Changed(name) {
			return nil
		}
		if raw == "" {
			*target = eventphase.Unset()
			return nil
		}
		t, err := eventphase.ParseTimestamp(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		*target = eventphase.At(t)
		return nil
	}

	next := current
	if err := apply("registration-end", *regEnd, &next.RegistrationEnd); err != nil {
		return current, err
	}
	if err := apply("start", *start, &next.EventStart); err != nil {
		return current, err
	}
	if err := apply("end", *end, &next.EventEnd); err != nil {
		return current, err
	}
	return next, nil
}

func (a *app) printSchedule(events *services.EventService) {
	s := events.Snapshot()
	fmt.Fprintf(a.out, "registration end: %s\n", s.RegistrationEnd)
	fmt.Fprintf(a.out, "event start:      %s\n", s.EventStart)
	fmt.Fprintf(a.out, "event end:        %s\n", s.EventEnd)
	fmt.Fprintf(a.out, "phase:            %s\n", events.Phase())
	if !s.Ordered() {
		fmt.Fprintln(a.out, "warning: boundaries are out of order")
	}
}

func (a *app) promote(ctx context.Context, dsn string, args []string) error {
	fs := pflag.NewFlagSet("promote", pflag.ContinueOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("usage: ctfadmin promote --email <address>")
	}

	store, release, err := a.connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer release()

	accounts := services.NewAccountService(store, nil, "")
	if err := accounts.Promote(ctx, *email); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s is now an admin\n", *email)
	return nil
}

func (a *app) connect(ctx context.Context, dsn string) (backend, func(), error) {
	if dsn == "" {
		return nil, nil, errors.New("--database-url or DATABASE_URL is required")
	}
	store, release, err := a.open(ctx, dsn)
	if err != nil {
		logger.Error.Printf("[ctfadmin] connect failed: %v", err)
		return nil, nil, err
	}
	return store, release, nil
}
