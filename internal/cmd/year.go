package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/clubledger/backend/internal/ledger"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

var errMissingFlag = errors.New("missing flag")

// yearFlags are the flags shared by all fiscal year commands.
type yearFlags struct {
	org  string
	year int
	user string
}

func (y *yearFlags) set(f *flag.FlagSet) {
	f.StringVar(&y.org, "org", "", "ID of the organization")
	f.IntVar(&y.year, "year", 0, "fiscal year, e.g. 2024")
	f.StringVar(&y.user, "user", os.Getenv("USER"), "user recorded in the audit log")
}

func (y *yearFlags) parse() (uuid.UUID, error) {
	if y.org == "" {
		return uuid.Nil, fmt.Errorf("%w: -org", errMissingFlag)
	}
	if y.year == 0 {
		return uuid.Nil, fmt.Errorf("%w: -year", errMissingFlag)
	}

	id, err := uuid.Parse(y.org)
	if err != nil {
		return uuid.Nil, fmt.Errorf("-org: %w", err)
	}
	return id, nil
}

func (y *yearFlags) context(ctx context.Context) context.Context {
	if y.user == "" {
		return ctx
	}
	return ledger.WithUser(ctx, y.user)
}

type exportYearCmd struct {
	app *App
	yearFlags
	format string
	output string
}

func (*exportYearCmd) Name() string     { return "export-year" }
func (*exportYearCmd) Synopsis() string { return "export the vouchers and totals of a fiscal year" }
func (*exportYearCmd) Usage() string {
	return `export-year -org <uuid> -year <yyyy> [-format json|yaml] [-o file]

  Writes the vouchers of the fiscal year together with the totals per account,
  sphere and category and the budget usage. Without -o, the export is written
  to stdout.
`
}

func (c *exportYearCmd) SetFlags(f *flag.FlagSet) {
	c.yearFlags.set(f)
	f.StringVar(&c.format, "format", ledger.FormatJSON, "export format, json or yaml")
	f.StringVar(&c.output, "o", "", "output file")
}

func (c *exportYearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := c.parse()
	if err != nil {
		fmt.Fprintln(c.app.Err, err)
		return subcommands.ExitUsageError
	}

	if c.format != ledger.FormatJSON && c.format != ledger.FormatYAML {
		fmt.Fprintf(c.app.Err, "-format: must be '%s' or '%s', not '%s'\n", ledger.FormatJSON, ledger.FormatYAML, c.format)
		return subcommands.ExitUsageError
	}

	if err := c.app.connect(); err != nil {
		return c.app.fail(err)
	}
	defer c.app.close()

	export, err := c.app.ledger().ExportYear(c.context(ctx), id, c.year)
	if err != nil {
		return c.app.fail(err)
	}

	if c.output == "" {
		err = export.Write(c.app.Out, c.format)
	} else {
		err = writeExport(c.output, export, c.format)
	}
	if err != nil {
		return c.app.fail(err)
	}

	return subcommands.ExitSuccess
}

func writeExport(path string, export ledger.YearExport, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := export.Write(file, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// yearStateCmd closes or reopens a fiscal year.
type yearStateCmd struct {
	app *App
	yearFlags
	close bool
}

func (c *yearStateCmd) Name() string {
	if c.close {
		return "close-year"
	}
	return "reopen-year"
}

func (c *yearStateCmd) Synopsis() string {
	if c.close {
		return "close a fiscal year for changes"
	}
	return "reopen a closed fiscal year"
}

func (c *yearStateCmd) Usage() string {
	return c.Name() + ` -org <uuid> -year <yyyy>

  Vouchers dated in a closed fiscal year can not be created, changed or deleted.
`
}

func (c *yearStateCmd) SetFlags(f *flag.FlagSet) {
	c.yearFlags.set(f)
}

func (c *yearStateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := c.parse()
	if err != nil {
		fmt.Fprintln(c.app.Err, err)
		return subcommands.ExitUsageError
	}

	if err := c.app.connect(); err != nil {
		return c.app.fail(err)
	}
	defer c.app.close()

	l := c.app.ledger()
	change := l.ReopenYear
	if c.close {
		change = l.CloseYear
	}

	status, err := change(c.context(ctx), id, c.year)
	if err != nil {
		return c.app.fail(err)
	}

	if status.Closed {
		fmt.Fprintf(c.app.Out, "%d closed at %s\n", status.Year, status.ClosedAt.Format(time.RFC3339))
	} else {
		fmt.Fprintf(c.app.Out, "%d open\n", status.Year)
	}

	return subcommands.ExitSuccess
}
