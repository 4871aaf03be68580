package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/ospeople/internal/infra/storage/yamlstore"
	"github.com/gabapcia/ospeople/internal/intake"
	"github.com/gabapcia/ospeople/internal/people"
	"github.com/gabapcia/ospeople/internal/pkg/validator"
	"github.com/gabapcia/ospeople/internal/pkg/x/chflow"

	"github.com/urfave/cli/v3"
)

var (
	// ErrRejected is returned when at least one document was not accepted.
	ErrRejected = errors.New("documents rejected")

	// ErrNoPaths is returned when validate is called without any path.
	ErrNoPaths = errors.New("at least one PATH is required")
)

// validateCommand returns a CLI command that validates every YAML document
// found under the given paths and prints the violations of each one.
//
// Usage example:
//
//	ospeople validate --schema person data/nc/legislature
//
// The command fails with ErrRejected when any document is rejected or
// cannot be read.
func validateCommand(in intake.Service) *cli.Command {
	return &cli.Command{
		Name:        "validate",
		Description: "Validate YAML documents against a record schema and report every violation.",
		Usage:       "Validates files or directories of YAML records. Directories are searched recursively.",
		ArgsUsage:   "PATH...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schema",
				Usage: "Record schema the documents must match (see `ospeople schemas`)",
				Value: people.SchemaPerson,
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "Print each accepted record in normalized form",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return ErrNoPaths
			}

			ch, err := in.Run(ctx, c.String("schema"), paths...)
			if err != nil {
				return err
			}

			results := chflow.Collect(ctx, ch)
			if err := ctx.Err(); err != nil {
				return err
			}
			intake.SortByPath(results)

			return report(c.Root().Writer, results, c.Bool("print"))
		},
	}
}

// report prints one block per document followed by a summary line.
func report(w io.Writer, results []intake.Result, printRecords bool) error {
	for _, r := range results {
		switch r.Outcome() {
		case intake.OutcomeAccepted:
			fmt.Fprintf(w, "ok     %s\n", r.Path)
			if printRecords {
				if err := yamlstore.Encode(w, r.Record); err != nil {
					return fmt.Errorf("print %s: %w", r.Path, err)
				}
			}
		case intake.OutcomeRejected:
			fmt.Fprintf(w, "FAIL   %s\n", r.Path)
			for _, v := range validator.ExtractReport(r.Err).Violations {
				fmt.Fprintf(w, "       %s: %s (%s)\n", v.Path, v.Message, v.Kind)
			}
		default:
			fmt.Fprintf(w, "ERROR  %s: %v\n", r.Path, r.Err)
		}
	}

	summary := intake.Summarize(results)
	fmt.Fprintf(w, "%d documents: %d accepted, %d rejected, %d failed\n",
		summary.Total, summary.Accepted, summary.Rejected, summary.Failed)

	if !summary.OK() {
		return fmt.Errorf("%w: %d of %d", ErrRejected, summary.Total-summary.Accepted, summary.Total)
	}
	return nil
}
