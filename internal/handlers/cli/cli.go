package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/ospeople/internal/intake"
	"github.com/gabapcia/ospeople/internal/people"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the ospeople CLI application.
//
// It registers all available commands, including:
//
//   - `validate`: Validates YAML documents and reports every violation.
//   - `schemas`: Lists the record schemas accepted by validate.
//   - `new-id`: Prints a fresh person identifier.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - w: Destination of command output. Logs go to stderr separately.
//   - svc: The people service used to list schemas.
//   - in: The intake service used by the validate command.
func Run(ctx context.Context, w io.Writer, svc people.Service, in intake.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ospeople",
		Description:           "Validate records about people holding public office before they are imported.",
		Usage:                 "ospeople [command] [flags]",
		Writer:                w,
		Commands: []*cli.Command{
			validateCommand(in),
			schemasCommand(svc),
			newIDCommand(),
		},
	}

	return app.Run(ctx, os.Args)
}
