package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/ospeople/internal/people"

	"github.com/urfave/cli/v3"
)

// schemasCommand returns a CLI command listing the schemas accepted by validate.
//
// Usage example:
//
//	ospeople schemas
func schemasCommand(svc people.Service) *cli.Command {
	return &cli.Command{
		Name:        "schemas",
		Description: "List the record schemas that documents can be validated against.",
		Usage:       "Prints one schema name per line.",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, name := range svc.Schemas() {
				fmt.Fprintln(c.Root().Writer, name)
			}
			return nil
		},
	}
}

// newIDCommand returns a CLI command printing a fresh person identifier.
//
// Usage example:
//
//	ospeople new-id
func newIDCommand() *cli.Command {
	return &cli.Command{
		Name:        "new-id",
		Description: "Generate an identifier for a new person record.",
		Usage:       "Prints an ocd-person identifier.",
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := fmt.Fprintln(c.Root().Writer, people.NewPersonID())
			return err
		},
	}
}
