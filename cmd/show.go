package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type showCmd struct {
	number int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a record by its number" }
func (*showCmd) Usage() string {
	return `inv show -n <record number>

  Displays the record at the given 1-based position in the inventory file.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "n", 1, "Record number, starting at 1")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		reportOpenError(err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	r, err := store.Record(c.number)
	if err != nil {
		if errors.Is(err, inventory.ErrMalformedRecord) {
			Logger().Warn("inventory file holds malformed data", zap.String("file", store.Name()), zap.Error(err))
		}
		fmt.Fprintln(stderr, "Error: Record not found.")
		return subcommands.ExitFailure
	}

	fmt.Fprint(stdout, renderer.RenderRecord(renderer.Card{Ordinal: c.number, Record: r}))
	return subcommands.ExitSuccess
}
