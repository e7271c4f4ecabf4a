package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify that the inventory file is well formed" }
func (*checkCmd) Usage() string {
	return `inv check

  Scans the inventory file and reports the number of records. If the file
  ends with malformed data (e.g., a truncated record), reports the line where
  it starts: records after it cannot be displayed.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		reportOpenError(err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	count, err := store.Count()
	fmt.Fprintf(stdout, "%s: %d records\n", store.Name(), count)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
