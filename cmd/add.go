package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type addCmd struct {
	description string
	quantity    int64
	wholesale   string
	retail      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new record to the inventory file" }
func (*addCmd) Usage() string {
	return `inv add -d <description> -q <quantity> -w <wholesale cost> -r <retail cost>

  Appends a record without the interactive menu:
  - description: a single line of text.
  - quantity: the quantity on hand, a non-negative integer.
  - wholesale cost and retail cost: non-negative decimals (e.g., "2.50").
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Item description (required)")
	f.Int64Var(&c.quantity, "q", 0, "Quantity on hand")
	f.StringVar(&c.wholesale, "w", "", "Wholesale cost (required)")
	f.StringVar(&c.retail, "r", "", "Retail cost (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.description == "" || c.wholesale == "" || c.retail == "" {
		fmt.Fprintln(stderr, "Error: -d, -w and -r flags are required.")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		reportOpenError(err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	wholesale, err := inventory.ParseMoney(c.wholesale, store.Currency())
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing wholesale cost: %v\n", err)
		return subcommands.ExitUsageError
	}
	retail, err := inventory.ParseMoney(c.retail, store.Currency())
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing retail cost: %v\n", err)
		return subcommands.ExitUsageError
	}
	r := inventory.Record{Description: c.description, Quantity: c.quantity, Wholesale: wholesale, Retail: retail}
	if err := r.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// records appended after malformed data would never be reachable.
	count, err := store.Count()
	if err != nil {
		fmt.Fprintf(stderr, "Error: inventory file %q is malformed, run 'inv check': %v\n", store.Name(), err)
		return subcommands.ExitFailure
	}

	if err := store.Append(r); err != nil {
		fmt.Fprintf(stderr, "Error writing to inventory file %q: %v\n", store.Name(), err)
		return subcommands.ExitFailure
	}
	Logger().Debug("record appended", zap.Int("ordinal", count+1), zap.String("description", r.Description))

	fmt.Fprintf(stdout, "Successfully appended record #%d to %s\n", count+1, store.Name())
	return subcommands.ExitSuccess
}
