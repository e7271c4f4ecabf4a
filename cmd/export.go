package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// exportedRecord is the JSON form of a record.
type exportedRecord struct {
	Ordinal int `json:"ordinal"`
	inventory.Record
}

type exportCmd struct {
	path string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export records as JSON" }
func (*exportCmd) Usage() string {
	return `inv export [-path <jsonpath>]

  Prints all records as a JSON array. Costs are exact decimal numbers.
  With -path, prints only the result of the JSONPath query, for instance:

    inv export -path $[0].description
    inv export -path $[*].retail
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "JSONPath query applied to the records array")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		reportOpenError(err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	records := []exportedRecord{}
	for i, r := range store.All() {
		records = append(records, exportedRecord{Ordinal: i, Record: r})
	}
	if err := store.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var result any = records
	if c.path != "" {
		result, err = query(c.path, records)
		if err != nil {
			fmt.Fprintf(stderr, "Error evaluating %q: %v\n", c.path, err)
			return subcommands.ExitFailure
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%s\n", data)
	return subcommands.ExitSuccess
}

// query evaluates a JSONPath expression against the generic JSON form of v.
func query(path string, v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	return jsonpath.Get(path, jobj)
}
