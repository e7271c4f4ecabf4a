package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

type listCmd struct {
	html bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all records in the inventory file" }
func (*listCmd) Usage() string {
	return `inv list [-html]

  Lists every record of the inventory file in a markdown table, with totals.
  Records following malformed data are not listed.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "Print the table as HTML instead of markdown")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		reportOpenError(err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	inv := &renderer.Inventory{File: store.Name()}
	for i, r := range store.All() {
		inv.Cards = append(inv.Cards, renderer.Card{Ordinal: i, Record: r})
	}
	if err := store.Err(); err != nil {
		Logger().Warn("listing stopped on malformed data", zap.String("file", store.Name()), zap.Error(err))
	}

	md := renderer.RenderInventory(inv, store.Currency())
	if !c.html {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	var b bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(md), &b); err != nil {
		fmt.Fprintf(stderr, "Error converting to HTML: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(stdout, b.String())
	return subcommands.ExitSuccess
}
