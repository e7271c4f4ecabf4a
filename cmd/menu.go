package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/logger"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// menu choices.
const (
	choiceAdd     = 1
	choiceDisplay = 2
	choiceQuit    = 3
)

const menuText = `
Inventory Management Menu
1. Add new records
2. Display a record
3. Quit
`

// session is an interactive dialogue over a single store.
type session struct {
	store    *inventory.Store
	prompt   *inventory.Prompter
	currency string
	log      *zap.Logger
}

// addRecord asks for every field of a record and appends it to the store.
func (s *session) addRecord() error {
	description, err := s.prompt.Line("\nEnter item description (Text): ")
	if err != nil {
		return err
	}
	quantity, err := inventory.Ask(s.prompt, "Enter quantity on hand (Int): ",
		inventory.ParseInt, inventory.NonNegative,
		"Error: Quantity must be a non-negative integer.")
	if err != nil {
		return err
	}
	wholesale, err := inventory.Ask(s.prompt, "Enter wholesale cost (Double): ",
		inventory.MoneyParser(s.currency), inventory.NonNegativeMoney,
		"Error: Wholesale cost must be a non-negative value.")
	if err != nil {
		return err
	}
	retail, err := inventory.Ask(s.prompt, "Enter retail cost (Double): ",
		inventory.MoneyParser(s.currency), inventory.NonNegativeMoney,
		"Error: Retail cost must be a non-negative value.")
	if err != nil {
		return err
	}

	r := inventory.Record{Description: description, Quantity: quantity, Wholesale: wholesale, Retail: retail}
	if err := s.store.Append(r); err != nil {
		s.log.Error("failed to append record", zap.String("file", s.store.Name()), zap.Error(err))
		s.prompt.Printf("\nError: %v\n", err)
		return nil
	}
	s.log.Debug("record appended", zap.String("description", description))
	s.prompt.Printf("\nRecord added successfully.\n")
	return nil
}

// displayRecord asks for a record number and prints that record.
func (s *session) displayRecord() error {
	line, err := s.prompt.Line("\nEnter record number to display: ")
	if err != nil {
		return err
	}
	n, err := inventory.ParseInt(line)
	if err != nil {
		s.prompt.Printf("Error: Invalid input. Please enter a valid record number.\n")
		return nil
	}

	r, err := s.store.Record(int(n))
	if err != nil {
		if errors.Is(err, inventory.ErrMalformedRecord) {
			s.log.Warn("inventory file holds malformed data", zap.String("file", s.store.Name()), zap.Error(err))
		}
		s.prompt.Printf("\nError: Record not found.\n")
		return nil
	}
	s.prompt.Printf("%s", renderer.RenderRecord(renderer.Card{Ordinal: int(n), Record: r}))
	return nil
}

// run loops over the menu until Quit is chosen or the input is exhausted.
func (s *session) run() error {
	for {
		s.prompt.Printf("%s", menuText)
		line, err := s.prompt.Line("Enter your choice (1-3): ")
		if err != nil {
			return err
		}
		choice, err := inventory.ParseInt(line)
		if err != nil {
			s.prompt.Printf("Error: Invalid input. Please enter a number between 1 and 3.\n")
			continue
		}

		switch choice {
		case choiceAdd:
			err = s.addRecord()
		case choiceDisplay:
			err = s.displayRecord()
		case choiceQuit:
			s.prompt.Printf("Exiting program...\n")
			return nil
		default:
			s.prompt.Printf("Error: Please select a valid option (1-3).\n")
		}
		if err != nil {
			return err
		}
	}
}

// RunMenu opens the inventory file and runs the interactive menu on the console.
func RunMenu() subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		if errors.Is(err, inventory.ErrUnknownCurrency) {
			fmt.Fprintf(stdout, "\nError: Currency %q is not supported.\n", Currency())
		} else {
			fmt.Fprintf(stdout, "\nError: File could not be opened.\n")
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	s := &session{
		store:    store,
		prompt:   inventory.NewPrompter(stdin, stdout),
		currency: store.Currency(),
		log:      logger.Named(Logger(), "menu"),
	}
	if err := s.run(); err != nil {
		if !errors.Is(err, io.EOF) {
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return subcommands.ExitFailure
		}
		// input exhausted, behave as Quit.
		s.log.Debug("end of input")
		fmt.Fprintln(stdout)
	}
	return subcommands.ExitSuccess
}

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "add and display records interactively" }
func (*menuCmd) Usage() string {
	return `inv [menu]

  Runs the interactive menu: add new records, display a record by number, or quit.
  This is the default when inv is run without a subcommand.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return RunMenu()
}
