// Package cmd implements the CLI application to keep an inventory file.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/etnz/inventory/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&menuCmd{}, "records")
	c.Register(&addCmd{}, "records")
	c.Register(&showCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&exportCmd{}, "records")
	c.Register(&checkCmd{}, "records")

	c.Register(&topicCmd{}, "documentation")
}

const (
	EnvFile     = "INVENTORY_FILE"
	EnvCurrency = "INVENTORY_CURRENCY"
	EnvVerbose  = "INVENTORY_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("file", "", "Path to the inventory file (defaults to $"+EnvFile+" or "+inventory.DefaultFile+")")
var currency = flag.String("currency", "", "Currency used to display costs (defaults to $"+EnvCurrency+" or "+inventory.DefaultCurrency+")")
var verbose = flag.Bool("v", false, "Log diagnostics on stderr (defaults to $"+EnvVerbose+")")

// console streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnv populates the environment from envFile, or from ".env" if empty.
// A missing file is not an error: configuration may come from the environment directly.
func LoadEnv(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed loading env file %s: %w", envFile, err)
	}
	return nil
}

// firstNonEmpty returns the first non empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// InventoryFile returns the configured inventory file path.
func InventoryFile() string {
	return firstNonEmpty(*inventoryFile, os.Getenv(EnvFile), inventory.DefaultFile)
}

// Currency returns the configured display currency.
func Currency() string {
	return firstNonEmpty(*currency, os.Getenv(EnvCurrency), inventory.DefaultCurrency)
}

// Verbose reports whether diagnostics are enabled.
func Verbose() bool {
	if *verbose {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv(EnvVerbose))
	return err == nil && v
}

var baseLogger *zap.Logger

// Logger returns the application logger, creating it on first use.
func Logger() *zap.Logger {
	if baseLogger == nil {
		baseLogger = logger.Must(logger.New(Verbose()))
	}
	return baseLogger
}

// SetLogger replaces the application logger.
func SetLogger(l *zap.Logger) { baseLogger = l }

// OpenStore is the central function to open the inventory file.
func OpenStore() (*inventory.Store, error) {
	cur := Currency()
	if err := inventory.ValidateCurrency(cur); err != nil {
		return nil, err
	}
	s, err := inventory.Open(InventoryFile(), cur)
	if err != nil {
		return nil, err
	}
	Logger().Debug("inventory file opened", zap.String("file", s.Name()), zap.String("currency", cur))
	return s, nil
}

// reportOpenError explains on stderr why OpenStore failed.
func reportOpenError(err error) {
	if errors.Is(err, inventory.ErrUnknownCurrency) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(stderr, "Error: File could not be opened: %v\n", err)
}

// closeStore releases the store, logging any failure.
func closeStore(s *inventory.Store) {
	if err := s.Close(); err != nil {
		Logger().Error("failed to close inventory file", zap.String("file", s.Name()), zap.Error(err))
		return
	}
	Logger().Debug("inventory file closed", zap.String("file", s.Name()))
}

// printMarkdown renders markdown on a terminal, and prints it raw otherwise.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		Logger().Warn("cannot create markdown renderer", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		Logger().Warn("cannot render markdown", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
