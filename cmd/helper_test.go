package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"go.uber.org/zap/zaptest"
)

// setConfig overrides the global configuration for the duration of the test.
func setConfig(t *testing.T, file, cur string, v bool) {
	t.Helper()
	oldFile, oldCurrency, oldVerbose := *inventoryFile, *currency, *verbose
	*inventoryFile, *currency, *verbose = file, cur, v
	t.Setenv(EnvFile, "")
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvVerbose, "")
	t.Cleanup(func() {
		*inventoryFile, *currency, *verbose = oldFile, oldCurrency, oldVerbose
	})
}

// captureConsole feeds input to the console and captures its outputs.
// The application logger is replaced by a test logger.
func captureConsole(t *testing.T, input string) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldIn, oldOut, oldErr, oldLogger := stdin, stdout, stderr, baseLogger
	stdin, stdout, stderr = strings.NewReader(input), out, errOut
	SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() {
		stdin, stdout, stderr = oldIn, oldOut, oldErr
		SetLogger(oldLogger)
	})
	return out, errOut
}

// tempInventory creates an inventory file with content, configures the app to use it, and returns its path.
func tempInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write to temp file: %v", err)
		}
	}
	setConfig(t, path, "USD", false)
	return path
}

// execute parses args with the command's flags and executes it.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

// readFile returns the content of the file at path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}
