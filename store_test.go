package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// openTemp opens a store on a fresh file, optionally pre-filled with content.
func openTemp(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write to temp file: %v", err)
		}
	}
	s, err := Open(path, "USD")
	if err != nil {
		t.Fatalf("Open(%q) returned an unexpected error: %v", path, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAppendThenRecord(t *testing.T) {
	s := openTemp(t, "")

	if err := s.Append(widget()); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if err := s.Append(NewRecord("Gear", 3, 12.75, 20, "USD")); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	got, err := s.Record(1)
	if err != nil {
		t.Fatalf("Record(1) returned an unexpected error: %v", err)
	}
	if got.Description != "Widget" || got.Quantity != 10 || got.Wholesale.String() != "$2.50" || got.Retail.String() != "$5.00" {
		t.Errorf("Record(1) = %+v, want Widget 10 $2.50 $5.00", got)
	}

	got, err = s.Record(2)
	if err != nil {
		t.Fatalf("Record(2) returned an unexpected error: %v", err)
	}
	if got.Description != "Gear" || got.Retail.String() != "$20.00" {
		t.Errorf("Record(2) = %+v, want Gear", got)
	}

	content, err := os.ReadFile(s.Name())
	if err != nil {
		t.Fatalf("Failed to read store file: %v", err)
	}
	if want := "Widget\n10\n2.5\n5\nGear\n3\n12.75\n20\n"; string(content) != want {
		t.Errorf("store file content = %q, want %q", content, want)
	}
}

func TestStoreLongDescription(t *testing.T) {
	s := openTemp(t, "")
	long := strings.Repeat("w", 2<<20)

	if err := s.Append(NewRecord(long, 1, 2.5, 5, "USD")); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if err := s.Append(NewRecord("Gear", 3, 12.75, 20, "USD")); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	got, err := s.Record(1)
	if err != nil {
		t.Fatalf("Record(1) returned an unexpected error: %v", err)
	}
	if got.Description != long {
		t.Errorf("Record(1).Description has %d bytes, want %d", len(got.Description), len(long))
	}
	got, err = s.Record(2)
	if err != nil {
		t.Fatalf("Record(2) returned an unexpected error: %v", err)
	}
	if got.Description != "Gear" {
		t.Errorf("Record(2).Description = %q, want %q", got.Description, "Gear")
	}
	if n, err := s.Count(); n != 2 || err != nil {
		t.Errorf("Count() = %d, %v; want 2, nil", n, err)
	}
}

func TestStoreAppendRejectsInvalid(t *testing.T) {
	s := openTemp(t, "")
	err := s.Append(NewRecord("Widget", -1, 2.5, 5, "USD"))
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("Append() = %v, want an error wrapping ErrInvalidRecord", err)
	}
	if n, err := s.Count(); n != 0 || err != nil {
		t.Errorf("Count() = %d, %v; want 0, nil", n, err)
	}
}

func TestStoreRecordNotFound(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		n         int
		malformed bool
	}{
		{name: "empty file", content: "", n: 1},
		{name: "past the end", content: "Widget\n10\n2.5\n5\n", n: 2},
		{name: "zero", content: "Widget\n10\n2.5\n5\n", n: 0},
		{name: "negative", content: "Widget\n10\n2.5\n5\n", n: -3},
		{name: "truncated trailing record", content: "Widget\n10\n2.5\n5\nGear\n3\n", n: 2, malformed: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := openTemp(t, tc.content)
			_, err := s.Record(tc.n)
			if !errors.Is(err, ErrRecordNotFound) {
				t.Fatalf("Record(%d) = %v, want an error wrapping ErrRecordNotFound", tc.n, err)
			}
			if got := errors.Is(err, ErrMalformedRecord); got != tc.malformed {
				t.Errorf("errors.Is(err, ErrMalformedRecord) = %v, want %v (err: %v)", got, tc.malformed, err)
			}
		})
	}
}

func TestStoreLastLineWithoutNewline(t *testing.T) {
	s := openTemp(t, "Widget\n10\n2.5\n5")
	got, err := s.Record(1)
	if err != nil {
		t.Fatalf("Record(1) returned an unexpected error: %v", err)
	}
	if got.Retail.String() != "$5.00" {
		t.Errorf("Record(1).Retail = %s, want $5.00", got.Retail)
	}
}

func TestStoreRecordBeforeMalformedData(t *testing.T) {
	s := openTemp(t, "Widget\n10\n2.5\n5\nGear\n3\n")
	got, err := s.Record(1)
	if err != nil {
		t.Fatalf("Record(1) returned an unexpected error: %v", err)
	}
	if got.Description != "Widget" {
		t.Errorf("Record(1).Description = %q, want %q", got.Description, "Widget")
	}
}

func TestStoreAll(t *testing.T) {
	s := openTemp(t, "A\n1\n1\n1\nB\n2\n2\n2\nC\n3\n3\n3\n")

	var got []string
	for i, r := range s.All() {
		got = append(got, r.Description)
		if int64(i) != r.Quantity {
			t.Errorf("record %q has ordinal %d, want %d", r.Description, i, r.Quantity)
		}
	}
	if len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Errorf("All() = %v, want [A B C]", got)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}

	// breaking early is allowed.
	for i := range s.All() {
		if i == 2 {
			break
		}
	}
}

func TestStoreCount(t *testing.T) {
	s := openTemp(t, "A\n1\n1\n1\nB\n2\n")
	n, err := s.Count()
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Count() error = %v, want an error wrapping ErrMalformedRecord", err)
	}
}

func TestOpenFailure(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", DefaultFile), "USD")
	if err == nil {
		t.Error("Open() in a missing directory expected an error")
	}
}
