package inventory

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
)

// DefaultFile is the inventory file used when none is configured.
const DefaultFile = "inventory.txt"

// Store is an append-only inventory file.
//
// The file is opened once, for reading and appending, and must be released
// with Close. The store holds no record in memory: every lookup scans the
// file from its beginning.
type Store struct {
	f        *os.File
	currency string
	err      error // first error met by the last All iteration
}

// Open opens (creating it if needed) the inventory file at path.
// Costs read from the store are expressed in currency.
func Open(path, currency string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	return &Store{f: f, currency: currency}, nil
}

// Name returns the path of the underlying file.
func (s *Store) Name() string { return s.f.Name() }

// Currency returns the currency costs are read in.
func (s *Store) Currency() string { return s.currency }

// Close releases the underlying file.
func (s *Store) Close() error { return s.f.Close() }

// Append validates r and writes it at the end of the file.
func (s *Store) Append(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return NewEncoder(s.f).Encode(r)
}

// reader returns a reader over the whole file, independent of the append offset.
func (s *Store) reader() io.Reader {
	return io.NewSectionReader(s.f, 0, math.MaxInt64)
}

// All iterates over records with their 1-based ordinal.
//
// Iteration stops at the end of the file or at the first malformed record,
// in which case Err returns the cause.
func (s *Store) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		s.err = nil
		d := NewDecoder(s.reader(), s.currency)
		for n := 1; ; n++ {
			r, err := d.Decode()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				s.err = err
				return
			}
			if !yield(n, r) {
				return
			}
		}
	}
}

// Err returns the error that stopped the last All iteration, if any.
func (s *Store) Err() error { return s.err }

// Record returns the record at the 1-based ordinal n.
//
// The returned error wraps ErrRecordNotFound when there are fewer than n
// records. When malformed data is met before reaching n it wraps both
// ErrRecordNotFound and ErrMalformedRecord.
func (s *Store) Record(n int) (Record, error) {
	if n < 1 {
		return Record{}, fmt.Errorf("%w: #%d", ErrRecordNotFound, n)
	}
	for i, r := range s.All() {
		if i == n {
			return r, nil
		}
	}
	if err := s.Err(); err != nil {
		return Record{}, fmt.Errorf("%w: #%d: %w", ErrRecordNotFound, n, err)
	}
	return Record{}, fmt.Errorf("%w: #%d", ErrRecordNotFound, n)
}

// Count returns the number of well-formed records at the head of the file.
// The error is non nil if malformed data follows them.
func (s *Store) Count() (int, error) {
	count := 0
	for range s.All() {
		count++
	}
	return count, s.Err()
}
