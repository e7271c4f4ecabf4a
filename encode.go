package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file contains the line codec of the inventory file.
//
// A record is persisted as exactly four lines, in this order:
//
//	description
//	quantity on hand
//	wholesale cost
//	retail cost
//
// There is no header and no separator: record boundaries are implied by
// counting lines, and a record's ordinal is its position in the file.

// linesPerRecord is the number of lines a record occupies in the file.
const linesPerRecord = 4

// Encoder writes records to an io.Writer.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Encode writes r as four newline terminated lines, in a single write.
func (e *Encoder) Encode(r Record) error {
	var b strings.Builder
	b.WriteString(r.Description)
	b.WriteByte('\n')
	b.WriteString(strconv.FormatInt(r.Quantity, 10))
	b.WriteByte('\n')
	b.WriteString(r.Wholesale.Amount())
	b.WriteByte('\n')
	b.WriteString(r.Retail.Amount())
	b.WriteByte('\n')

	if _, err := io.WriteString(e.w, b.String()); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Decoder reads records from an io.Reader.
//
// Lines have no length limit: a description is as long as it was entered.
type Decoder struct {
	r        *bufio.Reader
	currency string
	line     int // number of lines consumed so far
}

// NewDecoder returns a decoder reading from r. Decoded costs are expressed in currency.
func NewDecoder(r io.Reader, currency string) *Decoder {
	return &Decoder{r: bufio.NewReader(r), currency: currency}
}

// Line returns the number of lines consumed so far.
func (d *Decoder) Line() int { return d.line }

// next returns the next line without its terminator.
// ok is false at the end of the input, and a final line without terminator still counts.
func (d *Decoder) next() (line string, ok bool, err error) {
	line, err = d.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	d.line++
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

// Decode reads the next record.
//
// It returns io.EOF when the input ends on a record boundary, and an error
// wrapping ErrMalformedRecord when it ends in the middle of a record or when
// a numeric field cannot be parsed.
func (d *Decoder) Decode() (Record, error) {
	start := d.line + 1

	description, ok, err := d.next()
	if err != nil {
		return Record{}, fmt.Errorf("%w at line %d: %w", ErrMalformedRecord, start, err)
	}
	if !ok {
		return Record{}, io.EOF
	}

	var fields [linesPerRecord - 1]string
	for i := range fields {
		line, ok, err := d.next()
		if err != nil {
			return Record{}, fmt.Errorf("%w at line %d: %w", ErrMalformedRecord, d.line+1, err)
		}
		if !ok {
			return Record{}, fmt.Errorf("%w at line %d: truncated record starting at line %d", ErrMalformedRecord, d.line+1, start)
		}
		fields[i] = strings.TrimSpace(line)
	}

	quantity, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w at line %d: quantity %q is not an integer", ErrMalformedRecord, start+1, fields[0])
	}
	wholesale, err := ParseMoney(fields[1], d.currency)
	if err != nil {
		return Record{}, fmt.Errorf("%w at line %d: wholesale cost: %w", ErrMalformedRecord, start+2, err)
	}
	retail, err := ParseMoney(fields[2], d.currency)
	if err != nil {
		return Record{}, fmt.Errorf("%w at line %d: retail cost: %w", ErrMalformedRecord, start+3, err)
	}

	return Record{
		Description: description,
		Quantity:    quantity,
		Wholesale:   wholesale,
		Retail:      retail,
	}, nil
}

// DecodeRecords decodes every record from r.
//
// On malformed data, it returns the records decoded so far along with the error.
func DecodeRecords(r io.Reader, currency string) ([]Record, error) {
	d := NewDecoder(r, currency)
	var records []Record
	for {
		rec, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// EncodeRecords writes all records to w.
func EncodeRecords(w io.Writer, records []Record) error {
	e := NewEncoder(w)
	for _, r := range records {
		if err := e.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
