package inventory

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRecordNotFound is returned when a requested ordinal is past the last record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrMalformedRecord is returned when the file does not hold a complete record where one is expected.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidRecord is returned when a record breaks one of its invariants.
	ErrInvalidRecord = errors.New("invalid record")
)

// Record is a single inventory entry.
//
// Records have no identity of their own: a record is identified by its
// 1-based ordinal position in the store.
type Record struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	Wholesale   Money  `json:"wholesale"`
	Retail      Money  `json:"retail"`
}

// NewRecord creates a record, costs are expressed in currency.
func NewRecord(description string, quantity int64, wholesale, retail float64, currency string) Record {
	return Record{
		Description: description,
		Quantity:    quantity,
		Wholesale:   M(wholesale, currency),
		Retail:      M(retail, currency),
	}
}

// Validate returns an error listing every broken invariant, or nil.
func (r Record) Validate() error {
	var errs []error
	if strings.ContainsAny(r.Description, "\r\n") {
		errs = append(errs, errors.New("description must fit on a single line"))
	}
	if r.Quantity < 0 {
		errs = append(errs, fmt.Errorf("quantity must be a non-negative integer, got %d", r.Quantity))
	}
	if err := validateCost("wholesale cost", r.Wholesale); err != nil {
		errs = append(errs, err)
	}
	if err := validateCost("retail cost", r.Retail); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRecord, errors.Join(errs...))
}

// validateCost checks the range before the sign: an out of range amount is not printed.
func validateCost(name string, m Money) error {
	if err := checkAmount(m.value); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if m.IsNegative() {
		return fmt.Errorf("%s must be a non-negative value, got %s", name, m.Amount())
	}
	return nil
}

// Margin is the retail cost minus the wholesale cost of a single unit.
func (r Record) Margin() Money { return r.Retail.Sub(r.Wholesale) }

// StockValue is the retail value of the quantity on hand.
func (r Record) StockValue() Money { return r.Retail.Mul(r.Quantity) }
