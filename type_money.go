package inventory

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used to display costs when none is configured.
const DefaultCurrency = "USD"

// Amounts are bounded: any realistic cost fits, and the persisted form stays short.
const (
	maxAmountDigits = 15 // integer digits
	maxScale        = 20 // fraction digits
)

var (
	// ErrUnknownCurrency is returned for currency codes outside ISO 4217.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrAmountOutOfRange is returned for amounts too large or too precise to be a cost.
	ErrAmountOutOfRange = errors.New("amount out of range")

	maxAmount = decimal.New(1, maxAmountDigits)
	maxInt64  = decimal.NewFromInt(math.MaxInt64)
)

// Money represents a cost in a given currency.
//
// Only the amount is ever persisted, the currency is a display concern.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any supported numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal amount such as "2.50" or "5".
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if err := checkAmount(d); err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// checkAmount returns an error wrapping ErrAmountOutOfRange if d is too large
// or has too many fraction digits.
//
// The exponent is checked first: comparing a value such as 1e50000000 would
// expand all its digits.
func checkAmount(d decimal.Decimal) error {
	if e := d.Exponent(); e < -maxScale || e > maxAmountDigits {
		return fmt.Errorf("%w: exponent %d", ErrAmountOutOfRange, e)
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: at least %s", ErrAmountOutOfRange, maxAmount)
	}
	return nil
}

// ValidateCurrency returns an error if code is not a known ISO 4217 currency.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w %q", ErrUnknownCurrency, code)
	}
	return nil
}

// currency returns the money's currency, falling back to the default one.
func (m Money) currency() money.Currency {
	code := m.cur
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// String returns the amount rounded to the currency fraction, with its grapheme.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if dec.Abs().LessThanOrEqual(maxInt64) {
		return cur.Formatter().Format(dec.IntPart())
	}
	// totals can outgrow int64 minor units.
	return formatMinor(cur.Formatter(), dec)
}

// formatMinor formats an integral amount of minor units like money.Formatter does, without the int64 limit.
func formatMinor(f *money.Formatter, minor decimal.Decimal) string {
	sa := minor.Abs().String()
	if len(sa) <= f.Fraction {
		sa = strings.Repeat("0", f.Fraction-len(sa)+1) + sa
	}
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// Amount returns the amount in its canonical persisted form.
func (m Money) Amount() string { return m.value.String() }

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Mul(q int64) Money        { return Money{value: m.value.Mul(decimal.NewFromInt(q)), cur: m.cur} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// MarshalJSON writes the exact amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}
