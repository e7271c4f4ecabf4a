package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions on a line oriented console.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Printf writes to the prompter output.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Line prints prompt and returns the next input line without its line terminator.
// It returns io.EOF once the input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	p.Printf("%s", prompt)
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		// last line without a terminator.
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prints prompt and reads a line until parse succeeds and valid accepts
// the parsed value. On each rejection the whole line is discarded and errMsg
// is printed on its own line. A nil valid accepts every parsed value.
//
// The only error returned comes from the input, io.EOF when exhausted.
func Ask[T any](p *Prompter, prompt string, parse func(string) (T, error), valid func(T) bool, errMsg string) (T, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil && (valid == nil || valid(v)) {
			return v, nil
		}
		p.Printf("%s\n", errMsg)
	}
}

// ParseInt parses a base 10 integer, ignoring surrounding blanks.
func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// NonNegative accepts zero and positive quantities.
func NonNegative(q int64) bool { return q >= 0 }

// NonNegativeMoney accepts zero and positive amounts.
func NonNegativeMoney(m Money) bool { return !m.IsNegative() }

// MoneyParser returns a parser of amounts in currency, suitable for Ask.
func MoneyParser(currency string) func(string) (Money, error) {
	return func(s string) (Money, error) { return ParseMoney(s, currency) }
}
