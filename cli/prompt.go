package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"superstore-cli/models"
)

// errInputClosed is returned by the ask* helpers once the input stream is
// exhausted; callers treat it as a request to unwind back out of the menu.
var errInputClosed = errors.New("input closed")

// prompter reads line-based answers from the interactive user
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// ask prints a label and returns the trimmed answer. Once the stream ends it
// returns "" and done() reports true.
func (p *prompter) ask(label string) string {
	if p.eof {
		return ""
	}
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// done reports whether the input stream has been exhausted
func (p *prompter) done() bool {
	return p.eof
}

// askInt asks for an integer, re-prompting on bad input until the stream ends
func (p *prompter) askInt(label string) (int, error) {
	for {
		raw := p.ask(label)
		if p.eof {
			return 0, errInputClosed
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			p.printf("Invalid number %q. Please try again.\n", raw)
			continue
		}
		return n, nil
	}
}

// askDecimal asks for a decimal answer, re-prompting on bad input
func (p *prompter) askDecimal(label string) (decimal.Decimal, error) {
	for {
		raw := p.ask(label)
		if p.eof {
			return decimal.Zero, errInputClosed
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			p.printf("Invalid number %q. Please try again.\n", raw)
			continue
		}
		return d, nil
	}
}

// askDate asks for a YYYY-MM-DD date, re-prompting on bad input
func (p *prompter) askDate(label string) (string, error) {
	for {
		raw := p.ask(label)
		if p.eof {
			return "", errInputClosed
		}
		if _, err := time.Parse(models.DateLayout, raw); err != nil {
			p.printf("Invalid date %q. Use YYYY-MM-DD.\n", raw)
			continue
		}
		return raw, nil
	}
}

// askChoice prints a numbered list and returns the selected option,
// re-prompting while the answer is not a number in range
func (p *prompter) askChoice(label string, options []string) (string, error) {
	p.printf("\n%s:\n", label)
	for i, option := range options {
		p.printf("%d. %s\n", i+1, option)
	}
	for {
		raw := p.ask("Enter your choice")
		if p.eof {
			return "", errInputClosed
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > len(options) {
			p.printf("Invalid choice %q. Please try again.\n", raw)
			continue
		}
		return options[n-1], nil
	}
}

// confirm asks a y/n question; anything but y (or end of input) declines
func (p *prompter) confirm(question string) bool {
	answer := p.ask(question + " (y/n)")
	return strings.EqualFold(answer, "y")
}
