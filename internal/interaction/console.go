package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is a line-oriented Port over an input/output pair, normally
// stdin/stdout. A single reader goroutine owns the scanner and feeds a
// channel, so a pending prompt can be abandoned on ctx cancellation and a
// later request never races a second reader over the same input.
type Console struct {
	out   io.Writer
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewConsole creates a console port and starts its reader.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{out: out, lines: make(chan lineResult)}
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			c.lines <- lineResult{line: sc.Text()}
		}
		if err := sc.Err(); err != nil {
			c.lines <- lineResult{err: err}
		}
		close(c.lines)
	}()
	return c
}

// RequestCategory shows the transaction and a numbered category menu, then
// reads a selection. Blank input or "q" cancels. An out-of-range or
// non-numeric answer re-prompts.
func (c *Console) RequestCategory(ctx context.Context, req Request) (Response, error) {
	fmt.Fprintf(c.out, "\n%s\n", req.Description)
	fmt.Fprintf(c.out, "Amount: %s\n", req.Amount.StringFixed(2))
	c.printMenu(req.Candidates)

	for {
		fmt.Fprint(c.out, "Category number (blank or q to skip): ")
		line, err := c.readLine(ctx)
		if err != nil {
			return Response{}, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "q") {
			return Response{}, ErrCancelled
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(req.Candidates) {
			fmt.Fprintf(c.out, "Enter a number between 1 and %d.\n", len(req.Candidates))
			continue
		}
		category := req.Candidates[n-1]

		remember, err := c.askRemember(ctx)
		if err != nil {
			return Response{}, err
		}
		return Response{Category: category, Remember: remember}, nil
	}
}

func (c *Console) askRemember(ctx context.Context) (bool, error) {
	for {
		fmt.Fprint(c.out, "Remember this merchant? (y/[n]): ")
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n", "":
			return false, nil
		}
	}
}

// printMenu lays candidates out four to a line.
func (c *Console) printMenu(candidates []string) {
	for i, cat := range candidates {
		fmt.Fprintf(c.out, "%2d. %-25s", i+1, cat)
		if (i+1)%4 == 0 {
			fmt.Fprintln(c.out)
		}
	}
	if len(candidates)%4 != 0 {
		fmt.Fprintln(c.out)
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ErrCancelled
	case r, ok := <-c.lines:
		if !ok {
			return "", ErrCancelled // input exhausted
		}
		return r.line, r.err
	}
}
