package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// MaxLineBytes bounds a single answer. Longer lines are discarded and the
// question is asked again.
const MaxLineBytes = 1 << 20

var errLineTooLong = errors.New("line too long")

type answer struct {
	text string
	err  error
}

// Prompter is the input collector. It asks questions through the Renderer
// and re-prompts until the answer parses, so the core only ever sees valid
// values. Every method returns io.EOF once input is exhausted and ctx.Err()
// once ctx is done, even while waiting for the operator to type.
type Prompter struct {
	in      *bufio.Reader
	render  *Renderer
	start   sync.Once
	answers chan answer
}

// NewPrompter reads answers from in, one per line.
func NewPrompter(in io.Reader, render *Renderer) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		render:  render,
		answers: make(chan answer),
	}
}

// Line asks prompt and returns the raw answer. Only the line terminator is
// removed; leading and trailing spaces are kept.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	for {
		p.render.Prompt(prompt)
		s, err := p.next(ctx)
		if errors.Is(err, errLineTooLong) {
			p.render.Error(fmt.Sprintf("Input too long. Please keep answers under %d bytes.", MaxLineBytes))
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) && ctx.Err() == nil {
			return "", fmt.Errorf("cli.Prompter.Line: %w", err)
		}
		return s, err
	}
}

// next waits for the reader goroutine's next answer or for ctx.
// A blocked read on in cannot be interrupted, so after cancellation the
// goroutine stays parked until in delivers data or the process exits.
func (p *Prompter) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.readLines() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a, ok := <-p.answers:
		if !ok {
			return "", io.EOF
		}
		return a.text, a.err
	}
}

func (p *Prompter) readLines() {
	defer close(p.answers)
	for {
		s, err := readLine(p.in, MaxLineBytes)
		if errors.Is(err, io.EOF) {
			return
		}
		p.answers <- answer{text: s, err: err}
		if err != nil && !errors.Is(err, errLineTooLong) {
			return
		}
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// A final line without a terminator is still returned. A line longer than
// limit is consumed and reported as errLineTooLong.
func readLine(r *bufio.Reader, limit int) (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong && len(buf)+len(chunk) <= limit {
			buf = append(buf, chunk...)
		} else {
			tooLong, buf = true, nil
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong):
		case err != nil:
			return "", err
		}
		if tooLong {
			return "", errLineTooLong
		}
		line := strings.TrimSuffix(string(buf), "\n")
		return strings.TrimSuffix(line, "\r"), nil
	}
}

// Int asks prompt until the answer is a whole number.
func (p *Prompter) Int(ctx context.Context, prompt string) (int, error) {
	for {
		s, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}
		p.render.Error(fmt.Sprintf("Invalid number: %q. Please enter a whole number.", strings.TrimSpace(s)))
	}
}

// Float asks prompt until the answer is a decimal number.
func (p *Prompter) Float(ctx context.Context, prompt string) (float64, error) {
	for {
		f, ok, err := p.optionalFloat(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if ok {
			return f, nil
		}
		p.render.Error("A price is required.")
	}
}

// OptionalLine asks prompt and returns nil for an empty answer.
func (p *Prompter) OptionalLine(ctx context.Context, prompt string) (*string, error) {
	s, err := p.Line(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// OptionalFloat asks prompt and returns nil for an empty answer, re-prompting
// on anything that is neither empty nor a decimal number.
func (p *Prompter) OptionalFloat(ctx context.Context, prompt string) (*float64, error) {
	f, ok, err := p.optionalFloat(ctx, prompt)
	if err != nil || !ok {
		return nil, err
	}
	return &f, nil
}

func (p *Prompter) optionalFloat(ctx context.Context, prompt string) (float64, bool, error) {
	for {
		s, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, false, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f, true, nil
		}
		p.render.Error(fmt.Sprintf("Invalid number: %q. Please enter a price such as 1500.00.", s))
	}
}

// Choice asks prompt until the answer is a number in [1, limit].
func (p *Prompter) Choice(ctx context.Context, prompt string, limit int) (int, error) {
	for {
		s, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && n >= 1 && n <= limit {
			return n, nil
		}
		p.render.Error(fmt.Sprintf("Invalid choice: %q. Please choose between 1 and %d.", strings.TrimSpace(s), limit))
	}
}

// Choices asks prompt until the answer is one or more space-separated numbers
// in [1, limit], e.g. "2 3". Repeats are dropped; order of first mention is kept.
func (p *Prompter) Choices(ctx context.Context, prompt string, limit int) ([]int, error) {
	for {
		s, err := p.Line(ctx, prompt)
		if err != nil {
			return nil, err
		}
		choices, bad := parseChoices(s, limit)
		switch {
		case bad != "":
			p.render.Error(fmt.Sprintf("Invalid choice: %q. Please choose between 1 and %d.", bad, limit))
		case len(choices) == 0:
			p.render.Error("Please choose at least one option.")
		default:
			return choices, nil
		}
	}
}

// parseChoices returns the distinct choices in s, or the first bad token.
func parseChoices(s string, limit int) ([]int, string) {
	var out []int
	seen := make(map[int]bool)
	for _, tok := range strings.Fields(s) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > limit {
			return nil, tok
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, ""
}
