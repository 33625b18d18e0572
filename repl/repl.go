// Package repl implements the line-oriented read-eval-print loop around
// the parser and the executor.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/kr/pretty"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/executor"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// Options tune what a session prints besides results.
type Options struct {
	Prompt string // Printed on stdout before reading each line, if set.
	Echo   bool   // Print the parenthesized form of each expression.
	Tokens bool   // Dump each token sequence on stderr.
	Tree   bool   // Dump each expression tree on stderr.
}

// Session evaluates lines one at a time. Only the result index is kept
// from one line to the next.
type Session struct {
	opts   Options
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger

	index    int // Index of the next result.
	failures int

	parse func([]lexer.Token) (ast.Expr, error)
}

// New creates a session writing results to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer, opts Options) *Session {
	return &Session{
		opts:   opts,
		stdout: stdout,
		stderr: stderr,
		logger: log.New(stderr, "ERROR: ", 0),
		index:  1,
		parse:  parser.Parse,
	}
}

// Failures returns the number of lines that failed so far.
func (s *Session) Failures() int {
	return s.failures
}

// Run evaluates every line of input until EOF. Malformed lines are
// reported and skipped. Only read and write failures are returned.
func (s *Session) Run(input io.Reader) error {
	r := bufio.NewReader(input)
	for {
		if s.opts.Prompt != "" {
			if _, err := io.WriteString(s.stdout, s.opts.Prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			s.Eval(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			if s.opts.Prompt != "" {
				// Leave the terminal on a fresh line.
				_, _ = io.WriteString(s.stdout, "\n")
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
	}
}

// Eval processes a single line and reports whether it produced a result.
func (s *Session) Eval(line string) bool {
	expr, value, err := s.evalLine(line)
	if err != nil {
		s.failures++
		// Parser bugs carry their own "internal parser error" prefix.
		var panicErr *panicError
		if errors.As(err, &panicErr) {
			s.logger.Printf("internal error: %s", err)
		} else {
			s.logger.Print(err)
		}
		return false
	}
	if s.opts.Echo {
		fmt.Fprintf(s.stdout, "%s : ", expr.Dump())
	}
	fmt.Fprintf(s.stdout, "[%d]: %s\n", s.index, ast.FormatNumber(value))
	s.index++
	return true
}

// panicError is a panic recovered while processing a line.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprint(e.value)
}

func (s *Session) evalLine(line string) (expr ast.Expr, value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			expr, value, err = nil, 0, &panicError{value: r}
		}
	}()

	tokens, err := lexer.Tokenize(line)
	if err != nil {
		return nil, 0, err
	}
	if s.opts.Tokens {
		fmt.Fprintln(s.stderr, repr.String(tokens))
	}

	expr, err = s.parse(tokens)
	if err != nil {
		return nil, 0, err
	}
	if s.opts.Tree {
		pretty.Fprintf(s.stderr, "%# v\n", expr)
	}

	return expr, executor.Evaluate(expr), nil
}
