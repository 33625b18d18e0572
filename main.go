package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"go.creack.net/calc/repl"
)

var cli struct {
	Expr []string `arg:"" optional:"" help:"Expressions to evaluate instead of reading standard input."`

	Prompt   string `default:">>> " help:"Prompt shown when standard input is a terminal."`
	NoPrompt bool   `help:"Never show the prompt."`
	Echo     bool   `help:"Print each expression fully parenthesized before its result."`
	Tokens   bool   `help:"Dump token sequences to stderr."`
	Tree     bool   `help:"Dump expression trees to stderr."`
}

func main() {
	log.SetFlags(0)
	kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description("Evaluate arithmetic expressions with + - * / and parentheses, one per line."),
		kong.UsageOnError(),
	)

	opts := repl.Options{
		Echo:   cli.Echo,
		Tokens: cli.Tokens,
		Tree:   cli.Tree,
	}

	if len(cli.Expr) > 0 {
		if evalArgs(os.Stdout, os.Stderr, opts, cli.Expr) > 0 {
			os.Exit(1)
		}
		return
	}

	if !cli.NoPrompt && isatty.IsTerminal(os.Stdin.Fd()) {
		opts.Prompt = cli.Prompt
	}
	if err := repl.New(os.Stdout, os.Stderr, opts).Run(os.Stdin); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}

// evalArgs evaluates each expression as a whole line, empty ones included,
// and returns how many failed.
func evalArgs(stdout, stderr io.Writer, opts repl.Options, exprs []string) int {
	s := repl.New(stdout, stderr, opts)
	for _, expr := range exprs {
		s.Eval(expr)
	}
	return s.Failures()
}
