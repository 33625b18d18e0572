package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.creack.net/calc/repl"
)

func TestEvalArgs(t *testing.T) {
	tests := []struct {
		name     string
		exprs    []string
		opts     repl.Options
		failures int
		stdout   string
		stderr   string
	}{
		{
			name:   "single",
			exprs:  []string{"2 + 3 * 4"},
			stdout: "[1]: 14\n",
		},
		{
			name:   "one line per argument",
			exprs:  []string{"1", "7 / 2", "1 - 2 * 3 - 4"},
			stdout: "[1]: 1\n[2]: 3.5\n[3]: -9\n",
		},
		{
			name:     "empty argument",
			exprs:    []string{""},
			failures: 1,
			stderr:   "ERROR: 1: invalid unary operation: unexpected end of input\n",
		},
		{
			name:     "trailing empty argument",
			exprs:    []string{"1", ""},
			failures: 1,
			stdout:   "[1]: 1\n",
			stderr:   "ERROR: 1: invalid unary operation: unexpected end of input\n",
		},
		{
			name:     "newline inside an argument",
			exprs:    []string{"1\n2"},
			failures: 1,
			stderr:   "ERROR: 3: invalid binary operation: unexpected 2, expected operator or end of input\n",
		},
		{
			name:   "echo",
			exprs:  []string{"-(1)"},
			opts:   repl.Options{Echo: true},
			stdout: "(-1) : [1]: -1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)
			assert.Equal(t, tt.failures, evalArgs(stdout, stderr, tt.opts, tt.exprs))
			assert.Equal(t, tt.stdout, stdout.String(), "stdout")
			assert.Equal(t, tt.stderr, stderr.String(), "stderr")
		})
	}
}
