package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zephyrtronium/notation"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(zaptest.NewLogger(t))
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReadLines(t *testing.T) {
	t.Parallel()
	ins, err := readLines(strings.NewReader("1&1\n\n  ~(1&0)  \n\t\n10|\n"), notation.Infix)
	require.NoError(t, err)
	assert.Equal(t, []input{
		{src: "1&1", f: notation.Infix},
		{src: "~(1&0)", f: notation.Infix},
		{src: "10|", f: notation.Infix},
	}, ins)
}

func TestReadBatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		data    string
		want    []input
		wantErr bool
	}{
		{
			name: "formats",
			data: "- expr: 1&1\n- expr: '&10'\n  format: prefix\n- expr: 10|\n  format: Postfix\n",
			want: []input{
				{src: "1&1", f: notation.Infix},
				{src: "&10", f: notation.Prefix},
				{src: "10|", f: notation.Postfix},
			},
		},
		{
			name: "empty",
			data: "",
			want: []input{},
		},
		{
			name:    "bad format",
			data:    "- expr: 1\n  format: rpn\n",
			wantErr: true,
		},
		{
			name:    "not a list",
			data:    "expr: 1\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ins, err := readBatch([]byte(tt.data), notation.Infix)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ins)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	lines := filepath.Join(dir, "exprs.txt")
	require.NoError(t, os.WriteFile(lines, []byte("1^1\n~0\n"), 0o644))
	batch := filepath.Join(dir, "exprs.yml")
	require.NoError(t, os.WriteFile(batch, []byte("- expr: ~&10\n  format: prefix\n"), 0o644))

	ins, err := readFile(lines, notation.Infix)
	require.NoError(t, err)
	assert.Len(t, ins, 2)

	ins, err = readFile(batch, notation.Infix)
	require.NoError(t, err)
	assert.Equal(t, []input{{src: "~&10", f: notation.Prefix}}, ins)

	_, err = readFile(filepath.Join(dir, "missing.txt"), notation.Infix)
	assert.Error(t, err)
}

func TestEvalRows(t *testing.T) {
	t.Parallel()
	rows := evalRows(notation.Boolean, showBool, []input{
		{src: "~(1&0)", f: notation.Infix},
		{src: "1&", f: notation.Infix},
		{src: "1+1", f: notation.Infix},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, row{input: "~(1&0)", postfix: "10&~", prefix: "~&10", result: "1"}, rows[0])
	assert.Equal(t, "1&", rows[1].postfix)
	var u *notation.StackUnderflowError
	assert.ErrorAs(t, rows[1].err, &u)
	var it *notation.InvalidTokenError
	assert.ErrorAs(t, rows[2].err, &it)
}

func TestRootCommand(t *testing.T) {
	out, err := run(t, "", "1&1", "(1|0)&(0|1)", "1^1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Postfix")
	assert.Contains(t, lines[1], "11&")
	assert.True(t, strings.HasSuffix(lines[1], " 1"), "line %q", lines[1])
	assert.Contains(t, lines[2], "10|01|&")
	assert.Contains(t, lines[2], "&|10|01")
	assert.True(t, strings.HasSuffix(lines[3], " 0"), "line %q", lines[3])
}

func TestRootCommandStdin(t *testing.T) {
	out, err := run(t, "& 1 1\n~0\n", "--from", "prefix")
	require.NoError(t, err)
	assert.Contains(t, out, "11&")
	assert.Contains(t, out, "0~")
}

func TestRootCommandFailures(t *testing.T) {
	out, err := run(t, "", "1&", "1&1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "needs 2 operands")
}

func TestRootCommandArith(t *testing.T) {
	out, err := run(t, "", "--algebra", "arith", "(1+2)*3", "4^3^2")
	require.NoError(t, err)
	assert.Contains(t, out, "12+3*")
	assert.Contains(t, out, " 9\n")
	assert.Contains(t, out, " 262144\n")
}

func TestRootCommandBadFlags(t *testing.T) {
	_, err := run(t, "", "--algebra", "complex", "1")
	assert.Error(t, err)
	_, err = run(t, "", "--from", "rpn", "1")
	assert.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "", "convert", "--to", "prefix", "~(1&0)", "1|0&1")
	require.NoError(t, err)
	assert.Equal(t, "~&10\n|1&01\n", out)

	out, err = run(t, "", "convert", "--from", "postfix", "--to", "infix", "10&~")
	require.NoError(t, err)
	assert.Equal(t, "~(1&0)\n", out)

	out, err = run(t, "", "convert", "--from", "postfix", "--to", "infix", "01")
	require.Error(t, err)
	assert.Contains(t, out, "2 values remain")
}
