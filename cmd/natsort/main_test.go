// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_stdin(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), nil, strings.NewReader("gpio_4\ngpio\ngpio_2\n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, "gpio\ngpio_2\ngpio_4\n", stdout.String())
}

func TestRun_checkStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--check"}, strings.NewReader("b10\nb9\n"), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "natural order")
}

func TestRun_files(t *testing.T) {
	dir := t.TempDir()
	first, second := filepath.Join(dir, "first.txt"), filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("A2\na1\na1\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("x_10\nx_9\n"), 0o644))

	var stdout, stderr bytes.Buffer
	args := []string{"--fold-case", "--unique", "--workers", "2", first, second}
	require.Equal(t, 0, run(context.Background(), args, nil, &stdout, &stderr), stderr.String())

	got, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Equal(t, "a1\nA2\n", string(got))

	got, err = os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, "x_9\nx_10\n", string(got))

	stderr.Reset()
	require.Equal(t, 0, run(context.Background(), []string{"--check", "--fold-case", first, second}, nil, &stdout, &stderr), stderr.String())
}

func TestRun_stdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files.txt")
	require.NoError(t, os.WriteFile(path, []byte("c12\nc3\n"), 0o644))

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"--stdout", path}, nil, &stdout, &stderr), stderr.String())
	require.Equal(t, "c3\nc12\n", stdout.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "c12\nc3\n", string(got), "manifest rewritten under --stdout")
}

func TestRun_badArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.txt")}, nil, &stdout, &stderr)
	require.NotEqual(t, 0, code)

	stderr.Reset()
	code = run(context.Background(), []string{"--workers=-1"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 1, code)
}
