package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/charlieparkes/listdistance/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command in a fresh working directory. A nil input leaves
// the directory without an input file.
func execute(t *testing.T, input *string) (stdout, stderr string, err error) {
	t.Helper()

	dir := t.TempDir()
	if input != nil {
		require.NoError(t, os.WriteFile(filepath.Join(dir, app.InputPath), []byte(*input), 0o644))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out, errOut bytes.Buffer
	Cmd.SetArgs([]string{})
	Cmd.SetOut(&out)
	Cmd.SetErr(&errOut)
	t.Cleanup(func() {
		Cmd.SetOut(nil)
		Cmd.SetErr(nil)
	})

	err = Cmd.Execute()
	return out.String(), errOut.String(), err
}

func ptr(s string) *string { return &s }

func TestRunExample(t *testing.T) {
	stdout, stderr, err := execute(t, ptr("3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"))
	require.NoError(t, err)

	assert.Equal(t, "Attempting to read input from 'input.txt'...\n"+
		"Finished reading file. Found 6 valid pairs.\n"+
		"\n"+
		"Total distance between the lists: 11\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunSkipsMalformedLines(t *testing.T) {
	stdout, stderr, err := execute(t, ptr("1 2\n5 abc\n\n7 8 9\n4 1\n"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "Found 2 valid pairs.")
	assert.Contains(t, stdout, "Total distance between the lists: 2")

	assert.Contains(t, stderr, "line=2")
	assert.Contains(t, stderr, "token=abc")
	assert.Contains(t, stderr, "line=4")
	assert.Contains(t, stderr, "7 8 9")
}

func TestRunNoPairs(t *testing.T) {
	stdout, _, err := execute(t, ptr(""))
	require.NoError(t, err)

	assert.Contains(t, stdout, "Found 0 valid pairs.")
	assert.Contains(t, stdout, "No valid number pairs were read from the file.")
	assert.NotContains(t, stdout, "Total distance")
}

func TestRunMissingInput(t *testing.T) {
	stdout, stderr, err := execute(t, nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), app.InputPath)
	assert.Contains(t, stderr, app.InputPath)
	assert.NotContains(t, stdout, "Finished reading file")
}

func TestRunRejectsArguments(t *testing.T) {
	Cmd.SetArgs([]string{"other.txt"})
	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	t.Cleanup(func() {
		Cmd.SetArgs([]string{})
		Cmd.SetOut(nil)
		Cmd.SetErr(nil)
	})

	assert.Error(t, Cmd.Execute())
}
