package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bril-lang/briltxt/bril"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := rootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestJSONCommand(t *testing.T) {
	out, err := runCommand(t, "main {\n  v: int = const 4;\n  print v;\n}", "json")
	require.NoError(t, err)

	var program bril.Program
	require.NoError(t, json.Unmarshal([]byte(out), &program))
	require.Len(t, program.Functions, 1)
	assert.Equal(t, "main", program.Functions[0].Name)
	assert.Len(t, program.Functions[0].Instrs, 2)
}

func TestJSONCommandSyntaxError(t *testing.T) {
	_, err := runCommand(t, "main { broken", "json")
	require.Error(t, err)
}

func TestTxtCommand(t *testing.T) {
	input := `{
		"functions": [{
			"name": "main",
			"instrs": [
				{"op": "const", "dest": "v", "type": "int", "value": 4},
				{"op": "print", "args": ["v"]}
			]
		}]
	}`

	out, err := runCommand(t, input, "txt")
	require.NoError(t, err)
	assert.Equal(t, "main {\n  v: int = const 4;\n  print v;\n}\n", out)
}

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "util.bril"), []byte("helper { ret; }"), 0o644))

	input := `{"imports": ["util"], "functions": [{"name": "main", "instrs": []}]}`
	out, err := runCommand(t, input, "resolve", "--path", dir)
	require.NoError(t, err)

	var program bril.Program
	require.NoError(t, json.Unmarshal([]byte(out), &program))
	assert.Empty(t, program.Imports)
	require.Len(t, program.Functions, 2)
	assert.Equal(t, "helper", program.Functions[1].Name)
}

func TestResolveCommandMissingModule(t *testing.T) {
	input := `{"imports": ["nope"], "functions": []}`
	_, err := runCommand(t, input, "resolve", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
