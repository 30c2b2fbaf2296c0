package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunJSON(t *testing.T) {
	path := writeFile(t, "in.txt", "foo bar baz")

	code, out, errOut := runCLI(t, "", "-s", "word", "-json", path, "right", "delete")
	require.Equal(t, 0, code, errOut)

	res := gjson.Parse(out)
	assert.Equal(t, "word", res.Get("subject").String())
	assert.Equal(t, "single-phase", res.Get("jumpPhase").String())
	assert.Equal(t, "foo baz", res.Get("text").String())
	assert.Equal(t, int64(1), res.Get("selections.#").Int())
	assert.Equal(t, "foo", res.Get("selections.0.text").String())
}

func TestRunSelectionsFromJSON(t *testing.T) {
	path := writeFile(t, "in.txt", "foo bar\nbaz qux")
	sels := `[{"anchor":{"line":0,"character":4},"active":{"line":0,"character":7}},{"anchor":{"line":1,"character":0}}]`

	code, out, errOut := runCLI(t, "", "-s", "word", "-json", "-selections", sels, path, "duplicate")
	require.Equal(t, 0, code, errOut)

	res := gjson.Parse(out)
	assert.Equal(t, "foo bar bar\nbaz baz qux", res.Get("text").String())
	assert.Equal(t, []string{"bar", "baz"}, stringsOf(res.Get("selections.#.text").Array()))
	assert.Equal(t, int64(8), res.Get("selections.0.anchor.character").Int())
}

func stringsOf(rs []gjson.Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}

func TestRunStdinText(t *testing.T) {
	code, out, errOut := runCLI(t, "fooBarBaz", "-s", "subword", "-", "fix", "right")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "fooBarBaz\n-- [(0:6):(0:9)) \"Baz\"\n", out)
}

func TestRunLineDeleteIsSkipped(t *testing.T) {
	code, out, errOut := runCLI(t, "a\nb", "-s", "line", "-json", "-", "delete")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "a\nb", gjson.Get(out, "text").String())
}

func TestRunErrors(t *testing.T) {
	path := writeFile(t, "in.txt", "x")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no file", nil, 2},
		{"bad log level", []string{"-log-level", "loud", path}, 2},
		{"unknown action", []string{path, "jump"}, 1},
		{"search without char", []string{path, "search"}, 1},
		{"unknown subject", []string{"-s", "paragraph", path}, 1},
		{"bad selections", []string{"-selections", "{", path}, 1},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.txt")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRunJumpTargets(t *testing.T) {
	path := writeFile(t, "in.txt", "a b\nc d")

	code, out, errOut := runCLI(t, "", "-s", "word", "-json", "-jump", "3", path)
	require.Equal(t, 0, code, errOut)

	assert.Equal(t, []string{"a", "s", "d"}, stringsOf(gjson.Get(out, "targets.#.label").Array()))
	assert.Equal(t, []string{"a", "b", "c"}, stringsOf(gjson.Get(out, "targets.#.text").Array()))
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "-version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "textsubject dev")
}

func TestRunPrintConfig(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-print-config", "-s", "bracket")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "default = 'bracket'")
}

func TestParseAction(t *testing.T) {
	_, err := parseAction("search:ab")
	assert.Error(t, err)

	_, err = parseAction("skip")
	assert.NoError(t, err)

	_, err = parseAction("skip:;")
	assert.NoError(t, err)

	assert.Contains(t, actionNames(), "search:<char>")
}
