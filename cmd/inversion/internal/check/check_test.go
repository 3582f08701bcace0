package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/inversion/cmd/inversion/internal/cli"
	"github.com/broady/inversion/internal/testfixtures"
)

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_OK(t *testing.T) {
	spec := writeSpec(t, "api.json", testfixtures.TestAPI)

	var buf bytes.Buffer
	cmd := &Cmd{Specs: []string{spec}}
	require.NoError(t, cmd.Run(context.Background(), cli.Discard(&buf)))

	out := buf.String()
	assert.Contains(t, out, "✓ "+spec+": 3 top-level types (error, callOne, callTwo)\n")
	assert.Contains(t, out, "✓ 4 declarations: 2 structs, 1 tuples, 1 aliases in 1 modules\n")
	assert.Contains(t, out, "✓ 1 file(s), ")
	assert.NotContains(t, out, "⚠")
}

func TestRun_Warnings(t *testing.T) {
	spec := writeSpec(t, "nested.json", testfixtures.Nested)

	var buf bytes.Buffer
	cmd := &Cmd{Specs: []string{spec}}
	require.NoError(t, cmd.Run(context.Background(), cli.Discard(&buf)))
	assert.Contains(t, buf.String(), "⚠ unknown_type: ")

	buf.Reset()
	cmd.Strict = true
	err := cmd.Run(context.Background(), cli.Discard(&buf))
	require.Error(t, err)
	assert.Equal(t, "1 of 1 spec documents failed", err.Error())
	assert.Contains(t, buf.String(), "✗ "+spec+": 1 warnings")
}

func TestRun_Failures(t *testing.T) {
	good := writeSpec(t, "good.yaml", testfixtures.TestAPIYAML)
	broken := writeSpec(t, "broken.json", `{"inversionApiSpec": {"types": {"t": {"type": "tuple", "content": [{"index": -1, "content": {"type": "bool"}}]}}}}`)
	unparsable := writeSpec(t, "bad.json", `{`)

	var buf bytes.Buffer
	cmd := &Cmd{Specs: []string{good, broken, unparsable}}
	err := cmd.Run(context.Background(), cli.Discard(&buf))
	require.Error(t, err)
	assert.Equal(t, "2 of 3 spec documents failed", err.Error())

	out := buf.String()
	assert.Contains(t, out, "✓ "+good)
	assert.Contains(t, out, "✗ "+broken+": invalid spec document: t[0]: Index must be >= 0 (got -1)")
	assert.Contains(t, out, "✗ "+unparsable+": ")
}

func TestRun_InvalidNaming(t *testing.T) {
	cmd := &Cmd{Specs: []string{writeSpec(t, "api.json", testfixtures.TestAPI)}, Naming: "camel"}
	require.Error(t, cmd.Run(context.Background(), cli.Discard(&bytes.Buffer{})))
}
