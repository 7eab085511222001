package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run 执行命令并返回 stdout、stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--color=false"))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEnvCmd_Text(t *testing.T) {
	out, _, err := run(t, "```python\ndef f():\n", "env", "-", "--line", "1", "--col", "4")
	require.NoError(t, err)
	assert.Equal(t, "multiline_code(0)\n", out)
}

func TestEnvCmd_JSON(t *testing.T) {
	out, _, err := run(t, "Text $x\nmore $y$ text\n", "env", "-", "-l", "1", "-c", "6", "--format", "json")
	require.NoError(t, err)

	var rec envRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "inline_math", rec.Kind)
	assert.Equal(t, 1, rec.Line)
	assert.Equal(t, 6, rec.Col)
}

func TestEnvCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("````\n$$\n"), 0o644))

	out, _, err := run(t, "", "env", path, "--line", "1", "--col", "2")
	require.NoError(t, err)
	assert.Equal(t, "multiline_code(1)\n", out)
}

func TestEnvCmd_Errors(t *testing.T) {
	_, _, err := run(t, "one line", "env", "-", "--line", "5")
	assert.ErrorContains(t, err, "out of range")

	_, _, err = run(t, "one line", "env", "-", "--col", "-1")
	assert.ErrorContains(t, err, "negative")

	_, _, err = run(t, "", "env", filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorContains(t, err, "failed to open")

	_, _, err = run(t, "x", "env", "-", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestAnnotateCmd_YAML(t *testing.T) {
	out, _, err := run(t, "$$\nx\n$$\n`a", "annotate", "-", "--format", "yaml")
	require.NoError(t, err)

	var records []envRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 4)

	kinds := make([]string, len(records))
	for i, r := range records {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []string{"multiline_math", "multiline_math", "markdown", "inline_code"}, kinds)
	assert.Equal(t, "`a", records[3].Text)
}

func TestAnnotateCmd_Trace(t *testing.T) {
	out, _, err := run(t, "`a` $b", "annotate", "-", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "inline_math")
	assert.Contains(t, out, "@1 inline_code -> inline_code")
	assert.Contains(t, out, "@3 close -> markdown")
	assert.Contains(t, out, "@5 inline_math -> inline_math")
}

func TestAnnotateCmd_Debug(t *testing.T) {
	_, stderr, err := run(t, "```\nx\n", "annotate", "-", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "cache miss at line 0")
}

func TestBlocksCmd(t *testing.T) {
	doc := "```\n``\ncode\n```\n"

	out, _, err := run(t, doc, "blocks", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "lines 1-2  -  2 mismatches")

	_, _, err = run(t, doc, "blocks", "-", "--strict")
	assert.ErrorContains(t, err, "2 code lines")

	out, _, err = run(t, "```go\nfmt.Println()\n```\n", "blocks", "-", "--strict", "--format", "json")
	require.NoError(t, err)
	var records []blockRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "go", records[0].Language)
	assert.Equal(t, "fmt.Println()\n", records[0].Code)
	assert.Empty(t, records[0].Mismatches)
}

// TestBlocksCmd_GroupsMismatches 不一致行只出现在所属代码块下
func TestBlocksCmd_GroupsMismatches(t *testing.T) {
	doc := "```\nok\n```\n\n```\n``\nx\n```\n"
	out, _, err := run(t, doc, "blocks", "-", "--format", "yaml")
	require.NoError(t, err)

	var records []blockRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Mismatches)
	require.Len(t, records[1].Mismatches, 2)
	assert.Equal(t, 5, records[1].Mismatches[0].Line)
	assert.Equal(t, "``", records[1].Mismatches[0].Text)
}

// TestAnnotateCmd_CRLF 读取输入时去掉行尾的 \r
func TestAnnotateCmd_CRLF(t *testing.T) {
	out, _, err := run(t, "```\r\ncode\r\n", "annotate", "-", "--format", "json")
	require.NoError(t, err)

	var records []envRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	assert.Equal(t, "```", records[0].Text)
	assert.Equal(t, "code", records[1].Text)
	assert.Equal(t, "multiline_code", records[1].Kind)
}
