package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
	"github.com/msto63/presenty/pkg/presenty"
)

// run executes the CLI with args and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolate(t)

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// isolate keeps config files of the machine running the tests out of reach
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("PRESENTY_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func output(t *testing.T, args ...string) string {
	t.Helper()
	stdout, _, err := run(t, args...)
	require.NoError(t, err)
	return strings.TrimSuffix(stdout, "\n")
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNumberCommand(t *testing.T) {
	assert.Equal(t, "1.235", output(t, "number", "1234.5"))
	assert.Equal(t, "1.234,50", output(t, "number", "1234.5", "--decimals", "2"))
	assert.Equal(t, "1,234.50", output(t, "number", "1234.5", "-d", "2", "--dec-point", ".", "--thousands-sep", ","))
	assert.Equal(t, "1234", output(t, "number", "1234", "--thousands-sep", ""))
	assert.Equal(t, "-7", output(t, "number", "--", "-7"))
}

func TestMoneyCommand(t *testing.T) {
	assert.Equal(t, "€ 1.234,50", output(t, "money", "1234.5"))
	assert.Equal(t, "$ 10", output(t, "money", "10", "--symbol", "$", "--decimals", "0"))
	assert.Equal(t, "¥ 1.235", output(t, "money", "1234.5", "--currency", "JPY"))
	assert.Equal(t, "0", output(t, "money", "", "--decimals", "0"))

	_, _, err := run(t, "money", "1", "--currency", "USD", "--symbol", "$")
	assert.Error(t, err)
}

func TestBooleanCommand(t *testing.T) {
	assert.Equal(t, "si", output(t, "boolean", "yes"))
	assert.Equal(t, "no", output(t, "boolean", "0"))
	assert.Equal(t, "on", output(t, "boolean", "1", "--yes", "on", "--no", "off"))
	assert.Equal(t, "off", output(t, "boolean", "nope", "--yes", "on", "--no", "off"))
}

func TestTruncateCommands(t *testing.T) {
	assert.Equal(t, "https://example.c...", output(t, "url", "https://example.com/a/very/long/path", "--max", "20"))
	assert.Equal(t, "hello w...", output(t, "description", "hello world again", "-m", "10"))
	assert.Equal(t, "short", output(t, "description", "short"))
}

func TestAnchorCommand(t *testing.T) {
	assert.Equal(t,
		`<a target="_blank" href="https://go.dev">Docs</a>`,
		output(t, "anchor", "Docs", "--href", "https://go.dev"))
	assert.Equal(t,
		`<a class="btn" target="_self" href="/x">Docs</a>`,
		output(t, "anchor", "Docs", "--href", "/x", "--attr", "class=btn", "--attr", "target=_self"))

	_, _, err := run(t, "anchor", "Docs")
	assert.Error(t, err)
}

func TestMailtoCommand(t *testing.T) {
	assert.Equal(t,
		`<a href="mailto:info@example.it">info@example.it</a>`,
		output(t, "mailto", "info@example.it"))
	assert.Equal(t,
		`<a class="m" href="mailto:info@example.it">Write</a>`,
		output(t, "mailto", "info@example.it", "--label", "Write", "--attr", "class=m"))
}

func TestSignCommand(t *testing.T) {
	assert.Equal(t, `<span class="label label-success">5</span>`, output(t, "sign", "5"))
	assert.Equal(t, `<span class="down">-5</span>`, output(t, "sign", "--negative", "down", "--", "-5"))
}

func TestDateCommand(t *testing.T) {
	assert.Equal(t, "15/01/2023", output(t, "date", "2023-01-15"))
	assert.Equal(t, "2023-01-15", output(t, "date", "15/01/2023", "--layout", "2006-01-02"))
	assert.Equal(t, "2023-01-15", output(t, "date", "15.01.2023", "-l", "iso8601-date"))

	stdout, _, err := run(t, "date", "not-a-date")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.ErrorIs(t, err, presenty.ErrDateParse)
}

func TestImplodeCommand(t *testing.T) {
	assert.Equal(t, "Roma Milano", output(t, "implode", "Roma", "", "0", "Milano"))
	assert.Equal(t, "Roma, 0, Milano", output(t, "implode", "Roma", "", "0", "Milano", "--sep", ", ", "--keep-zero"))
	assert.Equal(t, "", output(t, "implode"))
}

func TestVersionCommand(t *testing.T) {
	out := output(t, "version", "--config", "/does/not/exist.toml")
	assert.Contains(t, out, "presenty")
}

func TestEncodingFlagIsAccepted(t *testing.T) {
	assert.Equal(t, "x", output(t, "--encoding", "ISO-8859-1", "description", "x"))
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, "presenty.toml", `
[number]
decimals = 1
decimal_separator = "."
group_separator = ","

[money]
symbol = "CHF"

[boolean]
yes = "ja"
no = "nein"

[sign]
positive_class = "pos"

[implode]
separator = " | "
`)

	assert.Equal(t, "1,234.5", output(t, "--config", path, "number", "1234.5"))
	assert.Equal(t, "CHF 3.00", output(t, "--config", path, "money", "3"))
	assert.Equal(t, "ja", output(t, "--config", path, "boolean", "si"))
	assert.Equal(t, `<span class="pos">1</span>`, output(t, "--config", path, "sign", "1"))
	assert.Equal(t, "a | b", output(t, "--config", path, "implode", "a", "b"))
}

func TestYAMLConfigFile(t *testing.T) {
	path := writeConfig(t, "presenty.yaml", "truncate:\n  length: 8\n  ellipsis: \"~\"\n")
	assert.Equal(t, "abcdefg~", output(t, "--config", path, "description", "abcdefghijkl"))
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("PRESENTY_MONEY_SYMBOL", "$")
	t.Setenv("PRESENTY_MONEY_DECIMALS", "0")
	assert.Equal(t, "$ 5", output(t, "money", "5"))
}

func TestEnvFileFlag(t *testing.T) {
	envFile := writeConfig(t, ".env", "PRESENTY_MONEY_SYMBOL=CHF\n")
	assert.Equal(t, "CHF 1,00", output(t, "--env-file", envFile, "money", "1"))

	_, _, err := run(t, "--env-file", envFile+".missing", "money", "1")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

func TestConfigFromEnvironmentPath(t *testing.T) {
	path := writeConfig(t, "env.toml", "[boolean]\nyes = \"oui\"\n")

	var stdout bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"boolean", "1"})
	t.Setenv("PRESENTY_CONFIG", path)

	require.NoError(t, root.Execute())
	assert.Equal(t, "oui\n", stdout.String())
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "number", "1")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))

	path := writeConfig(t, "bad.toml", "[truncate]\nlength = 0\n")
	_, _, err = run(t, "--config", path, "description", "x")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "--verbose", "number", "abc")
	require.NoError(t, err)
	assert.Equal(t, "0\n", stdout)
	assert.Contains(t, stderr, "non-numeric value formatted as zero")
}

func TestArgumentValidation(t *testing.T) {
	_, _, err := run(t, "number")
	assert.Error(t, err)

	_, _, err = run(t, "boolean", "a", "b")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, mdwerror.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())
}
