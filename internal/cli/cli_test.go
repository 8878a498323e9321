package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fediskema "github.com/reoring/fediskema"
)

const account = `{"id":"1","username":"a","acct":"a@x","url":"https://x/@a","display_name":"A","note":"","avatar":"https://x/a.png","avatar_static":"https://x/a.png","header":"https://x/h.png","header_static":"https://x/h.png","locked":false,"emojis":[],"discoverable":true,"created_at":"2024-01-01T00:00:00Z","last_status_at":"2024-01-01T00:00:00Z","statuses_count":0,"followers_count":0,"following_count":0}`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestValidate_OK(t *testing.T) {
	out, _, err := run(t, account, "validate", "--kind", "account")
	require.NoError(t, err)
	assert.Contains(t, out, "OK Account")
}

func TestValidate_StrictAndLenient(t *testing.T) {
	httpAccount := strings.Replace(account, `"url":"https://x/@a"`, `"url":"http://x/@a"`, 1)
	p := writeFile(t, "account.json", httpAccount)

	out, _, err := run(t, "", "validate", "-k", "account", p)
	require.Error(t, err)
	assert.EqualError(t, err, "Account: 1 issue(s)")
	assert.Contains(t, out, "error: invalid_format at /url")

	out, _, err = run(t, "", "validate", "-k", "account", "--lenient", p)
	require.NoError(t, err)
	assert.Contains(t, out, "warning: invalid_format at /url")
	assert.Contains(t, out, "OK Account")
}

func TestValidate_ConfigFileAndFlagOverride(t *testing.T) {
	withExtra := strings.TrimSuffix(account, "}") + `,"pleroma":{}}`
	cfg := writeFile(t, "fediskema.yaml", "unknown: strict\nmode: strict\n")

	out, _, err := run(t, withExtra, "validate", "-k", "account", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, out, "unknown_key at /pleroma")

	_, _, err = run(t, withExtra, "validate", "-k", "account", "--config", cfg, "--unknown", "strip")
	assert.NoError(t, err, "flag overrides config")

	bad := writeFile(t, "bad.yaml", "mode: sloppy\n")
	_, _, err = run(t, account, "validate", "-k", "account", "--config", bad)
	assert.ErrorContains(t, err, "invalid mode")

	typo := writeFile(t, "typo.yaml", "max_dept: 3\n")
	_, _, err = run(t, account, "validate", "-k", "account", "--config", typo)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate_UnknownKind(t *testing.T) {
	_, _, err := run(t, "{}", "validate", "--kind", "toot")
	assert.ErrorContains(t, err, "unknown kind")

	_, _, err = run(t, "{}", "validate")
	assert.ErrorContains(t, err, "--kind is required")
}

func TestRoundtrip_YAMLInput(t *testing.T) {
	y := "shortcode: blob\nurl: https://x/e.png\nstatic_url: https://x/e_s.png\nvisible_in_picker: true\n"
	out, _, err := run(t, y, "roundtrip", "-k", "emoji", "--yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "blob", got["shortcode"])
	assert.Equal(t, true, got["visible_in_picker"])
	assert.NotContains(t, got, "category")
}

func TestRoundtrip_MaxDepth(t *testing.T) {
	moved := strings.TrimSuffix(account, "}") + `,"moved":` + account + `}`
	out, _, err := run(t, moved, "roundtrip", "-k", "account", "--max-depth", "1", "--indent")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"moved\": {")

	twice := strings.TrimSuffix(account, "}") + `,"moved":` + moved + `}`
	_, errOut, err := run(t, twice, "roundtrip", "-k", "account", "--max-depth", "1")
	assert.True(t, fediskema.HasCode(err, fediskema.CodeRecursionLimit), "got %v", err)
	assert.Contains(t, errOut, "recursion_limit_exceeded at /moved/moved")
}

func TestSchema(t *testing.T) {
	out, _, err := run(t, "", "schema", "-k", "status")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "#/$defs/Status", doc["$ref"])
	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"Status", "Account", "Poll", "Card", "Emoji"} {
		assert.Contains(t, defs, name)
	}
}

func TestKinds(t *testing.T) {
	out, _, err := run(t, "", "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "account")
	assert.Contains(t, out, "Notification")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "json", true)
	require.NoError(t, err)
	l.Debug("x")
	assert.Contains(t, buf.String(), `"msg":"x"`)

	_, err = newLogger(&buf, "xml", false)
	assert.Error(t, err)
}
