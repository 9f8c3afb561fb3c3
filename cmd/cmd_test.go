package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surrogatetk/internal/service/surrogate"
)

const testPrefs = `Legacy.migrated.prefs = Object.assign({
	"surrogate.google.analytics.sources": "www.google-analytics.com",
	"surrogate.google.analytics.replacement": "window.ga = function() {};",
	"surrogate.fb.sources": "connect.facebook.net",
	"surrogate.fb.replacement": "FB = {};",
	"other.setting": true
}, Legacy.migrated.prefs);
`

// resetFlags は前のテストで設定されたフラグを初期値に戻す
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func setupAddonDir(t *testing.T, prefs string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "legacy"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "legacy", "defaults.js"), []byte(prefs), 0644))
	return root
}

func TestConvertCmd(t *testing.T) {
	root := setupAddonDir(t, testPrefs)

	out, err := executeCmd(t, "convert", "-A", root, "-q")
	require.NoError(t, err)

	assert.Contains(t, out, "surrogates/google_analytics.user.js ← google.analytics")
	assert.Contains(t, out, "surrogates/fb.user.js ← fb")
	assert.Contains(t, out, "2件のサロゲートを変換しました")
	assert.Contains(t, out, "新規作成, 追加 2件 / 上書き 0件")
	assert.Contains(t, out, "残りのプリファレンス: 1件")

	script, err := os.ReadFile(filepath.Join(root, "surrogates", "fb.user.js"))
	require.NoError(t, err)
	assert.Equal(t, "// ==UserScript==\n// @NoScript:sources connect.facebook.net\n// ==/UserScript==\nFB = {};", string(script))

	prefs, err := os.ReadFile(filepath.Join(root, "legacy", "defaults.js"))
	require.NoError(t, err)
	assert.Equal(t, "Legacy.migrated.prefs = Object.assign({\n\t\"other.setting\": true\n}, Legacy.migrated.prefs);\n", string(prefs))
}

func TestConvertCmd_DryRun(t *testing.T) {
	root := setupAddonDir(t, testPrefs)

	out, err := executeCmd(t, "convert", "--addon-root", root, "--dry-run", "-q")
	require.NoError(t, err)

	assert.Contains(t, out, "--dry-runが指定されました")
	_, err = os.Stat(filepath.Join(root, "surrogates"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertCmd_MissingReplacement(t *testing.T) {
	root := setupAddonDir(t, `Legacy.migrated.prefs = Object.assign({"surrogate.x.sources": "x.com"}, y);`)

	_, err := executeCmd(t, "convert", "-A", root, "-q")
	require.Error(t, err)
	assert.ErrorIs(t, err, surrogate.ErrMissingReplacement)
}

func TestConvertCmd_SamePath(t *testing.T) {
	root := setupAddonDir(t, testPrefs)
	target := filepath.Join(root, "x.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0644))

	_, err := executeCmd(t, "convert", "-A", root, "--preferences", "x.json", "--assets", "x.json", "-q")
	require.Error(t, err)
	assert.ErrorIs(t, err, surrogate.ErrSamePath)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestConvertCmd_Config(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "legacy"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "legacy", "defaults.js"), []byte(testPrefs), 0644))

	cfgPath := filepath.Join(base, "surrogatetk.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("layout:\n  addon_root: src\n  output_dir: scripts\n"), 0644))

	out, err := executeCmd(t, "convert", "-c", cfgPath, "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "scripts/fb.user.js ← fb")

	_, err = os.Stat(filepath.Join(root, "scripts", "google_analytics.user.js"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "surrogates", "assets.json"))
	assert.NoError(t, err)
}

func TestConvertCmd_FlagOverridesConfig(t *testing.T) {
	base := t.TempDir()
	root := setupAddonDir(t, testPrefs)
	cfgPath := filepath.Join(base, "surrogatetk.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("layout:\n  addon_root: does-not-exist\n"), 0644))

	_, err := executeCmd(t, "convert", "-c", cfgPath, "-A", root, "-q")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "surrogates", "fb.user.js"))
	assert.NoError(t, err)
}

func TestLsCmd(t *testing.T) {
	root := setupAddonDir(t, testPrefs)

	out, err := executeCmd(t, "ls", "-A", root)
	require.NoError(t, err)
	assert.Contains(t, out, "google.analytics")
	assert.Contains(t, out, "fb.user.js")
	assert.Contains(t, out, "合計: 2件")

	out, err = executeCmd(t, "ls", "-A", root, "-f", "google*")
	require.NoError(t, err)
	assert.Contains(t, out, "パターン'google*'に一致するサロゲート一覧")
	assert.Contains(t, out, "google_analytics.user.js")
	assert.NotContains(t, out, "fb.user.js")

	// lsはファイルを書き込まない
	_, err = os.Stat(filepath.Join(root, "surrogates"))
	assert.True(t, os.IsNotExist(err))
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "surrogatetk version dev\n", out)
}

func TestRootCmd_Help(t *testing.T) {
	out, err := executeCmd(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "surrogatetk convert")
}
