package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/paths"
	"github.com/arthur-debert/invtweaks/pkg/testutil"
	"github.com/arthur-debert/invtweaks/pkg/tree"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testRules = `a1 locked
d locked
b2 ore
c tools
a1-b3 food
autoreplace tools
autoreplace nothing
a3 unicorns
disablemiddleclick`

// setupConfigDir isolates the config directory and returns it
func setupConfigDir(t *testing.T, rules string) string {
	t.Helper()
	return testutil.NewEnvironment(t, rules).ConfigDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if os.Getenv(paths.EnvStateDir) == "" {
		t.Setenv(paths.EnvStateDir, t.TempDir())
	}
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	dir := setupConfigDir(t, testRules)

	out, err := execute(t, "check")
	require.NoError(t, err)

	assert.Contains(t, out, "source: "+filepath.Join(dir, paths.RulesFileName))
	assert.Contains(t, out, "rules: 3")
	assert.Contains(t, out, "locked slots: 10")
	assert.Contains(t, out, "middle click: disabled")
	assert.Contains(t, out, "auto-replace: tools, nothing")
	assert.Contains(t, out, "Unknown keywords (1)")
	assert.Contains(t, out, "unicorns")
}

func TestCheckCmd_Strict(t *testing.T) {
	setupConfigDir(t, testRules)

	_, err := execute(t, "check", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 keyword(s) could not be resolved")
}

func TestCheckCmd_StrictClean(t *testing.T) {
	setupConfigDir(t, "a1 ore")

	out, err := execute(t, "check", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "All keywords resolved")
}

func TestCheckCmd_RulesFlag(t *testing.T) {
	setupConfigDir(t, testRules)
	other := testutil.CreateFile(t, t.TempDir(), "other.txt", "a1 bread\ndebug")

	out, err := execute(t, "check", "--rules", other)
	require.NoError(t, err)
	assert.Contains(t, out, "source: "+other)
	assert.Contains(t, out, "rules: 1")
	assert.Contains(t, out, "verbosity: verbose")
}

func TestCheckCmd_MissingRules(t *testing.T) {
	setupConfigDir(t, testRules)

	_, err := execute(t, "check", "--rules", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestCheckCmd_MissingTree(t *testing.T) {
	setupConfigDir(t, testRules)

	_, err := execute(t, "check", "--tree", filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTreeLoad))
}

func TestCheckCmd_BadFormat(t *testing.T) {
	setupConfigDir(t, testRules)

	_, err := execute(t, "check", "--format", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --format")
}

func TestRulesCmd(t *testing.T) {
	setupConfigDir(t, testRules)

	out, err := execute(t, "rules")
	require.NoError(t, err)

	assert.Contains(t, out, "Rules (3)")
	ore := strings.Index(out, "| ore")
	tools := strings.Index(out, "| tools")
	food := strings.Index(out, "| food")
	require.NotEqual(t, -1, ore)
	require.NotEqual(t, -1, tools)
	require.NotEqual(t, -1, food)
	assert.Less(t, ore, tools)
	assert.Less(t, tools, food)
}

func TestLocksCmd(t *testing.T) {
	setupConfigDir(t, testRules)

	out, err := execute(t, "locks")
	require.NoError(t, err)

	assert.Contains(t, out, "Locked slots (10/36)")
	assert.Contains(t, out, "  a  3 . . . . . . . .")
	assert.Contains(t, out, "  d  2 2 2 2 2 2 2 2 2")
}

func TestAutoReplaceCmd(t *testing.T) {
	setupConfigDir(t, testRules)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "tool allowed", args: []string{"274"}, expected: "item 274 can be auto-replaced"},
		{name: "food stopped by nothing", args: []string{"297"}, expected: "item 297 cannot be auto-replaced"},
		{name: "damage shown", args: []string{"274", "3"}, expected: "item 274:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"autoreplace"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestAutoReplaceCmd_InvalidArgs(t *testing.T) {
	setupConfigDir(t, testRules)

	_, err := execute(t, "autoreplace", "pickaxe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid item id "pickaxe"`)

	_, err = execute(t, "autoreplace", "274", "-1")
	require.Error(t, err)

	_, err = execute(t, "autoreplace")
	require.Error(t, err)
}

func TestParseItemID(t *testing.T) {
	id, err := parseItemID([]string{"35"})
	require.NoError(t, err)
	assert.Equal(t, tree.ItemID{ID: 35, Damage: tree.AnyDamage}, id)

	id, err = parseItemID([]string{"35", "14"})
	require.NoError(t, err)
	assert.Equal(t, tree.ItemID{ID: 35, Damage: 14}, id)
}

func TestDumpCmd(t *testing.T) {
	setupConfigDir(t, testRules)

	t.Run("toml", func(t *testing.T) {
		out, err := execute(t, "dump")
		require.NoError(t, err)

		var doc map[string]interface{}
		require.NoError(t, toml.Unmarshal([]byte(out), &doc))
		assert.Equal(t, false, doc["middle_click"])
		assert.Len(t, doc["rules"], 3)
		assert.Len(t, doc["locks"], 10)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, "dump", "-o", "yaml")
		require.NoError(t, err)

		var doc map[string]interface{}
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.Equal(t, []interface{}{"tools", "nothing"}, doc["auto_replace"])
		assert.Equal(t, []interface{}{"unicorns"}, doc["invalid_keywords"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "dump", "-o", "json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestSettingsFile(t *testing.T) {
	dir := setupConfigDir(t, testRules)
	custom := testutil.CreateFile(t, dir, "custom.txt", "a1 ore\na2 bread")
	settings := testutil.CreateFile(t, t.TempDir(), "settings.yaml", "rules_file: custom.txt\ncapacity: 9\n")

	out, err := execute(t, "--settings", settings, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "source: "+custom)
	assert.Contains(t, out, "rules: 2")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "invtweaks version")
}

func TestCompletionCmd(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "invtweaks")

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestNoCommand(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrNoCommand)
}

func TestRunWatch(t *testing.T) {
	dir := setupConfigDir(t, "a1 ore")

	opts := &rootOptions{}
	s, err := opts.openSession(true)
	require.NoError(t, err)
	s.settings.Watch.Debounce = 20 * time.Millisecond

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	r, err := s.renderer(cmd)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- runWatch(ctx, s, r, func() { close(started) })
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not start")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, paths.RulesFileName), []byte("a1 ore\nb bread"), 0644))

	require.Eventually(t, func() bool {
		return len(s.store.Rules()) == 2
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Contains(t, out.String(), "reloaded")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	for _, name := range []string{"autoreplace", "patterns", "priorities", "rules", "settings"} {
		assert.Contains(t, out, "  "+name+"\n")
	}

	out, err = execute(t, "help", "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "`a1-c3v` fills it column by column")

	out, err = execute(t, "help", "check")
	require.NoError(t, err)
	assert.Contains(t, out, MsgCheckShort)
}
