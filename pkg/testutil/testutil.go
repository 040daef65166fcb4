package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/invtweaks/pkg/paths"
	"github.com/arthur-debert/invtweaks/pkg/tree"
)

// SampleTreeXML is a small category tree:
//
//	all
//	├── blocks: stone(1)
//	│   └── ore: ironore(15)
//	├── tools: stonepickaxe(274)
//	└── food: bread(297)
const SampleTreeXML = `<all>
  <blocks>
    <stone id="1"/>
    <ore>
      <ironore id="15"/>
    </ore>
  </blocks>
  <tools>
    <stonepickaxe id="274"/>
  </tools>
  <food>
    <bread id="297"/>
  </food>
</all>`

// SampleTree parses SampleTreeXML
func SampleTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.Parse([]byte(SampleTreeXML))
	if err != nil {
		t.Fatalf("Failed to parse sample tree: %v", err)
	}
	return tr
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// Environment is an isolated invtweaks config directory
type Environment struct {
	ConfigDir string
	StateDir  string
}

// NewEnvironment points the invtweaks config and state directories at
// fresh temp dirs and writes the sample tree and the given rules as the
// default files
func NewEnvironment(t *testing.T, rules string) *Environment {
	t.Helper()
	env := &Environment{
		ConfigDir: t.TempDir(),
		StateDir:  t.TempDir(),
	}
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)

	CreateFile(t, env.ConfigDir, paths.TreeFileName, SampleTreeXML)
	env.WriteRules(t, rules)
	return env
}

// RulesPath returns the default rules file of the environment
func (e *Environment) RulesPath() string {
	return filepath.Join(e.ConfigDir, paths.RulesFileName)
}

// WriteRules replaces the default rules file
func (e *Environment) WriteRules(t *testing.T, rules string) {
	t.Helper()
	CreateFile(t, e.ConfigDir, paths.RulesFileName, rules)
}
