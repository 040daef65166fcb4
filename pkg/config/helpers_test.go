package config

import (
	"testing"

	"github.com/arthur-debert/invtweaks/pkg/tree"
	"github.com/stretchr/testify/require"
)

// testTree builds:
//
//	all
//	├── blocks
//	│   ├── ore: ironore(15)
//	│   └── stone(1)
//	├── tools
//	│   └── pickaxe: stonepickaxe(274)
//	├── food: bread(297)
//	└── widget(500)
func testTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New("all")

	mustCategory(t, tr, "all", "blocks")
	mustCategory(t, tr, "blocks", "ore")
	mustCategory(t, tr, "all", "tools")
	mustCategory(t, tr, "tools", "pickaxe")
	mustCategory(t, tr, "all", "food")

	mustItem(t, tr, "ore", "ironore", 15)
	mustItem(t, tr, "blocks", "stone", 1)
	mustItem(t, tr, "pickaxe", "stonepickaxe", 274)
	mustItem(t, tr, "food", "bread", 297)
	mustItem(t, tr, "all", "widget", 500)
	return tr
}

func mustCategory(t *testing.T, tr *tree.Tree, parent, name string) {
	t.Helper()
	_, err := tr.AddCategory(parent, name)
	require.NoError(t, err)
}

func mustItem(t *testing.T, tr *tree.Tree, category, name string, id int) {
	t.Helper()
	_, err := tr.AddItem(category, name, id, tree.AnyDamage)
	require.NoError(t, err)
}
