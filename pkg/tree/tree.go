package tree

import (
	"strings"

	"github.com/arthur-debert/invtweaks/pkg/errors"
)

// AnyDamage matches every damage value of an item id
const AnyDamage = -1

// ItemID identifies an inventory item
type ItemID struct {
	ID     int
	Damage int
}

// Item is a leaf of the category tree
type Item struct {
	Name   string
	ID     int
	Damage int

	// categories lists the item's ancestors, nearest first
	categories []string
}

// InCategory reports whether the item is named keyword or sits below a
// category named keyword
func (i *Item) InCategory(keyword string) bool {
	if i.Name == keyword {
		return true
	}
	for _, c := range i.categories {
		if c == keyword {
			return true
		}
	}
	return false
}

// CategoryTree resolves keywords and item identities
type CategoryTree interface {
	// Items returns every item matching the identity
	Items(id ItemID) []*Item
	// IsKeywordValid reports whether keyword names a category or an item
	IsKeywordValid(keyword string) bool
	// Matches reports whether any of items falls under keyword
	Matches(items []*Item, keyword string) bool
	// RootCategory returns the root category name, false when undefined
	RootCategory() (string, bool)
}

// Category is an inner node of the tree
type Category struct {
	Name     string
	Parent   *Category
	Children []*Category
	Items    []*Item
}

// Tree is an in-memory category tree
type Tree struct {
	root       *Category
	categories map[string]*Category
	items      map[string][]*Item
	byID       map[int][]*Item
}

var _ CategoryTree = (*Tree)(nil)

// New creates a tree with the given root category. An empty name creates a
// tree without a root.
func New(root string) *Tree {
	t := &Tree{
		categories: make(map[string]*Category),
		items:      make(map[string][]*Item),
		byID:       make(map[int][]*Item),
	}
	if root != "" {
		t.root = &Category{Name: normalize(root)}
		t.categories[t.root.Name] = t.root
	}
	return t
}

// AddCategory adds a category under parent
func (t *Tree) AddCategory(parent, name string) (*Category, error) {
	p, ok := t.categories[normalize(parent)]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "unknown category %q", parent)
	}
	name = normalize(name)
	if _, exists := t.categories[name]; exists {
		return nil, errors.Newf(errors.ErrInvalidInput, "duplicate category %q", name)
	}

	c := &Category{Name: name, Parent: p}
	p.Children = append(p.Children, c)
	t.categories[name] = c
	return c, nil
}

// AddItem adds an item under category
func (t *Tree) AddItem(category, name string, id, damage int) (*Item, error) {
	c, ok := t.categories[normalize(category)]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "unknown category %q", category)
	}

	item := &Item{Name: normalize(name), ID: id, Damage: damage}
	for p := c; p != nil; p = p.Parent {
		item.categories = append(item.categories, p.Name)
	}
	c.Items = append(c.Items, item)
	t.items[item.Name] = append(t.items[item.Name], item)
	t.byID[id] = append(t.byID[id], item)
	return item, nil
}

// Items returns every item with the id whose damage matches. Either side
// carrying AnyDamage matches everything.
func (t *Tree) Items(id ItemID) []*Item {
	var out []*Item
	for _, item := range t.byID[id.ID] {
		if id.Damage == AnyDamage || item.Damage == AnyDamage || item.Damage == id.Damage {
			out = append(out, item)
		}
	}
	return out
}

// IsKeywordValid reports whether keyword names a category or an item
func (t *Tree) IsKeywordValid(keyword string) bool {
	keyword = normalize(keyword)
	if _, ok := t.categories[keyword]; ok {
		return true
	}
	_, ok := t.items[keyword]
	return ok
}

// Matches reports whether any of items is, or belongs to, keyword
func (t *Tree) Matches(items []*Item, keyword string) bool {
	keyword = normalize(keyword)
	for _, item := range items {
		if item.InCategory(keyword) {
			return true
		}
	}
	return false
}

// RootCategory returns the root category name
func (t *Tree) RootCategory() (string, bool) {
	if t.root == nil {
		return "", false
	}
	return t.root.Name, true
}

// Keywords returns the number of distinct category and item names
func (t *Tree) Keywords() int {
	n := len(t.categories)
	for name := range t.items {
		if _, ok := t.categories[name]; !ok {
			n++
		}
	}
	return n
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
