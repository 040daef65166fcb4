package tree

import (
	"strconv"

	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/logging"
	"github.com/beevik/etree"
)

const (
	idAttr     = "id"
	damageAttr = "damage"
)

// LoadFile reads an XML category tree from disk
func LoadFile(path string) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTreeLoad, "failed to read category tree %s", path).
			WithDetail("path", path)
	}
	return fromDocument(doc)
}

// Parse builds a tree from XML bytes
func Parse(data []byte) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrTreeParse, "failed to parse category tree")
	}
	return fromDocument(doc)
}

func fromDocument(doc *etree.Document) (*Tree, error) {
	logger := logging.GetLogger("tree.xml")

	root := doc.Root()
	if root == nil {
		// A document without elements yields a tree without a root category;
		// loading a rules file against it fails only if it needs the root.
		logger.Warn().Msg("Category tree has no root element")
		return New(""), nil
	}

	t := New(root.Tag)
	if err := t.addChildren(root); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root.Tag).
		Int("keywords", t.Keywords()).
		Msg("Category tree loaded")
	return t, nil
}

func (t *Tree) addChildren(parent *etree.Element) error {
	for _, el := range parent.ChildElements() {
		if idValue := el.SelectAttrValue(idAttr, ""); idValue != "" {
			id, err := strconv.Atoi(idValue)
			if err != nil {
				return errors.Wrapf(err, errors.ErrTreeParse, "item %q has a non-numeric id", el.Tag)
			}
			damage := AnyDamage
			if dmgValue := el.SelectAttrValue(damageAttr, ""); dmgValue != "" {
				damage, err = strconv.Atoi(dmgValue)
				if err != nil {
					return errors.Wrapf(err, errors.ErrTreeParse, "item %q has a non-numeric damage", el.Tag)
				}
			}
			if _, err := t.AddItem(parent.Tag, el.Tag, id, damage); err != nil {
				return errors.Wrap(err, errors.ErrTreeParse, "invalid item")
			}
			continue
		}

		if _, err := t.AddCategory(parent.Tag, el.Tag); err != nil {
			return errors.Wrap(err, errors.ErrTreeParse, "invalid category")
		}
		if err := t.addChildren(el); err != nil {
			return err
		}
	}
	return nil
}
