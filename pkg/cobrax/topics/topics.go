// Package topics adds a topic-based help command to a Cobra application.
// Topics are markdown or text files read from an fs.FS, so they can be
// embedded in the binary.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is a help page
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions loaded as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the topics of an application
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Load reads every topic file in fsys
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !m.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get returns a topic by name. Flag-style names (--format) are looked up
// with their dashes removed.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	topic, ok := m.topics[name]
	return topic, ok
}

// Names returns the topic names in alphabetical order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes a topic through the configured renderer
func (m *Manager) Render(w io.Writer, topic *Topic) error {
	_, err := io.WriteString(w, m.renderer.Render(topic.Content, topic.Ext))
	return err
}

// Install replaces the help command of root with one that also knows the
// topics in fsys
func Install(root *cobra.Command, fsys fs.FS, opts Options) (*Manager, error) {
	m, err := Load(fsys, opts)
	if err != nil {
		return nil, err
	}

	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				originalHelp(root, args)
				return nil
			}

			if args[0] == "topics" {
				return m.writeIndex(out, root.Name())
			}

			if topic, ok := m.Get(args[0]); ok {
				return m.Render(out, topic)
			}

			target, _, err := root.Find(args)
			if err != nil || target == nil {
				return fmt.Errorf("unknown help topic %q", args[0])
			}
			originalHelp(target, args)
			return nil
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)

	return m, nil
}

func (m *Manager) writeIndex(w io.Writer, app string) error {
	names := m.Names()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	var b strings.Builder
	b.WriteString("Available help topics:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	fmt.Fprintf(&b, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
	_, err := io.WriteString(w, b.String())
	return err
}
