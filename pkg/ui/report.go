package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/invtweaks/pkg/config"
	"github.com/arthur-debert/invtweaks/pkg/inventory"
	"github.com/arthur-debert/invtweaks/pkg/rules"
	"github.com/arthur-debert/invtweaks/pkg/tree"
	"github.com/arthur-debert/invtweaks/pkg/watch"
	"github.com/pterm/pterm"
)

// Renderer writes human readable reports about a configuration snapshot.
type Renderer struct {
	w      io.Writer
	format Format
}

// NewRenderer creates a renderer for w. FormatAuto is resolved against w.
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: Resolve(format, w)}
}

// Format returns the concrete format the renderer writes.
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) paint(style, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return GetStyle(style).Render(s)
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) header(title string) {
	r.printf("%s\n", r.paint("Header", title))
}

func (r *Renderer) field(label string, value interface{}) {
	r.printf("  %s %v\n", r.paint("Label", label+":"), value)
}

// Summary writes the load metadata and settings of cfg.
func (r *Renderer) Summary(cfg *config.Config) {
	r.header("Configuration")
	r.field("source", cfg.Source())
	r.field("load id", cfg.LoadID())
	r.field("rules", len(cfg.Rules()))
	r.field("locked slots", countLocked(cfg.LockedSlots()))
	r.field("middle click", onOff(cfg.IsMiddleClickEnabled()))
	r.field("verbosity", cfg.Verbosity())
	r.field("auto-replace", strings.Join(cfg.AutoReplaceKeywords(), ", "))
}

// Rules writes the sorting rules of cfg in evaluation order.
func (r *Renderer) Rules(cfg *config.Config) error {
	list := cfg.Rules()
	r.header(fmt.Sprintf("Rules (%d)", len(list)))
	if len(list) == 0 {
		r.printf("  %s\n", r.paint("Muted", "no rules"))
		return nil
	}

	data := pterm.TableData{{"#", "pattern", "keyword", "type", "priority", "slots"}}
	for i, rule := range list {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			rule.Pattern(),
			rule.Keyword(),
			rule.Type().String(),
			strconv.Itoa(rule.Priority()),
			slotList(rule.Positions()),
		})
	}

	out, err := r.table(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render rules table: %w", err)
	}
	r.printf("%s\n", out)
	return nil
}

// Locks writes the locked-slot table as a grid. Each locked cell shows the
// tier of the pattern that locked it last; free cells show a dot.
func (r *Renderer) Locks(cfg *config.Config) {
	locked := cfg.LockedSlots()
	r.header(fmt.Sprintf("Locked slots (%d/%d)", countLocked(locked), len(locked)))

	var b strings.Builder
	b.WriteString("     ")
	for col := 0; col < inventory.Columns; col++ {
		b.WriteString(strconv.Itoa(col + 1))
		b.WriteString(" ")
	}
	r.printf("%s\n", strings.TrimRight(b.String(), " "))

	for start := 0; start < len(locked); start += inventory.Columns {
		b.Reset()
		b.WriteString("  ")
		b.WriteString(rowLabel(start))
		b.WriteString("  ")
		for col := 0; col < inventory.Columns && start+col < len(locked); col++ {
			priority := locked[start+col]
			if priority == 0 {
				b.WriteString(r.paint("Free", "."))
			} else {
				b.WriteString(r.paint("Locked", strconv.Itoa(priority/rules.TierSize)))
			}
			b.WriteString(" ")
		}
		r.printf("%s\n", strings.TrimRight(b.String(), " "))
	}
}

// Diagnostics writes the keywords that could not be resolved.
func (r *Renderer) Diagnostics(cfg *config.Config) {
	invalid := cfg.InvalidKeywords()
	if len(invalid) == 0 {
		r.printf("%s\n", r.paint("Success", "All keywords resolved"))
		return
	}
	r.header(fmt.Sprintf("Unknown keywords (%d)", len(invalid)))
	for _, keyword := range invalid {
		r.printf("  %s %s\n", r.paint("Warning", "!"), keyword)
	}
}

// AutoReplace writes the outcome of an auto-replace query.
func (r *Renderer) AutoReplace(cfg *config.Config, id tree.ItemID) bool {
	allowed := cfg.CanBeAutoReplaced(id)
	label := fmt.Sprintf("item %s", formatItemID(id))
	if allowed {
		r.printf("%s %s\n", label, r.paint("Success", "can be auto-replaced"))
	} else {
		r.printf("%s %s\n", label, r.paint("Error", "cannot be auto-replaced"))
	}
	r.field("sequence", strings.Join(cfg.AutoReplaceKeywords(), ", "))
	return allowed
}

// Reload writes one line describing a reload triggered by the watcher.
func (r *Renderer) Reload(ev watch.Reload, cfg *config.Config) {
	stamp := ev.At.Format("15:04:05")
	if ev.Err != nil {
		r.printf("%s %s %v\n", r.paint("Muted", stamp), r.paint("Error", "reload failed:"), ev.Err)
		return
	}
	r.printf("%s %s %s: %d rules, %d locked slots, %d unknown keywords\n",
		r.paint("Muted", stamp),
		r.paint("Success", "reloaded"),
		ev.Path,
		len(cfg.Rules()),
		countLocked(cfg.LockedSlots()),
		len(cfg.InvalidKeywords()))
}

func (r *Renderer) table(data pterm.TableData) *pterm.TablePrinter {
	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if r.format != FormatTerminal {
		plain := pterm.NewStyle()
		table = table.WithStyle(plain).WithHeaderStyle(plain).WithSeparatorStyle(plain)
	}
	return table
}

func countLocked(locked []int) int {
	n := 0
	for _, priority := range locked {
		if priority != 0 {
			n++
		}
	}
	return n
}

func slotList(positions []int) string {
	names := make([]string, len(positions))
	for i, slot := range positions {
		names[i] = inventory.SlotName(slot)
	}
	return strings.Join(names, " ")
}

func rowLabel(start int) string {
	row := start / inventory.Columns
	if row < inventory.Rows {
		return string(rune('a' + row))
	}
	return "#"
}

func formatItemID(id tree.ItemID) string {
	if id.Damage == tree.AnyDamage {
		return strconv.Itoa(id.ID)
	}
	return fmt.Sprintf("%d:%d", id.ID, id.Damage)
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
