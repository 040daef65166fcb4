package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/inventory"
	"github.com/arthur-debert/invtweaks/pkg/logging"
	"github.com/arthur-debert/invtweaks/pkg/rules"
	"github.com/arthur-debert/invtweaks/pkg/tree"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	cellLine  = regexp.MustCompile(`^` + rules.CellGrammar + ` [\w]*$`)
	rangeLine = regexp.MustCompile(`^` + rules.RangeGrammar + ` [\w]*$`)
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// LoadFile reads and parses a configuration file
func LoadFile(path string, t tree.CategoryTree, inv inventory.Inventory) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read configuration %s", path).
			WithDetail("path", path)
	}
	return load(path, string(data), t, inv)
}

// Load parses configuration text
func Load(text string, t tree.CategoryTree, inv inventory.Inventory) (*Config, error) {
	return load(textSource, text, t, inv)
}

// parser holds the state of a single load
type parser struct {
	cfg    *Config
	logger zerolog.Logger
}

func load(source, text string, t tree.CategoryTree, inv inventory.Inventory) (*Config, error) {
	if n := inv.Capacity(); n <= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "inventory capacity must be positive, got %d", n).
			WithDetail("source", source)
	}

	cfg := newEmpty(t, inv)
	cfg.loadID = uuid.New().String()
	cfg.source = source

	p := &parser{
		cfg: cfg,
		logger: logging.GetLogger("config.loader").With().
			Str("loadID", cfg.loadID).
			Str("source", source).
			Logger(),
	}
	defer logging.LogOperationStart(p.logger, "load")()

	for i, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		p.parseLine(i+1, strings.ToLower(line))
	}

	if len(cfg.autoReplace) == 0 {
		root, ok := t.RootCategory()
		if !ok {
			return nil, errors.New(errors.ErrNoRootCategory, "no root category is defined").
				WithDetail("source", source)
		}
		cfg.autoReplace = append(cfg.autoReplace, root)
	}

	rules.SortByPriority(cfg.rules)

	p.logger.Info().
		Int("rules", len(cfg.rules)).
		Int("invalidKeywords", len(cfg.invalidKeywords)).
		Strs("autoReplace", cfg.autoReplace).
		Bool("middleClick", cfg.middleClick).
		Str("verbosity", cfg.verbosity.String()).
		Msg("Configuration loaded")

	return cfg, nil
}

// splitWords splits on single spaces and drops trailing empty words, so
// "debug " is one word while "a1  ore" is three
func splitWords(line string) []string {
	words := strings.Split(line, " ")
	for len(words) > 0 && words[len(words)-1] == "" {
		words = words[:len(words)-1]
	}
	return words
}

func (p *parser) parseLine(number int, line string) {
	words := splitWords(line)

	switch len(words) {
	case 2:
		switch {
		case cellLine.MatchString(line) || rangeLine.MatchString(line):
			if words[1] == rules.LockKeyword {
				p.lock(number, words[0])
			} else {
				p.addRule(number, words[0], words[1])
			}
			return

		case words[0] == AutoReplaceKeyword &&
			(p.cfg.tree.IsKeywordValid(words[1]) || words[1] == AutoReplaceNothing):
			p.cfg.autoReplace = append(p.cfg.autoReplace, words[1])
			return
		}

	case 1:
		switch words[0] {
		case DisableMiddleClick:
			p.cfg.middleClick = false
			return
		case DebugKeyword:
			p.cfg.verbosity = VerbosityVerbose
			return
		}
	}

	p.logger.Trace().Int("line", number).Str("text", line).Msg("Ignoring line")
}

// lock writes the pattern's lock priority into every slot it covers. A later
// lock on the same slot overwrites an earlier one whatever their priorities.
func (p *parser) lock(number int, pattern string) {
	placement, err := rules.ParsePattern(pattern)
	if err != nil {
		p.logger.Warn().Err(err).Int("line", number).Msg("Skipping lock")
		return
	}

	priority := placement.Type.HighestPriority()
	for _, slot := range placement.Positions {
		if slot >= len(p.cfg.lockedSlots) {
			continue
		}
		p.cfg.lockedSlots[slot] = priority
	}

	p.logger.Debug().
		Int("line", number).
		Str("pattern", pattern).
		Int("priority", priority).
		Msg("Locked slots")
}

func (p *parser) addRule(number int, pattern, keyword string) {
	if !p.cfg.tree.IsKeywordValid(keyword) {
		singular := strings.TrimSuffix(keyword, "s")
		if singular == keyword || !p.cfg.tree.IsKeywordValid(singular) {
			p.cfg.invalidKeywords = append(p.cfg.invalidKeywords, keyword)
			p.logger.Debug().Int("line", number).Str("keyword", keyword).Msg("Invalid keyword")
			return
		}
		keyword = singular
	}

	rule, err := rules.New(pattern, keyword)
	if err != nil {
		p.logger.Warn().Err(err).Int("line", number).Msg("Skipping rule")
		return
	}
	p.cfg.rules = append(p.cfg.rules, rule)

	p.logger.Debug().
		Int("line", number).
		Str("pattern", pattern).
		Str("keyword", keyword).
		Int("priority", rule.Priority()).
		Msg("Added rule")
}
