package appconfig

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	inverrors "github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/inventory"
	"github.com/arthur-debert/invtweaks/pkg/logging"
	"github.com/arthur-debert/invtweaks/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every settings environment variable
const EnvPrefix = "INVTWEAKS_"

//go:embed embedded/defaults.toml
var defaultSettings []byte

// Settings holds the tool settings
type Settings struct {
	RulesFile string `koanf:"rules_file"`
	TreeFile  string `koanf:"tree_file"`
	Capacity  int    `koanf:"capacity"`
	Watch     Watch  `koanf:"watch"`
	Output    Output `koanf:"output"`
}

// Watch configures the rules file watcher
type Watch struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Output configures terminal rendering
type Output struct {
	Format string `koanf:"format"`
}

// Inventory returns the inventory the settings describe
func (s *Settings) Inventory() inventory.Inventory {
	return inventory.Fixed(s.Capacity)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the settings. An empty path uses the default settings file;
// a missing settings file is not an error. overrides are applied last,
// keyed like the TOML file ("rules_file", "watch.debounce").
func Load(path string, overrides map[string]interface{}) (*Settings, error) {
	logger := logging.GetLogger("appconfig")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, inverrors.Wrap(err, inverrors.ErrSettingsLoad, "failed to load default settings")
	}

	// 2. Settings file
	if path == "" {
		path = paths.SettingsPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, inverrors.Wrapf(err, inverrors.ErrSettingsLoad, "failed to load settings from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded settings file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, inverrors.Wrap(err, inverrors.ErrSettingsLoad, "failed to load environment settings")
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, inverrors.Wrap(err, inverrors.ErrSettingsLoad, "failed to apply setting overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, inverrors.Wrap(err, inverrors.ErrSettingsLoad, "failed to unmarshal settings")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	s.RulesFile = paths.Resolve(s.RulesFile)
	s.TreeFile = paths.Resolve(s.TreeFile)

	logger.Debug().
		Str("rulesFile", s.RulesFile).
		Str("treeFile", s.TreeFile).
		Int("capacity", s.Capacity).
		Dur("debounce", s.Watch.Debounce).
		Msg("Settings loaded")
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Capacity <= 0 || s.Capacity > inventory.Size {
		return inverrors.Newf(inverrors.ErrSettingsValid, "capacity must be between 1 and %d, got %d",
			inventory.Size, s.Capacity)
	}
	if s.Watch.Debounce < 0 {
		return inverrors.Newf(inverrors.ErrSettingsValid, "watch debounce must not be negative, got %s",
			s.Watch.Debounce)
	}
	if s.RulesFile == "" {
		return inverrors.New(inverrors.ErrSettingsValid, "rules_file must be set")
	}
	if s.TreeFile == "" {
		return inverrors.New(inverrors.ErrSettingsValid, "tree_file must be set")
	}
	return nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
