package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/paths"
)

// EnvPrefix starts every environment override
const EnvPrefix = "HERE_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where configuration comes from
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// Overrides are applied last, keyed by dotted path ("prompt.message").
	Overrides map[string]interface{}
}

// DefaultContent returns the embedded defaults file
func DefaultContent() string {
	return string(defaultConfig)
}

// UserConfigPath returns the default location of the user config file
func UserConfigPath() string {
	return paths.ConfigFile()
}

// Load merges every configuration source and validates the result
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path, explicit := paths.ExpandHome(opts.Path), opts.Path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey(k.Keys())), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("search.backend", cfg.Search.Backend).
		Str("clipboard.backend", cfg.Clipboard.Backend).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps HERE_CHANGE_DIRECTORY_SUBMIT to change_directory.submit.
// Section and key names contain underscores themselves, so the split point
// comes from the known keys rather than from the variable name. Unknown
// variables map to "" and are ignored.
func envKey(known []string) func(string) string {
	keys := append([]string(nil), known...)
	sort.Strings(keys)

	return func(name string) string {
		flat := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		for _, key := range keys {
			if strings.ReplaceAll(key, ".", "_") == flat {
				return key
			}
		}
		return ""
	}
}

// trimStringHookFunc strips surrounding blanks from string values, which
// shell exports tend to carry
func trimStringHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}
