// Package i18n loads the per-locale translation bundles embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Bundle holds one flat key -> message map per locale.
type Bundle struct {
	messages map[locale.Locale]map[string]string
}

// Load reads the embedded bundles.
func Load() (*Bundle, error) {
	return LoadFS(localeFS)
}

// MustLoad is Load for package-level initialization.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFS reads locales/<tag>.yaml for every supported locale and checks that
// all bundles define the same keys.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{messages: make(map[locale.Locale]map[string]string)}
	for _, l := range locale.Supported {
		path := "locales/" + l.String() + ".yaml"
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read bundle %s: %w", path, err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse bundle %s: %w", path, err)
		}
		flat := make(map[string]string)
		if err := flatten("", tree, flat); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", path, err)
		}
		if len(flat) == 0 {
			return nil, fmt.Errorf("bundle %s: no messages", path)
		}
		b.messages[l] = flat
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// flatten turns nested YAML maps into dotted keys ("nav.projects").
func flatten(prefix string, node map[string]any, out map[string]string) error {
	for key, value := range node {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("blank key under %q", prefix)
		}
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: unsupported value %T", full, value)
		}
	}
	return nil
}

// Validate reports keys present in one bundle but missing in another.
func (b *Bundle) Validate() error {
	var problems []string
	for _, l := range locale.Supported {
		for _, other := range locale.Supported {
			if l == other {
				continue
			}
			for key := range b.messages[l] {
				if _, ok := b.messages[other][key]; !ok {
					problems = append(problems, fmt.Sprintf("%s missing %q", other, key))
				}
			}
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("translation bundles out of sync: %s", strings.Join(problems, "; "))
	}
	return nil
}

// T returns the message for key, or the key itself when it is not defined.
func (b *Bundle) T(l locale.Locale, key string) string {
	if msg, ok := b.messages[l][key]; ok {
		return msg
	}
	return key
}

// Keys returns the sorted keys of the locale's bundle.
func (b *Bundle) Keys(l locale.Locale) []string {
	keys := make([]string, 0, len(b.messages[l]))
	for key := range b.messages[l] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Translator returns a lookup func bound to one locale, for templates.
func (b *Bundle) Translator(l locale.Locale) func(key string) string {
	return func(key string) string {
		return b.T(l, key)
	}
}
