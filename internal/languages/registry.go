package languages

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesFile []byte

type Language struct {
	Code       string `yaml:"code" json:"code"`
	Name       string `yaml:"name" json:"name"`
	NativeName string `yaml:"native_name" json:"native_name"`
}

type catalog struct {
	Languages []Language `yaml:"languages"`
}

// Registry holds the language codes accepted in recitation requests
type Registry struct {
	ordered []Language
	byCode  map[string]Language
	mu      sync.RWMutex
}

// NewRegistry loads the embedded language catalog
func NewRegistry() (*Registry, error) {
	return Parse(languagesFile)
}

// Parse builds a registry from a YAML catalog
func Parse(data []byte) (*Registry, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal language catalog: %w", err)
	}

	r := &Registry{
		ordered: make([]Language, 0, len(c.Languages)),
		byCode:  make(map[string]Language, len(c.Languages)),
	}
	for _, lang := range c.Languages {
		if lang.Code == "" {
			return nil, fmt.Errorf("language %q has no code", lang.Name)
		}
		if _, dup := r.byCode[lang.Code]; dup {
			return nil, fmt.Errorf("duplicate language code %q", lang.Code)
		}
		r.byCode[lang.Code] = lang
		r.ordered = append(r.ordered, lang)
	}
	return r, nil
}

// IsSupported reports whether code is a known language code
func (r *Registry) IsSupported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byCode[code]
	return ok
}

// Get returns the language for a code
func (r *Registry) Get(code string) (Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lang, ok := r.byCode[code]
	return lang, ok
}

// List returns all languages in catalog order
func (r *Registry) List() []Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Language, len(r.ordered))
	copy(out, r.ordered)
	return out
}
