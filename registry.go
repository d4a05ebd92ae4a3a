package numwords

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps language codes to their lexicon and converter. Lookups
// normalise the requested tag and walk its parent chain, so "fr-CA" resolves
// to the "fr" module while "de" fails with ErrUnsupportedLanguage.
type Registry struct {
	mu       sync.RWMutex
	modules  map[Language]Module
	resolved map[string]Language
}

type registryConfig struct {
	modules     []Module
	skipBuiltin bool
}

// RegistryOption configures NewRegistry
type RegistryOption func(*registryConfig)

// WithRegistryModules registers extra modules after the built-in ones.
// A module with a built-in code replaces it.
func WithRegistryModules(modules ...Module) RegistryOption {
	return func(rc *registryConfig) {
		rc.modules = append(rc.modules, modules...)
	}
}

// WithoutBuiltinModules starts from an empty registry.
func WithoutBuiltinModules() RegistryOption {
	return func(rc *registryConfig) {
		rc.skipBuiltin = true
	}
}

// BuiltinModules returns fresh copies of the shipped language modules.
func BuiltinModules() []Module {
	return []Module{
		EnglishModule(),
		FrenchModule(),
		ArabicModule(),
		SpanishModule(),
	}
}

// NewRegistry builds a registry seeded with the built-in languages.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	cfg := registryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &Registry{
		modules: make(map[Language]Module),
	}

	if !cfg.skipBuiltin {
		for _, module := range BuiltinModules() {
			if err := registry.Register(module); err != nil {
				return nil, err
			}
		}
	}

	for _, module := range cfg.modules {
		if err := registry.Register(module); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	registry, err := NewRegistry()
	if err != nil {
		panic(fmt.Sprintf("numwords: built-in modules: %v", err))
	}
	return registry
})

// DefaultRegistry returns the process-wide registry used by the package
// level helpers.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Register adds or replaces the module for module.Code.
func (r *Registry) Register(module Module) error {
	if r == nil {
		return fmt.Errorf("%w: nil registry", ErrUnsupportedLanguage)
	}

	code := canonicalLanguage(string(module.Code))
	if code == "" {
		return fmt.Errorf("%w: module code is empty", ErrInvalidLexicon)
	}
	if module.Converter == nil {
		return fmt.Errorf("%w: module %q has no converter", ErrInvalidLexicon, code)
	}
	if err := module.Lexicon.Validate(); err != nil {
		return fmt.Errorf("module %q: %w", code, err)
	}

	module = module.clone()
	module.Code = code

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.modules == nil {
		r.modules = make(map[Language]Module)
	}
	r.modules[code] = module
	r.resolved = nil

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(module Module) {
	if err := r.Register(module); err != nil {
		panic(err)
	}
}

// Module returns a copy of the module serving code.
func (r *Registry) Module(code Language) (Module, error) {
	module, err := r.lookup(code)
	if err != nil {
		return Module{}, err
	}
	return module.clone(), nil
}

// Has reports whether code resolves to a registered module.
func (r *Registry) Has(code Language) bool {
	_, err := r.lookup(code)
	return err == nil
}

// Languages returns the registered codes in sorted order.
func (r *Registry) Languages() []Language {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Language, 0, len(r.modules))
	for code := range r.modules {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// lookup returns the shared module without cloning; callers must not modify it.
func (r *Registry) lookup(code Language) (Module, error) {
	if r == nil {
		return Module{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	key := string(code)

	r.mu.RLock()
	if resolved, ok := r.resolved[key]; ok {
		module := r.modules[resolved]
		r.mu.RUnlock()
		return module, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, candidate := range r.candidateLanguages(code) {
		module, ok := r.modules[candidate]
		if !ok {
			continue
		}
		if r.resolved == nil {
			r.resolved = make(map[string]Language)
		}
		r.resolved[key] = candidate
		return module, nil
	}

	return Module{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

func (r *Registry) candidateLanguages(code Language) []Language {
	canonical := canonicalLanguage(string(code))
	if canonical == "" {
		return nil
	}

	chain := []Language{canonical}
	for _, parent := range localeParentChain(string(canonical)) {
		candidate := canonicalLanguage(parent)
		if candidate == "" || containsLanguage(chain, candidate) {
			continue
		}
		chain = append(chain, candidate)
	}
	return chain
}

func containsLanguage(languages []Language, target Language) bool {
	for _, language := range languages {
		if language == target {
			return true
		}
	}
	return false
}

// Register adds module to the default registry.
func Register(module Module) error {
	return DefaultRegistry().Register(module)
}

// SupportedLanguages lists the languages of the default registry.
func SupportedLanguages() []Language {
	return DefaultRegistry().Languages()
}
