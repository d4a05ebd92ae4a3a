package numwords

import "fmt"

// Config captures converter setup
type Config struct {
	DefaultLanguage Language
	Loader          Loader
	Modules         []Module
	Hooks           []ConversionHook
	Registry        *Registry

	registry *Registry
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = DefaultLanguage
	}

	return cfg, nil
}

// WithDefaultLanguage sets the language used when a conversion names none
func WithDefaultLanguage(lang Language) Option {
	return func(c *Config) error {
		code := canonicalLanguage(string(lang))
		if code == "" {
			return fmt.Errorf("%w: empty default language", ErrUnsupportedLanguage)
		}
		c.DefaultLanguage = code
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		c.registry = nil
		return nil
	}
}

// WithLexiconFiles loads extra languages from YAML/JSON lexicon files.
// Repeated calls accumulate paths.
func WithLexiconFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		if existing, ok := c.Loader.(*FileLoader); ok && existing != nil {
			existing.paths = append(existing.paths, paths...)
		} else {
			c.Loader = NewFileLoader(paths...)
		}
		c.registry = nil
		return nil
	}
}

// WithModules registers modules in addition to (or replacing) the built-in ones
func WithModules(modules ...Module) Option {
	return func(c *Config) error {
		c.Modules = append(c.Modules, modules...)
		c.registry = nil
		return nil
	}
}

// WithRegistry makes the converter dispatch to registry. Loaded and
// configured modules are registered into it.
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		c.Registry = registry
		c.registry = nil
		return nil
	}
}

func WithHooks(hooks ...ConversionHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// BuildRegistry resolves the registry described by the config, loading
// lexicon files on first use.
func (cfg *Config) BuildRegistry() (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("numwords: nil config")
	}
	if cfg.registry != nil {
		return cfg.registry, nil
	}

	modules := append([]Module(nil), cfg.Modules...)
	if cfg.Loader != nil {
		loaded, err := cfg.Loader.Load()
		if err != nil {
			return nil, err
		}
		modules = append(modules, loaded...)
	}

	registry := cfg.Registry
	if registry == nil {
		var err error
		registry, err = NewRegistry(WithRegistryModules(modules...))
		if err != nil {
			return nil, err
		}
	} else {
		for _, module := range modules {
			if err := registry.Register(module); err != nil {
				return nil, err
			}
		}
	}

	cfg.registry = registry
	return registry, nil
}

// BuildConverter returns a converter for the config. It fails when the
// default language has no module.
func (cfg *Config) BuildConverter() (*Converter, error) {
	registry, err := cfg.BuildRegistry()
	if err != nil {
		return nil, err
	}

	if !registry.Has(cfg.DefaultLanguage) {
		return nil, fmt.Errorf("%w: default language %q", ErrUnsupportedLanguage, cfg.DefaultLanguage)
	}

	return NewConverter(registry,
		WithConverterDefaultLanguage(cfg.DefaultLanguage),
		WithConverterHooks(cfg.Hooks...),
	), nil
}

// TemplateHelpers builds a converter from the config and returns its
// template func map.
func (cfg *Config) TemplateHelpers(helperCfg HelperConfig) (map[string]any, error) {
	converter, err := cfg.BuildConverter()
	if err != nil {
		return nil, err
	}
	return TemplateHelpers(converter, helperCfg), nil
}
