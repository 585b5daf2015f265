package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one partial [StructuredConfig] per source, in
// priority order. Source errors are accumulated and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// build folds the collected sources into one config: a field keeps the value
// of the first source that set it. The result is validated before it is
// returned.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading config sources: %w", b.err)
	}

	merged := &StructuredConfig{}
	for i, source := range b.configs {
		if err := mergo.Merge(merged, source); err != nil {
			return nil, fmt.Errorf("error merging config source %d: %w", i, err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(parseEnv())
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags(), nil)
}

// withJSON loads the JSON file named by the collected sources. When several
// sources name one, the last of them is used. Without a path it does nothing.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}
