package usecase

import (
	"context"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Config *domain.Config // The effective merged configuration
	TOML   string         // The configuration rendered as TOML
}

// ShowConfig renders the effective configuration after merging defaults,
// the global config file, and the local override file.
type ShowConfig struct {
	loader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{loader: loader}
}

// Execute loads and renders the effective configuration.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}

	return &ShowConfigOutput{Config: cfg, TOML: string(data)}, nil
}
