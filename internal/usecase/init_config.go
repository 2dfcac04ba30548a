package usecase

import (
	"context"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates the global configuration file template.
type InitConfig struct {
	configInit domain.ConfigInitializer
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configInit domain.ConfigInitializer) *InitConfig {
	return &InitConfig{configInit: configInit}
}

// Execute creates the configuration file with the default template.
func (uc *InitConfig) Execute(_ context.Context) (*InitConfigOutput, error) {
	path, err := uc.configInit.InitGlobalConfig()
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
