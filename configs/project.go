package configs

import (
	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

func (c *Configs) GetProjectConfigs() (*entity.ProjectConfig, error) {
	var cfg entity.ProjectConfig

	if err := c.unmarshalConfig(c.projectConfigs, &cfg); err != nil {
		return nil, errors.ProjectConfigNotFound
	}

	return &cfg, nil
}

func (c *Configs) SetProjectConfigs(cfg *entity.ProjectConfig) error {
	return c.marshalConfig(c.projectConfigs, *cfg)
}

// GetApp returns the linked app name, error when nothing is linked.
func (c *Configs) GetApp() (string, error) {
	cfg, err := c.GetProjectConfigs()
	if err != nil {
		return "", err
	}
	if cfg.App == "" {
		return "", errors.ProjectConfigNotFound
	}
	return cfg.App, nil
}

func (c *Configs) SetApp(name string) error {
	return c.SetProjectConfigs(&entity.ProjectConfig{App: name})
}

func (c *Configs) UnsetApp() error {
	return c.SetProjectConfigs(&entity.ProjectConfig{})
}
