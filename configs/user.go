package configs

import (
	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

// GetUserConfigs returns the stored workspace host and token. The GENIE_HOST
// and GENIE_TOKEN environment variables take precedence over the file.
func (c *Configs) GetUserConfigs() (*entity.UserConfig, error) {
	var cfg entity.UserConfig

	if err := c.unmarshalConfig(c.userConfigs, &cfg); err != nil && c.GenieToken == "" {
		return nil, errors.UserConfigNotFound
	}

	if c.GenieHost != "" {
		cfg.Host = c.GenieHost
	}
	if c.GenieToken != "" {
		cfg.Token = c.GenieToken
	}

	if cfg.Host == "" {
		return nil, errors.WorkspaceHostNotSet
	}

	return &cfg, nil
}

func (c *Configs) SetUserConfigs(cfg *entity.UserConfig) error {
	return c.marshalConfig(c.userConfigs, *cfg)
}
