package controller

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/ui"
)

func (c *Controller) GetUser(ctx context.Context) (*entity.User, error) {
	return c.gtwy.GetUser(ctx)
}

// Login stores the workspace host and token, then verifies them against the
// workspace.
func (c *Controller) Login(ctx context.Context, host string, token string) (*entity.User, error) {
	err := c.cfg.SetUserConfigs(&entity.UserConfig{
		Host:  host,
		Token: token,
	})
	if err != nil {
		return nil, err
	}

	user, err := c.gtwy.GetUser(ctx)
	if err != nil {
		// Wipe the config again so a bad token does not stick around
		c.cfg.SetUserConfigs(&entity.UserConfig{})
		return nil, err
	}
	return user, nil
}

func (c *Controller) Logout(ctx context.Context) error {
	// Logout by wiping user configs
	userCfg, err := c.cfg.GetUserConfigs()
	if err != nil || userCfg.Token == "" {
		fmt.Printf("🚪  %s\n", ui.YellowText("Already logged out"))
		return nil
	}
	err = c.cfg.SetUserConfigs(&entity.UserConfig{Host: userCfg.Host})
	if err != nil {
		return err
	}
	fmt.Printf("👋 %s\n", ui.YellowText("Logged out"))
	return nil
}

func (c *Controller) IsLoggedIn(ctx context.Context) (bool, error) {
	userCfg, err := c.cfg.GetUserConfigs()
	if err != nil {
		return false, nil
	}
	return userCfg.Token != "", nil
}
