package controller

import (
	"context"

	"github.com/genieiq/cli/entity"
)

// GetApp resolves an app by name, error otherwise
func (c *Controller) GetApp(ctx context.Context, name string) (*entity.App, error) {
	return c.gtwy.GetApp(ctx, name)
}

// GetLinkedApp returns the app name from the project config
func (c *Controller) GetLinkedApp() (string, error) {
	return c.cfg.GetApp()
}

func (c *Controller) LinkApp(ctx context.Context, name string) (*entity.App, error) {
	app, err := c.gtwy.GetApp(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := c.cfg.SetApp(app.Name); err != nil {
		return nil, err
	}
	return app, nil
}

func (c *Controller) UnlinkApp() error {
	return c.cfg.UnsetApp()
}
