package controller

import (
	"context"
	"time"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

const DefaultPollInterval = 5 * time.Second

// ConfigureAndDeploy resolves the app, then submits a redeploy that reuses
// the active deployment's source path untouched and carries the replacement
// environment built from the database config. The app's code never changes,
// only its configuration.
func (c *Controller) ConfigureAndDeploy(ctx context.Context, req *entity.ConfigureRequest) (*entity.App, *entity.AppDeployment, error) {
	if err := ValidateDatabaseConfig(req.Database); err != nil {
		return nil, nil, err
	}

	app, err := c.gtwy.GetApp(ctx, req.AppName)
	if err != nil {
		return nil, nil, err
	}

	if app.ActiveDeployment == nil || app.ActiveDeployment.SourceCodePath == "" {
		return app, nil, errors.NoActiveDeployment(app.Name)
	}

	deployment, err := c.gtwy.CreateDeployment(ctx, &entity.DeployRequest{
		AppName:        app.Name,
		SourceCodePath: app.ActiveDeployment.SourceCodePath,
		Environment:    BuildEnvironment(req.Database),
	})
	if err != nil {
		return app, nil, err
	}

	return app, deployment, nil
}

// WaitForDeployment polls the deployment's status at a fixed interval until
// it reaches a terminal state, calling observe with every fetched status.
// maxAttempts of zero polls without bound; a positive bound that runs out
// surfaces a timeout error distinct from the platform's failure states.
func (c *Controller) WaitForDeployment(ctx context.Context, req *entity.DeploymentStatusRequest, interval time.Duration, maxAttempts int, observe func(*entity.DeploymentStatus)) (*entity.DeploymentStatus, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	for attempts := 1; ; attempts++ {
		deployment, err := c.gtwy.GetDeployment(ctx, req)
		if err != nil {
			return nil, err
		}

		status := deployment.Status
		if status == nil {
			// No status reported yet; keep polling
			status = &entity.DeploymentStatus{State: entity.STATUS_RUNNING}
		}

		if observe != nil {
			observe(status)
		}

		if status.State.Terminal() {
			return status, nil
		}

		if maxAttempts > 0 && attempts >= maxAttempts {
			return nil, errors.DeploymentTimeout(attempts)
		}

		c.sleep(interval)
	}
}

// GetDeployment fetches a deployment's current state once.
func (c *Controller) GetDeployment(ctx context.Context, req *entity.DeploymentStatusRequest) (*entity.AppDeployment, error) {
	return c.gtwy.GetDeployment(ctx, req)
}
