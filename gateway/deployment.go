package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

type deployBody struct {
	SourceCodePath string      `json:"source_code_path"`
	Environment    entity.Envs `json:"environment"`
}

// CreateDeployment submits a redeploy of the app. The environment list fully
// replaces the previous deployment's environment.
func (g *Gateway) CreateDeployment(ctx context.Context, req *entity.DeployRequest) (*entity.AppDeployment, error) {
	body := deployBody{
		SourceCodePath: req.SourceCodePath,
		Environment:    req.Environment,
	}

	var deployment entity.AppDeployment
	path := fmt.Sprintf("/api/2.0/apps/%s/deployments", url.PathEscape(req.AppName))
	if err := g.post(ctx, path, body, &deployment); err != nil {
		switch status, msg := statusOf(err); status {
		case http.StatusNotFound:
			return nil, errors.AppNotFound(req.AppName)
		case http.StatusBadRequest, http.StatusConflict:
			return nil, errors.DeployRejected(msg)
		}
		return nil, err
	}
	return &deployment, nil
}

// GetDeployment fetches the current status of a deployment.
func (g *Gateway) GetDeployment(ctx context.Context, req *entity.DeploymentStatusRequest) (*entity.AppDeployment, error) {
	var deployment entity.AppDeployment
	path := fmt.Sprintf("/api/2.0/apps/%s/deployments/%s", url.PathEscape(req.AppName), url.PathEscape(req.DeploymentId))
	if err := g.get(ctx, path, &deployment); err != nil {
		if status, _ := statusOf(err); status == http.StatusNotFound {
			return nil, errors.DeploymentNotFound(req.DeploymentId)
		}
		return nil, err
	}
	return &deployment, nil
}
