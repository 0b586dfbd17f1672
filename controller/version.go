package controller

import (
	"context"

	"github.com/genieiq/cli/constants"
)

func (c *Controller) GetLatestVersion(ctx context.Context) (string, error) {
	rep, _, err := c.ghc.Repositories.GetLatestRelease(ctx, constants.GitHubOwner, constants.GitHubRepo)
	if err != nil {
		return "", err
	}
	return *rep.TagName, nil
}
