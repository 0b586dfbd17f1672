package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

// GetApp resolves an app by name.
func (g *Gateway) GetApp(ctx context.Context, name string) (*entity.App, error) {
	var app entity.App
	err := g.get(ctx, fmt.Sprintf("/api/2.0/apps/%s", url.PathEscape(name)), &app)
	if err != nil {
		if status, _ := statusOf(err); status == http.StatusNotFound {
			return nil, errors.AppNotFound(name)
		}
		return nil, err
	}
	return &app, nil
}
