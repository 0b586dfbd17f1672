package gateway

import (
	"context"
	"net/http"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

func (g *Gateway) GetUser(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := g.get(ctx, "/api/2.0/me", &user); err != nil {
		if status, _ := statusOf(err); status == http.StatusUnauthorized {
			return nil, errors.UserConfigNotFound
		}
		return nil, err
	}
	return &user, nil
}
